package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortID(t *testing.T) {
	req := require.New(t)

	// Given a full uuid, only its first block is shown
	req.Equal("a1b2c3d4", shortID("a1b2c3d4-e5f6-7890-abcd-ef1234567890"))

	// Given a hand-typed id shorter than the abbreviation, it must pass
	// through instead of panicking the prompt render
	req.Equal("bob", shortID("bob"))
	req.Equal("", shortID(""))
	req.Equal("12345678", shortID("12345678"))
}

func TestTruncate(t *testing.T) {
	req := require.New(t)
	req.Equal("short", truncate("short", 10))
	req.Equal("exactly10!", truncate("exactly10!", 10))
	req.Equal("toolongfo…", truncate("toolongforten", 10))
}
