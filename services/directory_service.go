package services

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"pingly/contract"
	"pingly/domain"
)

// IDirectory finds people to start a conversation with.
type IDirectory interface {
	Search(ctx context.Context, currentUser, query string, knownPeers []string) ([]domain.Profile, error)
}

// DirectoryService searches user profiles by username substring,
// case-insensitively. The current user never appears in results; with
// excludeKnownPeers set (the default) neither do users who already have
// a conversation entry — search is for starting new conversations, the
// sidebar already lists the existing ones.
type DirectoryService struct {
	profiles          contract.IProfileStore
	excludeKnownPeers bool
}

func NewDirectoryService(profiles contract.IProfileStore, excludeKnownPeers bool) *DirectoryService {
	return &DirectoryService{profiles: profiles, excludeKnownPeers: excludeKnownPeers}
}

// Search returns matching profiles. An empty query returns nothing:
// search is opt-in, the default view is the conversation list, not a
// global roster.
func (s *DirectoryService) Search(ctx context.Context, currentUser, query string, knownPeers []string) ([]domain.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	excluded := []string{currentUser}
	if s.excludeKnownPeers {
		excluded = append(excluded, knownPeers...)
	}

	profiles, err := s.profiles.SearchProfiles(ctx, query, excluded)
	if err != nil {
		return nil, err
	}

	// The store applied the exclusions server-side; filtering again
	// keeps the guarantee independent of the store implementation.
	return lo.Filter(profiles, func(p domain.Profile, _ int) bool {
		return !lo.Contains(excluded, p.ID)
	}), nil
}
