package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "AVeryS0lidPassphrase!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	req := require.New(t)
	_, err := ComparePassword("whatever", "not-a-valid-hash")
	req.Error(err)
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-42", []string{"user"}, time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("user-42", claims.UserID)
	req.Equal([]string{"user"}, claims.Roles)
}

func TestValidateToken_Expired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-42", []string{"user"}, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestValidateToken_Garbage(t *testing.T) {
	req := require.New(t)
	_, err := ValidateToken("definitely.not.ajwt")
	req.Error(err)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"test@example.com", "validuser", "ComplexPass123!?"}, false},
		{"Invalid email", RegisterRequest{"notanemail", "validuser", "ComplexPass123!?"}, true},
		{"Username too short", RegisterRequest{"test@example.com", "ab", "ComplexPass123!?"}, true},
		{"Username with underscore", RegisterRequest{"test@example.com", "valid_user_42", "ComplexPass123!?"}, false},
		{"Username with spaces", RegisterRequest{"test@example.com", "not a user", "ComplexPass123!?"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "validuser", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "validuser", "NoDigitPassword!"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "validuser", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "validuser", "nouppercase123!?"}, true},
		{"Password too long (edge case)", RegisterRequest{"test@example.com", "validuser", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
