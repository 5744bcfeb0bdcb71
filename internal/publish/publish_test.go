package publish

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername_Valid(t *testing.T) {
	for _, u := range []string{"abc", "my-cv", "jane-doe-42", "a1b2c3"} {
		require.Empty(t, ValidateUsername(u), "username %q", u)
	}
}

func TestValidateUsername_TooShortOrLong(t *testing.T) {
	errs := ValidateUsername("ab")
	require.Len(t, errs, 1)
	require.Equal(t, "Username must be at least 3 characters", errs[0].Message)

	errs = ValidateUsername("abcdefghijklmnopqrstu") // 21 chars
	require.Len(t, errs, 1)
	require.Equal(t, "Username must be at most 20 characters", errs[0].Message)
}

func TestValidateUsername_CharacterSet(t *testing.T) {
	errs := ValidateUsername("Admin!")
	require.Len(t, errs, 1)
	require.Equal(t, "username", errs[0].Field)
	require.Equal(t, "Username can only contain lowercase letters, numbers, and hyphens", errs[0].Message)

	errs = ValidateUsername("UPPER")
	require.NotEmpty(t, errs)
}

func TestValidateUsername_HyphenPlacement(t *testing.T) {
	for _, u := range []string{"-abc", "abc-"} {
		errs := ValidateUsername(u)
		require.Len(t, errs, 1, "username %q", u)
		require.Equal(t, "Username cannot start or end with a hyphen", errs[0].Message)
	}
	require.Empty(t, ValidateUsername("a-b-c"))
}

func TestValidateUsername_CollectsAllViolations(t *testing.T) {
	// short, bad characters and a leading hyphen at once
	errs := ValidateUsername("-A")
	require.Len(t, errs, 3)
}

func TestReserved(t *testing.T) {
	for _, u := range []string{"admin", "api", "www", "app", "create", "login", "signup",
		"dashboard", "settings", "profile", "about", "contact", "terms", "privacy", "help", "support"} {
		require.True(t, Reserved(u), "username %q", u)
	}
	require.False(t, Reserved("my-cv"))
	// reserved check is exact; format rules reject the uppercase variant anyway
	require.False(t, Reserved("Admin"))
}
