// Package publish implements the username rules behind the resume URL
// generate/check endpoint.
package publish

import "regexp"

// FieldError is one structured validation failure returned to the caller,
// addressable by the offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var usernameRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// Usernames that collide with application routes can never be claimed.
var reservedUsernames = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"www":       {},
	"app":       {},
	"create":    {},
	"login":     {},
	"signup":    {},
	"dashboard": {},
	"settings":  {},
	"profile":   {},
	"about":     {},
	"contact":   {},
	"terms":     {},
	"privacy":   {},
	"help":      {},
	"support":   {},
}

// Reserved reports whether the username is on the fixed reserved list.
func Reserved(username string) bool {
	_, ok := reservedUsernames[username]
	return ok
}

// ValidateUsername checks the format rules: 3-20 characters, lowercase
// letters, digits and hyphens only, no leading or trailing hyphen. Reserved
// names are a separate check so the endpoint can report them distinctly.
func ValidateUsername(username string) []FieldError {
	var errs []FieldError
	if len(username) < 3 {
		errs = append(errs, FieldError{Field: "username", Message: "Username must be at least 3 characters"})
	}
	if len(username) > 20 {
		errs = append(errs, FieldError{Field: "username", Message: "Username must be at most 20 characters"})
	}
	if username != "" && !usernameRe.MatchString(username) {
		errs = append(errs, FieldError{Field: "username", Message: "Username can only contain lowercase letters, numbers, and hyphens"})
	}
	if len(username) > 0 && (username[0] == '-' || username[len(username)-1] == '-') {
		errs = append(errs, FieldError{Field: "username", Message: "Username cannot start or end with a hyphen"})
	}
	return errs
}
