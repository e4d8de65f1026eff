package auth

import "strings"

var usernameReplacer = strings.NewReplacer(
	" ", "_",
	",", "_",
	".", "_",
	"@", "_",
)

// NormalizeUsername converts an email-like identifier into an account name
// safe for the host platform: space, comma, period and "@" become
// underscores, everything else (including case) passes through. The
// replacement set contains no underscore, so the transform is idempotent.
func NormalizeUsername(identifier string) string {
	return usernameReplacer.Replace(identifier)
}
