package auth

import "strings"

// Role tags arrive from the provider as "<application>:<role>" strings. The
// filter below scopes a multi-application role list down to one application;
// plain role-name extraction happens at the policy layer.

// FilterByApplication returns the role tags whose application prefix equals
// application exactly (case-sensitive, no trimming). Input order is
// preserved. A nil or empty list filters to an empty list. Tags without a
// colon never match any application.
func FilterByApplication(application string, roles []string) []string {
	filtered := make([]string, 0, len(roles))
	for _, tag := range roles {
		prefix, _, found := strings.Cut(tag, ":")
		if found && prefix == application {
			filtered = append(filtered, tag)
		}
	}
	return filtered
}

// roleName extracts the plain role name from an "application:role" tag.
// For tags with more than one colon the name is the segment between the
// first and second colon; trailing segments are ignored. This mirrors the
// provider's historical tag format and is deliberate.
func roleName(tag string) string {
	parts := strings.Split(tag, ":")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
