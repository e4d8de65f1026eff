package auth

// Policy decides whether an authenticated profile may log in and whether it
// gets admin privileges, based on the role tags the provider attached to the
// profile and the role lists configured for this deployment.
//
// AllowedRoles empty means the policy is open: any authenticated identity
// passes. AdminRoles empty means nobody is admin. The asymmetry is
// intentional; an open admin policy would be a deployment hazard.
type Policy struct {
	Application  string
	AllowedRoles []string
	AdminRoles   []string
}

// CheckRoles reports whether the profile holds at least one of validRoles
// within the policy's application scope. An empty validRoles list passes
// unconditionally.
func (p Policy) CheckRoles(profile Profile, validRoles []string) bool {
	if len(validRoles) == 0 {
		return true
	}

	names := make(map[string]struct{})
	for _, tag := range FilterByApplication(p.Application, profile.Roles) {
		names[roleName(tag)] = struct{}{}
	}

	for _, want := range validRoles {
		if _, ok := names[want]; ok {
			return true
		}
	}
	return false
}

// Allowed reports whether the profile passes the login policy.
func (p Policy) Allowed(profile Profile) bool {
	return p.CheckRoles(profile, p.AllowedRoles)
}

// Admin reports whether the profile gets admin privileges. Unlike Allowed,
// an empty AdminRoles list denies admin to everyone.
func (p Policy) Admin(profile Profile) bool {
	if len(p.AdminRoles) == 0 {
		return false
	}
	return p.CheckRoles(profile, p.AdminRoles)
}
