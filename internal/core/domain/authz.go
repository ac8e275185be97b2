package domain

// RequireOwner passes silently when the acting credential owns the resource
// and fails with AccessDenied otherwise. Callers must confirm the resource
// exists first: a missing resource is reported as not-found, never as denied.
func RequireOwner(actingCredentialsID, ownerCredentialsID, action string) error {
	if actingCredentialsID != ownerCredentialsID {
		return AccessDenied(action)
	}
	return nil
}
