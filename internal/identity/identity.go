package identity

// User is the verified actor handed to the core by the identity provider.
// The provider itself (token verification, session handling) lives outside
// this service; by the time a User reaches a service method it is trusted.
type User struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Authenticated reports whether a verified identity is present.
func (u User) Authenticated() bool {
	return u.Email != ""
}
