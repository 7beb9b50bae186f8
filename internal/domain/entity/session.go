package entity

// Session is the login response: an opaque bearer token plus the
// authenticated profile.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"usuario"`
}
