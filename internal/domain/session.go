package domain

// User is the minimal identity returned by the auth endpoints
type User struct {
	Email    string
	FullName string
	ID       string
}

// Session is the current authenticated identity plus its bearer
// credential. Process-wide singleton, owned by the session service.
type Session struct {
	Token string
	User  User
}
