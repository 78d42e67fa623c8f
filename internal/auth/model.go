package auth

// User is an operator account allowed to build quotes.
type User struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string
}
