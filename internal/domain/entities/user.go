package entities

// User is an application login (usuario). PasswordHash is a bcrypt hash and
// never serialized.
//
// Storage model (DynamoDB):
//   - PK: username
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Active       bool   `json:"is_active"`
}
