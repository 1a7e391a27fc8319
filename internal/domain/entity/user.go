package entity

import "time"

// User is the aggregate root for accounts. Password holds the bcrypt digest,
// never the plaintext.
type User struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
