// Package models defines the records credkeeper keeps in its local store.
package models

// UserRecord is one registered account. The password is kept verbatim.
type UserRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
