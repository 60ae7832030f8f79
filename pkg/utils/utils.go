// Package utils holds the password and email helpers shared by the user
// domain and the auth service.
package utils

import (
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost of stored user passwords.
const PasswordCost = bcrypt.DefaultCost

// HashPassword hashes a plain password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether password matches a hash produced by HashPassword.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsEmail accepts a bare address such as "admin@exchange.com". Display-name
// forms like "Admin <admin@exchange.com>" are rejected since the value is
// stored as is.
func IsEmail(email string) bool {
	if strings.TrimSpace(email) != email {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
