package main

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// PasswordVerifier turns a password into its stored form and checks
// candidates against it.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, candidate string) bool
}

func NewPasswordVerifier(mode string) PasswordVerifier {
	if mode == PasswordModeBcrypt {
		return bcryptVerifier{cost: bcrypt.DefaultCost}
	}
	return plainVerifier{}
}

// plainVerifier stores and compares the password as is.
type plainVerifier struct{}

func (plainVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (plainVerifier) Verify(stored, candidate string) bool {
	return stored == candidate
}

type bcryptVerifier struct {
	cost int
}

func (b bcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b bcryptVerifier) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
