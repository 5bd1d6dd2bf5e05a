package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/videoflix-server/internal/model"
)

// MaxBytes is the longest password bcrypt accepts.
const MaxBytes = 72

var ErrEmptyPassword = errors.New("password must not be empty")

// Bcrypt hashes and verifies passwords with bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher. Costs outside bcrypt's range fall back to the default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash generates a password hash.
func (b *Bcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxBytes {
		return "", model.ErrPasswordTooLong
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare reports whether password matches hash. A mismatch is not an error.
func (b *Bcrypt) Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
