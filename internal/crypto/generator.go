package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijkmnopqrstuvwxyz"
	digitChars     = "23456789"
	symbolChars    = "!@#%^&*-_=+?"

	MinPasswordLength = 12
	MaxPasswordLength = 128
)

var ErrPasswordLength = errors.New("generated password length must be between 12 and 128")

var passwordClasses = []string{uppercaseChars, lowercaseChars, digitChars, symbolChars}

// GeneratePassword returns a random password of the given length containing at
// least one character of every class. Visually ambiguous characters are left out
// since the result is meant to be read off a terminal.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", ErrPasswordLength
	}

	var pool string
	for _, class := range passwordClasses {
		pool += class
	}

	out := make([]byte, length)
	for i := range out {
		charset := pool
		if i < len(passwordClasses) {
			charset = passwordClasses[i]
		}
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		out[i] = ch
	}

	// Fisher-Yates so the guaranteed characters do not sit at the front.
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}

	return string(out), nil
}

func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
