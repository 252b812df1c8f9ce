package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for empty or whitespace-only text.
	ErrInvalidInput = errors.New("text must not be empty")
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("palindrome not found")
	// ErrRejected is returned when a text cannot be stored.
	ErrRejected = errors.New("palindrome rejected")

	ErrNotPalindrome = fmt.Errorf("%w: text is not a palindrome", ErrRejected)
	ErrDuplicate     = fmt.Errorf("%w: palindrome already exists", ErrRejected)
)
