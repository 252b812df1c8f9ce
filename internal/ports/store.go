package ports

import "github.com/baditaflorin/go_palindrome/internal/core/domain"

// PalindromeStore holds accepted palindromes.
type PalindromeStore interface {
	Add(text string) (domain.Record, error)
	All() []domain.Record
	Get(id int) (domain.Record, error)
	ByCategory(category string) []domain.Record
	Delete(id int) bool
	Statistics() domain.Statistics
	Len() int
}
