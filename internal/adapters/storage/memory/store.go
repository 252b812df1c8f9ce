// Package memory implements the palindrome store in process memory.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/baditaflorin/go_palindrome/internal/core/detection"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// Canonicalizer maps raw text to the canonical form used for storage.
type Canonicalizer interface {
	Canonicalize(text string) string
}

// Option defines a functional option for configuring the store.
type Option func(*storeConfig)

type storeConfig struct {
	samples []string
	now     func() time.Time
}

// WithSamples sets the texts inserted when the store is created.
func WithSamples(samples []string) Option {
	return func(cfg *storeConfig) {
		cfg.samples = samples
	}
}

// WithClock sets the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(cfg *storeConfig) {
		cfg.now = now
	}
}

// Store holds accepted palindromes in insertion order.
// Add and Delete run under the write lock, reads under the read lock.
type Store struct {
	mu        sync.RWMutex
	canonical Canonicalizer
	logger    ports.Logger
	now       func() time.Time
	nextID    int
	records   []domain.Record
}

var _ ports.PalindromeStore = (*Store)(nil)

// New creates a store and inserts the configured samples.
// Samples that are not palindromes or duplicate an earlier sample are skipped.
func New(canonical Canonicalizer, logger ports.Logger, opts ...Option) *Store {
	cfg := &storeConfig{now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Store{
		canonical: canonical,
		logger:    logger,
		now:       cfg.now,
		nextID:    1,
	}

	for _, sample := range cfg.samples {
		if _, err := s.Add(sample); err != nil {
			logger.Debug("Skipped seed sample", "text", sample, "reason", err)
		}
	}

	logger.Info("Palindrome store initialized",
		"samples", len(cfg.samples),
		"records", s.Len(),
	)
	return s
}

// Add stores text if its fully normalized form is a new palindrome.
func (s *Store) Add(text string) (domain.Record, error) {
	canonical := s.canonical.Canonicalize(text)
	if !detection.IsPalindrome(canonical) {
		return domain.Record{}, domain.ErrNotPalindrome
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if strings.EqualFold(r.CanonicalText, canonical) {
			return domain.Record{}, domain.ErrDuplicate
		}
	}

	rec := domain.Record{
		ID:            s.nextID,
		OriginalText:  text,
		CanonicalText: canonical,
		Length:        utf8.RuneCountInString(canonical),
		Category:      detection.DetermineCategory(text),
		CreatedAt:     s.now().UTC(),
	}
	s.nextID++
	s.records = append(s.records, rec)

	s.logger.Debug("Stored palindrome", "id", rec.ID, "canonical", canonical)
	return rec, nil
}

// All returns every record, most recent first.
// Records created at the same instant are ordered by later insertion first.
func (s *Store) All() []domain.Record {
	s.mu.RLock()
	out := make([]domain.Record, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		out = append(out, s.records[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.records[i], nil
	}
	return domain.Record{}, domain.ErrNotFound
}

// ByCategory returns the records whose category matches, ignoring case, in insertion order.
func (s *Store) ByCategory(category string) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, 0)
	for _, r := range s.records {
		if strings.EqualFold(string(r.Category), category) {
			out = append(out, r)
		}
	}
	return out
}

// Delete removes the record with the given id and reports whether it existed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)

	s.logger.Debug("Deleted palindrome", "id", id)
	return true
}

// Statistics aggregates the current records.
func (s *Store) Statistics() domain.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Statistics{Total: len(s.records)}
	if stats.Total == 0 {
		return stats
	}

	totalLength := 0
	for _, r := range s.records {
		totalLength += r.Length
		switch r.Category {
		case domain.CategoryWord:
			stats.Words++
		case domain.CategoryPhrase:
			stats.Phrases++
		case domain.CategoryNumber:
			stats.Numbers++
		}
	}
	stats.AverageLength = totalLength / stats.Total
	return stats
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id int) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
