package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// printer writes command results as text or JSON.
type printer struct {
	format string
	w      io.Writer
}

func (p printer) json(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) checkResult(res domain.CheckResult) error {
	if p.format == "json" {
		return p.json(res)
	}
	_, err := fmt.Fprintf(p.w, "%s\ncanonical: %s\nreversed:  %s\nlength:    %d\ncategory:  %s\n",
		res.Message, res.CanonicalText, res.ReversedText, res.Length, res.Category)
	return err
}

func (p printer) record(rec domain.Record) error {
	if p.format == "json" {
		return p.json(rec)
	}
	_, err := fmt.Fprintf(p.w, "%d\t%s\t%s\t%d\t%s\t%s\n",
		rec.ID, rec.Category, rec.CanonicalText, rec.Length, rec.CreatedAt.Format(time.RFC3339), rec.OriginalText)
	return err
}

func (p printer) records(recs []domain.Record) error {
	if p.format == "json" {
		return p.json(recs)
	}
	for _, rec := range recs {
		if err := p.record(rec); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) statistics(stats domain.Statistics) error {
	if p.format == "json" {
		return p.json(stats)
	}
	_, err := fmt.Fprintf(p.w, "total:          %d\nwords:          %d\nphrases:        %d\nnumbers:        %d\naverage length: %d\n",
		stats.Total, stats.Words, stats.Phrases, stats.Numbers, stats.AverageLength)
	return err
}
