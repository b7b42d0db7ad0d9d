package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aevon-lab/hashsplit/internal/core/partition"
)

// ErrInvalidRangeQuery is returned when a RangeQuery names no table or columns,
// or names them with characters outside the accepted identifier set.
var ErrInvalidRangeQuery = errors.New("invalid range query")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RangeQuery describes a table whose rows carry an MD5 hex digest column.
type RangeQuery struct {
	// Table may be schema-qualified ("public.users").
	Table      string
	HashColumn string
	KeyColumn  string

	// FoldCase compares upper(HashColumn), for digests stored in lowercase
	// (PostgreSQL's md5() output).
	FoldCase bool

	// Limit caps the number of keys returned. Zero means no limit.
	Limit int
}

// Validate checks identifiers and limit.
func (q RangeQuery) Validate() error {
	if q.Table == "" {
		return fmt.Errorf("%w: table is required", ErrInvalidRangeQuery)
	}
	for _, part := range strings.Split(q.Table, ".") {
		if !identifierPattern.MatchString(part) {
			return fmt.Errorf("%w: invalid table name %q", ErrInvalidRangeQuery, q.Table)
		}
	}
	if !identifierPattern.MatchString(q.HashColumn) {
		return fmt.Errorf("%w: invalid hash_column %q", ErrInvalidRangeQuery, q.HashColumn)
	}
	if !identifierPattern.MatchString(q.KeyColumn) {
		return fmt.Errorf("%w: invalid key_column %q", ErrInvalidRangeQuery, q.KeyColumn)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 0", ErrInvalidRangeQuery)
	}
	return nil
}

// RangeStore reads rows whose hash falls inside a partition.
type RangeStore interface {
	// ScanRange returns KeyColumn values of rows with Min < hash <= Max,
	// ordered by hash.
	ScanRange(ctx context.Context, q RangeQuery, p partition.Partition) ([]string, error)

	Ping(ctx context.Context) error
}
