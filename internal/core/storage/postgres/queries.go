package postgres

import (
	"fmt"
	"strings"

	"github.com/aevon-lab/hashsplit/internal/core/partition"
	"github.com/aevon-lab/hashsplit/internal/core/storage"
	"github.com/lib/pq"
)

// BuildRangeQuery renders the SELECT that fetches keys for one partition:
//
//	SELECT key FROM table WHERE hash <= $1 [AND hash > $2] ORDER BY hash [LIMIT $n]
//
// The lower bound is omitted for the first partition.
func BuildRangeQuery(q storage.RangeQuery, p partition.Partition) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	hash := pq.QuoteIdentifier(q.HashColumn)
	if q.FoldCase {
		hash = "upper(" + hash + ")"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s WHERE %s <= $1",
		pq.QuoteIdentifier(q.KeyColumn), quoteTable(q.Table), hash)
	args := []any{p.Max}

	if p.HasLowerBound() {
		args = append(args, *p.Min)
		fmt.Fprintf(&sb, " AND %s > $%d", hash, len(args))
	}

	fmt.Fprintf(&sb, " ORDER BY %s", hash)

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	return sb.String(), args, nil
}

func quoteTable(table string) string {
	parts := strings.Split(table, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}
	return strings.Join(parts, ".")
}
