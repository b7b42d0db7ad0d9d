package v1

import (
	"fmt"

	"github.com/aevon-lab/hashsplit/internal/core/partition"
	"github.com/shopspring/decimal"
)

// PartitionRange is one partition of the MD5 hash space as served over HTTP.
type PartitionRange struct {
	// Index is the 0-based position of the partition in its set.
	Index int `json:"index"`

	// Min is the exclusive lower bound. Null for the first partition.
	Min *string `json:"min"`

	// Max is the inclusive upper bound.
	Max string `json:"max"`

	// Coverage is the share of the hash space held by this partition.
	Coverage decimal.Decimal `json:"coverage"`
}

// ThresholdSet is the response body of GET /v1/thresholds.
type ThresholdSet struct {
	Groups int `json:"groups"`

	// Cached is true when the set was served from a cache entry stored by
	// an earlier request, false when this request computed or awaited it.
	Cached bool `json:"cached"`

	Partitions []PartitionRange `json:"partitions"`
}

// Validate checks that the set covers the whole hash space with adjacent,
// well-formed, ascending ranges. Clients use it to verify received payloads.
func (s *ThresholdSet) Validate() error {
	if s.Groups < 1 {
		return fmt.Errorf("groups must be >= 1, got %d", s.Groups)
	}
	if len(s.Partitions) != s.Groups {
		return fmt.Errorf("expected %d partitions, got %d", s.Groups, len(s.Partitions))
	}

	if s.Partitions[0].Min != nil {
		return fmt.Errorf("first partition must have no lower bound")
	}
	if last := s.Partitions[len(s.Partitions)-1]; last.Max != partition.MaxThreshold {
		return fmt.Errorf("last partition must end at %s, got %s", partition.MaxThreshold, last.Max)
	}

	for i, p := range s.Partitions {
		if p.Index != i {
			return fmt.Errorf("partition %d has index %d", i, p.Index)
		}
		if _, err := (partition.Partition{Min: p.Min, Max: p.Max}).Size(); err != nil {
			return fmt.Errorf("partition %d: %w", i, err)
		}
		if i == 0 {
			continue
		}
		if p.Min == nil {
			return fmt.Errorf("partition %d is missing its lower bound", i)
		}
		if *p.Min != s.Partitions[i-1].Max {
			return fmt.Errorf("partition %d min %s does not match previous max %s", i, *p.Min, s.Partitions[i-1].Max)
		}
	}

	return nil
}

// Thresholds converts the set back to core partitions.
func (s *ThresholdSet) Thresholds() []partition.Partition {
	out := make([]partition.Partition, len(s.Partitions))
	for i, p := range s.Partitions {
		out[i] = partition.Partition{Min: p.Min, Max: p.Max}
	}
	return out
}
