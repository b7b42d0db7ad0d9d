package partition

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// DefaultGroups is the partition count used when the caller does not pick one.
	DefaultGroups = 16

	// Width is the number of hex digits in an MD5 digest.
	Width = 32
)

// MaxThreshold is the largest value in the hash space: 32 'F' digits.
var MaxThreshold = strings.Repeat("F", Width)

var (
	// ErrInvalidGroups is returned for a partition count below 1.
	ErrInvalidGroups = errors.New("groups must be >= 1")

	// ErrInvariantViolation marks a computed boundary that does not fit the
	// 32-digit hash space. It indicates a bug, not bad input.
	ErrInvariantViolation = errors.New("partition invariant violated")
)

// space is the number of values in the hash space, 16^32.
var space = new(big.Int).Lsh(big.NewInt(1), 4*Width)

// Partition is one contiguous slice of the hash space.
// A hash h belongs to it when h <= Max and (Min == nil or h > Min).
type Partition struct {
	// Min is nil for the first partition (no lower bound).
	Min *string `json:"min" yaml:"min"`
	Max string  `json:"max" yaml:"max"`
}

// HasLowerBound reports whether Min is set.
func (p Partition) HasLowerBound() bool {
	return p.Min != nil
}

// Thresholds splits the MD5 hash space into groups adjacent partitions of
// equal width. The last partition always ends at MaxThreshold.
func Thresholds(groups int) ([]Partition, error) {
	if groups < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroups, groups)
	}

	// boundaries[0] is the missing lower bound of the first partition.
	boundaries := make([]*string, 1, groups+1)

	num := new(big.Int)
	div := big.NewInt(int64(groups))
	for i := 1; i <= groups; i++ {
		if i == groups {
			last := MaxThreshold
			boundaries = append(boundaries, &last)
			break
		}

		num.Mul(space, big.NewInt(int64(i)))
		num.Quo(num, div)
		threshold, err := padLeftZeroes(strings.ToUpper(num.Text(16)), Width)
		if err != nil {
			return nil, fmt.Errorf("boundary %d of %d: %w", i, groups, err)
		}
		boundaries = append(boundaries, &threshold)
	}

	out := make([]Partition, groups)
	for k := range out {
		out[k] = Partition{Min: boundaries[k], Max: *boundaries[k+1]}
	}
	return out, nil
}

// CachedThresholds is Thresholds with read-through/write-through caching keyed
// by groups. A nil cache disables caching.
func CachedThresholds(groups int, cache Cache) ([]Partition, error) {
	if cache == nil {
		return Thresholds(groups)
	}
	if cached, ok := cache.Get(groups); ok {
		return cached, nil
	}

	out, err := Thresholds(groups)
	if err != nil {
		return nil, err
	}
	cache.Put(groups, out)
	return out, nil
}

func padLeftZeroes(s string, width int) (string, error) {
	if len(s) > width {
		return "", fmt.Errorf("%w: %q is longer than %d digits", ErrInvariantViolation, s, width)
	}
	return strings.Repeat("0", width-len(s)) + s, nil
}
