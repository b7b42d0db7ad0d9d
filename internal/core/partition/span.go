package partition

import (
	"fmt"
	"math/big"
)

// Size returns the number of hash values that fall inside p.
// The first partition is closed at zero, so it holds Max+1 values.
func (p Partition) Size() (*big.Int, error) {
	upper, err := ParseThreshold(p.Max)
	if err != nil {
		return nil, err
	}
	if p.Min == nil {
		return upper.Add(upper, big.NewInt(1)), nil
	}

	lower, err := ParseThreshold(*p.Min)
	if err != nil {
		return nil, err
	}
	if upper.Cmp(lower) < 0 {
		return nil, fmt.Errorf("max %s is below min %s", p.Max, *p.Min)
	}
	return upper.Sub(upper, lower), nil
}

// SpaceSize returns 16^32, the number of values in the hash space.
func SpaceSize() *big.Int {
	return new(big.Int).Set(space)
}

// ParseThreshold parses a 32-digit uppercase hex threshold.
func ParseThreshold(s string) (*big.Int, error) {
	if len(s) != Width {
		return nil, fmt.Errorf("threshold %q must be %d hex digits", s, Width)
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
			return nil, fmt.Errorf("threshold %q must be uppercase hex", s)
		}
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("threshold %q is not a hex number", s)
	}
	return n, nil
}
