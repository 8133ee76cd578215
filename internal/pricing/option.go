package pricing

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by the constructors in this package when a
// field violates its invariant. Callers test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// OptionKind distinguishes calls from puts.
type OptionKind int

const (
	Call OptionKind = iota
	Put
)

func (k OptionKind) String() string {
	if k == Call {
		return "call"
	}
	return "put"
}

// ParseOptionKind converts CLI/JSON text ("call" or "put") to an OptionKind.
func ParseOptionKind(s string) (OptionKind, error) {
	switch s {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return 0, fmt.Errorf("%w: option type %q (must be 'call' or 'put')", ErrInvalidArgument, s)
	}
}

// Option describes a European vanilla option contract. It is immutable after
// construction; build one with NewOption so the invariants hold.
type Option struct {
	Kind             OptionKind
	Strike           float64 // must be strictly positive
	TimeToExpiration float64 // years, must be non-negative
}

// NewOption validates and builds a contract descriptor.
// Strike must be strictly positive; time to expiration must be non-negative.
func NewOption(kind OptionKind, strike, timeToExpiration float64) (Option, error) {
	if strike <= 0 {
		return Option{}, fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidArgument, strike)
	}
	if timeToExpiration < 0 {
		return Option{}, fmt.Errorf("%w: time to expiration must be non-negative, got %g", ErrInvalidArgument, timeToExpiration)
	}
	return Option{Kind: kind, Strike: strike, TimeToExpiration: timeToExpiration}, nil
}

// IsCall reports whether the contract is a call.
func (o Option) IsCall() bool { return o.Kind == Call }
