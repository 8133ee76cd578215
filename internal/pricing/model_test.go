package pricing

import (
	"errors"
	"testing"
)

func TestModelByName(t *testing.T) {
	model, err := ModelByName("black_scholes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.Name() != ModelBlackScholes {
		t.Fatalf("expected model name %q, got %q", ModelBlackScholes, model.Name())
	}
}

func TestModelByNameUnknown(t *testing.T) {
	_, err := ModelByName("heston")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
