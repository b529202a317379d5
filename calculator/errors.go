package calculator

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidDomain     = errors.New("invalid domain: length and radius must be positive")
	ErrInvalidResolution = errors.New("invalid resolution: each axis needs at least 2 points")
	ErrInvalidField      = errors.New("invalid field: A must be non-negative, KR and KX positive, all finite")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrUnknownStage      = errors.New("unknown stage")
)

func shapeMismatch(what string, got, want Shape) error {
	return errors.Wrapf(ErrShapeMismatch, "%s: got %v, want %v", what, got, want)
}
