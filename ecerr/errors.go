// Package ecerr defines the error taxonomy shared by the field, curve, and
// pairing layers: the three failure modes named in the design are exactly
// the ones that can occur in these layers, and nothing else bubbles up
// unwrapped.
package ecerr

import (
	"errors"
	"fmt"
)

// NoInverse is returned when a caller attempts to invert the additive
// identity, or divide by it.
var NoInverse = errors.New("ecerr: no multiplicative inverse (division by zero)")

// NonQuadraticResidue is returned by Sqrt when the operand has no square
// root in the field.
var NonQuadraticResidue = errors.New("ecerr: not a quadratic residue")

// invalidInput is the sentinel wrapped by every InvalidInput error, so
// callers can test for the category with errors.Is(err, ecerr.InvalidInput)
// without caring about the specific reason string.
var invalidInput = errors.New("ecerr: invalid input")

// InvalidInput is the sentinel identifying a precondition violation (e.g.
// passing the point at infinity where an affine point is required). Test
// for it with errors.Is; NewInvalidInput carries the specific reason.
var InvalidInput = invalidInput

// NewInvalidInput builds an InvalidInput error carrying a human-readable
// reason. errors.Is(err, ecerr.InvalidInput) reports true for the result.
func NewInvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", invalidInput, reason)
}
