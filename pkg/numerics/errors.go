package numerics

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Error kinds returned by the toolkit. Match them with errors.Is.
var (
	ErrGCDNotUnity             = errors.New("numerics: gcd is not 1")
	ErrZeroValue               = errors.New("numerics: value is zero")
	ErrArithmeticInconsistency = errors.New("numerics: modular inverse final check failed")
	ErrInvalidInput            = errors.New("numerics: invalid input")
)

// GCDError reports that a value has no inverse because it shares a
// factor with the modulus.
type GCDError struct {
	Value   *big.Int
	Modulus *big.Int
	GCD     *big.Int
}

func (e *GCDError) Error() string {
	return fmt.Sprintf("%s: gcd(%s, %s) = %s", ErrGCDNotUnity, e.Value, e.Modulus, e.GCD)
}

func (e *GCDError) Unwrap() error {
	return ErrGCDNotUnity
}

// NewGCDError creates a new GCDError.
func NewGCDError(value, modulus, gcd *big.Int) *GCDError {
	return &GCDError{
		Value:   new(big.Int).Set(value),
		Modulus: new(big.Int).Set(modulus),
		GCD:     new(big.Int).Set(gcd),
	}
}
