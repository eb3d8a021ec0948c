// Package numerics provides the arbitrary-precision helpers the curve layer
// is built on: non-negative modulus, modular inverse, Miller-Rabin
// primality testing and sampling of units modulo n.
//
// Every function that samples takes its random source explicitly. Pass
// crypto/rand.Reader in production and a seeded reader in tests.
package numerics

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// DefaultWitnesses is the number of Miller-Rabin rounds callers use when
// they have no stronger requirement.
const DefaultWitnesses = 10

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Modulus returns value mod m in the range [0, m), unlike the truncated
// remainder of big.Int.Rem. m must be positive; Modulus panics if m is
// zero.
func Modulus(value, m *big.Int) *big.Int {
	return new(big.Int).Mod(value, m)
}

// ModularInverse returns the inverse of value modulo m, computed with the
// extended Euclidean algorithm. Negative values are handled as
// m - inverse(-value).
func ModularInverse(value, m *big.Int) (*big.Int, error) {
	if m.Cmp(two) < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "modulus %s is below 2", m)
	}
	if value.Sign() == 0 {
		return nil, errors.Wrapf(ErrZeroValue, "cannot invert 0 modulo %s", m)
	}

	if value.Sign() < 0 {
		inverse, err := ModularInverse(new(big.Int).Neg(value), m)
		if err != nil {
			return nil, err
		}
		return inverse.Sub(m, inverse), nil
	}

	a, oldA := big.NewInt(0), big.NewInt(1)
	b, oldB := new(big.Int).Set(m), new(big.Int).Set(value)
	quotient := new(big.Int)

	for b.Sign() != 0 {
		quotient.Quo(oldB, b)

		remainder := new(big.Int).Mul(quotient, b)
		remainder.Sub(oldB, remainder)
		oldB, b = b, remainder

		coefficient := new(big.Int).Mul(quotient, a)
		coefficient.Sub(oldA, coefficient)
		oldA, a = a, coefficient
	}

	// oldB holds gcd(value, m), oldA the Bezout coefficient of value.
	if oldB.Cmp(one) != 0 {
		return nil, NewGCDError(value, m, oldB)
	}

	check := new(big.Int).Mul(value, oldA)
	if Modulus(check, m).Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrArithmeticInconsistency, "%s * %s mod %s", value, oldA, m)
	}

	return Modulus(oldA, m), nil
}

// RandomBits reads a uniformly distributed non-negative integer of at most
// bitLength bits from random.
func RandomBits(random io.Reader, bitLength int) (*big.Int, error) {
	if bitLength < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "bit length %d", bitLength)
	}

	buf := make([]byte, (bitLength+7)/8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, errors.Wrap(err, "numerics: reading random bytes")
	}

	// Mask off the bits above bitLength in the leading byte.
	if excess := len(buf)*8 - bitLength; excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}

	return new(big.Int).SetBytes(buf), nil
}

// IsProbablyPrime runs the Miller-Rabin test on value with the given number
// of witnesses drawn from random. A false result is a proof of
// compositeness; a true result means value is prime with probability at
// least 1 - 4^-witnesses.
func IsProbablyPrime(random io.Reader, value *big.Int, witnesses int) (bool, error) {
	if value.Cmp(one) <= 0 {
		return false, errors.Wrapf(ErrInvalidInput, "primality of %s is undefined", value)
	}
	if witnesses < 1 {
		return false, errors.Wrapf(ErrInvalidInput, "witness count %d", witnesses)
	}

	// The witness range [2, value-2] is empty below 5.
	if value.Cmp(three) <= 0 {
		return true, nil
	}
	if value.Bit(0) == 0 {
		return false, nil
	}

	// value - 1 = d * 2^s with d odd
	valueMinusOne := new(big.Int).Sub(value, one)
	valueMinusTwo := new(big.Int).Sub(value, two)
	s := valueMinusOne.TrailingZeroBits()
	d := new(big.Int).Rsh(valueMinusOne, s)

	for i := 0; i < witnesses; i++ {
		a, err := sampleWitness(random, valueMinusTwo, value.BitLen())
		if err != nil {
			return false, err
		}

		x := new(big.Int).Exp(a, d, value)
		if x.Cmp(one) == 0 || x.Cmp(valueMinusOne) == 0 {
			continue
		}

		composite := true
		for r := uint(1); r < s; r++ {
			x.Exp(x, two, value)

			if x.Cmp(one) == 0 {
				return false, nil
			}
			if x.Cmp(valueMinusOne) == 0 {
				composite = false
				break
			}
		}

		if composite {
			return false, nil
		}
	}

	return true, nil
}

// sampleWitness draws a base uniformly from [2, upper] by rejection.
func sampleWitness(random io.Reader, upper *big.Int, bitLength int) (*big.Int, error) {
	for {
		a, err := RandomBits(random, bitLength)
		if err != nil {
			return nil, err
		}
		if a.Cmp(two) >= 0 && a.Cmp(upper) <= 0 {
			return a, nil
		}
	}
}

// NumberFromGroup samples a random bitLength-bit integer, reduces it modulo
// modulus and retries until the result is coprime to modulus, i.e. until it
// is a unit of the multiplicative group. The loop has no iteration cap; it
// terminates quickly whenever units are dense, which holds for curve
// orders.
func NumberFromGroup(random io.Reader, modulus *big.Int, bitLength int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "modulus %s is not positive", modulus)
	}

	gcd := new(big.Int)
	for {
		n, err := RandomBits(random, bitLength)
		if err != nil {
			return nil, err
		}
		n.Mod(n, modulus)

		if gcd.GCD(nil, nil, n, modulus).Cmp(one) == 0 {
			return n, nil
		}
	}
}
