// Package ecc models short-Weierstrass curves y² = x³ + A·x + B over prime
// fields and implements the point group on them in affine coordinates.
//
// Curves and points are immutable values. Curves come either from the
// standard catalog (NewCurve) or from explicit parameters (NewCustomCurve);
// points are created with NewPoint or returned by group operations.
//
// The arithmetic is exact but not constant time: scalar multiplication
// branches on the bits of the scalar and leaks them through timing.
package ecc

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/numerics"
)

// Params are the domain parameters of a curve.
type Params struct {
	P      *big.Int // prime field modulus
	A, B   *big.Int // curve coefficients
	Gx, Gy *big.Int // generator
	N      *big.Int // order of the generator
	H      int      // cofactor
	Length int      // bit length used when sampling scalars
}

// Curve holds immutable domain parameters. Accessors return copies.
type Curve struct {
	name  CurveName
	named bool

	p, a, b *big.Int
	gx, gy  *big.Int
	n       *big.Int
	h       int
	length  int
}

// NewCustomCurve builds a curve from explicit parameters. The caller is
// responsible for the parameters being sound: nothing checks that G is on
// the curve or that N is its order. Call Validate for that. Only the shape
// of the parameters is checked here.
func NewCustomCurve(params Params) (*Curve, error) {
	for _, v := range []struct {
		name  string
		value *big.Int
	}{
		{"P", params.P}, {"A", params.A}, {"B", params.B},
		{"Gx", params.Gx}, {"Gy", params.Gy}, {"N", params.N},
	} {
		if v.value == nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "curve parameter %s is missing", v.name)
		}
	}
	if params.P.Sign() <= 0 || params.N.Sign() <= 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "curve parameters P and N must be positive")
	}
	if params.H < 1 || params.Length < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "cofactor %d and length %d must be positive", params.H, params.Length)
	}

	return newCurve(0, false, params), nil
}

func newCurve(name CurveName, named bool, params Params) *Curve {
	return &Curve{
		name:   name,
		named:  named,
		p:      new(big.Int).Set(params.P),
		a:      numerics.Modulus(params.A, params.P),
		b:      numerics.Modulus(params.B, params.P),
		gx:     new(big.Int).Set(params.Gx),
		gy:     new(big.Int).Set(params.Gy),
		n:      new(big.Int).Set(params.N),
		h:      params.H,
		length: params.Length,
	}
}

// Name reports the catalog name of the curve; ok is false for custom
// curves.
func (c *Curve) Name() (name CurveName, ok bool) {
	return c.name, c.named
}

func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }
func (c *Curve) N() *big.Int { return new(big.Int).Set(c.n) }
func (c *Curve) H() int      { return c.h }
func (c *Curve) Length() int { return c.length }

// G returns the generator.
func (c *Curve) G() Point {
	return Point{x: c.gx, y: c.gy, curve: c}
}

// Params returns a copy of the domain parameters.
func (c *Curve) Params() Params {
	return Params{
		P:      c.P(),
		A:      c.A(),
		B:      c.B(),
		Gx:     new(big.Int).Set(c.gx),
		Gy:     new(big.Int).Set(c.gy),
		N:      c.N(),
		H:      c.h,
		Length: c.length,
	}
}

func (c *Curve) String() string {
	if c.named {
		return c.name.String()
	}
	return fmt.Sprintf("custom curve over %d-bit field", c.p.BitLen())
}

// Equal reports whether c and other have the same P, A, B, G, N and H.
// Names and the sampling length are not compared.
func (c *Curve) Equal(other *Curve) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.p.Cmp(other.p) == 0 &&
		c.a.Cmp(other.a) == 0 &&
		c.b.Cmp(other.b) == 0 &&
		c.gx.Cmp(other.gx) == 0 &&
		c.gy.Cmp(other.gy) == 0 &&
		c.n.Cmp(other.n) == 0 &&
		c.h == other.h
}

// IsOnCurve reports whether point satisfies the equation of c. The point at
// infinity is always on the curve.
func (c *Curve) IsOnCurve(point Point) bool {
	x, y, ok := point.Coordinates()
	if !ok {
		return true
	}

	// y² - x³ - a·x - b
	v := new(big.Int).Mul(y, y)
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	v.Sub(v, x3)
	v.Sub(v, new(big.Int).Mul(c.a, x))
	v.Sub(v, c.b)

	return numerics.Modulus(v, c.p).Sign() == 0
}

// CheckPoint returns err if point is not on c, and nil otherwise.
func (c *Curve) CheckPoint(point Point, err error) error {
	if !c.IsOnCurve(point) {
		return err
	}
	return nil
}

// Validate runs the domain-parameter checks that NewCustomCurve skips: P is
// a prime above 3, the curve is non-singular, G is on the curve, N is prime
// and G has order N. Primality is tested with Miller-Rabin using random.
func (c *Curve) Validate(random io.Reader) error {
	if c.p.Cmp(big.NewInt(3)) <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: field modulus must be above 3", c)
	}

	prime, err := numerics.IsProbablyPrime(random, c.p, numerics.DefaultWitnesses)
	if err != nil {
		return err
	}
	if !prime {
		return errors.Wrapf(ErrInvalidArgument, "%s: field modulus is not prime", c)
	}

	// 4a³ + 27b² ≠ 0 (mod p)
	disc := new(big.Int).Exp(c.a, big.NewInt(3), c.p)
	disc.Mul(disc, big.NewInt(4))
	b2 := new(big.Int).Mul(c.b, c.b)
	disc.Add(disc, b2.Mul(b2, big.NewInt(27)))
	if numerics.Modulus(disc, c.p).Sign() == 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: curve is singular", c)
	}

	g := c.G()
	if err := c.CheckPoint(g, ErrInvalidPoint); err != nil {
		return errors.Wrapf(err, "%s: generator", c)
	}

	if c.n.Cmp(big.NewInt(2)) < 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: order must be at least 2", c)
	}
	prime, err = numerics.IsProbablyPrime(random, c.n, numerics.DefaultWitnesses)
	if err != nil {
		return err
	}
	if !prime {
		return errors.Wrapf(ErrInvalidArgument, "%s: order is not prime", c)
	}

	// Multiply short-circuits multiples of N, so check (N-1)·G = -G instead
	// of N·G = O.
	nMinusOne := new(big.Int).Sub(c.n, big.NewInt(1))
	lhs, err := g.Multiply(nMinusOne)
	if err != nil {
		return err
	}
	rhs, err := g.Negate()
	if err != nil {
		return err
	}
	if !lhs.Equal(rhs) {
		return errors.Wrapf(ErrInvalidArgument, "%s: generator does not have order N", c)
	}

	return nil
}
