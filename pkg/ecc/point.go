package ecc

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/numerics"
)

var three = big.NewInt(3)

// Point is either the point at infinity or an affine point bound to a
// curve. The zero value is the point at infinity.
//
// Points are immutable: every operation returns a new Point, and
// coordinates are copied on the way in and out.
type Point struct {
	x, y  *big.Int
	curve *Curve
}

// Infinity returns the point at infinity, the identity of every curve
// group. It carries no curve.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y) on curve. Coordinates must lie
// in [0, P) and satisfy the curve equation.
func NewPoint(x, y *big.Int, curve *Curve) (Point, error) {
	if x == nil || y == nil || curve == nil {
		return Point{}, errors.Wrap(ErrInvalidArgument, "point needs both coordinates and a curve")
	}
	if x.Sign() < 0 || x.Cmp(curve.p) >= 0 || y.Sign() < 0 || y.Cmp(curve.p) >= 0 {
		return Point{}, errors.Wrapf(ErrInvalidPoint, "coordinates out of range for %s", curve)
	}

	p := Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y), curve: curve}
	if err := curve.CheckPoint(p, ErrInvalidPoint); err != nil {
		return Point{}, errors.Wrapf(err, "(%s, %s) on %s", x.Text(16), y.Text(16), curve)
	}
	return p, nil
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.curve == nil
}

// Coordinates returns copies of the affine coordinates of p. ok is false
// for the point at infinity, which has none.
func (p Point) Coordinates() (x, y *big.Int, ok bool) {
	if p.IsInfinity() {
		return nil, nil, false
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y), true
}

// Curve returns the curve p lies on, or nil for the point at infinity.
func (p Point) Curve() *Curve {
	return p.curve
}

// Equal reports whether p and q are both the point at infinity, or have the
// same coordinates on curves with equal parameters.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0 && p.curve.Equal(q.curve)
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Text(16), p.y.Text(16))
}

// check validates p against its own curve.
func (p Point) check() error {
	if p.IsInfinity() {
		return nil
	}
	if err := p.curve.CheckPoint(p, ErrInvalidPoint); err != nil {
		return errors.Wrapf(err, "%s on %s", p, p.curve)
	}
	return nil
}

// Add returns p + q.
func (p Point) Add(q Point) (Point, error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	if !p.curve.Equal(q.curve) {
		return Point{}, errors.Wrapf(ErrCurvesMismatch, "%s and %s", p.curve, q.curve)
	}
	curve := p.curve

	if err := p.check(); err != nil {
		return Point{}, err
	}
	if err := q.check(); err != nil {
		return Point{}, err
	}

	var slope *big.Int
	if p.x.Cmp(q.x) == 0 {
		// q = -p, or p = q with y = 0 where the tangent is vertical.
		if p.y.Cmp(q.y) != 0 || p.y.Sign() == 0 {
			return Infinity(), nil
		}

		// (3x² + a) / 2y
		inverse, err := numerics.ModularInverse(new(big.Int).Lsh(p.y, 1), curve.p)
		if err != nil {
			return Point{}, errors.Wrapf(err, "doubling %s", p)
		}
		slope = new(big.Int).Mul(p.x, p.x)
		slope.Mul(slope, three)
		slope.Add(slope, curve.a)
		slope.Mul(slope, inverse)
	} else {
		// (y1 - y2) / (x1 - x2)
		inverse, err := numerics.ModularInverse(new(big.Int).Sub(p.x, q.x), curve.p)
		if err != nil {
			return Point{}, errors.Wrapf(err, "adding %s and %s", p, q)
		}
		slope = new(big.Int).Sub(p.y, q.y)
		slope.Mul(slope, inverse)
	}
	slope.Mod(slope, curve.p)

	// x3 = slope² - x1 - x2
	newX := new(big.Int).Mul(slope, slope)
	newX.Sub(newX, p.x)
	newX.Sub(newX, q.x)

	// y3 = -(y1 + slope·(x3 - x1))
	newY := new(big.Int).Sub(newX, p.x)
	newY.Mul(newY, slope)
	newY.Add(newY, p.y)
	newY.Neg(newY)

	return Point{
		x:     newX.Mod(newX, curve.p),
		y:     newY.Mod(newY, curve.p),
		curve: curve,
	}, nil
}

// Double returns p + p.
func (p Point) Double() (Point, error) {
	return p.Add(p)
}

// Negate returns -p. The point at infinity is its own negation.
func (p Point) Negate() (Point, error) {
	if err := p.check(); err != nil {
		return Point{}, err
	}
	if p.IsInfinity() {
		return p, nil
	}

	result := Point{
		x:     p.x,
		y:     numerics.Modulus(new(big.Int).Neg(p.y), p.curve.p),
		curve: p.curve,
	}
	if err := result.check(); err != nil {
		return Point{}, err
	}
	return result, nil
}

// Subtract returns p - q.
func (p Point) Subtract(q Point) (Point, error) {
	negated, err := q.Negate()
	if err != nil {
		return Point{}, err
	}
	return p.Add(negated)
}

// Multiply returns scalar·p using binary double-and-add. Negative scalars
// multiply the negated point. Multiples of the curve order yield the point
// at infinity without any work.
//
// The loop branches on the bits of scalar, so its running time depends on
// the scalar. Do not rely on it to keep private scalars secret from an
// attacker who can time it.
func (p Point) Multiply(scalar *big.Int) (Point, error) {
	if p.IsInfinity() {
		return p, nil
	}
	if numerics.Modulus(scalar, p.curve.n).Sign() == 0 {
		return Infinity(), nil
	}
	if err := p.check(); err != nil {
		return Point{}, err
	}

	if scalar.Sign() < 0 {
		negated, err := p.Negate()
		if err != nil {
			return Point{}, err
		}
		return negated.Multiply(new(big.Int).Neg(scalar))
	}

	result := Infinity()
	addend := p
	k := new(big.Int).Set(scalar)

	var err error
	for k.Sign() != 0 {
		if k.Bit(0) == 1 {
			result, err = result.Add(addend)
			if err != nil {
				return Point{}, err
			}
		}

		addend, err = addend.Double()
		if err != nil {
			return Point{}, err
		}

		k.Rsh(k, 1)
	}

	if err := p.curve.CheckPoint(result, ErrInvalidPoint); err != nil {
		return Point{}, errors.Wrapf(err, "result of multiplying %s", p)
	}
	return result, nil
}

// Sum adds points left to right. It needs at least two points.
func Sum(points ...Point) (Point, error) {
	if len(points) < 2 {
		return Point{}, errors.Wrapf(ErrInvalidArgument, "sum needs at least 2 points, got %d", len(points))
	}

	result := points[0]
	for _, point := range points[1:] {
		var err error
		result, err = result.Add(point)
		if err != nil {
			return Point{}, err
		}
	}
	return result, nil
}
