package curves

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/numerics"
)

// ErrMismatch is returned when the generic arithmetic and a backend
// disagree.
var ErrMismatch = errors.New("curves: backend mismatch")

// CompareParams checks that backend works over the same field, equation,
// generator and order as curve. Parameters the backend leaves nil are
// skipped: A is not part of elliptic.CurveParams at all, and the brainpool
// curves do not publish B. CrossCheck covers those through the points the
// backend returns.
func CompareParams(curve *ecc.Curve, backend Backend) error {
	params := backend.Params()
	gx, gy, _ := curve.G().Coordinates()

	for _, v := range []struct {
		name         string
		ours, theirs *big.Int
	}{
		{"P", curve.P(), params.P},
		{"B", curve.B(), params.B},
		{"N", curve.N(), params.N},
		{"Gx", gx, params.Gx},
		{"Gy", gy, params.Gy},
	} {
		if v.theirs == nil {
			continue
		}
		if v.ours.Cmp(v.theirs) != 0 {
			return errors.Wrapf(ErrMismatch, "%s: parameter %s is %s, %s has %s",
				curve, v.name, v.ours.Text(16), backend.Name(), v.theirs.Text(16))
		}
	}
	return nil
}

// CrossCheck draws rounds random scalars k and compares k·G, G + k·G and
// k·(k·G) between the generic arithmetic on curve and backend. The first
// disagreement is returned as an ErrMismatch naming the scalar.
func CrossCheck(random io.Reader, curve *ecc.Curve, backend Backend, rounds int) error {
	if rounds < 1 {
		return errors.Wrapf(ecc.ErrInvalidArgument, "rounds %d", rounds)
	}
	if err := CompareParams(curve, backend); err != nil {
		return err
	}

	g := curve.G()
	gx, gy, _ := g.Coordinates()

	for i := 0; i < rounds; i++ {
		k, err := numerics.RandomBits(random, curve.Length())
		if err != nil {
			return errors.Wrapf(err, "round %d", i)
		}
		k.Mod(k, curve.N())
		if k.Sign() == 0 {
			k.SetInt64(1)
		}

		kG, err := g.Multiply(k)
		if err != nil {
			return errors.Wrapf(err, "k = %s", k.Text(16))
		}
		x, y := backend.ScalarBaseMult(k)
		if err := compare(curve, backend, "k·G", k, kG, x, y); err != nil {
			return err
		}

		sum, err := g.Add(kG)
		if err != nil {
			return errors.Wrapf(err, "k = %s", k.Text(16))
		}
		x, y = backend.Add(gx, gy, x, y)
		if err := compare(curve, backend, "G + k·G", k, sum, x, y); err != nil {
			return err
		}

		if kG.IsInfinity() {
			continue
		}
		kkG, err := kG.Multiply(k)
		if err != nil {
			return errors.Wrapf(err, "k = %s", k.Text(16))
		}
		px, py, _ := kG.Coordinates()
		x, y = backend.ScalarMult(px, py, k)
		if err := compare(curve, backend, "k·(k·G)", k, kkG, x, y); err != nil {
			return err
		}
	}
	return nil
}

func compare(curve *ecc.Curve, backend Backend, what string, k *big.Int, ours ecc.Point, x, y *big.Int) error {
	theirs, err := FromAffine(curve, x, y)
	if err != nil {
		return errors.Wrapf(ErrMismatch, "%s on %s for k = %s: %s returned a point off the curve",
			what, curve, k.Text(16), backend.Name())
	}
	if !ours.Equal(theirs) {
		return errors.Wrapf(ErrMismatch, "%s on %s for k = %s: got %s, %s has %s",
			what, curve, k.Text(16), ours, backend.Name(), theirs)
	}
	return nil
}

// FromAffine converts backend coordinates into a point on curve, mapping
// (0, 0) to the point at infinity.
func FromAffine(curve *ecc.Curve, x, y *big.Int) (ecc.Point, error) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return ecc.Infinity(), nil
	}
	return ecc.NewPoint(x, y, curve)
}
