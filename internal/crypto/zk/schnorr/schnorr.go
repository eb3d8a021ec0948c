package schnorr

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/numerics"
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G on X's curve.
type Proof struct {
	R ecc.Point // Commitment R = k * G
	S *big.Int  // Response s = k + e * x
}

// Prove generates a Schnorr proof for the secret x, public key X = x*G.
// The nonce is drawn from random.
func Prove(random io.Reader, x *big.Int, X ecc.Point) (*Proof, error) {
	if random == nil || x == nil {
		return nil, errors.Wrap(ecc.ErrInvalidArgument, "schnorr: inputs cannot be nil")
	}
	if X.IsInfinity() {
		return nil, errors.Wrap(ecc.ErrInvalidPoint, "schnorr: public key is the point at infinity")
	}

	curve := X.Curve()
	n := curve.N()

	// 1. Generate random nonce k in [1, n)
	k, err := nonce(random, curve)
	if err != nil {
		return nil, err
	}

	// 2. Compute R = k * G
	R, err := curve.G().Multiply(k)
	if err != nil {
		return nil, errors.Wrap(err, "schnorr: commitment")
	}

	// 3. Compute challenge e = H(X, R)
	e := challenge(curve, X, R)

	// 4. Compute s = k + e * x mod n
	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, n)

	return &Proof{
		R: R,
		S: s,
	}, nil
}

// Verify checks the validity of the Schnorr proof for public key X.
func (p *Proof) Verify(X ecc.Point) bool {
	if p == nil || p.S == nil || X.IsInfinity() || p.R.IsInfinity() {
		return false
	}

	curve := X.Curve()
	if !curve.Equal(p.R.Curve()) {
		return false
	}

	// Check if s is in [0, n-1]
	if p.S.Sign() < 0 || p.S.Cmp(curve.N()) >= 0 {
		return false
	}

	// 1. Compute challenge e = H(X, R)
	e := challenge(curve, X, p.R)

	// 2. Check s*G = R + e*X
	lhs, err := curve.G().Multiply(p.S)
	if err != nil {
		return false
	}
	eX, err := X.Multiply(e)
	if err != nil {
		return false
	}
	rhs, err := p.R.Add(eX)
	if err != nil {
		return false
	}

	return lhs.Equal(rhs)
}

// challenge computes H(P, X, R) mod n. Coordinates are left-padded to the
// byte length of the field modulus.
func challenge(curve *ecc.Curve, X, R ecc.Point) *big.Int {
	p := curve.P()
	size := (p.BitLen() + 7) / 8

	h := sha256.New()
	h.Write(p.Bytes())
	for _, point := range []ecc.Point{X, R} {
		x, y, _ := point.Coordinates()
		h.Write(x.FillBytes(make([]byte, size)))
		h.Write(y.FillBytes(make([]byte, size)))
	}

	e := new(big.Int).SetBytes(h.Sum(nil))
	return e.Mod(e, curve.N())
}

// nonce draws a scalar in [1, n).
func nonce(random io.Reader, curve *ecc.Curve) (*big.Int, error) {
	n := curve.N()
	for {
		k, err := numerics.RandomBits(random, curve.Length())
		if err != nil {
			return nil, errors.Wrap(err, "schnorr: nonce")
		}
		if k.Mod(k, n).Sign() != 0 {
			return k, nil
		}
	}
}
