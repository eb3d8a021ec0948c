// Package curves wraps independent implementations of some catalog curves so
// the generic arithmetic in pkg/ecc can be checked against them.
package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/ProtonMail/go-crypto/brainpool"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Backend is the subset of point operations a reference implementation
// exposes. The point at infinity is (0, 0) on every backend.
type Backend interface {
	// Name identifies the implementation.
	Name() string

	// Params returns the domain parameters the backend uses.
	Params() *elliptic.CurveParams

	// ScalarBaseMult computes k * G
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k * P
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)
}

// ellipticBackend adapts anything that implements elliptic.Curve.
type ellipticBackend struct {
	name  string
	curve elliptic.Curve
}

func (b *ellipticBackend) Name() string {
	return b.name
}

func (b *ellipticBackend) Params() *elliptic.CurveParams {
	return b.curve.Params()
}

// scalar reduces k into [0, N) before it is handed over as bytes, since the
// elliptic.Curve methods take unsigned big-endian scalars.
func (b *ellipticBackend) scalar(k *big.Int) []byte {
	return new(big.Int).Mod(k, b.curve.Params().N).Bytes()
}

func (b *ellipticBackend) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return b.curve.ScalarBaseMult(b.scalar(k))
}

func (b *ellipticBackend) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	return b.curve.ScalarMult(Px, Py, b.scalar(k))
}

func (b *ellipticBackend) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return b.curve.Add(x1, y1, x2, y2)
}

// NewSecp256k1 returns the decred secp256k1 backend.
func NewSecp256k1() Backend {
	return &ellipticBackend{name: "decred/secp256k1", curve: secp256k1.S256()}
}

// NewStdlib returns a crypto/elliptic backend for P-224, P-256, P-384 or
// P-521.
func NewStdlib(curve elliptic.Curve) Backend {
	return &ellipticBackend{name: "crypto/elliptic " + curve.Params().Name, curve: curve}
}

// NewBrainpool returns a ProtonMail brainpool backend for P256r1, P384r1 or
// P512r1.
func NewBrainpool(curve elliptic.Curve) Backend {
	return &ellipticBackend{name: "go-crypto/brainpool " + curve.Params().Name, curve: curve}
}

// ForCurve returns the reference backend for a catalog curve, if there is
// one.
func ForCurve(name ecc.CurveName) (Backend, bool) {
	switch name {
	case ecc.Secp256k1:
		return NewSecp256k1(), true
	case ecc.Secp224r1:
		return NewStdlib(elliptic.P224()), true
	case ecc.Secp256r1, ecc.NISTP256:
		return NewStdlib(elliptic.P256()), true
	case ecc.NISTP384:
		return NewStdlib(elliptic.P384()), true
	case ecc.NISTP521:
		return NewStdlib(elliptic.P521()), true
	case ecc.BrainpoolP256r1:
		return NewBrainpool(brainpool.P256r1()), true
	case ecc.BrainpoolP384r1:
		return NewBrainpool(brainpool.P384r1()), true
	case ecc.BrainpoolP512r1:
		return NewBrainpool(brainpool.P512r1()), true
	case ecc.BN254:
		return NewBN254(), true
	}
	return nil, false
}

// Covered lists the catalog curves ForCurve has a backend for.
func Covered() []ecc.CurveName {
	var names []ecc.CurveName
	for _, name := range ecc.CurveNames() {
		if _, ok := ForCurve(name); ok {
			names = append(names, name)
		}
	}
	return names
}
