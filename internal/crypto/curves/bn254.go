package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254 is the G1 group of gnark-crypto's BN254 implementation.
type BN254 struct{}

// NewBN254 returns the gnark-crypto BN254 G1 backend.
func NewBN254() Backend {
	return &BN254{}
}

func (c *BN254) Name() string {
	return "gnark-crypto/bn254"
}

func (c *BN254) Params() *elliptic.CurveParams {
	_, _, g1, _ := bn254.Generators()
	return &elliptic.CurveParams{
		P:       fp.Modulus(),
		N:       fr.Modulus(),
		B:       big.NewInt(3),
		Gx:      g1.X.BigInt(new(big.Int)),
		Gy:      g1.Y.BigInt(new(big.Int)),
		BitSize: fp.Bits,
		Name:    "bn254",
	}
}

func (c *BN254) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	var p bn254.G1Affine
	p.ScalarMultiplicationBase(new(big.Int).Mod(k, fr.Modulus()))
	return fromAffine(&p)
}

func (c *BN254) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int) {
	var p bn254.G1Affine
	p.ScalarMultiplication(toAffine(Px, Py), new(big.Int).Mod(k, fr.Modulus()))
	return fromAffine(&p)
}

func (c *BN254) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	var p bn254.G1Affine
	p.Add(toAffine(x1, y1), toAffine(x2, y2))
	return fromAffine(&p)
}

func toAffine(x, y *big.Int) *bn254.G1Affine {
	var p bn254.G1Affine
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	return &p
}

func fromAffine(p *bn254.G1Affine) (*big.Int, *big.Int) {
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int))
}
