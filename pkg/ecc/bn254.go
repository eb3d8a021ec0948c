package ecc

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// bn254Params describes the G1 group of the BN254 pairing curve,
// y² = x³ + 3 over the BN254 base field. The moduli and generator are taken
// from gnark-crypto rather than duplicated as literals.
func bn254Params() Params {
	_, _, g1, _ := bn254.Generators()

	return Params{
		P:      fp.Modulus(),
		A:      big.NewInt(0),
		B:      big.NewInt(3),
		Gx:     g1.X.BigInt(new(big.Int)),
		Gy:     g1.Y.BigInt(new(big.Int)),
		N:      fr.Modulus(),
		H:      1,
		Length: 254,
	}
}
