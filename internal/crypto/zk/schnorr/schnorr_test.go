package schnorr

import (
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/ecdh"
)

func TestSchnorrProof(t *testing.T) {
	r := mrand.New(mrand.NewSource(3))

	for _, name := range []ecc.CurveName{ecc.Secp256k1, ecc.BrainpoolP160r1, ecc.NISTP384, ecc.BN254} {
		name := name
		t.Run(name.String(), func(t *testing.T) {
			kp, err := ecdh.GenerateKeyPair(r, ecc.MustCurve(name))
			require.NoError(t, err)

			proof, err := Prove(r, kp.PrivateKey, kp.PublicKey)
			require.NoError(t, err)
			assert.True(t, proof.Verify(kp.PublicKey))
		})
	}
}

func TestSchnorrProofInvalid(t *testing.T) {
	r := mrand.New(mrand.NewSource(4))
	curve := ecc.MustCurve(ecc.Secp256k1)

	kp, err := ecdh.GenerateKeyPair(r, curve)
	require.NoError(t, err)
	proof, err := Prove(r, kp.PrivateKey, kp.PublicKey)
	require.NoError(t, err)

	// Case A: Modify s
	tampered := &Proof{R: proof.R, S: new(big.Int).Add(proof.S, big.NewInt(1))}
	assert.False(t, tampered.Verify(kp.PublicKey))

	// Case B: Modify R
	doubled, err := proof.R.Double()
	require.NoError(t, err)
	tampered = &Proof{R: doubled, S: proof.S}
	assert.False(t, tampered.Verify(kp.PublicKey))

	// Case C: Someone else's key
	other, err := ecdh.GenerateKeyPair(r, curve)
	require.NoError(t, err)
	assert.False(t, proof.Verify(other.PublicKey))

	// Case D: s out of range
	tampered = &Proof{R: proof.R, S: curve.N()}
	assert.False(t, tampered.Verify(kp.PublicKey))

	// Case E: R on another curve
	foreign, err := ecdh.GenerateKeyPair(r, ecc.MustCurve(ecc.Secp256r1))
	require.NoError(t, err)
	tampered = &Proof{R: foreign.PublicKey, S: proof.S}
	assert.False(t, tampered.Verify(kp.PublicKey))

	var nilProof *Proof
	assert.False(t, nilProof.Verify(kp.PublicKey))
	assert.False(t, proof.Verify(ecc.Infinity()))
}

func TestProveErrors(t *testing.T) {
	curve := ecc.MustCurve(ecc.Secp192r1)
	r := mrand.New(mrand.NewSource(5))

	_, err := Prove(r, big.NewInt(1), ecc.Infinity())
	assert.True(t, errors.Is(err, ecc.ErrInvalidPoint))

	_, err = Prove(r, nil, curve.G())
	assert.True(t, errors.Is(err, ecc.ErrInvalidArgument))

	boom := errors.New("boom")
	_, err = Prove(iotest.ErrReader(boom), big.NewInt(1), curve.G())
	assert.True(t, errors.Is(err, boom))
}
