package ecdh

import (
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// DeriveKey turns a shared point into size bytes of key material with
// HKDF-SHA256. The input keying material is the X coordinate of secret,
// left-padded to the byte length of the field modulus.
func DeriveKey(secret ecc.Point, salt, info []byte, size int) ([]byte, error) {
	if size < 1 {
		return nil, errors.Wrapf(ecc.ErrInvalidArgument, "key size %d", size)
	}

	x, _, ok := secret.Coordinates()
	if !ok {
		return nil, errors.Wrap(ecc.ErrInvalidPoint, "shared secret is the point at infinity")
	}

	ikm := x.FillBytes(make([]byte, (secret.Curve().P().BitLen()+7)/8))

	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, salt, info), key); err != nil {
		return nil, errors.Wrapf(err, "deriving %d-byte key", size)
	}
	return key, nil
}
