// Package ecdh implements elliptic-curve Diffie-Hellman key agreement on top
// of the curves in package ecc.
//
// Key generation and agreement use ecc.Point.Multiply, which is not constant
// time. Keep that in mind before using this package where an attacker can
// measure how long an agreement takes.
package ecdh

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/numerics"
)

// KeyPair is a private scalar in [1, N) and its public point on the curve.
type KeyPair struct {
	PrivateKey *big.Int
	PublicKey  ecc.Point
}

// Curve returns the curve the key pair belongs to.
func (kp *KeyPair) Curve() *ecc.Curve {
	return kp.PublicKey.Curve()
}

// GenerateKeyPair samples a private key from random and derives its public
// point. A sample that reduces to zero modulo N is discarded and drawn
// again.
func GenerateKeyPair(random io.Reader, curve *ecc.Curve) (*KeyPair, error) {
	if random == nil || curve == nil {
		return nil, errors.Wrap(ecc.ErrInvalidArgument, "key generation needs a random source and a curve")
	}

	n := curve.N()
	var private *big.Int
	for {
		sample, err := numerics.RandomBits(random, curve.Length())
		if err != nil {
			return nil, errors.Wrapf(err, "sampling private key on %s", curve)
		}
		private = sample.Mod(sample, n)
		if private.Sign() != 0 {
			break
		}
	}

	public, err := curve.G().Multiply(private)
	if err != nil {
		return nil, errors.Wrapf(err, "deriving public key on %s", curve)
	}

	return &KeyPair{PrivateKey: private, PublicKey: public}, nil
}

// SharedSecret returns privateKey·publicKey. Both parties of an exchange
// arrive at the same point.
func SharedSecret(privateKey *big.Int, publicKey ecc.Point) (ecc.Point, error) {
	if privateKey == nil {
		return ecc.Point{}, errors.Wrap(ecc.ErrInvalidArgument, "missing private key")
	}
	return publicKey.Multiply(privateKey)
}
