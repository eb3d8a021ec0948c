package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/ecdh"
)

func selftest(conf *selftestConfig) error {
	names := ecc.CurveNames()
	if len(conf.Curves) > 0 {
		names = nil
		for _, s := range conf.Curves {
			name, err := ecc.ParseCurveName(s)
			if err != nil {
				return err
			}
			names = append(names, name)
		}
	}

	failed := 0
	for _, name := range names {
		curve, err := ecc.NewCurve(name)
		if err != nil {
			return err
		}

		start := time.Now()
		err = agreeOnce(curve)
		elapsed := time.Since(start)

		if err != nil {
			failed++
			fmt.Printf("%-16s FAIL %10s  %s\n", name, elapsed.Round(time.Microsecond), err)
			continue
		}
		fmt.Printf("%-16s PASS %10s\n", name, elapsed.Round(time.Microsecond))
	}

	if failed > 0 {
		return errors.Errorf("%d of %d curves failed", failed, len(names))
	}
	return nil
}

// agreeOnce runs a full two-party exchange on curve. Each party proves
// possession of its private key before the secrets are computed.
func agreeOnce(curve *ecc.Curve) error {
	alice, err := ecdh.GenerateKeyPair(rand.Reader, curve)
	if err != nil {
		return err
	}
	bob, err := ecdh.GenerateKeyPair(rand.Reader, curve)
	if err != nil {
		return err
	}

	for _, party := range []*ecdh.KeyPair{alice, bob} {
		proof, err := schnorr.Prove(rand.Reader, party.PrivateKey, party.PublicKey)
		if err != nil {
			return err
		}
		if !proof.Verify(party.PublicKey) {
			return errors.Errorf("proof of possession rejected for %s", party.PublicKey)
		}
	}

	s1, err := ecdh.SharedSecret(alice.PrivateKey, bob.PublicKey)
	if err != nil {
		return err
	}
	s2, err := ecdh.SharedSecret(bob.PrivateKey, alice.PublicKey)
	if err != nil {
		return err
	}
	if !s1.Equal(s2) {
		return errors.Errorf("shared secrets differ: %s and %s", s1, s2)
	}
	return nil
}
