package main

import (
	"crypto/rand"
	"fmt"

	"github.com/smallyu/go-ecc/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-ecc/pkg/ecdh"
)

func keygen(conf *keygenConfig) error {
	curve, err := curveByName(conf.Curve)
	if err != nil {
		return err
	}

	keyPair, err := ecdh.GenerateKeyPair(rand.Reader, curve)
	if err != nil {
		return err
	}

	fmt.Printf("Curve: %s\n", curve)
	fmt.Printf("Private key: %s\n", keyPair.PrivateKey.Text(16))
	printPoint("Public key", keyPair.PublicKey)

	if conf.Prove {
		proof, err := schnorr.Prove(rand.Reader, keyPair.PrivateKey, keyPair.PublicKey)
		if err != nil {
			return err
		}
		printPoint("Proof R", proof.R)
		fmt.Printf("Proof S: %s\n", proof.S.Text(16))
	}
	return nil
}
