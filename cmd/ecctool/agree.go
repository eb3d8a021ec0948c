package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/ecdh"
)

func agree(conf *agreeConfig) error {
	curve, err := curveByName(conf.Curve)
	if err != nil {
		return err
	}

	privateKey, err := parseHex("private key", conf.PrivateKey)
	if err != nil {
		return err
	}
	x, err := parseHex("public X", conf.PublicX)
	if err != nil {
		return err
	}
	y, err := parseHex("public Y", conf.PublicY)
	if err != nil {
		return err
	}

	publicKey, err := ecc.NewPoint(x, y, curve)
	if err != nil {
		return errors.Wrap(err, "peer public key")
	}

	secret, err := ecdh.SharedSecret(privateKey, publicKey)
	if err != nil {
		return err
	}
	printPoint("Shared secret", secret)

	if conf.KDFSize > 0 {
		key, err := ecdh.DeriveKey(secret, nil, []byte(conf.KDFInfo), conf.KDFSize)
		if err != nil {
			return err
		}
		fmt.Printf("Derived key: %s\n", hex.EncodeToString(key))
	}
	return nil
}
