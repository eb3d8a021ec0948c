package main

import (
	"crypto/rand"
	"fmt"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

func verify(conf *verifyConfig) error {
	curve, err := curveByName(conf.Curve)
	if err != nil {
		return err
	}

	name, _ := curve.Name()
	backend, ok := curves.ForCurve(name)
	if !ok {
		return errors.Errorf("no reference implementation for %s", curve)
	}

	if err := curve.Validate(rand.Reader); err != nil {
		return err
	}
	if err := curves.CrossCheck(rand.Reader, curve, backend, conf.Rounds); err != nil {
		return err
	}

	fmt.Printf("%s matches %s over %d rounds\n", curve, backend.Name(), conf.Rounds)
	return nil
}
