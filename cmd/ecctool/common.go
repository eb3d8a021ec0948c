package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func curveByName(name string) (*ecc.Curve, error) {
	curveName, err := ecc.ParseCurveName(name)
	if err != nil {
		return nil, err
	}
	return ecc.NewCurve(curveName)
}

func parseHex(what, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errors.Errorf("%s is not a hex number: %q", what, s)
	}
	return v, nil
}

func printPoint(label string, p ecc.Point) {
	x, y, ok := p.Coordinates()
	if !ok {
		fmt.Printf("%s: infinity\n", label)
		return
	}
	fmt.Printf("%s X: %s\n", label, x.Text(16))
	fmt.Printf("%s Y: %s\n", label, y.Text(16))
}
