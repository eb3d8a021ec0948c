package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func listCurves(conf *curvesConfig) error {
	for _, name := range ecc.CurveNames() {
		curve, err := ecc.NewCurve(name)
		if err != nil {
			return err
		}

		reference := ""
		if backend, ok := curves.ForCurve(name); ok {
			reference = " (reference: " + backend.Name() + ")"
		}
		fmt.Printf("%s%s\n", name, reference)

		if conf.Verbose {
			dumper.Dump(curve.Params())
		}
	}
	return nil
}
