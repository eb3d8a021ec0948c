//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/pkg/ecc"
	"github.com/smallyu/go-ecc/pkg/ecdh"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"curves":       js.FuncOf(Curves),
		"keyPair":      js.FuncOf(KeyPair),
		"sharedSecret": js.FuncOf(SharedSecret),
	})

	<-c
}

type pointJSON struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Infinity bool   `json:"infinity,omitempty"`
}

func encodePoint(p ecc.Point) pointJSON {
	x, y, ok := p.Coordinates()
	if !ok {
		return pointJSON{Infinity: true}
	}
	return pointJSON{X: x.Text(16), Y: y.Text(16)}
}

// Curves lists the catalog names.
// Returns:
// JSON array of strings
func Curves(this js.Value, args []js.Value) interface{} {
	names := make([]string, 0)
	for _, name := range ecc.CurveNames() {
		names = append(names, name.String())
	}

	respBytes, _ := json.Marshal(names)
	return string(respBytes)
}

// KeyPair generates a key pair.
// Arguments:
// 0: curve name (string)
// Returns:
// JSON object { privateKey, publicKey: { x, y } }
func KeyPair(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curveName)"
	}

	curve, err := curveArg(args[0])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	keyPair, err := ecdh.GenerateKeyPair(rand.Reader, curve)
	if err != nil {
		return fmt.Sprintf("error: key generation failed: %v", err)
	}

	resp := map[string]interface{}{
		"curve":      curve.String(),
		"privateKey": keyPair.PrivateKey.Text(16),
		"publicKey":  encodePoint(keyPair.PublicKey),
	}

	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// SharedSecret computes the ECDH shared point.
// Arguments:
// 0: curve name (string)
// 1: private key (hex)
// 2: peer public X (hex)
// 3: peer public Y (hex)
// Returns:
// JSON object { x, y } or { infinity: true }
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curveName, privateKey, publicX, publicY)"
	}

	curve, err := curveArg(args[0])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	values := make([]*big.Int, 3)
	for i, arg := range args[1:] {
		v, ok := new(big.Int).SetString(arg.String(), 16)
		if !ok {
			return fmt.Sprintf("error: argument %d is not hex", i+1)
		}
		values[i] = v
	}

	publicKey, err := ecc.NewPoint(values[1], values[2], curve)
	if err != nil {
		return fmt.Sprintf("error: invalid public key: %v", err)
	}

	secret, err := ecdh.SharedSecret(values[0], publicKey)
	if err != nil {
		return fmt.Sprintf("error: agreement failed: %v", err)
	}

	respBytes, _ := json.Marshal(encodePoint(secret))
	return string(respBytes)
}

func curveArg(arg js.Value) (*ecc.Curve, error) {
	name, err := ecc.ParseCurveName(arg.String())
	if err != nil {
		return nil, err
	}
	return ecc.NewCurve(name)
}
