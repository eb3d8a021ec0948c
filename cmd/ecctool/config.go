package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	curvesSubCmd   = "curves"
	keygenSubCmd   = "keygen"
	agreeSubCmd    = "agree"
	verifySubCmd   = "verify"
	selftestSubCmd = "selftest"
)

type configFlags struct{}

type curvesConfig struct {
	Verbose bool `long:"verbose" short:"v" description:"Dump the domain parameters of every curve"`
}

type keygenConfig struct {
	Curve string `long:"curve" short:"c" description:"Catalog name of the curve (see the curves sub-command)" required:"true"`
	Prove bool   `long:"prove" short:"p" description:"Also print a Schnorr proof of possession of the private key"`
}

type agreeConfig struct {
	Curve      string `long:"curve" short:"c" description:"Catalog name of the curve" required:"true"`
	PrivateKey string `long:"private" short:"k" description:"Our private key (encoded in hex)" required:"true"`
	PublicX    string `long:"public-x" short:"x" description:"X coordinate of the peer's public key (encoded in hex)" required:"true"`
	PublicY    string `long:"public-y" short:"y" description:"Y coordinate of the peer's public key (encoded in hex)" required:"true"`
	KDFSize    int    `long:"kdf-size" description:"Also derive a key of this many bytes with HKDF-SHA256"`
	KDFInfo    string `long:"kdf-info" description:"Context string mixed into the derived key"`
}

type verifyConfig struct {
	Curve  string `long:"curve" short:"c" description:"Catalog name of the curve" required:"true"`
	Rounds int    `long:"rounds" short:"r" description:"Number of random scalars to check" default:"16"`
}

type selftestConfig struct {
	Curves []string `long:"curve" short:"c" description:"Curve to test, can be repeated (default: every curve)"`
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	curvesConf := &curvesConfig{}
	parser.AddCommand(curvesSubCmd, "Lists the curve catalog",
		"Lists the names of every curve in the catalog, optionally with their domain parameters", curvesConf)

	keygenConf := &keygenConfig{}
	parser.AddCommand(keygenSubCmd, "Generates a key pair",
		"Generates a private key and its public point on the given curve", keygenConf)

	agreeConf := &agreeConfig{}
	parser.AddCommand(agreeSubCmd, "Computes an ECDH shared secret",
		"Computes the shared point for a private key and a peer's public key, optionally deriving a symmetric key from it", agreeConf)

	verifyConf := &verifyConfig{}
	parser.AddCommand(verifySubCmd, "Cross-checks a curve against a reference implementation",
		"Compares scalar multiplication and addition on the given curve with an independent implementation", verifyConf)

	selftestConf := &selftestConfig{}
	parser.AddCommand(selftestSubCmd, "Runs a timed key agreement on each curve",
		"Generates two key pairs, checks their proofs of possession, agrees on a secret and reports pass or fail with timings", selftestConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	switch parser.Command.Active.Name {
	case curvesSubCmd:
		config = curvesConf
	case keygenSubCmd:
		config = keygenConf
	case agreeSubCmd:
		config = agreeConf
	case verifySubCmd:
		if verifyConf.Rounds < 1 {
			printErrorAndExit(errors.Errorf("--rounds must be positive, got %d", verifyConf.Rounds))
		}
		config = verifyConf
	case selftestSubCmd:
		config = selftestConf
	}

	return parser.Command.Active.Name, config
}
