package main

import "github.com/pkg/errors"

func main() {
	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case curvesSubCmd:
		err = listCurves(config.(*curvesConfig))
	case keygenSubCmd:
		err = keygen(config.(*keygenConfig))
	case agreeSubCmd:
		err = agree(config.(*agreeConfig))
	case verifySubCmd:
		err = verify(config.(*verifyConfig))
	case selftestSubCmd:
		err = selftest(config.(*selftestConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
