package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultPatternFile = "testdata/pattern-v1.txt"
	defaultVersion      = "v1"
	defaultDebugLevel   = "info"
)

// config holds the parsed command-line configuration for the pattern-file
// driver. It is parsed once at process start and never mutated afterward.
type config struct {
	PatternFile string `short:"f" long:"patternfile" description:"path to a pattern-v1.txt-shaped test vector file" default:"testdata/pattern-v1.txt"`
	Version     string `short:"V" long:"version" description:"PoW kernel version to use: v1 or v2" default:"v1"`
	Quiet       bool   `short:"q" long:"quiet" description:"suppress the (work, timestamp, nonce) dump for each record"`
	DebugLevel  string `long:"debuglevel" description:"logging level: trace, debug, info, warn, error, critical, off" default:"info"`
}

func loadConfig() (*config, error) {
	cfg := config{
		PatternFile: defaultPatternFile,
		Version:     defaultVersion,
		DebugLevel:  defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, errors.Wrap(err, "parsing command-line flags")
	}

	return &cfg, nil
}
