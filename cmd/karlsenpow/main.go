// Command karlsenpow is the pattern-file driver of spec.md §6: it reads a
// testdata/pattern-v1.txt-shaped file, drives the pow package's State for
// each record, and prints a hex dump of the PoW hash followed by a
// "result true"/"result false" line. It contains no consensus logic of its
// own; all hashing happens in github.com/karlsen-network/karlsend/domain/consensus/utils/pow.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/karlsen-network/karlsend/domain/consensus/utils/pow"
	"github.com/karlsen-network/karlsend/internal/plog"
)

// defaultBatchTarget is the default target for batch verification from
// spec.md §6: only the top limb is constrained.
var defaultBatchTarget = pow.NewUint256([4]uint64{
	0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x0FFFFFFF,
})

var log = plog.Subsystem("CMD", plog.ParseLevel("info"))

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log = plog.Subsystem("CMD", plog.ParseLevel(cfg.DebugLevel))
	pow.UseLogger(plog.Subsystem("POW", plog.ParseLevel(cfg.DebugLevel)))

	version, err := parseVersion(cfg.Version)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if err := run(cfg, version); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func parseVersion(name string) (pow.BlockVersion, error) {
	switch strings.ToLower(name) {
	case "v1", "1":
		return pow.V1, nil
	case "v2", "2":
		return pow.V2, nil
	default:
		return 0, errors.Errorf("unrecognized version %q (want v1 or v2)", name)
	}
}

func run(cfg *config, version pow.BlockVersion) error {
	f, err := os.Open(cfg.PatternFile)
	if err != nil {
		return errors.Wrapf(err, "open %s", cfg.PatternFile)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := parsePatternLine(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNum)
		}

		if !cfg.Quiet {
			log.Debugf("line %d: work=%v timestamp=%d nonce=%#x", lineNum, record.work, record.timestamp, record.nonce)
		}

		seed := pow.BlockSeed{
			HeaderHash: pow.NewUint256(record.work),
			Timestamp:  record.timestamp,
			Nonce:      record.nonce,
			Target:     defaultBatchTarget,
		}

		s, err := pow.NewState(version, seed)
		if err != nil {
			return errors.Wrapf(err, "line %d: building state", lineNum)
		}

		hash := s.CalculatePow(record.nonce)
		hashBytes := hash.ToLEBytes()
		fmt.Println(hex.EncodeToString(hashBytes[:]))
		fmt.Printf("result %t\n", s.CheckPow(record.nonce))
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading pattern file")
	}
	return nil
}

// patternRecord is one decoded line of the pattern file of spec.md §6.
type patternRecord struct {
	work      [4]uint64
	timestamp uint64
	nonce     uint64
}

func parsePatternLine(line string) (patternRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return patternRecord{}, errors.Errorf("expected 6 comma-separated fields, got %d", len(fields))
	}

	var record patternRecord
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(fields[i]), 10, 64)
		if err != nil {
			return patternRecord{}, errors.Wrapf(err, "work limb %d", i)
		}
		record.work[i] = v
	}

	timestamp, err := strconv.ParseUint(strings.TrimSpace(fields[4]), 10, 64)
	if err != nil {
		return patternRecord{}, errors.Wrap(err, "timestamp")
	}
	record.timestamp = timestamp

	nonceField := strings.TrimSpace(fields[5])
	if !strings.HasPrefix(nonceField, "0x") {
		return patternRecord{}, errors.Errorf("nonce field %q missing 0x prefix", nonceField)
	}
	nonce, err := strconv.ParseUint(nonceField[2:], 16, 64)
	if err != nil {
		return patternRecord{}, errors.Wrap(err, "nonce")
	}
	record.nonce = nonce

	return record, nil
}
