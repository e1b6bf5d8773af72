// Command intcode runs intcode programs, either directly or through one of
// the amplifier, arcade, or hull painting drivers.
//
// Usage:
//
//	intcode [flags] <mode> <program-file>
//
// Modes:
//
//	run       print every output; input comes from -input, then stdin lines
//	diag      print the diagnostic code of a test program run with -input
//	nounverb  print cell 0 after patching -noun and -verb, or search for -target
//	amp       print the highest amplifier signal over orderings of -phases
//	arcade    print the block count, then the final score after -quarters
//	hull      print the panel count painted from a black start, then render
//	          the registration identifier painted from a white start
//	disasm    print a disassembly of the program
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/internal/flushio"
	"github.com/jcorbin/intcode/internal/logio"
	"github.com/jcorbin/intcode/internal/panicerr"
	"github.com/pkg/errors"
)

func main() {
	log := logio.NewLogger(os.Stderr)

	var cfg config
	flag.DurationVar(&cfg.timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&cfg.trace, "trace", false, "enable trace logging")
	flag.UintVar(&cfg.memLimit, "mem-limit", 0, "enable memory limit")
	flag.StringVar(&cfg.input, "input", "", "comma separated input values")
	flag.BoolVar(&cfg.dump, "dump", false, "dump machine state after run mode ends")
	flag.StringVar(&cfg.tee, "tee", "", "also write output to the named file")
	flag.Int64Var(&cfg.noun, "noun", 12, "nounverb mode noun")
	flag.Int64Var(&cfg.verb, "verb", 2, "nounverb mode verb")
	flag.Int64Var(&cfg.target, "target", -1, "nounverb mode search target")
	flag.StringVar(&cfg.phases, "phases", "0,1,2,3,4", "amp mode phase settings")
	flag.Int64Var(&cfg.quarters, "quarters", 2, "arcade mode quarters for the second game")
	flag.BoolVar(&cfg.watch, "watch", false, "arcade mode: draw every frame")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %v [flags] <mode> <program-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	mode, path := flag.Arg(0), flag.Arg(1)

	if cfg.trace {
		cfg.opts = append(cfg.opts, intcode.WithLogf(log.Leveledf("TRACE")))
	}
	if cfg.memLimit != 0 {
		cfg.opts = append(cfg.opts, intcode.WithMemLimit(cfg.memLimit))
	}

	ctx := context.Background()
	if cfg.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	out := flushio.NewWriteFlusher(os.Stdout)
	if cfg.tee != "" {
		f, err := os.Create(cfg.tee)
		if err != nil {
			log.ErrorIf(err)
			os.Exit(log.ExitCode())
		}
		defer f.Close()
		out = flushio.WriteFlushers(out, flushio.NewWriteFlusher(f))
	}

	log.ErrorIf(panicerr.Recover(mode, func() error {
		program, err := intcode.LoadProgram(path)
		if err != nil {
			return err
		}
		run, ok := modes[mode]
		if !ok {
			return errors.Errorf("unknown mode %q", mode)
		}
		return run(ctx, &cfg, program, out)
	}))
	log.ErrorIf(out.Flush())
	if code := log.ExitCode(); code != 0 {
		os.Exit(code)
	}
}

type config struct {
	timeout  time.Duration
	trace    bool
	memLimit uint
	input    string
	dump     bool
	tee      string
	noun     int64
	verb     int64
	target   int64
	phases   string
	quarters int64
	watch    bool

	opts []intcode.Option

	// stdin supplies run mode input past cfg.input
	stdin io.Reader
}

type modeFunc func(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) error

var modes map[string]modeFunc

func init() {
	modes = map[string]modeFunc{
		"run":      runMode,
		"diag":     diagMode,
		"nounverb": nounVerbMode,
		"amp":      ampMode,
		"arcade":   arcadeMode,
		"hull":     hullMode,
		"disasm":   disasmMode,
	}
}

func (cfg *config) inputValues() ([]int64, error) {
	if cfg.input == "" {
		return nil, nil
	}
	return intcode.ParseProgramString(cfg.input)
}

func (cfg *config) stdinScanner() *bufio.Scanner {
	if cfg.stdin == nil {
		cfg.stdin = os.Stdin
	}
	return bufio.NewScanner(cfg.stdin)
}
