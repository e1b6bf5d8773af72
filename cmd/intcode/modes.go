package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/amp"
	"github.com/jcorbin/intcode/arcade"
	"github.com/jcorbin/intcode/hull"
	"github.com/jcorbin/intcode/internal/flushio"
	"github.com/jcorbin/intcode/internal/runeio"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func runMode(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) (err error) {
	input, err := cfg.inputValues()
	if err != nil {
		return errors.Wrap(err, "invalid -input")
	}
	m := intcode.New(program, input, cfg.opts...)
	if cfg.dump {
		defer func() {
			if derr := m.Dump(out); err == nil {
				err = derr
			}
		}()
	}

	sc := cfg.stdinScanner()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := m.Run()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case intcode.Output:
			fmt.Fprintln(out, ev.Value)

		case intcode.AwaitingInput:
			if err := out.Flush(); err != nil {
				return err
			}
			var line string
			for line == "" {
				if !sc.Scan() {
					if err := sc.Err(); err != nil {
						return err
					}
					return errors.WithStack(intcode.ErrInputStarved)
				}
				line = strings.TrimSpace(sc.Text())
			}
			values, err := intcode.ParseProgramString(line)
			if err != nil {
				return errors.Wrap(err, "invalid input line")
			}
			m.PushInput(values...)

		case intcode.Halted:
			return nil
		}
	}
}

func diagMode(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) error {
	input, err := cfg.inputValues()
	if err != nil {
		return errors.Wrap(err, "invalid -input")
	}
	code, err := intcode.Diagnostic(program, input, cfg.opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, code)
	return err
}

func nounVerbMode(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) error {
	var (
		val int64
		err error
	)
	if cfg.target >= 0 {
		val, err = intcode.FindNounVerb(program, cfg.target, cfg.opts...)
	} else {
		val, err = intcode.RunPatched(program, cfg.noun, cfg.verb, cfg.opts...)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, val)
	return err
}

func ampMode(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) error {
	phases, err := intcode.ParseProgramString(cfg.phases)
	if err != nil {
		return errors.Wrap(err, "invalid -phases")
	}
	signal, order, err := amp.MaxSignal(ctx, program, phases, cfg.opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%v %v\n", signal, intcode.FormatProgram(order))
	return err
}

func arcadeMode(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) error {
	g := arcade.New(program, cfg.opts...)
	if cfg.watch {
		tty := term.IsTerminal(int(os.Stdout.Fd()))
		g.Frame = func(g *arcade.Game) error {
			if tty {
				// clear screen and home cursor
				if _, err := runeio.WriteANSIString(out, "\u009b2J\u009bH"); err != nil {
					return err
				}
			}
			if err := g.Render(out); err != nil {
				return err
			}
			if !tty {
				out.Write([]byte{'\n'})
			}
			return out.Flush()
		}
	}

	if _, err := g.Play(ctx); err != nil {
		return err
	}
	fmt.Fprintf(out, "blocks: %v\n", g.Count(arcade.Block))

	g.InsertQuarters(cfg.quarters)
	score, err := g.Play(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "score: %v\n", score)
	return err
}

func hullMode(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) error {
	panels, err := hull.Paint(ctx, program, hull.Black, cfg.opts...)
	if err != nil {
		return errors.Wrap(err, "painting from a black panel")
	}
	fmt.Fprintf(out, "painted: %v\n", len(panels))

	panels, err = hull.Paint(ctx, program, hull.White, cfg.opts...)
	if err != nil {
		return errors.Wrap(err, "painting from a white panel")
	}
	_, err = runeio.WriteANSIString(out, panels.Render())
	return err
}

func disasmMode(ctx context.Context, cfg *config, program []int64, out flushio.WriteFlusher) error {
	return intcode.Disassemble(out, program)
}
