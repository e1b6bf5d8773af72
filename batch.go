package intcode

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInputStarved is returned by batch runs whose program asks for more
// input than was supplied up front.
var ErrInputStarved = errors.New("program awaits input beyond what was supplied")

// Outputs runs program with the given input until it halts, returning every
// value it output.
func Outputs(program, input []int64, opts ...Option) ([]int64, error) {
	m := New(program, input, opts...)
	var outs []int64
	for {
		ev, err := m.Run()
		if err != nil {
			return outs, err
		}
		switch ev.Kind {
		case Output:
			outs = append(outs, ev.Value)
		case AwaitingInput:
			return outs, errors.WithStack(ErrInputStarved)
		case Halted:
			return outs, nil
		}
	}
}

// Diagnostic runs program with the given input, returning its final output;
// earlier outputs are test results, which must all be 0.
func Diagnostic(program, input []int64, opts ...Option) (int64, error) {
	outs, err := Outputs(program, input, opts...)
	if err != nil {
		return 0, err
	}
	if len(outs) == 0 {
		return 0, errors.New("diagnostic program produced no output")
	}
	last := len(outs) - 1
	for i, val := range outs[:last] {
		if val != 0 {
			return outs[last], DiagnosticFailure{Test: i, Value: val}
		}
	}
	return outs[last], nil
}

// DiagnosticFailure reports a non-zero diagnostic test output.
type DiagnosticFailure struct {
	Test  int
	Value int64
}

func (df DiagnosticFailure) Error() string {
	return fmt.Sprintf("diagnostic test #%v failed with %v", df.Test+1, df.Value)
}

// RunPatched stores noun and verb into cells 1 and 2 of a fresh machine for
// program, runs it to completion, and returns cell 0.
func RunPatched(program []int64, noun, verb int64, opts ...Option) (int64, error) {
	m := New(program, nil, opts...)
	if err := m.Write(1, noun); err != nil {
		return 0, err
	}
	if err := m.Write(2, verb); err != nil {
		return 0, err
	}
	for {
		ev, err := m.Run()
		if err != nil {
			return 0, errors.Wrapf(err, "noun:%v verb:%v", noun, verb)
		}
		if ev.Kind == AwaitingInput {
			return 0, errors.WithStack(ErrInputStarved)
		}
		if ev.Kind == Halted {
			return m.Read(0)
		}
	}
}

// FindNounVerb searches nouns and verbs in the range 0 to 99 for a pair that
// makes RunPatched produce target, returning 100*noun+verb.
// Pairs whose run faults are skipped.
func FindNounVerb(program []int64, target int64, opts ...Option) (int64, error) {
	for noun := int64(0); noun <= 99; noun++ {
		for verb := int64(0); verb <= 99; verb++ {
			if val, err := RunPatched(program, noun, verb, opts...); err == nil && val == target {
				return 100*noun + verb, nil
			}
		}
	}
	return 0, errors.Errorf("no noun and verb produce %v", target)
}
