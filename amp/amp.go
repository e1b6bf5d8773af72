// Package amp drives a series of amplifier machines, each feeding its output
// signal into the next, with the last feeding back into the first.
package amp

import (
	"context"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/internal/perm"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// ErrStalled is returned when an amplifier asks for input before producing
// an output for the signal it was given.
var ErrStalled = errors.New("amplifier awaits input without producing a signal")

// Chain is a series of amplifiers sharing one rotating signal.
type Chain struct {
	amps []*intcode.Machine
}

// NewChain creates one machine running program per phase setting; each
// machine receives its phase as its first input.
func NewChain(program, phases []int64, opts ...intcode.Option) *Chain {
	var c Chain
	c.amps = make([]*intcode.Machine, len(phases))
	for i, phase := range phases {
		c.amps[i] = intcode.New(program, []int64{phase}, opts...)
	}
	return &c
}

// Run starts the signal at 0 and passes it through each amplifier in turn,
// going around the chain until an amplifier halts, then returns the last
// signal produced.
func (c *Chain) Run(ctx context.Context) (signal int64, err error) {
	if len(c.amps) == 0 {
		return 0, errors.New("empty amplifier chain")
	}
	for {
		for i, amp := range c.amps {
			if err := ctx.Err(); err != nil {
				return signal, err
			}
			amp.PushInput(signal)
			ev, err := amp.Run()
			if err != nil {
				return signal, errors.Wrapf(err, "amplifier #%v", i+1)
			}
			switch ev.Kind {
			case intcode.Output:
				signal = ev.Value
			case intcode.Halted:
				return signal, nil
			case intcode.AwaitingInput:
				return signal, errors.Wrapf(ErrStalled, "amplifier #%v", i+1)
			}
		}
	}
}

// Run builds a chain for program with the given phases and runs it.
func Run(ctx context.Context, program, phases []int64, opts ...intcode.Option) (int64, error) {
	return NewChain(program, phases, opts...).Run(ctx)
}

// MaxSignal tries every ordering of phases, returning the highest signal
// along with the phase order that produced it. Orderings run concurrently,
// each with its own chain of machines.
func MaxSignal(ctx context.Context, program, phases []int64, opts ...intcode.Option) (best int64, order []int64, err error) {
	orders := perm.All(phases)
	signals := make([]int64, len(orders))

	eg, ctx := errgroup.WithContext(ctx)
	for i := range orders {
		i := i
		eg.Go(func() error {
			signal, err := Run(ctx, program, orders[i], opts...)
			if err != nil {
				return errors.Wrapf(err, "phases %v", orders[i])
			}
			signals[i] = signal
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}

	for i, signal := range signals {
		if order == nil || signal > best {
			best, order = signal, orders[i]
		}
	}
	return best, slices.Clone(order), nil
}
