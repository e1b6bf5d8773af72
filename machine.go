package intcode

import (
	"errors"

	"github.com/jcorbin/intcode/internal/mem"
	"golang.org/x/exp/slices"
)

// Machine runs one intcode program against its own memory image and input
// queue. It is not safe for concurrent use; independent machines share nothing.
type Machine struct {
	logging

	mem   *mem.Ints
	input []int64
	ip    uint
	rb    int64

	halted bool
	err    error
}

// New creates a machine whose memory is a copy of program, with input queued
// for its input instructions. The program is not validated: malformed
// programs fail once Run reaches the offending instruction.
func New(program, input []int64, opts ...Option) *Machine {
	m := &Machine{
		mem:   mem.NewInts(program),
		input: slices.Clone(input),
	}
	Options(opts).apply(m)
	return m
}

// Run executes instructions from the current instruction pointer until an
// output is produced, input is needed but none is queued, or the machine halts.
//
// Output events are returned after the instruction pointer has moved past the
// output instruction. AwaitingInput events leave the input instruction
// unexecuted, so that a later Run, after PushInput, completes it.
//
// Any fatal condition is returned as a *Fault error along with a Halted
// event; the machine stays failed and returns the same error from then on.
// Calling Run after a normal halt returns ErrHalted.
func (m *Machine) Run() (ev Event, err error) {
	if m.err != nil {
		return Event{Kind: Halted}, m.err
	}
	if m.halted {
		return Event{Kind: Halted}, ErrHalted
	}

	defer func() {
		if e := recover(); e != nil {
			he, ok := e.(haltError)
			if !ok {
				panic(e)
			}
			m.err = &Fault{IP: m.ip, Err: he.error}
			m.logf("!", "fault: %v", m.err)
			ev, err = Event{Kind: Halted}, m.err
		}
	}()

	if m.logfn != nil {
		defer m.withLogPrefix("	")()
	}

	for {
		if ev, done := m.step(); done {
			return ev, nil
		}
	}
}

// step executes one instruction, returning done if it produced an event.
func (m *Machine) step() (ev Event, done bool) {
	at := m.ip
	in, err := Decode(m.mem, at)
	m.haltif(err)
	if m.logfn != nil {
		m.logf("exec", "@%v %v -- rb:%v in:%v", at, in, m.rb, m.input)
	}

	next := at + uint(in.Width())
	switch in.Op {
	case OpAdd:
		m.stor(in.Params[2], m.load(in.Params[0])+m.load(in.Params[1]))

	case OpMultiply:
		m.stor(in.Params[2], m.load(in.Params[0])*m.load(in.Params[1]))

	case OpInput:
		if len(m.input) == 0 {
			m.logf("?", "await input @%v", at)
			return Event{Kind: AwaitingInput}, true
		}
		val := m.input[0]
		m.input = m.input[1:]
		m.stor(in.Params[0], val)

	case OpOutput:
		val := m.load(in.Params[0])
		m.ip = next
		m.logf(">", "output %v", val)
		return Event{Kind: Output, Value: val}, true

	case OpJumpIfTrue:
		if m.load(in.Params[0]) != 0 {
			next = m.jumpTarget(in.Params[1])
		}

	case OpJumpIfFalse:
		if m.load(in.Params[0]) == 0 {
			next = m.jumpTarget(in.Params[1])
		}

	case OpLessThan:
		m.stor(in.Params[2], boolInt(m.load(in.Params[0]) < m.load(in.Params[1])))

	case OpEquals:
		m.stor(in.Params[2], boolInt(m.load(in.Params[0]) == m.load(in.Params[1])))

	case OpAdjustRelativeBase:
		m.rb += m.load(in.Params[0])

	case OpHalt:
		m.halted = true
		m.logf("#", "halt @%v", at)
		return Event{Kind: Halted}, true

	default:
		// Decode only returns known opcodes
		m.halt(OpcodeError(in.Op))
	}

	m.ip = next
	return Event{}, false
}

// PushInput appends values to the back of the input queue.
func (m *Machine) PushInput(values ...int64) {
	m.input = append(m.input, values...)
}

// Pending returns the number of queued input values not yet consumed.
func (m *Machine) Pending() int { return len(m.input) }

// Read returns the memory cell at addr; cells past the end of memory read as 0.
func (m *Machine) Read(addr uint) (int64, error) { return m.mem.Load(addr) }

// Write stores val at addr, growing memory as needed.
func (m *Machine) Write(addr uint, val int64) error { return m.mem.Stor(addr, val) }

// Memory returns a copy of the whole memory image.
func (m *Machine) Memory() []int64 { return m.mem.Values() }

// IP returns the address of the next instruction to execute.
func (m *Machine) IP() uint { return m.ip }

// RelativeBase returns the current base of relative mode parameters.
func (m *Machine) RelativeBase() int64 { return m.rb }

// Halted returns true once the machine has halted, normally or not.
func (m *Machine) Halted() bool { return m.halted || m.err != nil }

// Err returns the fatal error that stopped the machine, if any.
func (m *Machine) Err() error { return m.err }

func (m *Machine) addr(p Param) uint {
	addr := p.Value
	if p.Mode == Relative {
		addr += m.rb
	}
	if addr < 0 {
		m.halt(AddrError(addr))
	}
	return uint(addr)
}

func (m *Machine) load(p Param) int64 {
	if p.Mode == Immediate {
		return p.Value
	}
	val, err := m.mem.Load(m.addr(p))
	m.haltif(err)
	return val
}

func (m *Machine) stor(p Param, val int64) {
	m.haltif(m.mem.Stor(m.addr(p), val))
}

func (m *Machine) jumpTarget(p Param) uint {
	target := m.load(p)
	if target < 0 {
		m.halt(AddrError(target))
	}
	return uint(target)
}

func (m *Machine) halt(err error) {
	panic(haltError{err})
}

func (m *Machine) haltif(err error) {
	if err != nil {
		m.halt(err)
	}
}

type haltError struct{ error }

func (err haltError) Unwrap() error { return err.error }

// IsFault returns true if err came from a machine dying on a fatal condition.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
