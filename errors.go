package intcode

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by Run once the machine has executed a halt instruction.
var ErrHalted = errors.New("machine halted")

// OpcodeError is the cell value of an instruction whose opcode is unknown.
type OpcodeError int64

// ModeError reports an unknown parameter mode digit.
type ModeError struct {
	Cell  int64
	Param int
}

// ImmediateWriteError reports an instruction whose destination parameter is
// in immediate mode.
type ImmediateWriteError struct {
	Op    Opcode
	Param int
}

// AddrError is a negative address resolved from a parameter or jump target.
type AddrError int64

func (code OpcodeError) Error() string { return fmt.Sprintf("invalid opcode %v", int64(code)) }
func (addr AddrError) Error() string   { return fmt.Sprintf("invalid address %v", int64(addr)) }

func (me ModeError) Error() string {
	return fmt.Sprintf("invalid mode %v for parameter %v of %v", me.Cell/pow10(me.Param+2)%10, me.Param+1, me.Cell)
}

func (iw ImmediateWriteError) Error() string {
	return fmt.Sprintf("%v parameter %v is an immediate destination", iw.Op, iw.Param+1)
}

// Fault wraps a fatal error with the address of the instruction that caused it.
type Fault struct {
	IP  uint
	Err error
}

func (f *Fault) Error() string { return fmt.Sprintf("fault @%v: %v", f.IP, f.Err) }
func (f *Fault) Unwrap() error { return f.Err }

func pow10(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
