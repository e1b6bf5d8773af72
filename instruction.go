package intcode

import (
	"strconv"
	"strings"
)

// Opcode selects the operation of an instruction; it is the low two decimal
// digits of an instruction cell.
type Opcode int64

// Opcodes understood by the Machine.
const (
	OpAdd                Opcode = 1
	OpMultiply           Opcode = 2
	OpInput              Opcode = 3
	OpOutput             Opcode = 4
	OpJumpIfTrue         Opcode = 5
	OpJumpIfFalse        Opcode = 6
	OpLessThan           Opcode = 7
	OpEquals             Opcode = 8
	OpAdjustRelativeBase Opcode = 9
	OpHalt               Opcode = 99
)

type opInfo struct {
	name  string
	arity int
	// dst is the index of the destination parameter, or -1 if the opcode
	// writes no memory.
	dst int
}

var opTable = map[Opcode]opInfo{
	OpAdd:                {"add", 3, 2},
	OpMultiply:           {"mul", 3, 2},
	OpInput:              {"in", 1, 0},
	OpOutput:             {"out", 1, -1},
	OpJumpIfTrue:         {"jnz", 2, -1},
	OpJumpIfFalse:        {"jz", 2, -1},
	OpLessThan:           {"lt", 3, 2},
	OpEquals:             {"eq", 3, 2},
	OpAdjustRelativeBase: {"arb", 1, -1},
	OpHalt:               {"halt", 0, -1},
}

// Arity returns how many parameter cells follow the opcode cell; it returns
// -1 for an unknown opcode.
func (op Opcode) Arity() int {
	if info, ok := opTable[op]; ok {
		return info.arity
	}
	return -1
}

// Valid returns true if op is one of the known opcodes.
func (op Opcode) Valid() bool {
	_, ok := opTable[op]
	return ok
}

func (op Opcode) String() string {
	if info, ok := opTable[op]; ok {
		return info.name
	}
	return "op" + strconv.FormatInt(int64(op), 10)
}

// Mode tells how a parameter's encoded value turns into a value or address.
type Mode uint8

// Parameter modes.
const (
	Position  Mode = 0
	Immediate Mode = 1
	Relative  Mode = 2
)

func (mode Mode) String() string {
	switch mode {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode" + strconv.Itoa(int(mode))
}

// Param is one decoded instruction parameter.
type Param struct {
	Mode  Mode
	Value int64
}

func (p Param) String() string {
	switch p.Mode {
	case Immediate:
		return strconv.FormatInt(p.Value, 10)
	case Relative:
		if p.Value < 0 {
			return "@rb" + strconv.FormatInt(p.Value, 10)
		}
		return "@rb+" + strconv.FormatInt(p.Value, 10)
	default:
		return "@" + strconv.FormatInt(p.Value, 10)
	}
}

// Instruction is a decoded instruction, Params holds exactly Op.Arity() entries.
type Instruction struct {
	Op     Opcode
	Params []Param
}

// Width returns the number of memory cells the instruction occupies.
func (in Instruction) Width() int { return 1 + len(in.Params) }

func (in Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(in.Op.String())
	for i, p := range in.Params {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

// cellReader provides memory access to the decoder.
type cellReader interface {
	Load(addr uint) (int64, error)
}

// Decode decodes the instruction stored at ip.
// Mode digits are read least-significant first, one per parameter; any
// digits beyond the opcode's arity are ignored.
func Decode(mem cellReader, ip uint) (in Instruction, err error) {
	cell, err := mem.Load(ip)
	if err != nil {
		return in, err
	}
	if cell < 0 {
		return in, OpcodeError(cell)
	}
	in.Op = Opcode(cell % 100)
	info, ok := opTable[in.Op]
	if !ok {
		return in, OpcodeError(cell)
	}
	if info.arity > 0 {
		in.Params = make([]Param, info.arity)
	}
	modes := cell / 100
	for i := range in.Params {
		p := &in.Params[i]
		p.Mode = Mode(modes % 10)
		modes /= 10
		switch p.Mode {
		case Position, Relative:
		case Immediate:
			if i == info.dst {
				return in, ImmediateWriteError{Op: in.Op, Param: i}
			}
		default:
			return in, ModeError{Cell: cell, Param: i}
		}
		if p.Value, err = mem.Load(ip + 1 + uint(i)); err != nil {
			return in, err
		}
	}
	return in, nil
}
