package intcode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/intcode/internal/mem"
)

type memDumper struct {
	mem *mem.Ints
	out io.Writer

	addrWidth int

	// mark is an address to flag with a leading '>'; it only has effect
	// when hasMark is set.
	mark    uint
	hasMark bool
}

// Disassemble writes one line per decoded instruction in program to w.
// Cells that do not decode as an instruction are written as raw data.
func Disassemble(w io.Writer, program []int64) error {
	dump := memDumper{mem: mem.NewInts(program), out: w}
	return dump.dumpMem()
}

// Dump writes the machine registers, its pending input, and a disassembly of
// its memory to w; the next instruction to execute is marked with '>'.
func (m *Machine) Dump(w io.Writer) error {
	fmt.Fprintf(w, "# Machine Dump\n")
	fmt.Fprintf(w, "  ip: %v\n", m.ip)
	fmt.Fprintf(w, "  rb: %v\n", m.rb)
	fmt.Fprintf(w, "  input: %v\n", m.input)
	switch {
	case m.err != nil:
		fmt.Fprintf(w, "  state: %v\n", m.err)
	case m.halted:
		fmt.Fprintf(w, "  state: halted\n")
	}
	dump := memDumper{mem: m.mem, out: w, mark: m.ip, hasMark: true}
	return dump.dumpMem()
}

func (dump *memDumper) dumpMem() error {
	size := dump.mem.Size()
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(int(size)))
	}
	var buf bytes.Buffer
	for addr := uint(0); addr < size; {
		if dump.hasMark && addr == dump.mark {
			buf.WriteByte('>')
		} else {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, " @% *v  ", dump.addrWidth, addr)
		addr = dump.formatMem(&buf, addr, size)
		buf.WriteByte('\n')
		if _, err := buf.WriteTo(dump.out); err != nil {
			return err
		}
	}
	return nil
}

func (dump *memDumper) formatMem(buf *bytes.Buffer, addr, size uint) uint {
	in, err := Decode(dump.mem, addr)
	end := addr + uint(in.Width())
	// a data cell that happens to look like an instruction, but would run
	// off the end of memory, or over the marked address
	if err == nil && end > size {
		err = io.ErrUnexpectedEOF
	}
	if err == nil && dump.hasMark && addr < dump.mark && dump.mark < end {
		err = io.ErrShortBuffer
	}
	if err != nil {
		val, _ := dump.mem.Load(addr)
		buf.WriteString("data ")
		buf.WriteString(strconv.FormatInt(val, 10))
		return addr + 1
	}

	buf.WriteString(in.String())
	raw := make([]int64, in.Width())
	dump.mem.LoadInto(addr, raw)
	fmt.Fprintf(buf, "\t; %v", FormatProgram(raw))
	return end
}
