/*
Package intcode implements a resumable virtual machine for Intcode programs.

An Intcode program is a comma separated list of signed integers, loaded into a
memory of 64-bit cells starting at address 0. Each instruction begins with a
cell whose two low decimal digits select an opcode, while each higher digit
selects the addressing mode of one parameter, lowest first:

	0  position   the parameter is an address
	1  immediate  the parameter is the value itself
	2  relative   the parameter is an offset from the relative base

Parameters that an instruction writes to are never immediate.

The opcodes are:

	 1 add  a, b, dst    dst = a + b
	 2 mul  a, b, dst    dst = a * b
	 3 in   dst          dst = next input
	 4 out  a            emit a
	 5 jnz  a, target    jump to target if a != 0
	 6 jz   a, target    jump to target if a == 0
	 7 lt   a, b, dst    dst = 1 if a < b else 0
	 8 eq   a, b, dst    dst = 1 if a == b else 0
	 9 arb  a            relative base += a
	99 halt

Memory grows on demand: any write past the end extends it, zero filling every
new cell, and reads past the end see 0.

A Machine does not block for input or output. Instead, Machine.Run executes
until something happens, returning an Event:

	Output         a value was emitted; call Run again to continue
	AwaitingInput  an input instruction found no queued value; call
	               PushInput and then Run again to retry it
	Halted         the program reached a halt instruction, or faulted

Faults, such as an unknown opcode, an immediate destination, or a negative
address, stop the machine for good; Run then keeps returning the same *Fault.

The amp, arcade, and hull packages drive machines for particular programs, and
cmd/intcode exposes all of them from the command line.
*/
package intcode
