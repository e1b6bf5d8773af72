package intcode

import "fmt"

// EventKind classifies the outcome of a single Machine.Run call.
type EventKind uint8

// Event kinds.
const (
	// Halted means the machine executed a halt instruction, or died on a
	// fatal error; it must not be run again.
	Halted EventKind = iota

	// Output means an output instruction produced Event.Value.
	Output

	// AwaitingInput means an input instruction found the input queue empty;
	// the instruction is retried by the next Run once input is pushed.
	AwaitingInput
)

func (kind EventKind) String() string {
	switch kind {
	case Halted:
		return "halted"
	case Output:
		return "output"
	case AwaitingInput:
		return "awaiting input"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(kind))
}

// Event is what Machine.Run returns at every suspension point.
type Event struct {
	Kind  EventKind
	Value int64
}

func (ev Event) String() string {
	if ev.Kind == Output {
		return fmt.Sprintf("output(%d)", ev.Value)
	}
	return ev.Kind.String()
}
