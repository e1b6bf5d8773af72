package mem

import "fmt"

// MaxSize is the most cells any memory may grow to, even without a Limit.
const MaxSize = 1 << 28

// LimitError indicates that a memory operation, like load or store, exceeded a limit.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

func checkLimit(limit, addr uint, op string) error {
	if limit != 0 && addr > limit {
		return LimitError{addr, op}
	}
	return nil
}

func checkSize(size, addr uint, op string) error {
	if size > MaxSize {
		return LimitError{addr, op}
	}
	return nil
}
