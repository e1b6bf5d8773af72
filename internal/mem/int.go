package mem

// allocChunk rounds up backing array growth, so that runs of small stores
// past the end do not re-allocate on every cell.
const allocChunk = 256

// Ints implements a growable integer memory.
// Its logical size only ever increases: storing past the end extends it, with
// every newly exposed cell zero-filled, up to and including the stored address.
// Loads past the end return 0 without growing.
type Ints struct {
	// Limit specifies a limit, past which any store or load should result in an error.
	Limit uint

	values []int64
}

// NewInts returns a memory whose initial contents are a copy of values.
func NewInts(values []int64) *Ints {
	var m Ints
	m.values = append(make([]int64, 0, len(values)), values...)
	return &m
}

// Size returns an address one position higher than the last cell stored so far.
func (m *Ints) Size() uint {
	return uint(len(m.values))
}

// Load returns a single value from the given address.
// Returns an error if addr exceeds any Limit.
func (m *Ints) Load(addr uint) (int64, error) {
	if err := checkLimit(m.Limit, addr, "load"); err != nil {
		return 0, err
	}
	if addr < uint(len(m.values)) {
		return m.values[addr], nil
	}
	return 0, nil
}

// LoadInto reads len(buf) integers from memory starting at addr, zeroing any
// part of buf that lies past the end of memory.
// Returns an error if Limit would be exceeded; no partial load is done.
func (m *Ints) LoadInto(addr uint, buf []int64) error {
	if len(buf) == 0 {
		return nil
	}
	end := addr + uint(len(buf))
	if err := m.checkRange(addr, end, "load"); err != nil {
		return err
	}
	n := 0
	if addr < uint(len(m.values)) {
		n = copy(buf, m.values[addr:])
	}
	for i := range buf[n:] {
		buf[n+i] = 0
	}
	return nil
}

// Stor stores any values at addr, growing memory if necessary.
// Returns an error if Limit or MaxSize would be exceeded; no partial store is done.
func (m *Ints) Stor(addr uint, values ...int64) error {
	if len(values) == 0 {
		return nil
	}
	end := addr + uint(len(values))
	if err := m.checkRange(addr, end, "stor"); err != nil {
		return err
	}
	if err := checkSize(end, addr, "stor"); err != nil {
		return err
	}
	m.grow(end)
	copy(m.values[addr:], values)
	return nil
}

// Grow ensures that the memory holds at least size cells, up to MaxSize.
func (m *Ints) Grow(size uint) error {
	if size == 0 {
		return nil
	}
	if err := checkLimit(m.Limit, size-1, "grow"); err != nil {
		return err
	}
	if err := checkSize(size, size-1, "grow"); err != nil {
		return err
	}
	m.grow(size)
	return nil
}

// Values returns a copy of all memory cells.
func (m *Ints) Values() []int64 {
	return append([]int64(nil), m.values...)
}

func (m *Ints) checkRange(addr, end uint, op string) error {
	// overflow
	if end < addr {
		return LimitError{addr, op}
	}
	return checkLimit(m.Limit, end-1, op)
}

func (m *Ints) grow(size uint) {
	have := uint(len(m.values))
	if size <= have {
		return
	}
	if size <= uint(cap(m.values)) {
		m.values = m.values[:size]
		for i := have; i < size; i++ {
			m.values[i] = 0
		}
		return
	}
	alloc := (size + allocChunk - 1) / allocChunk * allocChunk
	values := make([]int64, size, alloc)
	copy(values, m.values)
	m.values = values
}
