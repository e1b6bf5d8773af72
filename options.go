package intcode

// Option customizes a Machine built by New.
type Option interface{ apply(m *Machine) }

// Options combines any number of options into one.
type Options []Option

func (opts Options) apply(m *Machine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
}

type withLogfn func(mess string, args ...interface{})
type memLimitOption uint

// WithLogf enables trace logging of every executed instruction, suspension,
// and halt through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMemLimit sets an address past which any memory access fails.
func WithMemLimit(limit uint) Option { return memLimitOption(limit) }

func (logfn withLogfn) apply(m *Machine) {
	m.logfn = logfn
}

func (lim memLimitOption) apply(m *Machine) {
	m.mem.Limit = uint(lim)
}
