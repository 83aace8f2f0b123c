package push3

import (
	"math/rand"
)

// Handler is the signature every instruction handler implements: a total
// function that mutates State, optionally consulting Cache for things like
// CODE.RAND's need to sample from the live instruction name set without
// holding a reference to the registry itself.
type Handler func(s *State, c Cache)

// InstructionSet is the mutable, ordered mapping from canonical instruction
// name to Handler. It is populated at construction time by
// NewInstructionSet and may be extended with Register before any Run;
// Snapshot freezes it into a read-only Cache for use during execution.
type InstructionSet struct {
	names    []string
	handlers map[string]Handler
}

// InstructionSetOption configures an InstructionSet at construction time.
type InstructionSetOption interface{ apply(is *InstructionSet) }

type instructionSetOptionFunc func(is *InstructionSet)

func (f instructionSetOptionFunc) apply(is *InstructionSet) { f(is) }

type withoutDefaultsOption struct{}

func (withoutDefaultsOption) apply(is *InstructionSet) {}

// WithoutDefaults skips loading the builtin registry, for callers who want
// to build a minimal custom instruction set from scratch.
func WithoutDefaults() InstructionSetOption { return withoutDefaultsOption{} }

// WithHandler registers an additional handler at construction time.
func WithHandler(name string, fn Handler) InstructionSetOption {
	return instructionSetOptionFunc(func(is *InstructionSet) {
		is.Register(name, fn)
	})
}

// NewInstructionSet builds an InstructionSet with the default registry
// loaded, then applies opts. Use WithoutDefaults to skip the defaults.
func NewInstructionSet(opts ...InstructionSetOption) *InstructionSet {
	is := &InstructionSet{handlers: make(map[string]Handler)}
	loadDefaults := true
	for _, opt := range opts {
		if _, skip := opt.(withoutDefaultsOption); skip {
			loadDefaults = false
		}
	}
	if loadDefaults {
		registerDefaults(is)
	}
	for _, opt := range opts {
		opt.apply(is)
	}
	return is
}

// Register adds or replaces the handler for name (canonicalized the same
// way the parser canonicalizes instruction tokens). Registering under an
// existing name shadows the previous handler; the name's position in
// iteration order is preserved on shadow, appended on first registration.
func (is *InstructionSet) Register(name string, fn Handler) {
	name = canonicalSymbol(name)
	if _, exists := is.handlers[name]; !exists {
		is.names = append(is.names, name)
	}
	is.handlers[name] = fn
}

// Has reports whether name is registered.
func (is *InstructionSet) Has(name string) bool {
	_, ok := is.handlers[canonicalSymbol(name)]
	return ok
}

// Names returns the registered instruction names in registration order.
func (is *InstructionSet) Names() []string {
	out := make([]string, len(is.names))
	copy(out, is.names)
	return out
}

// Snapshot freezes the current name set and handler table into an
// immutable Cache, safe to share across concurrently running engines (see
// RunBatch) since neither the registry nor the cache is mutated during a
// run.
func (is *InstructionSet) Snapshot() Cache {
	names := make([]string, len(is.names))
	copy(names, is.names)
	handlers := make(map[string]Handler, len(is.handlers))
	for k, v := range is.handlers {
		handlers[k] = v
	}
	return Cache{names: names, handlers: handlers}
}

// Cache is an immutable snapshot of an InstructionSet's name set and
// handler table, handed to handlers instead of the live, mutable registry.
type Cache struct {
	names    []string
	handlers map[string]Handler
}

// Lookup returns the handler registered for name, if any.
func (c Cache) Lookup(name string) (Handler, bool) {
	h, ok := c.handlers[canonicalSymbol(name)]
	return h, ok
}

// Has reports whether name names a known instruction.
func (c Cache) Has(name string) bool {
	_, ok := c.handlers[canonicalSymbol(name)]
	return ok
}

// Names returns every known instruction name, in registration order.
func (c Cache) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// RandomName returns a uniformly chosen instruction name from the cache.
func (c Cache) RandomName(rnd *rand.Rand) (string, bool) {
	if len(c.names) == 0 {
		return "", false
	}
	return c.names[rnd.Intn(len(c.names))], true
}
