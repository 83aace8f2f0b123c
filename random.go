package push3

// random.go implements the ERC helpers consumed by *.RAND and the
// RANDOM-CODE generator from §6.3, used by genetic-programming drivers to
// seed or mutate populations without depending on this package's internals.

func (s *State) randomInt() int64 {
	lo, hi := s.cfg.MinRandomInteger, s.cfg.MaxRandomInteger
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	if span <= 0 {
		return lo
	}
	return lo + s.rnd.Int63n(span)
}

func (s *State) randomFloat() float64 {
	lo, hi := s.cfg.MinRandomFloat, s.cfg.MaxRandomFloat
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rnd.Float64()*(hi-lo)
}

func (s *State) randomBool() bool {
	return s.rnd.Intn(2) == 1
}

// randomName produces a fresh random symbol with configured probability,
// falling back to a previously seen name if one exists, or a fresh name if
// none have been seen yet.
func (s *State) randomName() string {
	if s.rnd.Float64() < s.cfg.NewERCNameProbability {
		return s.freshName()
	}
	if n, ok := s.randomSeenName(); ok {
		return n
	}
	return s.freshName()
}

func (s *State) freshName() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	n := make([]byte, 1+s.rnd.Intn(6))
	for i := range n {
		n[i] = alphabet[s.rnd.Intn(len(alphabet))]
	}
	name := canonicalSymbol(string(n))
	s.noteSeenName(name)
	return name
}

// RandomCode implements RANDOM-CODE(max_points): sample a size uniformly
// from [1, maxPoints] and generate a tree of exactly that many points.
func RandomCode(s *State, cache Cache, maxPoints int) Value {
	if maxPoints < 1 {
		maxPoints = 1
	}
	n := 1 + s.rnd.Intn(maxPoints)
	return RandomCodeWithSize(s, cache, n)
}

// RandomCodeWithSize implements RANDOM-CODE-WITH-SIZE(p): a single random
// atom when p == 1, otherwise a List whose children's sizes are a
// DECOMPOSE(p-1, p-1) partition.
func RandomCodeWithSize(s *State, cache Cache, p int) Value {
	if p <= 1 {
		return randomAtom(s, cache)
	}
	parts := Decompose(s, p-1, p-1)
	children := make([]Value, len(parts))
	for i, sz := range parts {
		children[i] = RandomCodeWithSize(s, cache, sz)
	}
	return List(children...)
}

// Decompose implements DECOMPOSE(n, m): repeatedly draw s in
// [1, min(n, m)], subtract it from n, and collect the draws until n
// reaches 0, then shuffle the result.
func Decompose(s *State, n, m int) []int {
	if n <= 0 {
		return nil
	}
	var parts []int
	for n > 0 {
		limit := n
		if m < limit {
			limit = m
		}
		draw := 1 + s.rnd.Intn(limit)
		parts = append(parts, draw)
		n -= draw
	}
	s.rnd.Shuffle(len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })
	return parts
}

// randomAtom samples uniformly from the five atom kinds RANDOM-CODE-WITH-
// SIZE(1) draws from: an instruction name, a random integer, a random
// float, a random boolean, or a name (fresh with probability
// NewERCNameProbability, otherwise a previously seen name).
func randomAtom(s *State, cache Cache) Value {
	switch s.rnd.Intn(5) {
	case 0:
		if name, ok := cache.RandomName(s.rnd); ok {
			return Instr(name)
		}
		return Int64(s.randomInt())
	case 1:
		return Int64(s.randomInt())
	case 2:
		return Float64(s.randomFloat())
	case 3:
		return Bool(s.randomBool())
	default:
		return Name(s.randomName())
	}
}

func registerRandomCodeInstruction(is *InstructionSet) {
	is.Register("CODE.RAND", func(s *State, c Cache) {
		code := RandomCode(s, c, s.cfg.MaxPointsInRandomExpressions)
		s.Stack(Code).Push(code)
	})
}
