package push3

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// floatToken matches the permissive float grammar from §4.2: optional sign,
// a mandatory decimal point with at least one digit on one side, and an
// optional exponent. ".5" and "5." are both accepted, matching the
// "permissive form" clause.
var floatToken = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)([eE][+-]?\d+)?$`)

// intToken matches a bare signed integer: optional sign, digits only.
var intToken = regexp.MustCompile(`^[+-]?\d+$`)

// Parse reads a Push3 program string into a single top-level List, using
// cache to recognize instruction tokens. MaxPointsInProgram in cfg bounds
// the size of the result; exceeding it returns a ParseError, as does
// unbalanced parentheses or a malformed numeric token.
func Parse(src string, cache Cache, cfg Config) (Value, error) {
	toks, positions := tokenize(src)
	p := &parser{toks: toks, pos: positions, cache: cache, limit: cfg.MaxPointsInProgram}
	forms, err := p.parseForms(false)
	if err != nil {
		return Value{}, err
	}
	top := List(forms...)
	if p.limit > 0 && top.Points() > p.limit {
		return Value{}, ParseError{Pos: len([]rune(src)), Reason: "program exceeds MaxPointsInProgram"}
	}
	return top, nil
}

type parser struct {
	toks  []string
	pos   []int
	i     int
	cache Cache
	limit int
}

// parseForms reads forms until EOF (inParen == false) or a matching ")"
// (inParen == true), returning the forms read.
func (p *parser) parseForms(inParen bool) ([]Value, error) {
	var forms []Value
	for {
		if p.i >= len(p.toks) {
			if inParen {
				return nil, ParseError{Pos: p.eofPos(), Reason: "unexpected EOF, expected )"}
			}
			return forms, nil
		}
		tok := p.toks[p.i]
		switch tok {
		case ")":
			if !inParen {
				return nil, ParseError{Pos: p.pos[p.i], Reason: "unexpected )"}
			}
			p.i++
			return forms, nil
		case "(":
			p.i++
			children, err := p.parseForms(true)
			if err != nil {
				return nil, err
			}
			forms = append(forms, List(children...))
		default:
			v, err := p.classify(tok, p.pos[p.i])
			if err != nil {
				return nil, err
			}
			p.i++
			forms = append(forms, v)
		}
	}
}

func (p *parser) eofPos() int {
	if len(p.pos) == 0 {
		return 0
	}
	return p.pos[len(p.pos)-1]
}

func (p *parser) classify(tok string, pos int) (Value, error) {
	if intToken.MatchString(tok) {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err == nil {
			return Int64(n), nil
		}
		// overflows int64: wrap the same way arithmetic does, by parsing
		// as a big-enough unsigned magnitude and truncating.
		return Int64(wrapOverflowInt(tok)), nil
	}
	if floatToken.MatchString(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, ParseError{Pos: pos, Reason: "malformed float literal " + strconv.Quote(tok)}
		}
		if math.IsInf(f, 0) {
			return Value{}, ParseError{Pos: pos, Reason: "non-finite float literal " + strconv.Quote(tok)}
		}
		return Float64(f), nil
	}
	if strings.EqualFold(tok, "TRUE") {
		return Bool(true), nil
	}
	if strings.EqualFold(tok, "FALSE") {
		return Bool(false), nil
	}
	if p.cache.Has(tok) {
		return Instr(tok), nil
	}
	return Name(tok), nil
}

// wrapOverflowInt truncates an all-digit (optionally signed) token to
// int64 using the same two's-complement wraparound the arithmetic
// instructions use, rather than rejecting the literal outright.
func wrapOverflowInt(tok string) int64 {
	neg := false
	digits := tok
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	var acc uint64
	for _, r := range digits {
		acc = acc*10 + uint64(r-'0')
	}
	n := int64(acc)
	if neg {
		n = -n
	}
	return n
}

// tokenize splits src on whitespace, treating "(" and ")" as standalone
// tokens regardless of adjacent whitespace. It returns parallel slices of
// token text and the rune offset each token starts at (for ParseError
// positions).
func tokenize(src string) (toks []string, positions []int) {
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		if isSpace(r) {
			i++
			continue
		}
		if r == '(' || r == ')' {
			toks = append(toks, string(r))
			positions = append(positions, i)
			i++
			continue
		}
		start := i
		for i < len(runes) && !isSpace(runes[i]) && runes[i] != '(' && runes[i] != ')' {
			i++
		}
		toks = append(toks, string(runes[start:i]))
		positions = append(positions, start)
	}
	return toks, positions
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
