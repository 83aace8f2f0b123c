package push3

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindInt holds a 64-bit integer literal, routed to the INTEGER stack.
	KindInt Kind = iota
	// KindFloat holds a 64-bit float literal, routed to the FLOAT stack.
	KindFloat
	// KindBool holds a boolean literal, routed to the BOOLEAN stack.
	KindBool
	// KindName holds a case-normalized symbol, routed to the NAME stack
	// (or resolved against the binding table) when reached by the engine.
	KindName
	// KindInstruction holds a reference into the instruction registry.
	KindInstruction
	// KindList holds an ordered sequence of Values; it splats onto EXEC
	// and is the structure CODE instructions operate on.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindName:
		return "name"
	case KindInstruction:
		return "instruction"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the closed sum type every Push3 item is an instance of. Handlers
// and the engine switch on Kind; there is no reflection involved.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Name  string  // canonical (upper-case) for KindName and KindInstruction
	List  []Value // only meaningful for KindList
}

// Int64 constructs an integer Value.
func Int64(n int64) Value { return Value{Kind: KindInt, Int: n} }

// Float64 constructs a float Value.
func Float64(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Name constructs a NameLit Value, canonicalizing to upper-case.
func Name(sym string) Value { return Value{Kind: KindName, Name: canonicalSymbol(sym)} }

// Instr constructs an instruction-reference Value.
func Instr(name string) Value { return Value{Kind: KindInstruction, Name: canonicalSymbol(name)} }

// List constructs a List Value from the given elements.
func List(vs ...Value) Value { return Value{Kind: KindList, List: vs} }

func canonicalSymbol(s string) string { return strings.ToUpper(s) }

// IsList reports whether v is a List (as opposed to any atom).
func (v Value) IsList() bool { return v.Kind == KindList }

// Points counts the value as the parser does: every atom is 1 point, every
// list is 1 plus the points of its children.
func (v Value) Points() int {
	if !v.IsList() {
		return 1
	}
	n := 1
	for _, c := range v.List {
		n += c.Points()
	}
	return n
}

// AsList returns v's elements if v is a List, or a one-element slice
// containing v itself otherwise -- the "atoms behave as one-element lists"
// rule used throughout the CODE.* instructions.
func (v Value) AsList() []Value {
	if v.IsList() {
		return v.List
	}
	return []Value{v}
}

// Equal reports whether two Values are structurally identical.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float || (v.Float != v.Float && o.Float != o.Float) // NaN == NaN here
	case KindBool:
		return v.Bool == o.Bool
	case KindName, KindInstruction:
		return v.Name == o.Name
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v in the canonical surface syntax: the same text a parser
// would re-read into a structurally identical Value (see Parse). The one
// exception is a non-finite float, rendered as NaN, +Inf or -Inf, which
// Parse does not read back as a float.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Float)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindName, KindInstruction:
		return v.Name
	case KindList:
		parts := make([]string, len(v.List))
		for i, c := range v.List {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("<invalid:%v>", v.Kind)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Ensure round-trip as a float literal even for integral values and
	// exponent forms like "1e+21", since the float grammar requires a
	// decimal point; otherwise re-parsing would read an INTEGER or a NAME.
	if strings.ContainsAny(s, ".nN") {
		return s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}
