package push3

// defaults.go assembles the builtin registry: the uniform per-type stack
// vocabulary plus every type-specific instruction family, in the order
// §2's component list presents them.
func registerDefaults(is *InstructionSet) {
	registerGenericStackOps(is, Integer, nativeEqual)
	registerGenericStackOps(is, Float, nativeEqual)
	registerGenericStackOps(is, Boolean, nativeEqual)
	registerGenericStackOps(is, NameStack, func(a, b Value) bool { return a.Equal(b) })
	registerGenericStackOps(is, Code, func(a, b Value) bool { return a.Equal(b) })
	registerGenericStackOps(is, Exec, func(a, b Value) bool { return a.Equal(b) })

	registerIntInstructions(is)
	registerFloatInstructions(is)
	registerBoolInstructions(is)
	registerNameInstructions(is)
	registerCodeInstructions(is)
	registerControlInstructions(is)
	registerCombinatorInstructions(is)
}
