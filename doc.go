/* Package push3 implements an interpreter for Push3, a stack-based,
homoiconic language designed for evolutionary/genetic programming.

A Push3 program is a tree of atoms and nested lists. Execution is driven by
an explicit queue of pending items, the EXEC stack: the engine repeatedly
pops the top item off EXEC and dispatches on its kind -- pushing literals to
their typed stack, splatting lists back onto EXEC in order, invoking
instruction handlers, or resolving bound names -- until EXEC runs dry or a
step limit is reached.

Every instruction is a total function of the State: if its preconditions
aren't met (too few operands, a zero divisor, an out-of-range index) it
leaves the State untouched rather than failing. This is what makes Push3
programs safe to generate at random, which is the whole point of using it
for genetic programming.

See state.go for the typed-stack model, engine.go for the execution loop,
parser.go for the program reader, and random.go for the random-code
generator used to seed and mutate populations.
*/
package push3
