package interp

// CallStackDepth is the bounded depth of the display-list call stack
// (spec.md §4.1: "depth 18 is typical").
const CallStackDepth = 18

// callStack is the DL_CALL/DL_BRANCH/ENDDL return-address stack: DL_CALL
// pushes the instruction after itself and jumps; DL_BRANCH jumps without
// pushing; ENDDL pops. Underflowing ENDDL ends the interpreter's walk of
// the current display list rather than erroring.
type callStack struct {
	addrs [CallStackDepth]uint32
	size  int
}

// push returns false (overflow, caller should fault) if the stack is
// already at CallStackDepth.
func (s *callStack) push(addr uint32) bool {
	if s.size >= CallStackDepth {
		return false
	}
	s.addrs[s.size] = addr
	s.size++
	return true
}

// pop returns false (underflow) if the stack is empty.
func (s *callStack) pop() (uint32, bool) {
	if s.size == 0 {
		return 0, false
	}
	s.size--
	return s.addrs[s.size], true
}

func (s *callStack) reset() { s.size = 0 }
