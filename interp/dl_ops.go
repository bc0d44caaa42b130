package interp

import "github.com/gogpu/n64hle/gbi"

// opDL executes DL_CALL (push=1) or DL_BRANCH (push=0): resolve the
// segmented target address and jump, pushing the instruction after this
// one onto the call stack first iff push is set (spec.md §4.1).
func (i *Interpreter) opDL(cmd gbi.Command) (next uint32, done bool) {
	push := u8(cmd.W0, 16) != 0
	target := i.Mem.FromSegmentedDMA(cmd.W1)
	if push {
		if !i.stack.push(i.pc + 8) {
			i.Build.Warn("DLStackOverflow", -1, -1, -1, "display-list call stack overflow")
			return i.pc + 8, true // spec.md §7: abandon current DL, end frame.
		}
	}
	return target, false
}

// opEndDL executes ENDDL: pop the call stack, or end the walk if it is
// already empty (spec.md §4.1).
func (i *Interpreter) opEndDL() (next uint32, done bool) {
	addr, ok := i.stack.pop()
	if !ok {
		return i.pc, true
	}
	return addr, false
}
