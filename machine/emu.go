package machine

import (
	"fmt"
)

// HaltReason tells why a core stopped executing.
type HaltReason int

const (
	Running HaltReason = iota
	HaltEndOfProgram
	HaltLoop
	HaltCycleLimit
	HaltFault
)

func (r HaltReason) String() string {
	switch r {
	case Running:
		return "running"
	case HaltEndOfProgram:
		return "end of program"
	case HaltLoop:
		return "end loop"
	case HaltCycleLimit:
		return "cycle limit"
	case HaltFault:
		return "fault"
	default:
		return "unknown"
	}
}

type coreState struct {
	PC   uint16
	A, D uint16
	ROM  []uint16
	RAM  []uint16

	Cycles int
	Reason HaltReason
	Err    error
}

func (s *coreState) halted() bool {
	return s.Reason != Running
}

func (s *coreState) halt(reason HaltReason) {
	s.Reason = reason
}

func (s *coreState) fault(format string, args ...any) {
	s.Err = fmt.Errorf(format, args...)
	s.Reason = HaltFault
}

type instEmulator struct {
}

// Step executes the instruction at PC.
func (i instEmulator) Step(state *coreState) {
	if int(state.PC) >= len(state.ROM) {
		state.halt(HaltEndOfProgram)
		return
	}

	word := state.ROM[state.PC]
	if word&0x8000 == 0 {
		state.A = word
		state.PC++
		return
	}

	i.runCompute(word, state)
}

func (i instEmulator) runCompute(word uint16, state *coreState) {
	useM := word&0x1000 != 0
	control := (word >> 6) & 0x3F
	dest := (word >> 3) & 0x7
	jump := word & 0x7

	addr := state.A
	y := state.A
	if useM {
		if !i.inRange(addr, state) {
			return
		}
		y = state.RAM[addr]
	}

	out := alu(state.D, y, control)

	if dest&0x1 != 0 {
		if !i.inRange(addr, state) {
			return
		}
		state.RAM[addr] = out
	}
	if dest&0x2 != 0 {
		state.D = out
	}
	if dest&0x4 != 0 {
		state.A = out
	}

	if !jumps(out, jump) {
		state.PC++
		return
	}

	if jump == 0x7 && i.isEndLoop(addr, state) {
		state.halt(HaltLoop)
		return
	}

	state.PC = addr
}

func (i instEmulator) inRange(addr uint16, state *coreState) bool {
	if int(addr) < len(state.RAM) {
		return true
	}

	state.fault("RAM access at %d out of range 0..%d (pc=%d)",
		addr, len(state.RAM)-1, state.PC)

	return false
}

// isEndLoop detects the idiom that ends a program: an unconditional jump to
// itself, or to the address instruction right before it that loads its own
// address.
func (i instEmulator) isEndLoop(target uint16, state *coreState) bool {
	pc := state.PC
	if target == pc {
		return true
	}

	return pc > 0 && target == pc-1 && state.ROM[pc-1] == pc-1
}

// alu applies the six control bits zx, nx, zy, ny, f and no to x and y.
func alu(x, y, control uint16) uint16 {
	if control&0x20 != 0 {
		x = 0
	}
	if control&0x10 != 0 {
		x = ^x
	}
	if control&0x08 != 0 {
		y = 0
	}
	if control&0x04 != 0 {
		y = ^y
	}

	var out uint16
	if control&0x02 != 0 {
		out = x + y
	} else {
		out = x & y
	}

	if control&0x01 != 0 {
		out = ^out
	}

	return out
}

func jumps(out, jump uint16) bool {
	v := int16(out)

	return (jump&0x4 != 0 && v < 0) ||
		(jump&0x2 != 0 && v == 0) ||
		(jump&0x1 != 0 && v > 0)
}
