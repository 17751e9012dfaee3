package robot

import (
	"fmt"
	"strings"
)

// Instruction is one decoded robot operation.
type Instruction int

const (
	Advance Instruction = iota
	TurnLeft
	TurnRight
)

func (i Instruction) String() string {
	switch i {
	case Advance:
		return "advance"
	case TurnLeft:
		return "turn left"
	case TurnRight:
		return "turn right"
	}
	return "unknown"
}

// command letter to instruction, after upper-casing the input
var commandSet = map[rune]Instruction{
	'A': Advance,
	'L': TurnLeft,
	'R': TurnRight,
}

// Decode translates a command string into the instruction sequence it
// spells, one instruction per character, preserving order. The whole
// string is validated first: an empty string or any character outside
// A, L, R (either case) rejects the input and nothing is returned.
func Decode(commands string) ([]Instruction, error) {
	commands = strings.ToUpper(commands)
	if commands == "" {
		return nil, fmt.Errorf("%w: empty command string", ErrInvalidInput)
	}
	for _, c := range commands {
		if _, ok := commandSet[c]; !ok {
			return nil, fmt.Errorf("%w: unknown command %q", ErrInvalidInput, c)
		}
	}
	seq := make([]Instruction, 0, len(commands))
	for _, c := range commands {
		seq = append(seq, commandSet[c])
	}
	return seq, nil
}
