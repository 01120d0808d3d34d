package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/simplevector/errors"
	"github.com/wippyai/simplevector/vector"
)

type opcode string

const (
	opPush    opcode = "push"
	opPop     opcode = "pop"
	opInsert  opcode = "insert"
	opErase   opcode = "erase"
	opAt      opcode = "at"
	opSet     opcode = "set"
	opResize  opcode = "resize"
	opReserve opcode = "reserve"
	opClear   opcode = "clear"
	opQuit    opcode = "quit"
)

// arity is the number of integer arguments each opcode takes.
var arity = map[opcode]int{
	opPush:    1,
	opPop:     0,
	opInsert:  2,
	opErase:   1,
	opAt:      1,
	opSet:     2,
	opResize:  1,
	opReserve: 1,
	opClear:   0,
	opQuit:    0,
}

const commandHelp = "push v | pop | insert pos v | erase pos | at i | set i v | resize n | reserve n | clear | quit"

type command struct {
	op   opcode
	args []int
}

// parseCommand parses one playground line such as "insert 2 40".
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errors.InvalidInput(errors.PhaseParse, "empty command")
	}

	op := opcode(strings.ToLower(fields[0]))
	want, ok := arity[op]
	if !ok {
		return command{}, errors.Unsupported(errors.PhaseParse, fmt.Sprintf("unknown command %q", fields[0]))
	}
	if len(fields)-1 != want {
		return command{}, errors.InvalidInput(errors.PhaseParse,
			fmt.Sprintf("%s takes %d argument(s), got %d", op, want, len(fields)-1))
	}

	args := make([]int, 0, want)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return command{}, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, fmt.Sprintf("argument %q", f))
		}
		args = append(args, n)
	}
	return command{op: op, args: args}, nil
}

// apply runs c against v and returns a one-line result. Positions are
// validated here because the vector's unchecked operations trust the caller.
func (c command) apply(v *vector.Vector[int]) (string, error) {
	switch c.op {
	case opPush:
		if err := v.PushBack(c.args[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("pushed %d", c.args[0]), nil

	case opPop:
		if v.IsEmpty() {
			return "", errors.OutOfRange(errors.PhaseAccess, 0, 0)
		}
		last := v.Back()
		v.PopBack()
		return fmt.Sprintf("popped %d", last), nil

	case opInsert:
		pos, x := c.args[0], c.args[1]
		if pos < v.Begin() || pos > v.End() {
			return "", errors.OutOfRange(errors.PhaseAccess, pos, v.Len()+1)
		}
		at, err := v.Insert(pos, x)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("inserted %d at %d", x, at), nil

	case opErase:
		pos := c.args[0]
		if pos < v.Begin() || pos >= v.End() {
			return "", errors.OutOfRange(errors.PhaseAccess, pos, v.Len())
		}
		x := v.Get(pos)
		v.Erase(pos)
		return fmt.Sprintf("erased %d from %d", x, pos), nil

	case opAt:
		x, err := v.At(c.args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d] = %d", c.args[0], x), nil

	case opSet:
		p, err := v.AtRef(c.args[0])
		if err != nil {
			return "", err
		}
		*p = c.args[1]
		return fmt.Sprintf("[%d] := %d", c.args[0], c.args[1]), nil

	case opResize:
		if err := v.Resize(c.args[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("resized to %d", v.Len()), nil

	case opReserve:
		if err := v.Reserve(c.args[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("capacity %d", v.Cap()), nil

	case opClear:
		v.Clear()
		return "cleared", nil

	case opQuit:
		return "bye", nil
	}
	return "", errors.Unsupported(errors.PhaseParse, string(c.op))
}
