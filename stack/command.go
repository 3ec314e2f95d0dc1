package stack

import (
	"fmt"
	"strconv"
	"strings"
)

type Op int

const (
	OpPush Op = iota + 1
	OpPop
	OpSize
	OpIsEmpty
	OpTop
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpSize:
		return "size"
	case OpIsEmpty:
		return "empty"
	case OpTop:
		return "top"
	default:
		return "unknown"
	}
}

type Command struct {
	Op    Op
	Value int
}

func (c Command) String() string {
	if c.Op == OpPush {
		return fmt.Sprintf("%s %d", c.Op, c.Value)
	}
	return c.Op.String()
}

// ParseCommand reads "1 v", "2", "3", "4" or "5". Tokens after the expected ones are ignored.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("invalid op-code: %s", fields[0])
	}
	op := Op(code)
	switch op {
	case OpPush:
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("push: missing value")
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("push: invalid value: %s", fields[1])
		}
		return Command{Op: op, Value: v}, nil
	case OpPop, OpSize, OpIsEmpty, OpTop:
		return Command{Op: op}, nil
	default:
		return Command{}, fmt.Errorf("unknown op-code: %d", code)
	}
}
