package stack

const DefaultSentinel = -1

type Dispatcher struct {
	stack    *IntegerStack
	sentinel int
}

func NewDispatcher(sentinel int) *Dispatcher {
	return &Dispatcher{
		stack:    NewIntegerStack(0),
		sentinel: sentinel,
	}
}

func (d *Dispatcher) Stack() *IntegerStack {
	return d.stack
}

// Apply runs cmd against the stack. hasOutput is false for push and for an
// Op that ParseCommand never returns, which leaves the stack untouched.
func (d *Dispatcher) Apply(cmd Command) (out int, hasOutput bool) {
	switch cmd.Op {
	case OpPush:
		d.stack.Push(cmd.Value)
		return 0, false
	case OpPop:
		v, ok := d.stack.Pop()
		if !ok {
			return d.sentinel, true
		}
		return v, true
	case OpSize:
		return d.stack.Size(), true
	case OpIsEmpty:
		if d.stack.IsEmpty() {
			return 1, true
		}
		return 0, true
	case OpTop:
		v, ok := d.stack.Top()
		if !ok {
			return d.sentinel, true
		}
		return v, true
	default:
		return 0, false
	}
}
