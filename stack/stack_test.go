package stack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerStackEmpty(t *testing.T) {
	s := NewIntegerStack(0)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Top()
	assert.False(t, ok)
	_, err := s.MustPop()
	assert.True(t, errors.Is(err, ErrEmpty))
	assert.Equal(t, 0, s.Size())
}

func TestIntegerStackStoresNegativeOne(t *testing.T) {
	s := NewIntegerStack(1)
	s.Push(-1)
	v, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, -1, v)
	v, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, -1, v)
	assert.True(t, s.IsEmpty())
}

func TestIntegerStackSizeAfterPushPop(t *testing.T) {
	for k := 0; k <= 20; k++ {
		for j := 0; j <= k; j++ {
			s := NewIntegerStack(0)
			for i := 0; i < k; i++ {
				s.Push(i)
			}
			for i := 0; i < j; i++ {
				v, ok := s.Pop()
				require.True(t, ok)
				require.Equal(t, k-1-i, v)
			}
			require.Equal(t, k-j, s.Size())
			require.Equal(t, s.Size() == 0, s.IsEmpty())
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr bool
	}{
		{line: "1 5", want: Command{Op: OpPush, Value: 5}},
		{line: "1 -1", want: Command{Op: OpPush, Value: -1}},
		{line: "  2 ", want: Command{Op: OpPop}},
		{line: "3", want: Command{Op: OpSize}},
		{line: "4", want: Command{Op: OpIsEmpty}},
		{line: "5", want: Command{Op: OpTop}},
		{line: "", wantErr: true},
		{line: "1", wantErr: true},
		{line: "1 x", wantErr: true},
		{line: "6", wantErr: true},
		{line: "push 1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatcherSequence(t *testing.T) {
	lines := []string{"1 5", "1 3", "3", "2", "5", "4", "2", "2"}
	d := NewDispatcher(DefaultSentinel)
	var out []int
	for _, line := range lines {
		cmd, err := ParseCommand(line)
		require.NoError(t, err)
		if v, ok := d.Apply(cmd); ok {
			out = append(out, v)
		}
	}
	assert.Equal(t, []int{2, 3, 5, 0, 5, -1}, out)
	assert.True(t, d.Stack().IsEmpty())
}

func TestDispatcherCustomSentinel(t *testing.T) {
	d := NewDispatcher(0)
	v, ok := d.Apply(Command{Op: OpTop})
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	v, ok = d.Apply(Command{Op: OpIsEmpty})
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = d.Apply(Command{Op: OpPush, Value: 9})
	assert.False(t, ok)
	v, _ = d.Apply(Command{Op: OpIsEmpty})
	assert.Equal(t, 0, v)
}

func TestDispatcherUnknownOp(t *testing.T) {
	d := NewDispatcher(DefaultSentinel)
	d.Apply(Command{Op: OpPush, Value: 3})
	for _, op := range []Op{0, 6} {
		v, ok := d.Apply(Command{Op: op, Value: 7})
		assert.False(t, ok, op)
		assert.Equal(t, 0, v)
	}
	assert.Equal(t, 1, d.Stack().Size())
	top, _ := d.Stack().Top()
	assert.Equal(t, 3, top)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "push 4", Command{Op: OpPush, Value: 4}.String())
	assert.Equal(t, "empty", Command{Op: OpIsEmpty}.String())
	assert.Equal(t, "unknown", Op(9).String())
}
