package adapter

import (
	"context"
	"math/rand"
	"time"

	"github.com/logrusorgru/aurora/v4"
)

type LogContext interface {
	ID() uint32
	Color() aurora.Color
	Duration() time.Duration
}

type logCtxKey struct{}

func SaveLogContext(ctx context.Context, logContext LogContext) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logContext)
}

func LoadLogContext(ctx context.Context) LogContext {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(logCtxKey{}).(LogContext)
	return c
}

var _ LogContext = (*RunLogContext)(nil)

// RunLogContext identifies a single solver run in log lines.
type RunLogContext struct {
	initTime time.Time
	id       uint32
	color    aurora.Color
}

func NewRunLogContext() *RunLogContext {
	id := randomID()
	return &RunLogContext{
		initTime: time.Now(),
		id:       id,
		color:    idToColor(id),
	}
}

func (c *RunLogContext) ID() uint32 {
	return c.id
}

func (c *RunLogContext) Color() aurora.Color {
	return c.color
}

func (c *RunLogContext) Duration() time.Duration {
	return time.Since(c.initTime)
}

// randomID returns a nine digit id.
func randomID() uint32 {
	const start, end = 100_000_000, 999_999_999
	return start + uint32(rand.Int63n(end-start))
}

// idToColor maps an id onto the 256 color cube, skipping colors too dark to read.
func idToColor(id uint32) aurora.Color {
	color := aurora.Color(uint8(id)) % 215
	row := uint(color / 36)
	column := uint(color % 36)
	r := float32(row * 51)
	g := float32(column / 6 * 51)
	b := float32((column % 6) * 51)
	if 0.2126*r+0.7152*g+0.0722*b < 60 {
		row = 5 - row
		column = 35 - column
		color = aurora.Color(row*36 + column)
	}
	color += 16
	color = color << 16
	color |= 1 << 14
	return color
}
