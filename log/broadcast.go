package log

import (
	"context"
	"sync"
	"time"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/utils"
)

type BroadcastMessage struct {
	Time        time.Time     `json:"time"`
	Level       Level         `json:"level"`
	Message     string        `json:"message"`
	RunID       uint32        `json:"run_id,omitempty"`
	RunDuration time.Duration `json:"run_duration,omitempty"`
}

// BroadcastLogger forwards every line to the wrapped logger and to all subscribers.
// Slow subscribers drop messages instead of blocking the caller.
type BroadcastLogger struct {
	logger basicLogger
	m      sync.Map
	Logger
}

func NewBroadcastLogger(logger Logger) *BroadcastLogger {
	s := &BroadcastLogger{
		logger: logger.basicLogger(),
	}
	s.Logger = newExportLogger(s)
	return s
}

func (s *BroadcastLogger) Close() {
	s.m.Range(func(key, value any) bool {
		s.m.Delete(key)
		value.(*utils.SafeChan[BroadcastMessage]).Close()
		return true
	})
}

func (s *BroadcastLogger) level() Level {
	return s.logger.level()
}

func (s *BroadcastLogger) disableColor() bool {
	return s.logger.disableColor()
}

func (s *BroadcastLogger) print(level Level, msg string) {
	s.logger.print(level, msg)
	if level < s.logger.level() {
		return
	}
	s.send(BroadcastMessage{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	})
}

func (s *BroadcastLogger) printContext(ctx context.Context, level Level, msg string) {
	s.logger.printContext(ctx, level, msg)
	if level < s.logger.level() {
		return
	}
	m := BroadcastMessage{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}
	if logContext := adapter.LoadLogContext(ctx); logContext != nil {
		m.RunID = logContext.ID()
		m.RunDuration = logContext.Duration()
	}
	s.send(m)
}

func (s *BroadcastLogger) send(msg BroadcastMessage) {
	s.m.Range(func(key, value any) bool {
		ctx := key.(context.Context)
		ch := value.(*utils.SafeChan[BroadcastMessage])
		select {
		case <-ctx.Done():
			if _, loaded := s.m.LoadAndDelete(key); loaded {
				ch.Close()
			}
		default:
			select {
			case ch.SendChan() <- msg:
			default:
			}
		}
		return true
	})
}

// Subscribe returns a channel that receives log lines until ctx is done or Unsubscribe is called.
func (s *BroadcastLogger) Subscribe(ctx context.Context, size int) *utils.SafeChan[BroadcastMessage] {
	ch := utils.NewSafeChan[BroadcastMessage](size)
	s.m.Store(ctx, ch)
	return ch
}

func (s *BroadcastLogger) Unsubscribe(ctx context.Context) {
	v, ok := s.m.LoadAndDelete(ctx)
	if ok {
		v.(*utils.SafeChan[BroadcastMessage]).Close()
	}
}

func (s *BroadcastLogger) Subscribers() int {
	n := 0
	s.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
