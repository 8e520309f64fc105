package ratelimiter

import (
	"sync"
	"time"

	"web/frontkit/internal/clock"
)

// Throttler пропускает не более одного вызова колбэка за интервал delay.
// Выполняется первый вызов в окне, остальные отбрасываются без очереди.
type Throttler struct {
	clock    clock.Clock
	callback Callback
	delay    time.Duration
	args     []any

	mu   sync.Mutex
	open bool
}

// Throttle создает Throttler для callback с интервалом delay.
// Затвор изначально открыт.
func Throttle(clk clock.Clock, callback Callback, delay time.Duration, otherArgs ...any) *Throttler {
	return &Throttler{
		clock:    clk,
		callback: callback,
		delay:    delay,
		args:     captureArgs(otherArgs),
		open:     true,
	}
}

// Call вызывает callback синхронно, если затвор открыт, и закрывает его
// на delay. Возвращает false, если вызов отброшен.
// Аргументы Call игнорируются: callback всегда получает otherArgs.
func (t *Throttler) Call(_ ...any) bool {
	t.mu.Lock()
	if !t.open {
		t.mu.Unlock()
		return false
	}
	t.open = false
	t.mu.Unlock()

	t.callback(t.args...)

	// Таймер открытия никогда не отменяется.
	t.clock.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.open = true
		t.mu.Unlock()
	})
	return true
}

// Func возвращает Call в виде обычной функции без результата.
func (t *Throttler) Func() func(...any) {
	return func(args ...any) { t.Call(args...) }
}

// Open сообщает, пропустит ли затвор следующий вызов.
func (t *Throttler) Open() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open
}

func (t *Throttler) Delay() time.Duration {
	return t.delay
}
