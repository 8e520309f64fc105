package ratelimiter

import (
	"sync"
	"time"

	"web/frontkit/internal/clock"
)

// Callback - функция, обернутая в Debouncer или Throttler.
// Получает аргументы, зафиксированные при создании обертки.
type Callback func(args ...any)

// Debouncer откладывает вызов колбэка до тех пор, пока вызовы Call
// не прекратятся на время delay. Выполняется только последний вызов из серии.
type Debouncer struct {
	clock    clock.Clock
	callback Callback
	delay    time.Duration
	args     []any

	mu    sync.Mutex
	timer clock.Timer
	seq   uint64
}

// Debounce создает Debouncer для callback с интервалом delay.
// otherArgs передаются в callback при каждом срабатывании; без них
// callback получает пустой список аргументов.
func Debounce(clk clock.Clock, callback Callback, delay time.Duration, otherArgs ...any) *Debouncer {
	return &Debouncer{
		clock:    clk,
		callback: callback,
		delay:    delay,
		args:     captureArgs(otherArgs),
	}
}

// Call отменяет ранее запланированный вызов и планирует новый через delay.
// Аргументы Call игнорируются: callback всегда получает otherArgs.
func (d *Debouncer) Call(_ ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Таймер мог сработать уже после того, как его заменили.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.callback(d.args...)
	})
}

// Func возвращает Call в виде обычной функции.
func (d *Debouncer) Func() func(...any) {
	return d.Call
}

// Cancel отменяет запланированный вызов, если он есть.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush выполняет отложенный вызов немедленно, не дожидаясь таймера.
// Возвращает false, если ожидающего вызова нет. Проверка и отмена
// выполняются под одной блокировкой, поэтому вызов не может произойти дважды.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.seq++
	d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()

	d.callback(d.args...)
	return true
}

// Pending сообщает, ожидает ли вызов выполнения.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

func captureArgs(args []any) []any {
	if len(args) == 0 {
		return []any{}
	}
	captured := make([]any, len(args))
	copy(captured, args)
	return captured
}
