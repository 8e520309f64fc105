// Package clock предоставляет абстракцию таймера, через которую
// обертки debounce/throttle планируют отложенные вызовы.
package clock

import "time"

// Timer представляет один запланированный вызов.
type Timer interface {
	// Stop отменяет вызов. Возвращает false, если вызов уже произошел
	// или был отменен ранее. Повторная отмена не является ошибкой.
	Stop() bool
}

// Clock планирует выполнение функции через заданный интервал.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

type realClock struct{}

// Real возвращает Clock поверх time.AfterFunc.
func Real() Clock {
	return realClock{}
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (realClock) Now() time.Time {
	return time.Now()
}
