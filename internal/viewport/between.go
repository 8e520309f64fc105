// Package viewport вычисляет флаги размера области просмотра
// (small/medium/large/larger/tall) по набору точек перелома.
package viewport

import "math"

// BoundaryPolicy определяет, какие границы диапазона входят в сравнение.
type BoundaryPolicy int

const (
	IncludeNone   BoundaryPolicy = iota // обе границы исключены
	IncludeLower                        // включена только нижняя граница
	IncludeHigher                       // включена только верхняя граница
	IncludeBoth                         // обе границы включены
)

func (p BoundaryPolicy) String() string {
	switch p {
	case IncludeLower:
		return "lower"
	case IncludeHigher:
		return "higher"
	case IncludeBoth:
		return "both"
	default:
		return "none"
	}
}

// Between возвращает true, если value строго между minimum и maximum.
func Between(value, minimum, maximum float64) bool {
	return BetweenInclude(value, minimum, maximum, IncludeNone)
}

// BetweenInclude возвращает true, если value лежит между minimum и maximum
// с учетом policy. Границы можно передавать в любом порядке.
// NaN в любом аргументе считается нулем. Неизвестная policy работает как IncludeNone.
func BetweenInclude(value, minimum, maximum float64, policy BoundaryPolicy) bool {
	v := orZero(value)
	lo := math.Min(orZero(minimum), orZero(maximum))
	hi := math.Max(orZero(minimum), orZero(maximum))

	switch policy {
	case IncludeLower:
		return v >= lo && v < hi
	case IncludeHigher:
		return v > lo && v <= hi
	case IncludeBoth:
		return v >= lo && v <= hi
	default:
		return v > lo && v < hi
	}
}

func orZero(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}
