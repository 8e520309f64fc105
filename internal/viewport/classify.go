package viewport

import (
	"errors"
	"fmt"
)

// ErrInvalidBreakpoints возвращается, если точки перелома не упорядочены
// или отрицательны.
var ErrInvalidBreakpoints = errors.New("invalid breakpoints")

// Breakpoints содержит пороги ширины и высоты в пикселях.
// Флаги ширины взаимоисключающие только при SmallMaxWidth < MediumMaxWidth < LargeMaxWidth.
type Breakpoints struct {
	SmallMaxWidth  float64 `yaml:"small_max_width" json:"small_max_width"`
	MediumMaxWidth float64 `yaml:"medium_max_width" json:"medium_max_width"`
	LargeMaxWidth  float64 `yaml:"large_max_width" json:"large_max_width"`
	TallMinHeight  float64 `yaml:"tall_min_height" json:"tall_min_height"`
}

// DefaultBreakpoints возвращает пороги по умолчанию: 740, 1024, 2048 и высота 820.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		SmallMaxWidth:  740,
		MediumMaxWidth: 1024,
		LargeMaxWidth:  2048,
		TallMinHeight:  820,
	}
}

// Validate проверяет порядок порогов ширины и отсутствие отрицательных значений.
func (b Breakpoints) Validate() error {
	if b.SmallMaxWidth < 0 || b.MediumMaxWidth < 0 || b.LargeMaxWidth < 0 || b.TallMinHeight < 0 {
		return fmt.Errorf("%w: negative threshold in %+v", ErrInvalidBreakpoints, b)
	}
	if !(b.SmallMaxWidth < b.MediumMaxWidth && b.MediumMaxWidth < b.LargeMaxWidth) {
		return fmt.Errorf("%w: want small < medium < large, got %v / %v / %v",
			ErrInvalidBreakpoints, b.SmallMaxWidth, b.MediumMaxWidth, b.LargeMaxWidth)
	}
	return nil
}

// Flags - снимок флагов размера.
type Flags struct {
	IsSmall  bool `json:"is_small"`
	IsMedium bool `json:"is_medium"`
	IsLarge  bool `json:"is_large"`
	IsLarger bool `json:"is_larger"`
	IsTall   bool `json:"is_tall"`
}

// Classify вычисляет флаги для width и height.
// При inclusive точки перелома относятся к меньшему диапазону, а высота
// tallMin уже считается высокой. IsLarger всегда строгий.
// Порядок порогов не проверяется.
// inclusive соответствует IncludeHigher для диапазонов medium и large,
// иначе используется IncludeNone.
func Classify(width, height float64, bp Breakpoints, inclusive bool) Flags {
	var f Flags
	if inclusive {
		f.IsSmall = width <= bp.SmallMaxWidth
		f.IsMedium = BetweenInclude(width, bp.SmallMaxWidth, bp.MediumMaxWidth, IncludeHigher)
		f.IsLarge = BetweenInclude(width, bp.MediumMaxWidth, bp.LargeMaxWidth, IncludeHigher)
		f.IsTall = height >= bp.TallMinHeight
	} else {
		f.IsSmall = width < bp.SmallMaxWidth
		f.IsMedium = BetweenInclude(width, bp.SmallMaxWidth, bp.MediumMaxWidth, IncludeNone)
		f.IsLarge = BetweenInclude(width, bp.MediumMaxWidth, bp.LargeMaxWidth, IncludeNone)
		f.IsTall = height > bp.TallMinHeight
	}
	f.IsLarger = width > bp.LargeMaxWidth
	return f
}
