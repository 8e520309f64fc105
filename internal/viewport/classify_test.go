package viewport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Inclusive(t *testing.T) {
	bp := DefaultBreakpoints()
	tests := []struct {
		name   string
		width  float64
		height float64
		want   Flags
	}{
		{"small", 320, 600, Flags{IsSmall: true}},
		{"small breakpoint", 740, 600, Flags{IsSmall: true}},
		{"medium", 741, 600, Flags{IsMedium: true}},
		{"medium breakpoint", 1024, 600, Flags{IsMedium: true}},
		{"large", 1025, 600, Flags{IsLarge: true}},
		{"large breakpoint", 2048, 600, Flags{IsLarge: true}},
		{"larger", 2049, 600, Flags{IsLarger: true}},
		{"tall at threshold", 800, 820, Flags{IsMedium: true, IsTall: true}},
		{"not tall", 800, 819, Flags{IsMedium: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.width, tt.height, bp, true))
		})
	}
}

func TestClassify_Exclusive(t *testing.T) {
	bp := DefaultBreakpoints()
	tests := []struct {
		name   string
		width  float64
		height float64
		want   Flags
	}{
		{"small", 739, 600, Flags{IsSmall: true}},
		{"small breakpoint belongs nowhere", 740, 600, Flags{}},
		{"medium", 900, 600, Flags{IsMedium: true}},
		{"medium breakpoint belongs nowhere", 1024, 600, Flags{}},
		{"large breakpoint belongs nowhere", 2048, 600, Flags{}},
		{"larger", 2049, 600, Flags{IsLarger: true}},
		{"tall threshold is not tall", 900, 820, Flags{IsMedium: true}},
		{"tall", 900, 821, Flags{IsMedium: true, IsTall: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.width, tt.height, bp, false))
		})
	}
}

// TestClassify_ExactlyOneWidthFlag проверяет, что при упорядоченных порогах
// и включенных границах ровно один флаг ширины истинен.
func TestClassify_ExactlyOneWidthFlag(t *testing.T) {
	bp := DefaultBreakpoints()
	for w := 0.0; w <= 3000; w += 7 {
		f := Classify(w, 0, bp, true)
		count := 0
		for _, set := range []bool{f.IsSmall, f.IsMedium, f.IsLarge, f.IsLarger} {
			if set {
				count++
			}
		}
		require.Equal(t, 1, count, "width %v: %+v", w, f)
	}
}

func TestBreakpoints_Validate(t *testing.T) {
	assert.NoError(t, DefaultBreakpoints().Validate())

	unordered := Breakpoints{SmallMaxWidth: 1024, MediumMaxWidth: 740, LargeMaxWidth: 2048}
	err := unordered.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBreakpoints))

	negative := DefaultBreakpoints()
	negative.TallMinHeight = -1
	assert.ErrorIs(t, negative.Validate(), ErrInvalidBreakpoints)
}

// TestClassify_InclusiveMapsToPolicy проверяет соответствие inclusive
// политикам IncludeHigher и IncludeNone.
func TestClassify_InclusiveMapsToPolicy(t *testing.T) {
	bp := DefaultBreakpoints()
	for _, w := range []float64{740, 741, 1024, 1025, 2048} {
		incl := Classify(w, 0, bp, true)
		assert.Equal(t, BetweenInclude(w, bp.SmallMaxWidth, bp.MediumMaxWidth, IncludeHigher), incl.IsMedium, "width %v", w)
		assert.Equal(t, BetweenInclude(w, bp.MediumMaxWidth, bp.LargeMaxWidth, IncludeHigher), incl.IsLarge, "width %v", w)

		excl := Classify(w, 0, bp, false)
		assert.Equal(t, BetweenInclude(w, bp.SmallMaxWidth, bp.MediumMaxWidth, IncludeNone), excl.IsMedium, "width %v", w)
		assert.Equal(t, BetweenInclude(w, bp.MediumMaxWidth, bp.LargeMaxWidth, IncludeNone), excl.IsLarge, "width %v", w)
	}
}
