package viewport

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrNilProvider возвращается NewWindowSize без источника размеров.
var ErrNilProvider = errors.New("nil viewport provider")

// Provider сообщает текущие размеры области просмотра.
type Provider interface {
	Size() (width, height float64)
}

// StaticProvider - Provider с фиксированными размерами.
type StaticProvider struct {
	Width, Height float64
}

func (p StaticProvider) Size() (float64, float64) {
	return p.Width, p.Height
}

// ProviderFunc позволяет использовать функцию как Provider.
type ProviderFunc func() (width, height float64)

func (f ProviderFunc) Size() (float64, float64) {
	return f()
}

// Options - параметры вычисления флагов.
type Options struct {
	Breakpoints Breakpoints
	// Inclusive включает точки перелома в сравнения.
	Inclusive bool
	// AfterRefresh вызывается после каждого Refresh. nil - хук по умолчанию,
	// который ничего не делает.
	AfterRefresh func()
}

// DefaultOptions возвращает DefaultBreakpoints с включенными границами.
func DefaultOptions() Options {
	return Options{
		Breakpoints: DefaultBreakpoints(),
		Inclusive:   true,
	}
}

// WindowSize хранит последний снимок флагов для одной области просмотра.
// Флаги не отслеживают изменения размеров сами: вызывающий код должен
// вызывать Refresh при каждом изменении.
type WindowSize struct {
	provider Provider
	opts     Options
	logger   *zap.Logger

	mu    sync.RWMutex
	flags Flags
}

// NewWindowSize проверяет opts, создает WindowSize и сразу выполняет Refresh.
func NewWindowSize(provider Provider, opts Options, logger *zap.Logger) (*WindowSize, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if err := opts.Breakpoints.Validate(); err != nil {
		return nil, fmt.Errorf("window size options: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &WindowSize{provider: provider, opts: opts, logger: logger}
	if w.opts.AfterRefresh == nil {
		w.opts.AfterRefresh = w.defaultAfterRefresh
	}
	w.Refresh()
	return w, nil
}

// Refresh пересчитывает флаги по текущим размерам и вызывает AfterRefresh.
// Хук не может изменить возвращенный и сохраненный снимок.
func (w *WindowSize) Refresh() Flags {
	width, height := w.provider.Size()
	flags := Classify(width, height, w.opts.Breakpoints, w.opts.Inclusive)

	w.mu.Lock()
	w.flags = flags
	w.mu.Unlock()

	w.logger.Debug("viewport flags refreshed",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Bool("small", flags.IsSmall),
		zap.Bool("medium", flags.IsMedium),
		zap.Bool("large", flags.IsLarge),
		zap.Bool("larger", flags.IsLarger),
		zap.Bool("tall", flags.IsTall))

	w.opts.AfterRefresh()
	return flags
}

// Flags возвращает последний вычисленный снимок.
func (w *WindowSize) Flags() Flags {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.flags
}

// Options возвращает копию параметров.
func (w *WindowSize) Options() Options {
	return w.opts
}

func (w *WindowSize) defaultAfterRefresh() {
	w.logger.Debug("default after-refresh hook does nothing")
}
