package ratelimiter

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"web/frontkit/internal/clock"
)

// DelayProvider определяет интерфейс для получения кастомного интервала
// для обертки с заданным именем. Это позволяет задавать интервалы
// индивидуально (например, из файла конфигурации).
type DelayProvider interface {
	// GetDelay возвращает интервал для name и флаг found (true, если интервал задан).
	GetDelay(name string) (delay time.Duration, found bool)
}

// Store управляет именованными обертками Debouncer и Throttler.
// Он отвечает за создание новых оберток (с интервалом по умолчанию или кастомным
// из DelayProvider) и предоставление доступа к существующим. Доступ защищен мьютексом.
type Store struct {
	clock        clock.Clock
	debouncers   map[string]*Debouncer // Ключ - имя обертки.
	throttlers   map[string]*Throttler
	mu           sync.RWMutex
	defaultDelay time.Duration
	provider     DelayProvider // Необязательный провайдер кастомных интервалов.
	logger       *zap.Logger
}

// NewStore создает пустое хранилище Store.
// Возвращает nil, если clk равен nil или defaultDelay не положительный.
func NewStore(clk clock.Clock, defaultDelay time.Duration, provider DelayProvider, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil || defaultDelay <= 0 {
		logger.Error("invalid parameters for NewStore", zap.Duration("default_delay", defaultDelay), zap.Bool("nil_clock", clk == nil))
		return nil
	}
	if provider != nil {
		logger.Debug("wrapper store initialized with a custom delay provider")
	} else {
		logger.Debug("wrapper store initialized without a delay provider (using defaults only)")
	}
	return &Store{
		clock:        clk,
		debouncers:   make(map[string]*Debouncer),
		throttlers:   make(map[string]*Throttler),
		defaultDelay: defaultDelay,
		provider:     provider,
		logger:       logger,
	}
}

// Debouncer возвращает существующий Debouncer для name или создает новый.
// callback и otherArgs используются только при создании.
func (s *Store) Debouncer(name string, callback Callback, otherArgs ...any) *Debouncer {
	s.mu.RLock()
	d, exists := s.debouncers[name]
	s.mu.RUnlock()
	if exists {
		return d
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d, exists = s.debouncers[name]; exists {
		return d
	}
	delay := s.delayFor(name)
	d = Debounce(s.clock, callback, delay, otherArgs...)
	s.debouncers[name] = d
	s.logger.Debug("created debouncer", zap.String("name", name), zap.Duration("delay", delay))
	return d
}

// Throttler возвращает существующий Throttler для name или создает новый.
func (s *Store) Throttler(name string, callback Callback, otherArgs ...any) *Throttler {
	s.mu.RLock()
	t, exists := s.throttlers[name]
	s.mu.RUnlock()
	if exists {
		return t
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, exists = s.throttlers[name]; exists {
		return t
	}
	delay := s.delayFor(name)
	t = Throttle(s.clock, callback, delay, otherArgs...)
	s.throttlers[name] = t
	s.logger.Debug("created throttler", zap.String("name", name), zap.Duration("delay", delay))
	return t
}

// Forget удаляет обертки с именем name. Отложенный вызов Debouncer отменяется.
func (s *Store) Forget(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.debouncers[name]; ok {
		d.Cancel()
		delete(s.debouncers, name)
	}
	delete(s.throttlers, name)
}

// Len возвращает общее количество оберток.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.debouncers) + len(s.throttlers)
}

// Stop отменяет все отложенные вызовы Debouncer.
func (s *Store) Stop() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cancelled := 0
	for _, d := range s.debouncers {
		if d.Pending() {
			cancelled++
		}
		d.Cancel()
	}
	s.logger.Debug("wrapper store stopped", zap.Int("cancelled", cancelled))
}

// delayFor вызывается под s.mu.
func (s *Store) delayFor(name string) time.Duration {
	if s.provider == nil {
		return s.defaultDelay
	}
	delay, found := s.provider.GetDelay(name)
	if !found {
		return s.defaultDelay
	}
	if delay <= 0 {
		s.logger.Warn("invalid custom delay, using default",
			zap.String("name", name),
			zap.Duration("delay", delay),
			zap.Duration("default_delay", s.defaultDelay))
		return s.defaultDelay
	}
	return delay
}
