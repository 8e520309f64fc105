package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"web/frontkit/internal/ratelimiter"
	"web/frontkit/internal/viewport"
)

const (
	refreshWrapper  = "viewport.refresh"
	progressWrapper = "watch.progress"
)

// resizeProvider хранит последние размеры, полученные из потока событий.
type resizeProvider struct {
	mu            sync.Mutex
	width, height float64
}

func (p *resizeProvider) set(width, height float64) {
	p.mu.Lock()
	p.width, p.height = width, height
	p.mu.Unlock()
}

func (p *resizeProvider) Size() (float64, float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

type refreshEvent struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Flags  viewport.Flags `json:"flags"`
}

// syncEncoder сериализует запись из горутины таймера и основной горутины.
type syncEncoder struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func (s *syncEncoder) encode(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(v)
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Classify a stream of resize events read from stdin",
		Long: `Reads "WIDTH HEIGHT" lines from stdin. Every line is treated as a resize
event: flags are recomputed once events stop arriving for the configured
"viewport.refresh" delay, and each refresh is printed as a JSON line.
A pending refresh is flushed at end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) watch(in io.Reader, out io.Writer) error {
	provider := &resizeProvider{}
	ws, err := viewport.NewWindowSize(provider, a.cfg.ViewportOptions(), a.logger)
	if err != nil {
		return err
	}

	store := ratelimiter.NewStore(a.clock, a.cfg.RateLimiter.DefaultDelay, a.cfg, a.logger)
	if store == nil {
		return fmt.Errorf("create wrapper store")
	}
	defer store.Stop()

	enc := &syncEncoder{enc: json.NewEncoder(out)}
	var (
		writeMu  sync.Mutex
		writeErr error
	)
	refresh := func() {
		width, height := provider.Size()
		flags := ws.Refresh()
		if err := enc.encode(refreshEvent{Width: width, Height: height, Flags: flags}); err != nil {
			writeMu.Lock()
			writeErr = err
			writeMu.Unlock()
		}
	}

	events := 0
	debounced := store.Debouncer(refreshWrapper, func(...any) { refresh() })
	progress := store.Throttler(progressWrapper, func(...any) {
		a.logger.Info("receiving resize events", zap.Int("events", events))
	})

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		width, height, err := parseSize(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		events++
		provider.set(width, height)
		progress.Call()
		debounced.Call()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read resize events: %w", err)
	}

	debounced.Flush()
	a.logger.Debug("resize stream finished", zap.Int("events", events))

	writeMu.Lock()
	defer writeMu.Unlock()
	return writeErr
}

func parseSize(text string) (float64, float64, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want \"WIDTH HEIGHT\", got %q", text)
	}
	width, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q: %w", fields[0], err)
	}
	height, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q: %w", fields[1], err)
	}
	return width, height, nil
}
