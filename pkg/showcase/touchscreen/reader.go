package touchscreen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Reader streams contacts from one evdev device on a background goroutine.
type Reader struct {
	dev     *evdev.InputDevice
	decoder *Decoder
	logger  *slog.Logger

	running *atomic.Bool
	closed  *atomic.Bool
	out     chan Contact
}

// Open opens the device at path and reads its Y axis range.
func Open(path string, logger *slog.Logger) (*Reader, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touchscreen: open %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("touchscreen: read axes of %s: %w", path, err)
	}
	axis, ok := infos[evdev.ABS_MT_POSITION_Y]
	if !ok {
		_ = dev.Close()
		return nil, fmt.Errorf("touchscreen: %s has no multitouch Y axis", path)
	}

	name, _ := dev.Name()
	logger.Info("touchscreen opened", "path", path, "name", name, "min_y", axis.Minimum, "max_y", axis.Maximum)

	return &Reader{
		dev:     dev,
		decoder: NewDecoder(axis.Minimum, axis.Maximum),
		logger:  logger,
		running: atomic.NewBool(false),
		closed:  atomic.NewBool(false),
		out:     make(chan Contact, 64),
	}, nil
}

// Contacts is closed when reading stops.
func (r *Reader) Contacts() <-chan Contact {
	return r.out
}

// Start begins reading until ctx is done or Close is called. Calling Start twice is a no-op.
func (r *Reader) Start(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		return
	}

	go func() {
		<-ctx.Done()
		_ = r.Close()
	}()

	go func() {
		defer close(r.out)
		defer r.running.Store(false)

		for {
			ev, err := r.dev.ReadOne()
			if err != nil {
				if !r.closed.Load() && !errors.Is(err, context.Canceled) {
					r.logger.Warn("touchscreen read failed", "error", err)
				}
				return
			}
			for _, c := range r.decoder.Feed(*ev) {
				select {
				case r.out <- c:
				default:
					r.logger.Debug("touchscreen contact dropped", "id", c.ID, "phase", c.Phase.String())
				}
			}
		}
	}()
}

// Running reports whether the read loop is active.
func (r *Reader) Running() bool {
	return r.running.Load()
}

// Close releases the device, which also ends the read loop.
func (r *Reader) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.dev.Close()
}
