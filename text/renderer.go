// Package text scrolls messages across the Sense HAT LED matrix.
package text

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("SENSEHAT_DEBUG") != ""
}

// ErrCanceled is returned by a message that was superseded or stopped.
var ErrCanceled = errors.New("text: message canceled")

// MinScrollSpeed is the shortest interval between two frames.
const MinScrollSpeed = 10 * time.Millisecond

// Display is the part of the LED matrix used for scrolling text.
type Display interface {
	SetMatrix(sensehat.Grid) error
	Clear() error
}

var _ Display = (*sensehat.LEDMatrix)(nil)

// Options for a single message.
type Options struct {
	// ScrollSpeed is the time between shifting the text by one column.
	ScrollSpeed time.Duration

	// TextColor is the color of the glyph pixels.
	TextColor pixel.RGB

	// BackColor is the color of all other pixels.
	BackColor pixel.RGB
}

// DefaultOptions are the default message options.
var DefaultOptions = Options{
	ScrollSpeed: 100 * time.Millisecond,
	TextColor:   pixel.White,
	BackColor:   pixel.Off,
}

// Config is the renderer configuration.
type Config struct {
	// Font for rendering messages.
	Font Font

	// SettleDelay is the time waited after canceling a running message, before
	// the next message touches the display. A negative value disables it.
	SettleDelay time.Duration
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Font:        Default,
	SettleDelay: time.Second,
}

// Renderer scrolls text messages over a display, one at a time.
type Renderer struct {
	display Display
	font    Font
	settle  time.Duration

	mu   sync.Mutex
	task *task
}

// task is a running message.
type task struct {
	cancel context.CancelCauseFunc
	done   chan struct{}
}

// NewRenderer returns a text renderer for d.
func NewRenderer(d Display, config *Config) *Renderer {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if config.Font == nil {
		config.Font = DefaultConfig.Font
	}
	if config.SettleDelay == 0 {
		config.SettleDelay = DefaultConfig.SettleDelay
	}

	return &Renderer{
		display: d,
		font:    config.Font,
		settle:  config.SettleDelay,
	}
}

// ShowMessage scrolls text from right to left and blocks until the message has
// scrolled off the display, after which the display is cleared.
//
// The text is upper cased and runes that are not in the font are dropped; if
// nothing remains, the display is not touched. A message that is still running
// is canceled first and returns [ErrCanceled]. If ctx is done, ShowMessage
// returns the context error and leaves the last frame on the display.
func (r *Renderer) ShowMessage(ctx context.Context, text string, options *Options) error {
	if options == nil {
		options = &DefaultOptions
	}

	chars := glyphs(r.font, text)
	if len(chars) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancelCause(ctx)
	t := &task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	r.mu.Lock()
	prev := r.task
	r.task = t
	r.mu.Unlock()

	defer func() {
		cancel(nil)
		r.mu.Lock()
		if r.task == t {
			r.task = nil
		}
		r.mu.Unlock()
		if prev != nil {
			// A superseded message may still be writing its last frame.
			<-prev.done
		}
		close(t.done)
	}()

	if prev != nil {
		if debug {
			log.Println("text: canceling running message")
		}
		prev.cancel(ErrCanceled)
		select {
		case <-prev.done:
		case <-ctx.Done():
			return context.Cause(ctx)
		}
		if err := sleep(ctx, r.settle); err != nil {
			return err
		}
	}

	return r.scroll(ctx, render(chars), options)
}

func (r *Renderer) scroll(ctx context.Context, mask *pixel.MonoVerticalLSBImage, options *Options) error {
	if err := r.display.Clear(); err != nil {
		return err
	}

	var (
		width    = mask.Bounds().Dx()
		interval = max(MinScrollSpeed, options.ScrollSpeed)
		ticker   = time.NewTicker(interval)
	)
	defer ticker.Stop()

	if debug {
		log.Printf("text: scrolling %d frames every %s", width, interval)
	}

	for offset := 0; offset < width; {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.C:
			if err := r.display.SetMatrix(window(mask, offset, options.TextColor, options.BackColor)); err != nil {
				return err
			}
			offset++
		}
	}

	return r.display.Clear()
}

// Stop cancels the running message, if any, and waits for it to return.
func (r *Renderer) Stop() {
	r.mu.Lock()
	t := r.task
	r.mu.Unlock()

	if t != nil {
		t.cancel(ErrCanceled)
		<-t.done
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
		return nil
	}
}
