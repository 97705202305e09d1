package text

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/pixel"
)

type testDisplay struct {
	mu        sync.Mutex
	frames    []sensehat.Grid
	clears    int
	failFrame int // fail the nth frame (counting from 1)
	failClear error
}

var errTestDisplay = errors.New("test display error")

func (d *testDisplay) SetMatrix(g sensehat.Grid) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, g)
	if d.failFrame > 0 && len(d.frames) == d.failFrame {
		return errTestDisplay
	}
	return nil
}

func (d *testDisplay) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears++
	return d.failClear
}

func (d *testDisplay) counts() (frames, clears int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames), d.clears
}

var testOptions = &Options{
	ScrollSpeed: time.Millisecond,
	TextColor:   pixel.Red,
	BackColor:   pixel.Blue,
}

func testRenderer(d Display) *Renderer {
	return NewRenderer(d, &Config{SettleDelay: time.Millisecond})
}

func TestDefaultFont(t *testing.T) {
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 !?" {
		columns, ok := Default.Glyph(r)
		require.True(t, ok, "%q", r)
		assert.Len(t, columns, 5, "%q", r)
		for _, c := range columns {
			assert.Zero(t, c&0x80, "%q uses the bottom row", r)
		}
	}
	for _, r := range "abc@#.,\n€" {
		_, ok := Default.Glyph(r)
		assert.False(t, ok, "%q", r)
	}

	// Glyphs are immutable.
	columns, _ := Default.Glyph('H')
	columns[0] = 0
	columns, _ = Default.Glyph('H')
	assert.Equal(t, []byte{0x7f, 0x08, 0x08, 0x08, 0x7f}, columns)
}

func TestGlyphs(t *testing.T) {
	assert.Len(t, glyphs(Default, "hello, world!"), 12)
	assert.Empty(t, glyphs(Default, ""))
	assert.Empty(t, glyphs(Default, "@#$%^&*()"))
}

func TestRender(t *testing.T) {
	mask := render(glyphs(Default, "HI"))
	assert.Equal(t, 28, mask.Bounds().Dx())
	assert.Equal(t, GlyphHeight, mask.Bounds().Dy())

	want := make([]byte, 28)
	copy(want[8:], []byte{0x7f, 0x08, 0x08, 0x08, 0x7f})
	copy(want[14:], []byte{0x00, 0x41, 0x7f, 0x41, 0x00})
	assert.Equal(t, want, mask.Pix)

	assert.Equal(t, 16, render(nil).Bounds().Dx())
}

func TestWindow(t *testing.T) {
	mask := render(glyphs(Default, "H"))

	g := window(mask, 0, pixel.Red, pixel.Blue)
	assert.Equal(t, sensehat.NewGrid(pixel.Blue), g)

	// The left H column is at the left edge.
	g = window(mask, 8, pixel.Red, pixel.Blue)
	for y := 0; y < sensehat.Height; y++ {
		if y < 7 {
			assert.Equal(t, pixel.Red, g[y][0], "row %d", y)
			assert.Equal(t, pixel.Red, g[y][4], "row %d", y)
		} else {
			assert.Equal(t, pixel.Blue, g[y][0], "row %d", y)
		}
	}
	assert.Equal(t, pixel.Red, g[3][2])
	assert.Equal(t, pixel.Blue, g[2][2])

	// Outside of the mask is background.
	g = window(mask, 100, pixel.Red, pixel.Blue)
	assert.Equal(t, sensehat.NewGrid(pixel.Blue), g)
	g = window(mask, -8, pixel.Red, pixel.Blue)
	assert.Equal(t, sensehat.NewGrid(pixel.Blue), g)
}

func TestShowMessage(t *testing.T) {
	d := new(testDisplay)
	r := testRenderer(d)

	require.NoError(t, r.ShowMessage(context.Background(), "HI", testOptions))
	frames, clears := d.counts()
	assert.Equal(t, 28, frames)
	assert.Equal(t, 2, clears)

	assert.Equal(t, sensehat.NewGrid(pixel.Blue), d.frames[0])
	assert.Equal(t, sensehat.NewGrid(pixel.Blue), d.frames[27])
	assert.Equal(t, pixel.Red, d.frames[8][0][0])
	assert.Equal(t, pixel.Blue, d.frames[8][7][0])

	// Lower case text renders the same frames.
	lower := new(testDisplay)
	require.NoError(t, testRenderer(lower).ShowMessage(context.Background(), "hi", testOptions))
	assert.Equal(t, d.frames, lower.frames)
}

func TestShowMessageEmpty(t *testing.T) {
	for _, text := range []string{"", "@@@", "#$%\n"} {
		d := new(testDisplay)
		require.NoError(t, testRenderer(d).ShowMessage(context.Background(), text, nil))
		frames, clears := d.counts()
		assert.Zero(t, frames, "%q", text)
		assert.Zero(t, clears, "%q", text)
	}
}

func TestShowMessageFont(t *testing.T) {
	font := bitmapFont{
		'A': {0x01, 0x02, 0x04},
		'B': {0xff},
	}
	d := new(testDisplay)
	r := NewRenderer(d, &Config{Font: font, SettleDelay: -1})

	require.NoError(t, r.ShowMessage(context.Background(), "a-b", testOptions))
	frames, _ := d.counts()
	assert.Equal(t, 16+4+2, frames)
}

func TestShowMessageDeviceError(t *testing.T) {
	d := &testDisplay{failFrame: 3}
	err := testRenderer(d).ShowMessage(context.Background(), "HELLO", testOptions)
	assert.ErrorIs(t, err, errTestDisplay)

	frames, clears := d.counts()
	assert.Equal(t, 3, frames, "no frames after a failed write")
	assert.Equal(t, 1, clears)

	d = &testDisplay{failClear: errTestDisplay}
	err = testRenderer(d).ShowMessage(context.Background(), "HELLO", testOptions)
	assert.ErrorIs(t, err, errTestDisplay)
	frames, _ = d.counts()
	assert.Zero(t, frames)
}

func TestShowMessageSupersede(t *testing.T) {
	d := new(testDisplay)
	r := testRenderer(d)

	first := make(chan error, 1)
	go func() {
		first <- r.ShowMessage(context.Background(), "A VERY LONG MESSAGE", testOptions)
	}()
	require.Eventually(t, func() bool {
		frames, _ := d.counts()
		return frames > 0
	}, time.Second, time.Millisecond)

	require.NoError(t, r.ShowMessage(context.Background(), "HI", testOptions))
	select {
	case err := <-first:
		assert.ErrorIs(t, err, ErrCanceled)
	case <-time.After(time.Second):
		t.Fatal("superseded message did not return")
	}

	// The last 28 frames and the final clear belong to the second message.
	d.mu.Lock()
	defer d.mu.Unlock()
	assert.GreaterOrEqual(t, len(d.frames), 29)
	assert.Equal(t, pixel.Red, d.frames[len(d.frames)-28+8][0][0])
}

func TestStop(t *testing.T) {
	d := new(testDisplay)
	r := testRenderer(d)

	// Nothing running.
	r.Stop()

	done := make(chan error, 1)
	go func() {
		done <- r.ShowMessage(context.Background(), "A VERY LONG MESSAGE", testOptions)
	}()
	require.Eventually(t, func() bool {
		frames, _ := d.counts()
		return frames > 0
	}, time.Second, time.Millisecond)

	r.Stop()
	assert.ErrorIs(t, <-done, ErrCanceled)

	frames, clears := d.counts()
	time.Sleep(5 * MinScrollSpeed)
	after, _ := d.counts()
	assert.Equal(t, frames, after, "no frames after Stop")
	assert.Equal(t, 1, clears)
}

func TestShowMessageContext(t *testing.T) {
	d := new(testDisplay)
	r := testRenderer(d)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.ShowMessage(ctx, "A VERY LONG MESSAGE", testOptions)
	}()
	require.Eventually(t, func() bool {
		frames, _ := d.counts()
		return frames > 0
	}, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	// Canceled before start.
	d = new(testDisplay)
	err := testRenderer(d).ShowMessage(ctx, "HI", testOptions)
	assert.ErrorIs(t, err, context.Canceled)
	frames, clears := d.counts()
	assert.Zero(t, frames)
	assert.Zero(t, clears)
}

func TestFaceFont(t *testing.T) {
	f := NewFaceFont(basicfont.Face7x13)

	columns, ok := f.Glyph('I')
	require.True(t, ok)
	assert.Len(t, columns, 7)
	var lit int
	for _, c := range columns {
		if c != 0 {
			lit++
		}
	}
	assert.NotZero(t, lit)

	again, ok := f.Glyph('I')
	require.True(t, ok)
	assert.Equal(t, columns, again)

	space, ok := f.Glyph(' ')
	require.True(t, ok)
	assert.Equal(t, make([]byte, 7), space)

	d := new(testDisplay)
	r := NewRenderer(d, &Config{Font: f, SettleDelay: -1})
	require.NoError(t, r.ShowMessage(context.Background(), "ok", testOptions))
	frames, _ := d.counts()
	assert.Equal(t, 16+2*8, frames)
}
