package header

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/palette"
)

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	for y := range 6 {
		for x := range 6 {
			img.Set(x, y, c)
		}
	}
	return img
}

func testResources() *imagesrc.Resources {
	r := imagesrc.NewResources()
	r.Register("red", solid(color.RGBA{R: 255, A: 255}))
	r.Register("blue", solid(color.RGBA{B: 255, A: 255}))
	return r
}

// blockingLoader waits for its context to end.
type blockingLoader struct{}

func (blockingLoader) Load(ctx context.Context, _ imagesrc.Source) (image.Image, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestRequestPaletteGradient_Success(t *testing.T) {
	c := newTestController(t, WithLoader(testResources()))
	require.True(t, c.Gradient().IsTransparent(), "gradient must start transparent")

	var got []palette.Brush
	cmd := c.RequestPaletteGradient(imagesrc.Resource("red"), 3, func(b palette.Brush) {
		got = append(got, b)
	})
	assert.True(t, c.Pending())

	msg := run(t, cmd)
	assert.True(t, c.Update(msg))
	assert.False(t, c.Pending())

	require.Len(t, got, 1)
	assert.Equal(t, "#ff0000", got[0].Hex())
	assert.Equal(t, imagesrc.Resource("red"), c.GradientSource())

	// Replaying the same message must not fire the callback again.
	assert.False(t, c.Update(msg))
	assert.Len(t, got, 1)
}

func TestGradientAlphaFollowsCollapse(t *testing.T) {
	c := newTestController(t, WithLoader(testResources()))
	c.Update(run(t, c.RequestPaletteGradient(imagesrc.Resource("red"), 3, nil)))

	c.OnScrollChanged(0)
	assert.InDelta(t, 0, c.Gradient().Alpha(), 1e-9)
	assert.True(t, c.Gradient().IsTransparent())

	c.OnScrollChanged(286)
	assert.InDelta(t, 1, c.Gradient().Alpha(), 1e-9)
	assert.False(t, c.Gradient().IsTransparent())
}

func TestRequestPaletteGradient_MissingResource(t *testing.T) {
	var reported error
	c := newTestController(t,
		WithLoader(testResources()),
		WithGradientErrorHandler(func(_ imagesrc.Source, err error) { reported = err }),
	)
	c.OnScrollChanged(286)

	called := false
	msg := run(t, c.RequestPaletteGradient(imagesrc.Resource("missing"), 3, func(palette.Brush) {
		called = true
	}))

	assert.False(t, c.Update(msg))
	assert.False(t, called, "callback must not fire for a missing image")
	assert.True(t, c.Gradient().IsTransparent(), "gradient must stay unchanged")
	assert.ErrorIs(t, reported, imagesrc.ErrNotFound)
}

func TestRequestPaletteGradient_FailureKeepsPrevious(t *testing.T) {
	c := newTestController(t, WithLoader(testResources()))
	c.Update(run(t, c.RequestPaletteGradient(imagesrc.Resource("blue"), 3, nil)))
	require.Equal(t, "#0000ff", c.Gradient().Hex())

	c.Update(run(t, c.RequestPaletteGradient(imagesrc.Resource("missing"), 3, nil)))
	assert.Equal(t, "#0000ff", c.Gradient().Hex())
}

func TestRequestPaletteGradient_NoLoader(t *testing.T) {
	var reported error
	c := newTestController(t, WithGradientErrorHandler(func(_ imagesrc.Source, err error) { reported = err }))

	c.Update(run(t, c.RequestPaletteGradient(imagesrc.Resource("red"), 3, nil)))
	assert.ErrorIs(t, reported, ErrNoLoader)
}

func TestRequestPaletteGradient_LastRequestWins(t *testing.T) {
	c := newTestController(t, WithLoader(testResources()))

	var got []string
	first := c.RequestPaletteGradient(imagesrc.Resource("red"), 3, func(b palette.Brush) {
		got = append(got, "red:"+b.Hex())
	})
	second := c.RequestPaletteGradient(imagesrc.Resource("blue"), 3, func(b palette.Brush) {
		got = append(got, "blue:"+b.Hex())
	})

	// Complete out of order: the newer result lands first.
	assert.True(t, c.Update(run(t, second)))
	assert.False(t, c.Update(run(t, first)))

	assert.Equal(t, []string{"blue:#0000ff"}, got)
	assert.Equal(t, "#0000ff", c.Gradient().Hex())
}

func TestRequestPaletteGradient_StaleArrivesFirst(t *testing.T) {
	c := newTestController(t, WithLoader(testResources()))

	first := c.RequestPaletteGradient(imagesrc.Resource("red"), 3, nil)
	second := c.RequestPaletteGradient(imagesrc.Resource("blue"), 3, nil)

	assert.False(t, c.Update(run(t, first)))
	assert.True(t, c.Pending(), "stale result must not clear the newer request")
	assert.True(t, c.Update(run(t, second)))
	assert.Equal(t, "#0000ff", c.Gradient().Hex())
}

func TestRequestPaletteGradient_SupersededIsCancelled(t *testing.T) {
	c := newTestController(t, WithLoader(blockingLoader{}), WithFetchTimeout(0))

	first := c.RequestPaletteGradient(imagesrc.Resource("a"), 3, nil)
	_ = c.RequestPaletteGradient(imagesrc.Resource("b"), 3, nil)

	msg, ok := run(t, first).(GradientMsg)
	require.True(t, ok)
	assert.True(t, errors.Is(msg.Err, context.Canceled))
	assert.False(t, c.Update(msg))
}

func TestClose_IgnoresInFlight(t *testing.T) {
	c := newTestController(t, WithLoader(testResources()))

	called := false
	cmd := c.RequestPaletteGradient(imagesrc.Resource("red"), 3, func(palette.Brush) { called = true })
	c.Close()

	assert.False(t, c.Update(run(t, cmd)))
	assert.False(t, called)
	assert.True(t, c.Closed())
	assert.Nil(t, c.RequestPaletteGradient(imagesrc.Resource("red"), 3, nil), "closed controller accepts no requests")
}

func TestClose_CancelsFetch(t *testing.T) {
	c := newTestController(t, WithLoader(blockingLoader{}), WithFetchTimeout(0))
	cmd := c.RequestPaletteGradient(imagesrc.Resource("a"), 3, nil)
	c.Close()

	msg := run(t, cmd).(GradientMsg)
	assert.ErrorIs(t, msg.Err, context.Canceled)
}

func TestUpdate_ForeignMessages(t *testing.T) {
	a := newTestController(t, WithLoader(testResources()))
	b := newTestController(t, WithLoader(testResources()))

	msg := run(t, a.RequestPaletteGradient(imagesrc.Resource("red"), 3, nil))
	assert.False(t, b.Update(msg), "messages for another header are ignored")
	assert.False(t, a.Update(tea.KeyMsg{}))
	assert.True(t, a.Update(msg))
}

func TestRequestPaletteGradient_DefaultMaxColors(t *testing.T) {
	c := newTestController(t, WithLoader(testResources()), WithExtractor(countingExtractor{}))

	msg := run(t, c.RequestPaletteGradient(imagesrc.Resource("red"), 0, nil)).(GradientMsg)
	require.NoError(t, msg.Err)
	assert.Len(t, msg.Brush.Colors(), palette.DefaultMaxColors)
}

// countingExtractor returns more swatches than asked for.
type countingExtractor struct{}

func (countingExtractor) Extract(_ context.Context, _ image.Image, maxColors int) ([]palette.Swatch, error) {
	out := make([]palette.Swatch, maxColors+2)
	return out, nil
}
