package header

import (
	"errors"
	"fmt"

	"github.com/llehouerou/parallax/internal/interp"
)

// ErrInvalidConfig is returned by New for inconsistent header dimensions.
var ErrInvalidConfig = errors.New("invalid header config")

// Config holds the header dimensions, in terminal cells.
type Config struct {
	// DefaultHeight is the fully expanded header height.
	DefaultHeight float64
	// ToolbarHeight is the collapsed toolbar height.
	ToolbarHeight float64
	// StatusBarInset is extra space reserved above the toolbar. The header
	// never collapses below ToolbarHeight + StatusBarInset.
	StatusBarInset float64
	// CollapsedTitlePadding is added to the title start offset once the
	// header is collapsed.
	CollapsedTitlePadding float64
	// ContentPadding is the padding inside the toolbar row.
	ContentPadding float64
	// TitlePadding lifts the title off the header bottom when expanded.
	TitlePadding float64
	// TitleScale is the title scale from collapsed to expanded.
	TitleScale interp.Range[float64]
	// TitleLines is the visible title line count from collapsed to expanded.
	TitleLines interp.Range[float64]
}

// DefaultConfig returns dimensions suited to a terminal window.
func DefaultConfig() Config {
	return Config{
		DefaultHeight:  16,
		ToolbarHeight:  3,
		ContentPadding: 1,
		TitlePadding:   2,
		TitleScale:     interp.MustRange(0.7, 1.0),
		TitleLines:     interp.MustRange(1.0, 3.0),
	}
}

// MinHeight is the fully collapsed header height.
func (c Config) MinHeight() float64 {
	return c.ToolbarHeight + c.StatusBarInset
}

// Validate checks that the header has room to collapse.
func (c Config) Validate() error {
	switch {
	case c.ToolbarHeight <= 0:
		return fmt.Errorf("%w: toolbar height %g must be positive", ErrInvalidConfig, c.ToolbarHeight)
	case c.StatusBarInset < 0:
		return fmt.Errorf("%w: status bar inset %g is negative", ErrInvalidConfig, c.StatusBarInset)
	case c.DefaultHeight <= c.MinHeight():
		return fmt.Errorf("%w: default height %g must exceed collapsed height %g",
			ErrInvalidConfig, c.DefaultHeight, c.MinHeight())
	case c.TitleLines.Lower() < 1:
		return fmt.Errorf("%w: title must keep at least one line", ErrInvalidConfig)
	case c.TitleScale.Lower() <= 0:
		return fmt.Errorf("%w: title scale must be positive", ErrInvalidConfig)
	}
	return nil
}
