// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/interp"
	"github.com/llehouerou/parallax/internal/palette"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad Op = "load config"
	OpLogOpen    Op = "open log file"
	OpUIStart    Op = "start UI"

	// Images
	OpImageLoad      Op = "load image"
	OpImageUnknown   Op = "find sample image"
	OpPaletteExtract Op = "extract palette"

	// Header
	OpHeaderCreate Op = "create header"
	OpHeaderProbe  Op = "compute header state"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, describe(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, describe(err))
}

// describe replaces internal error chains with a short explanation for the
// failures users can fix themselves.
func describe(err error) string {
	var domainErr *interp.DomainError
	switch {
	case errors.Is(err, imagesrc.ErrNotFound):
		return "image not found"
	case errors.Is(err, imagesrc.ErrDecode):
		return "not a JPEG, PNG or GIF image"
	case errors.Is(err, palette.ErrNoSwatches):
		return "image has no usable colours"
	case errors.As(err, &domainErr):
		return fmt.Sprintf("%g is outside %g..%g", domainErr.Value, domainErr.Lower, domainErr.Upper)
	}
	return err.Error()
}
