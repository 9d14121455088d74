package ui

// Base provides common UI component size management.
// Embed this in component models to get standard methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    ctrl *header.Controller
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Ready reports whether the component has been given a usable size.
func (b Base) Ready() bool {
	return b.width > 0 && b.height > 0
}
