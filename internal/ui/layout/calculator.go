// Package layout provides pure functions for header and page dimension
// calculations. Header geometry arrives in fractional cells and leaves as
// whole rows and columns.
package layout

import "math"

// Rows converts a cell height to whole rows, rounding to nearest.
func Rows(height float64) int {
	return max(int(math.Round(height)), 0)
}

// PageHeight is the height left for the page once the footer is drawn.
func PageHeight(windowHeight, footerHeight int) int {
	return max(windowHeight-footerHeight, 0)
}

// TitleWidth is the widest a title may wrap at full scale: the window
// width minus content padding on both sides.
func TitleWidth(windowWidth int, contentPadding float64) int {
	return max(windowWidth-2*Rows(contentPadding), 1)
}

// TitleRow returns the row holding the last title line: the row that
// contains headerRows + offsetY.
func TitleRow(headerRows int, offsetY float64) int {
	return int(math.Floor(float64(headerRows) + offsetY))
}

// TitleColumn returns the first column of a title whose translation is
// offsetX. The translation assumes glyphs scaled around the title centre;
// terminal glyphs keep their size, so the space scaling would have removed
// on the left is added back.
func TitleColumn(offsetX, naturalWidth, scale float64) int {
	scaleDiff := (naturalWidth - naturalWidth*scale) / 2
	return int(math.Round(offsetX + scaleDiff))
}

// ToolbarRow returns the middle row of the toolbar, which sits at the top
// of the header right under the status bar inset. A fully collapsed header
// is exactly the inset plus the toolbar, so the row never moves.
func ToolbarRow(statusBarInset, toolbarHeight float64) int {
	toolbar := max(Rows(toolbarHeight), 1)
	return Rows(statusBarInset) + toolbar/2
}

// ParallaxRow is the first image row shown in a header collapsed from
// expandedRows to headerRows. The image moves at half the scroll speed.
func ParallaxRow(expandedRows, headerRows int) int {
	return max(expandedRows-headerRows, 0) / 2
}
