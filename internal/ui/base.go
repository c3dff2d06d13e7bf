package ui

// Base provides common UI component functionality for focus, size and
// screen placement. Embed this in component models to get standard
// methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    slider *slider.Slider[deck.Card]
//	}
type Base struct {
	width, height int
	left, top     int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
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

// SetOrigin records where the component's top-left cell sits on screen.
// Mouse coordinates are screen-relative, so components translate them
// with Local.
func (b *Base) SetOrigin(left, top int) {
	b.left = left
	b.top = top
}

// Local converts screen coordinates into component coordinates and
// reports whether they fall inside the component.
func (b Base) Local(x, y int) (lx, ly int, inside bool) {
	lx, ly = x-b.left, y-b.top
	inside = lx >= 0 && ly >= 0 && lx < b.width && ly < b.height
	return lx, ly, inside
}
