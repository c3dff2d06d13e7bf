// internal/app/layout.go
package app

import "github.com/llehouerou/cardstack/internal/ui"

// bodyHeight is the space between header and footer.
func (m Model) bodyHeight() int {
	return max(m.Height-ui.HeaderHeight-ui.FooterHeight, 0)
}

// carouselTop is the screen row of the carousel's first line. The
// carousel is centered vertically in the body.
func (m Model) carouselTop() int {
	return ui.HeaderHeight + max(m.bodyHeight()-m.Carousel.Rows(), 0)/2
}

// resize propagates the terminal size to the carousel.
func (m *Model) resize() {
	m.Help.Width = m.Width
	m.Carousel.SetSize(m.Width, m.bodyHeight())
	m.place()
}

// place moves the carousel origin to where View draws it. The carousel
// height follows its tallest card, so this runs after every update.
func (m *Model) place() {
	m.Carousel.SetOrigin(0, m.carouselTop())
}
