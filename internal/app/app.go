// internal/app/app.go
package app

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/config"
	"github.com/llehouerou/cardstack/internal/deck"
	"github.com/llehouerou/cardstack/internal/errmsg"
	"github.com/llehouerou/cardstack/internal/keymap"
	"github.com/llehouerou/cardstack/internal/slider"
	"github.com/llehouerou/cardstack/internal/state"
	"github.com/llehouerou/cardstack/internal/ui/carousel"
)

// Model is the root application model containing all state.
type Model struct {
	Deck     *deck.Deck
	Carousel carousel.Model
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Help     help.Model
	ShowHelp bool
	ErrorMsg string
	Width    int
	Height   int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Carousel.Init()
}

// New builds the application for d, restoring the last viewed card from
// stateMgr.
func New(d *deck.Deck, cfg *config.Config, stateMgr state.Interface) (Model, error) {
	s := slider.New(d.Cards, slider.Resolve(cfg.SliderOptions()))

	var errorMsg string
	index, ok, err := stateMgr.GetPosition(d.Key())
	switch {
	case err != nil:
		slog.Warn("restore position failed", "deck", d.Key(), "err", err)
		errorMsg = errmsg.Format(errmsg.OpPositionLoad, err)
	case ok:
		s.SetActiveIndex(index)
	}

	display := cfg.GetDisplayConfig()
	car, err := carousel.New(s, carousel.Options{
		Metrics: carousel.Metrics{
			CellWidth:  display.CellWidth,
			CellHeight: display.CellHeight,
		},
		Animate: cfg.AnimationsEnabled(),
	})
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", errmsg.OpCarouselBuild, err)
	}
	car.SetFocused(true)

	h := help.New()

	return Model{
		Deck:     d,
		Carousel: car,
		StateMgr: stateMgr,
		Keys:     keymap.Default(),
		Help:     h,
		ErrorMsg: errorMsg,
	}, nil
}
