// internal/app/app_test.go
package app

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/config"
	"github.com/llehouerou/cardstack/internal/deck"
	"github.com/llehouerou/cardstack/internal/state"
	"github.com/llehouerou/cardstack/internal/ui/carousel"
	"github.com/llehouerou/cardstack/internal/ui/testutil"
)

func testDeck(n int) *deck.Deck {
	d := &deck.Deck{Title: "Test deck"}
	for i := range n {
		d.Cards = append(d.Cards, deck.Card{Title: "Card " + string(rune('A'+i))})
	}
	return d
}

func testConfig(loop bool) *config.Config {
	off := false
	return &config.Config{
		Slider:  config.SliderConfig{Loop: &loop},
		Display: config.DisplayConfig{Animations: &off},
	}
}

func newTestModel(t *testing.T, d *deck.Deck, mock *state.Mock) Model {
	t.Helper()
	m, err := New(d, testConfig(false), mock)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(m.Carousel.Close)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	result, _ := updateCmd(t, m, msg)
	return result
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	result, ok := newModel.(Model)
	if !ok {
		t.Fatal("Update should return Model")
	}
	return result, cmd
}

// deliver runs cmd and feeds its messages back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range testutil.ExecuteCmd(cmd) {
		m = update(t, m, msg)
	}
	return m
}

func TestNew_RestoresPosition(t *testing.T) {
	d := testDeck(5)
	mock := state.NewMock()
	mock.Positions[d.Key()] = 3

	m := newTestModel(t, d, mock)

	if got := m.Carousel.Slider().ActiveIndex(); got != 3 {
		t.Errorf("ActiveIndex = %d, want 3", got)
	}
	if m.ErrorMsg != "" {
		t.Errorf("ErrorMsg = %q, want empty", m.ErrorMsg)
	}
}

func TestNew_ClampsStalePosition(t *testing.T) {
	d := testDeck(2)
	mock := state.NewMock()
	mock.Positions[d.Key()] = 9

	m := newTestModel(t, d, mock)

	if got := m.Carousel.Slider().ActiveIndex(); got != 1 {
		t.Errorf("ActiveIndex = %d, want 1", got)
	}
}

func TestNew_PositionErrorIsReported(t *testing.T) {
	mock := state.NewMock()
	mock.Err = errors.New("disk on fire")

	m := newTestModel(t, testDeck(3), mock)

	if !strings.Contains(m.ErrorMsg, "restore last viewed card") {
		t.Errorf("ErrorMsg = %q, want position load failure", m.ErrorMsg)
	}
	if got := m.Carousel.Slider().ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex = %d, want 0", got)
	}
}

func TestUpdate_WindowSizeMsg_ResizesComponents(t *testing.T) {
	m := newTestModel(t, testDeck(3), state.NewMock())

	if m.Width != 100 || m.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.Width, m.Height)
	}
	w, h := m.Carousel.Size()
	if w != 100 || h != m.bodyHeight() {
		t.Errorf("carousel size = %dx%d, want 100x%d", w, h, m.bodyHeight())
	}
}

func TestUpdate_NextKeySavesPosition(t *testing.T) {
	d := testDeck(5)
	mock := state.NewMock()
	m := newTestModel(t, d, mock)

	m, cmd := updateCmd(t, m, testutil.Key("l"))
	m = deliver(t, m, cmd)

	if got := m.Carousel.Slider().ActiveIndex(); got != 1 {
		t.Errorf("ActiveIndex = %d, want 1", got)
	}
	if got := mock.Positions[d.Key()]; got != 1 {
		t.Errorf("saved position = %d, want 1", got)
	}
	if mock.Saves != 1 {
		t.Errorf("Saves = %d, want 1", mock.Saves)
	}
}

func TestUpdate_ActiveChangedMsg_Saves(t *testing.T) {
	d := testDeck(5)
	mock := state.NewMock()
	m := newTestModel(t, d, mock)

	update(t, m, carousel.ActiveChangedMsg{Index: 4})

	if got := mock.Positions[d.Key()]; got != 4 {
		t.Errorf("saved position = %d, want 4", got)
	}
}

func TestUpdate_ClickNeighbour(t *testing.T) {
	d := testDeck(5)
	mock := state.NewMock()
	m := newTestModel(t, d, mock)

	// The right neighbour starts at column 74 and drops one row below the
	// active card.
	row := m.carouselTop() + 3
	m = update(t, m, testutil.Press(80, row))
	m, cmd := updateCmd(t, m, testutil.Release(80, row))
	m = deliver(t, m, cmd)

	if got := m.Carousel.Slider().ActiveIndex(); got != 1 {
		t.Errorf("ActiveIndex = %d, want 1", got)
	}
	if got := mock.Positions[d.Key()]; got != 1 {
		t.Errorf("saved position = %d, want 1", got)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestModel(t, testDeck(3), state.NewMock())

	_, cmd := updateCmd(t, m, testutil.Key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.Carousel.Slider().Mounted() {
		t.Error("carousel should be unmounted on quit")
	}
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := newTestModel(t, testDeck(3), state.NewMock())

	m = update(t, m, testutil.Key("?"))
	if !m.ShowHelp {
		t.Fatal("ShowHelp should be true after ?")
	}
	if !testutil.ContainsLine(m.View(), "first card") {
		t.Error("help overlay should list all bindings")
	}

	// Any key closes help without acting.
	m = update(t, m, testutil.Key("l"))
	if m.ShowHelp {
		t.Error("ShowHelp should be false after a key")
	}
	if got := m.Carousel.Slider().ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex = %d, want 0", got)
	}
}

func TestUpdate_HelpBlocksMouse(t *testing.T) {
	m := newTestModel(t, testDeck(3), state.NewMock())
	m = update(t, m, testutil.Key("?"))

	m = update(t, m, testutil.Press(80, m.carouselTop()+3))
	if m.Carousel.Slider().IsDragging() {
		t.Error("mouse should be ignored while help is shown")
	}
}

func TestUpdate_QuitFromHelp(t *testing.T) {
	m := newTestModel(t, testDeck(3), state.NewMock())
	m = update(t, m, testutil.Key("?"))

	_, cmd := updateCmd(t, m, testutil.Key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestUpdate_ErrorMsg_DismissedByAnyKey(t *testing.T) {
	m := newTestModel(t, testDeck(3), state.NewMock())
	m.ErrorMsg = "some error"

	result := update(t, m, testutil.Key("l"))

	if result.ErrorMsg != "" {
		t.Errorf("ErrorMsg = %q, want empty", result.ErrorMsg)
	}
	if got := result.Carousel.Slider().ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex = %d, want 0 (key only dismisses)", got)
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name   string
		deck   *deck.Deck
		loop   bool
		active int
		want   string
	}{
		{"first", testDeck(5), false, 0, "1st of 5"},
		{"third", testDeck(12), false, 2, "3rd of 12"},
		{"looped second half", testDeck(5), true, 7, "3rd of 5"},
		{"empty", testDeck(0), true, 0, "empty deck"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.deck, testConfig(tt.loop), state.NewMock())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer m.Carousel.Close()
			m.Carousel.Slider().SetActiveIndex(tt.active)

			if got := m.Position(); got != tt.want {
				t.Errorf("Position() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestView_Layout(t *testing.T) {
	m := newTestModel(t, testDeck(5), state.NewMock())
	view := m.View()

	if got := len(strings.Split(view, "\n")); got != 30 {
		t.Errorf("view has %d lines, want 30", got)
	}
	if idx := testutil.LineIndex(view, "Test deck"); idx != 0 {
		t.Errorf("deck title on line %d, want 0", idx)
	}
	if !testutil.ContainsLine(view, "1st of 5") {
		t.Error("header should show the position")
	}
	if !testutil.ContainsLine(view, "Card A") {
		t.Error("active card should be visible")
	}
	if !testutil.ContainsLine(view, "grab") {
		t.Error("footer should show the cursor style")
	}
}

func TestView_ShowsError(t *testing.T) {
	m := newTestModel(t, testDeck(2), state.NewMock())
	m.ErrorMsg = "Failed to load deck: boom"

	if !testutil.ContainsLine(m.View(), "Failed to load deck: boom") {
		t.Error("footer should show the error")
	}
}

func TestView_ZeroSize(t *testing.T) {
	m, err := New(testDeck(2), testConfig(false), state.NewMock())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer m.Carousel.Close()
	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty before the first resize", got)
	}
}

func TestEnforceHeight(t *testing.T) {
	tests := []struct {
		name   string
		view   string
		height int
		want   int
	}{
		{"pad", "a\nb", 4, 4},
		{"truncate", "a\nb\nc", 2, 2},
		{"exact", "a\nb", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(enforceHeight(tt.view, tt.height), "\n")
			if len(got) != tt.want {
				t.Errorf("got %d lines, want %d", len(got), tt.want)
			}
		})
	}
}
