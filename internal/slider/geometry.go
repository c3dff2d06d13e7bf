package slider

import (
	"math"
	"strconv"
	"time"
)

const (
	// dragRotation converts drag pixels into extra degrees of rotation.
	dragRotation = 0.01
	// dragLift converts drag pixels into vertical drag influence.
	dragLift = 0.2
	// liftFalloff controls how quickly the lift saturates for cards on
	// the trailing side of a drag.
	liftFalloff = 0.3
	// distantOffset is the first offset hidden by HideDistantSlides.
	distantOffset = 2
)

// View is the part of the slider state the geometry engine reads.
type View struct {
	ActiveIndex int
	TotalItems  int
	IsDragging  bool
	DragOffset  float64
}

// SlideStyle is the visual transform of one item.
type SlideStyle struct {
	Offset     int
	TranslateX float64
	TranslateY float64
	Rotation   float64
	ZIndex     int
	Visible    bool
	MaxWidth   float64
	Transition Transition
}

// View snapshots the state the geometry engine needs.
func (s *Slider[T]) View() View {
	return View{
		ActiveIndex: s.active,
		TotalItems:  len(s.extended),
		IsDragging:  s.dragging,
		DragOffset:  s.dragOffset,
	}
}

// SlideStyle computes the transform of the item at index.
func (s *Slider[T]) SlideStyle(index int) SlideStyle {
	return ComputeSlideStyle(index, s.View(), s.cfg)
}

// SlideStyles computes the transform of every laid out item.
func (s *Slider[T]) SlideStyles() []SlideStyle {
	v := s.View()
	out := make([]SlideStyle, v.TotalItems)
	for i := range out {
		out[i] = ComputeSlideStyle(i, v, s.cfg)
	}
	return out
}

// Offset returns the signed distance of index from the active item.
func (s *Slider[T]) Offset(index int) int {
	return Offset(index, s.View(), s.cfg)
}

// Offset returns the signed distance of index from the active item.
// When cfg.Loop is set the shortest way around is taken; the comparison
// with half the item count is strict, so an item exactly opposite keeps
// its direct offset.
func Offset(index int, v View, cfg Config) int {
	direct := index - v.ActiveIndex
	if cfg.Loop {
		half := float64(v.TotalItems) / 2
		if float64(direct) > half {
			return direct - v.TotalItems
		}
		if float64(direct) < -half {
			return direct + v.TotalItems
		}
	}
	return direct
}

// ComputeSlideStyle maps an item index and the slider state to its
// transform. It is pure: the same inputs always yield the same output.
func ComputeSlideStyle(index int, v View, cfg Config) SlideStyle {
	offset := Offset(index, v, cfg)
	o := float64(offset)
	abs := math.Abs(o)

	var drag float64
	if v.IsDragging {
		drag = v.DragOffset
	}

	style := SlideStyle{
		Offset:     offset,
		TranslateX: o*(cfg.SlideWidth+cfg.Gap) + drag,
		Rotation:   o*cfg.RotationAngle + drag*dragRotation,
		TranslateY: dragTranslateY(o, drag) + perspectiveY(abs, cfg),
		ZIndex:     v.TotalItems - int(abs),
		Visible:    !cfg.HideDistantSlides || abs < distantOffset,
		MaxWidth:   cfg.SlideWidth,
		Transition: TransitionEased,
	}
	if v.IsDragging {
		style.Transition = TransitionNone
	}
	return style
}

// dragTranslateY pushes cards on the leading side of a drag down and lifts
// the trailing ones, saturating with distance.
func dragTranslateY(offset, drag float64) float64 {
	if drag == 0 {
		return 0
	}
	influence := math.Abs(drag) * dragLift
	if drag > 0 {
		if offset >= 0 {
			return offset * influence
		}
		return -influence * (1 - math.Min(1, -offset*liftFalloff))
	}
	if offset <= 0 {
		return -offset * influence
	}
	return -influence * (1 - math.Min(1, offset*liftFalloff))
}

// perspectiveY drops neighbours by a fixed amount and farther cards
// quadratically.
func perspectiveY(abs float64, cfg Config) float64 {
	switch {
	case abs == 1:
		return cfg.FirstOffsetY
	case abs > 1:
		return cfg.FirstOffsetY + abs*abs*cfg.ProgressiveOffsetY
	}
	return 0
}

// Transform renders the style as a CSS transform value.
func (st SlideStyle) Transform() string {
	return "translateX(" + formatPx(st.TranslateX) + ") " +
		"translateY(" + formatPx(st.TranslateY) + ") " +
		"rotate(" + formatFloat(st.Rotation) + "deg)"
}

// Visibility returns "visible" or "hidden".
func (st SlideStyle) Visibility() string {
	if st.Visible {
		return "visible"
	}
	return "hidden"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatPx(f float64) string {
	return formatFloat(f) + "px"
}

func formatSeconds(d time.Duration) string {
	return formatFloat(d.Seconds()) + "s"
}
