package carousel

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/slider"
)

// frameInterval is the animation tick period (~60 FPS).
const frameInterval = 16 * time.Millisecond

// pose is where a card is drawn, in slider pixels and degrees.
type pose struct {
	X, Y, Rot float64
}

func poseOf(st slider.SlideStyle) pose {
	return pose{X: st.TranslateX, Y: st.TranslateY, Rot: st.Rotation}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func (p pose) lerp(to pose, t float64) pose {
	return pose{
		X:   lerp(p.X, to.X, t),
		Y:   lerp(p.Y, to.Y, t),
		Rot: lerp(p.Rot, to.Rot, t),
	}
}

// frameMsg advances the transition identified by seq.
type frameMsg struct {
	seq int
}

// motion eases the drawn poses from a snapshot towards the slider's
// current layout. The slider itself never animates; it only reports the
// transition the presentation should use.
type motion struct {
	enabled bool

	seq          int
	active       bool
	start        time.Time
	duration     time.Duration
	easing       slider.Easing
	from         map[int]pose
	fromProgress float64
}

// snapshot is the drawn state captured before an update mutates the slider.
type snapshot struct {
	poses    map[int]pose
	progress float64
}

// progress returns the eased completion of the running transition in [0,1].
func (mo *motion) progress(now time.Time) float64 {
	if !mo.active || mo.duration <= 0 {
		return 1
	}
	t := float64(now.Sub(mo.start)) / float64(mo.duration)
	t = math.Max(0, math.Min(1, t))
	if mo.easing == slider.EaseNone {
		return t
	}
	return easeOutCubic(t)
}

func (mo *motion) running(now time.Time) bool {
	return mo.active && now.Sub(mo.start) < mo.duration
}

// begin starts a transition from snap and returns the first frame command.
func (mo *motion) begin(snap snapshot, tr slider.Transition, now time.Time) tea.Cmd {
	if !mo.enabled || !tr.Enabled() {
		mo.active = false
		return nil
	}
	mo.seq++
	mo.active = true
	mo.start = now
	mo.duration = tr.Duration
	mo.easing = tr.Easing
	mo.from = snap.poses
	mo.fromProgress = snap.progress
	return mo.tick()
}

// stop cancels the running transition; the next frame draws the target.
func (mo *motion) stop() {
	mo.active = false
	mo.from = nil
}

func (mo *motion) tick() tea.Cmd {
	seq := mo.seq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// frame handles a tick and schedules the next one while running.
func (mo *motion) frame(msg frameMsg, now time.Time) tea.Cmd {
	if msg.seq != mo.seq || !mo.active {
		return nil
	}
	if !mo.running(now) {
		mo.stop()
		return nil
	}
	return mo.tick()
}

// easeOutCubic decelerates towards the end.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
