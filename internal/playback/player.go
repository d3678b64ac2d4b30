package playback

import (
	"strconv"
	"time"
)

// DefaultInterval is the wall-clock gap between animated frames.
const DefaultInterval = 100 * time.Millisecond

// Player is the animation cursor. It starts on frame 0, the static initial
// pose, then walks frames 1..N-1 once and stops on the last one.
type Player struct {
	frames   int
	interval time.Duration
	cursor   int
	elapsed  time.Duration
}

func New(frames int, interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if frames < 0 {
		frames = 0
	}
	return &Player{frames: frames, interval: interval}
}

func (p *Player) Cursor() int             { return p.cursor }
func (p *Player) Frames() int             { return p.frames }
func (p *Player) Interval() time.Duration { return p.interval }

// Label is the text shown for the current frame.
func (p *Player) Label() string { return Label(p.cursor) }

// Done reports whether the last frame has been reached.
func (p *Player) Done() bool { return p.cursor >= p.frames-1 }

// Step moves to the next frame. It returns false once playback is over.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	p.cursor++
	return true
}

// Advance feeds elapsed wall-clock time into the player and steps once per
// whole interval. It returns the number of frames stepped.
func (p *Player) Advance(dt time.Duration) int {
	if p.Done() {
		return 0
	}
	p.elapsed += dt
	stepped := 0
	for p.elapsed >= p.interval && p.Step() {
		p.elapsed -= p.interval
		stepped++
	}
	if p.Done() {
		p.elapsed = 0
	}
	return stepped
}

// Progress is the fraction of the animated range already shown.
func (p *Player) Progress() float64 {
	if p.frames <= 1 {
		return 1
	}
	return float64(p.cursor) / float64(p.frames-1)
}

// Remaining is the wall-clock time left until the last frame.
func (p *Player) Remaining() time.Duration {
	if p.Done() {
		return 0
	}
	return time.Duration(p.frames-1-p.cursor)*p.interval - p.elapsed
}

// Indices lists the animated frame indices for a table of n rows: 1..n-1.
// Frame 0 is the initial pose and is not replayed.
func Indices(n int) []int {
	if n <= 1 {
		return []int{}
	}
	idx := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}

// Duration is how long a full playback of n rows takes at interval.
func Duration(n int, interval time.Duration) time.Duration {
	if n <= 1 {
		return 0
	}
	return time.Duration(n-1) * interval
}

func Label(i int) string { return strconv.Itoa(i) }
