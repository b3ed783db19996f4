package core

// DefaultFrameDelay is the time in milliseconds a sprite frame stays on screen.
const DefaultFrameDelay = 100

// Clip is a contiguous range of frames on a sprite sheet.
type Clip struct {
	First, Last int
	Loop        bool
}

// Unit sprite sheet layout.
var (
	ClipDead = Clip{First: 0, Last: 5}
	ClipFire = Clip{First: 6, Last: 7}
	ClipIdle = Clip{First: 8, Last: 9, Loop: true}
)

// Animation steps through a Clip. Non-looping clips hold their last frame.
type Animation struct {
	clip    Clip
	index   int
	delay   int
	elapsed int
}

// NewAnimation starts clip at its first frame. A delay <= 0 advances one frame per update.
func NewAnimation(clip Clip, delay int) Animation {
	return Animation{clip: clip, delay: delay}
}

// Next advances the animation by elapsed milliseconds and returns the current frame.
func (a *Animation) Next(elapsed int) int {
	a.elapsed += elapsed
	if a.delay <= 0 || a.elapsed >= a.delay {
		a.elapsed = 0
		length := a.clip.Last - a.clip.First + 1
		switch {
		case a.index < length-1:
			a.index++
		case a.clip.Loop:
			a.index = 0
		}
	}
	return a.Frame()
}

// Frame is the sprite sheet frame currently shown.
func (a *Animation) Frame() int {
	return a.clip.First + a.index
}

// LastFrame reports whether the clip is showing its final frame.
func (a *Animation) LastFrame() bool {
	return a.clip.First+a.index == a.clip.Last
}
