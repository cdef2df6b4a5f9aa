package animations

// Clip is a looping keyframe range sampled at a fixed rate.
type Clip struct {
	Name            string
	First           int
	Last            int
	Step            int     // how many indices do we move per frame
	FramesPerSecond float32 // playback rate
}

// Duration returns the length of one pass through the clip in seconds.
func (c *Clip) Duration() float32 {
	if c.FramesPerSecond <= 0 || c.Step <= 0 {
		return 0
	}
	frames := (c.Last-c.First)/c.Step + 1
	return float32(frames) / c.FramesPerSecond
}

// Animation is the playback cursor of one clip.
type Animation struct {
	Clip *Clip
	time float32
}

// Update advances playback by dt seconds, wrapping at the end of the clip.
func (a *Animation) Update(dt float32) {
	if a.Clip == nil {
		return
	}
	a.time += dt

	d := a.Clip.Duration()
	if d <= 0 {
		a.time = 0
		return
	}
	for a.time >= d {
		// loop back to the beginning
		a.time -= d
	}
}

// Phase returns playback progress through the clip in [0, 1).
func (a *Animation) Phase() float32 {
	if a.Clip == nil {
		return 0
	}
	d := a.Clip.Duration()
	if d <= 0 {
		return 0
	}
	return a.time / d
}

func (a *Animation) Restart() {
	a.time = 0
}

func NewAnimation(clip *Clip) *Animation {
	a := &Animation{Clip: clip}
	a.Restart()
	return a
}
