package animations

import "fmt"

// Mixer plays one clip at a time out of a fixed set. Each avatar variant owns
// its own mixer.
type Mixer struct {
	clips   map[string]*Clip
	current *Animation
	elapsed float32
}

// NewMixer returns a mixer over clips. Nothing plays until Play is called.
func NewMixer(clips ...*Clip) *Mixer {
	m := &Mixer{clips: make(map[string]*Clip, len(clips))}
	for _, c := range clips {
		m.clips[c.Name] = c
	}
	return m
}

// Play switches to the named clip. Playing the current clip again is a no-op.
func (m *Mixer) Play(name string) error {
	clip, ok := m.clips[name]
	if !ok {
		return fmt.Errorf("animations: unknown clip %q", name)
	}
	if m.current != nil && m.current.Clip == clip {
		return nil
	}
	m.current = NewAnimation(clip)
	return nil
}

// Advance moves playback forward by dt seconds.
func (m *Mixer) Advance(dt float32) {
	m.elapsed += dt
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Current returns the playing animation, or nil.
func (m *Mixer) Current() *Animation {
	return m.current
}

// Phase returns the playing clip's progress, or 0 when idle.
func (m *Mixer) Phase() float32 {
	if m.current == nil {
		return 0
	}
	return m.current.Phase()
}

// Elapsed returns the total time this mixer has been advanced.
func (m *Mixer) Elapsed() float32 {
	return m.elapsed
}
