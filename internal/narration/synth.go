package narration

import "time"

// Utterance is one narration request handed to the backend. Boundary
// and end callbacks are delivered asynchronously while it plays.
type Utterance struct {
	Text  string
	Lang  string
	Rate  float64
	Pitch float64

	// OnBoundary receives approximate character offsets during
	// playback. OnEnd fires once when the utterance finishes on its
	// own (not when cancelled).
	OnBoundary func(charIndex int)
	OnEnd      func()
}

// Synthesizer is the external narration backend. At most one utterance
// is active at a time; Speak replaces nothing by itself, the engine
// cancels first.
type Synthesizer interface {
	Supported() bool
	// Voices enumerates available voices. Some backends stall here
	// indefinitely; callers bound the wait with VoicesWithin.
	Voices() []Voice
	Speak(u *Utterance) error
	Pause()
	Resume()
	Cancel()
}

// DefaultVoiceWait bounds voice enumeration before narration proceeds
// with whatever voices (possibly none) are available.
const DefaultVoiceWait = 650 * time.Millisecond

// VoicesWithin waits up to timeout for the backend's voice list.
func VoicesWithin(s Synthesizer, timeout time.Duration) []Voice {
	done := make(chan []Voice, 1)
	go func() {
		done <- s.Voices()
	}()
	select {
	case voices := <-done:
		return voices
	case <-time.After(timeout):
		return nil
	}
}

// nullSynthesizer is wired when no speech backend is configured; every
// play attempt then surfaces the unsupported advisory.
type nullSynthesizer struct{}

func NewNullSynthesizer() Synthesizer { return nullSynthesizer{} }

func (nullSynthesizer) Supported() bool           { return false }
func (nullSynthesizer) Voices() []Voice           { return nil }
func (nullSynthesizer) Speak(u *Utterance) error  { return ErrNarrationUnsupported }
func (nullSynthesizer) Pause()                    {}
func (nullSynthesizer) Resume()                   {}
func (nullSynthesizer) Cancel()                   {}
