package narration

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"reading-service/internal/models"
)

type State string

const (
	StateIdle     State = "idle"
	StateSpeaking State = "speaking"
	StatePaused   State = "paused"
)

var (
	// ErrNarrationUnsupported means the runtime has no speech
	// capability at all; playback controls become inert.
	ErrNarrationUnsupported = errors.New("speech synthesis is not available")
	ErrSessionNotFound      = errors.New("narration session not found")
)

// AdvisoryNoFilipinoVoice is the non-blocking notice shown when a
// Filipino story plays without a Filipino/Tagalog voice installed.
const AdvisoryNoFilipinoVoice = "No Filipino/Tagalog voice is installed; narration uses the default voice."

type session struct {
	id         string
	storyID    string
	state      State
	voice      string
	lang       string
	rate       float64
	advisory   string
	tokens     []Token
	highlight  int // index into tokens, -1 when nothing is highlighted
	generation uint64
}

// Status is a point-in-time snapshot of one narration session.
type Status struct {
	ID              string  `json:"id"`
	StoryID         string  `json:"story_id"`
	State           State   `json:"state"`
	Voice           string  `json:"voice,omitempty"`
	Lang            string  `json:"lang"`
	Rate            float64 `json:"rate"`
	Advisory        string  `json:"advisory,omitempty"`
	Highlight       int     `json:"highlight"`
	HighlightedWord string  `json:"highlighted_word,omitempty"`
	WordCount       int     `json:"word_count"`
}

// Engine owns every narration session and the single active utterance.
// Boundary and end callbacks carry the generation they were created
// under; events from a superseded or cancelled utterance are discarded.
type Engine struct {
	synth     Synthesizer
	voiceWait time.Duration

	mu         sync.Mutex
	sessions   map[string]*session
	activeID   string
	generation uint64
}

func NewEngine(synth Synthesizer) *Engine {
	return &Engine{
		synth:     synth,
		voiceWait: DefaultVoiceWait,
		sessions:  map[string]*session{},
	}
}

// SetVoiceWait overrides the bounded wait used for voice enumeration.
func (e *Engine) SetVoiceWait(d time.Duration) {
	e.voiceWait = d
}

func (e *Engine) Supported() bool {
	return e.synth.Supported()
}

// Start begins narrating a story. Any session still speaking or paused
// is fully stopped first, so at most one utterance is ever active.
func (e *Engine) Start(story *models.Story) (Status, error) {
	if !e.synth.Supported() {
		return Status{}, ErrNarrationUnsupported
	}

	// Enumeration can stall on some backends; bound it before
	// touching engine state.
	voices := VoicesWithin(e.synth, e.voiceWait)

	filipino := story.IsFilipino()
	voice := PickVoice(voices, filipino)

	s := &session{
		id:        uuid.NewString(),
		storyID:   story.ID,
		state:     StateSpeaking,
		tokens:    Tokenize(story.Content),
		highlight: -1,
		rate:      RateEnglish,
		lang:      LangEnglish,
	}
	if filipino {
		s.rate = RateFilipino
		s.lang = LangFilipino
		if voice == nil {
			s.advisory = AdvisoryNoFilipinoVoice
		}
	}
	if voice != nil {
		s.voice = voice.Name
		s.lang = voice.Lang
	}

	e.mu.Lock()
	e.stopActiveLocked()
	e.generation++
	s.generation = e.generation
	e.sessions[s.id] = s
	e.activeID = s.id
	gen := s.generation
	id := s.id
	e.mu.Unlock()

	u := &Utterance{
		Text:  story.Content,
		Lang:  s.lang,
		Rate:  s.rate,
		Pitch: 1,
		OnBoundary: func(charIndex int) {
			e.onBoundary(id, gen, charIndex)
		},
		OnEnd: func() {
			e.onEnd(id, gen)
		},
	}
	if err := e.synth.Speak(u); err != nil {
		e.mu.Lock()
		delete(e.sessions, id)
		if e.activeID == id {
			e.activeID = ""
		}
		e.mu.Unlock()
		return Status{}, err
	}

	return e.Status(id)
}

// Pause suspends the active utterance. No-op when the runtime has no
// speech capability.
func (e *Engine) Pause(id string) error {
	if !e.synth.Supported() {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if s.state == StateSpeaking {
		e.synth.Pause()
		s.state = StatePaused
	}
	return nil
}

func (e *Engine) Resume(id string) error {
	if !e.synth.Supported() {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if s.state == StatePaused {
		e.synth.Resume()
		s.state = StateSpeaking
	}
	return nil
}

// Stop cancels the in-flight utterance and clears highlighting
// synchronously; late boundary events from the cancelled utterance are
// discarded by the generation check.
func (e *Engine) Stop(id string) error {
	if !e.synth.Supported() {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if s.state != StateIdle {
		e.synth.Cancel()
		s.state = StateIdle
		s.highlight = -1
		e.generation++
	}
	if e.activeID == id {
		e.activeID = ""
	}
	return nil
}

func (e *Engine) Status(id string) (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok {
		return Status{}, ErrSessionNotFound
	}
	return e.snapshotLocked(s), nil
}

func (e *Engine) snapshotLocked(s *session) Status {
	status := Status{
		ID:        s.id,
		StoryID:   s.storyID,
		State:     s.state,
		Voice:     s.voice,
		Lang:      s.lang,
		Rate:      s.rate,
		Advisory:  s.advisory,
		Highlight: s.highlight,
	}
	for _, t := range s.tokens {
		if t.Word {
			status.WordCount++
		}
	}
	if s.highlight >= 0 && s.highlight < len(s.tokens) {
		status.HighlightedWord = s.tokens[s.highlight].Text
	}
	return status
}

// stopActiveLocked cancels whatever is currently speaking or paused.
func (e *Engine) stopActiveLocked() {
	if e.activeID == "" {
		return
	}
	if s := e.sessions[e.activeID]; s != nil && s.state != StateIdle {
		e.synth.Cancel()
		s.state = StateIdle
		s.highlight = -1
	}
	e.activeID = ""
	e.generation++
}

func (e *Engine) onBoundary(id string, gen uint64, charIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok || s.generation != gen || gen != e.generation {
		return // stale event from a superseded utterance
	}
	if s.state != StateSpeaking {
		return
	}
	if idx := TokenAt(s.tokens, charIndex); idx >= 0 {
		s.highlight = idx
	}
}

func (e *Engine) onEnd(id string, gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[id]
	if !ok || s.generation != gen || gen != e.generation {
		return
	}
	s.state = StateIdle
	s.highlight = -1
	if e.activeID == id {
		e.activeID = ""
	}
}
