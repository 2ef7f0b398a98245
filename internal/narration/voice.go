package narration

import "strings"

// Voice is one synthesizer voice as reported by the backend.
type Voice struct {
	Name string `json:"name"`
	Lang string `json:"lang"`
}

var (
	filipinoPrefs = []string{"fil-ph", "tl-ph", "fil", "tl"}
	englishPrefs  = []string{"en-us", "en-gb", "en"}

	filipinoBases = []string{"fil", "tl"}
	englishBases  = []string{"en"}
)

// Speech rates: Filipino narration is slowed slightly.
const (
	RateFilipino = 0.95
	RateEnglish  = 1.0
)

// Default utterance language tags when no matching voice exists.
const (
	LangFilipino = "fil-PH"
	LangEnglish  = "en-US"
)

// PickVoice selects the first voice whose tag contains a preferred
// substring, walking the preference list in order; then falls back to
// any voice whose tag starts with the bare base language. Returns nil
// when nothing matches, which means the engine default is used.
func PickVoice(voices []Voice, filipino bool) *Voice {
	prefs, bases := englishPrefs, englishBases
	if filipino {
		prefs, bases = filipinoPrefs, filipinoBases
	}

	for _, p := range prefs {
		for i := range voices {
			if strings.Contains(strings.ToLower(voices[i].Lang), p) {
				return &voices[i]
			}
		}
	}
	for i := range voices {
		for _, b := range bases {
			if strings.HasPrefix(strings.ToLower(voices[i].Lang), b) {
				return &voices[i]
			}
		}
	}
	return nil
}
