package narration

import "testing"

func TestPickVoice(t *testing.T) {
	testCases := []struct {
		name     string
		voices   []Voice
		filipino bool
		want     string // expected voice name, "" = none
	}{
		{
			name:     "filipino story picks fil-PH",
			voices:   []Voice{{Name: "Daniel", Lang: "en-GB"}, {Name: "Rosa", Lang: "fil-PH"}},
			filipino: true,
			want:     "Rosa",
		},
		{
			name:     "english story picks en-GB",
			voices:   []Voice{{Name: "Daniel", Lang: "en-GB"}, {Name: "Rosa", Lang: "fil-PH"}},
			filipino: false,
			want:     "Daniel",
		},
		{
			name:     "preference order wins over voice order",
			voices:   []Voice{{Name: "Brit", Lang: "en-GB"}, {Name: "Sam", Lang: "en-US"}},
			filipino: false,
			want:     "Sam", // en-us precedes en-gb in the preference list
		},
		{
			name:     "tagalog tag matches filipino family",
			voices:   []Voice{{Name: "Maria", Lang: "tl-PH"}},
			filipino: true,
			want:     "Maria",
		},
		{
			name:     "base language fallback",
			voices:   []Voice{{Name: "Generic", Lang: "tl"}},
			filipino: true,
			want:     "Generic",
		},
		{
			name:     "no match returns nil",
			voices:   []Voice{{Name: "Daniel", Lang: "en-GB"}},
			filipino: true,
			want:     "",
		},
		{
			name:     "empty voice list",
			voices:   nil,
			filipino: false,
			want:     "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			voice := PickVoice(tc.voices, tc.filipino)
			if tc.want == "" {
				if voice != nil {
					t.Errorf("Expected no voice, got %q", voice.Name)
				}
				return
			}
			if voice == nil {
				t.Fatalf("Expected voice %q, got nil", tc.want)
			}
			if voice.Name != tc.want {
				t.Errorf("Expected voice %q, got %q", tc.want, voice.Name)
			}
		})
	}
}
