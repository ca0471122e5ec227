package location

import "testing"

func TestExtractMention(t *testing.T) {
	reg, err := NewRegistry(DefaultConfig())
	if err != nil {
		t.Fatalf("NewRegistry(DefaultConfig()) error: %v", err)
	}
	r := NewResolver(reg)

	tests := []struct {
		name     string
		sentence string
		wantKey  string
		wantOK   bool
	}{
		{"near trigger", "I need parking near the library", "library", true},
		{"close to with punctuation", "Where can I park close to the Staller Center?", "staller", true},
		{"abbreviation after by", "Any lots by the SAC?", "student-activities-center", true},
		{"going to with trailing filler", "going to the wang center tomorrow", "wang-center", true},
		{"visiting a key", "I'm visiting the hospital", "hospital", true},
		{"connector cuts phrase", "parking near the library for my 9am class", "library", true},
		{"trigger phrase beats registry order", "going to the staller center from the library", "staller", true},
		{"building suffix", "parking for the heavy engineering building please", "engineering", true},
		{"literal alias fallback", "lavalle parking?", "stadium", true},
		{"nothing recognizable", "what's the weather like", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ExtractMention(tt.sentence)
			if ok != tt.wantOK {
				t.Fatalf("ExtractMention(%q) ok = %v, want %v", tt.sentence, ok, tt.wantOK)
			}
			if got != tt.wantKey {
				t.Errorf("ExtractMention(%q) = %q, want %q", tt.sentence, got, tt.wantKey)
			}
		})
	}
}

func TestTrimPhrase(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"library", "library"},
		{"library for my class", "library"},
		{"wang center tomorrow", "wang center"},
		{"sac now please", "sac"},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := trimPhrase(tc.input); got != tc.expected {
			t.Errorf("trimPhrase(%q) = %q; want %q", tc.input, got, tc.expected)
		}
	}
}
