package locale

import (
	"testing"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(DefaultLanguage) })

	tests := []struct {
		requested string
		want      string
	}{
		{"en", "en"},
		{"de", "de"},
		{"de_DE.UTF-8", "de"},
		{" EN ", "en"},
		{"xx", DefaultLanguage},
		{"", DefaultLanguage},
	}
	for _, tt := range tests {
		if got := Init(tt.requested); got != tt.want {
			t.Errorf("Init(%q) = %q, want %q", tt.requested, got, tt.want)
		}
		if activeLang != tt.want {
			t.Errorf("active language after Init(%q) = %q, want %q", tt.requested, activeLang, tt.want)
		}
	}
}

func TestGet(t *testing.T) {
	t.Cleanup(func() { Init(DefaultLanguage) })

	Init("en")
	if got := Get("SUMMARY", 1, 2, 3); got != "Found 1 of 2 treasures, path length 3." {
		t.Errorf("Get(SUMMARY) = %q", got)
	}
	if got := Get("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("Get(NOT_A_KEY) = %q, want key unchanged", got)
	}

	if got := Get("MAP_LOAD_FAILED", "100%"); got != "Something went wrong when opening the map file: 100%" {
		t.Errorf("Get(MAP_LOAD_FAILED) = %q, want argument inserted once", got)
	}

	Init("de")
	if got := Get("VALIDATE_CHAMBERS", 7); got != "Kammern: 7" {
		t.Errorf("Get(VALIDATE_CHAMBERS) in de = %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Errorf("Languages() = %v, want [de en]", langs)
	}
}
