package sanitize

import "testing"

func TestFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Normal Title", "Normal Title"},
		{"Title/With\\Slashes", "Title_With_Slashes"},
		{"Title:With*Special?Chars", "Title_With_Special_Chars"},
		{"file<with>brackets", "file_with_brackets"},
		{"file|with|pipes", "file_with_pipes"},
		{"file\"with\"quotes", "file_with_quotes"},
		{"tab\there", "tab_here"},
		{"  Trimmed  ", "Trimmed"},
		{"...dots...", "dots"},
		{" . mixed . ", "mixed"},
		{"", "track"},
		{"...", "track"},
		{"???", "___"}, // replaced characters are kept, only dots and spaces trim
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Filename(tt.input)
			if got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilename_Idempotent(t *testing.T) {
	inputs := []string{
		"Title:With*Special?Chars",
		"...dots...",
		"  spaced  ",
		" . a . ",
		"",
		"already clean",
	}

	for _, input := range inputs {
		once := Filename(input)
		twice := Filename(once)
		if once != twice {
			t.Errorf("Filename not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestMetadataValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Master of Puppets", `"Master of Puppets"`},
		{"quotes", `Say "Hello"`, `"Say \"Hello\""`},
		{"backslash", `back\slash`, `"back\\slash"`},
		{"backslash then quote", `\"`, `"\\\""`},
		{"empty", "", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MetadataValue(tt.input); got != tt.want {
				t.Errorf("MetadataValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitDash(t *testing.T) {
	tests := []struct {
		input     string
		wantLeft  string
		wantRight string
		wantOK    bool
	}{
		{"Metallica - Master of Puppets", "Metallica", "Master of Puppets", true},
		{"Foo Fighters - The Colour and the Shape", "Foo Fighters", "The Colour and the Shape", true},
		{"Artist – En Dash Album", "Artist", "En Dash Album", true},
		{"Artist — Em Dash Album", "Artist", "Em Dash Album", true},
		{"NoDelimiterHere", "", "", false},
		{"- OnlyAlbum", "", "", false},
		{"OnlyArtist -", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			left, right, ok := SplitDash(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("SplitDash(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("SplitDash(%q) = (%q, %q), want (%q, %q)",
					tt.input, left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestSplitDash_FirstQualifyingDelimiter(t *testing.T) {
	// The hyphen is tried before the en dash even when the en dash
	// appears earlier in the string.
	left, right, ok := SplitDash("a – b - c")
	if !ok {
		t.Fatal("expected a split")
	}
	if left != "a – b" || right != "c" {
		t.Errorf("got (%q, %q), want (%q, %q)", left, right, "a – b", "c")
	}
}
