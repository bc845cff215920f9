package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"  Airplane  ", 20, "Airplane"},
		{"Wedding Crashers", 8, "Wedding…"},
		{"Heat", 1, "H"},
		{"Heat", 0, "Heat"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	if got := fit("Big", 5); got != "Big  " {
		t.Fatalf("fit = %q, want %q", got, "Big  ")
	}
	if got := fitLeft("3.5", 5); got != "  3.5" {
		t.Fatalf("fitLeft = %q, want %q", got, "  3.5")
	}
	if got := fit("Gone Girl", 5); got != "Gone…" {
		t.Fatalf("fit = %q, want %q", got, "Gone…")
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp(5,0,3) = %d, want 3", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp(-1,0,3) = %d, want 0", got)
	}
	if got := clamp(2, 0, -1); got != 0 {
		t.Fatalf("clamp(2,0,-1) = %d, want 0", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
	if got := GetTheme("nope").Name; got != "Nightfox" {
		t.Fatalf("GetTheme fallback = %q, want Nightfox", got)
	}
}
