package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
	}{
		{
			name: "with fields",
			line: `2026-01-02 15:04:05 WARN catalog fetch failed {"attempt": 2}`,
			want: Entry{Time: "2026-01-02 15:04:05", Level: "WARN", Message: "catalog fetch failed", Fields: `{"attempt": 2}`},
		},
		{
			name: "without fields",
			line: "2026-01-02 15:04:05 INFO catalog loaded",
			want: Entry{Time: "2026-01-02 15:04:05", Level: "INFO", Message: "catalog loaded"},
		},
		{
			name: "continuation line",
			line: "\tgithub.com/five82/vidly/internal/app.load",
			want: Entry{Message: "\tgithub.com/five82/vidly/internal/app.load"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			tt.want.Raw = tt.line
			if got != tt.want {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	lines := []string{
		"2026-01-02 15:04:05 DEBUG toggled like",
		"2026-01-02 15:04:05 INFO catalog loaded",
		"2026-01-02 15:04:06 ERROR catalog fetch failed",
		"\tstack frame",
	}

	got := Filter(lines, "warn")
	want := []string{lines[2], lines[3]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(warn) = %v, want %v", got, want)
	}
	if got := Filter(lines, ""); len(got) != len(lines) {
		t.Errorf("Filter(\"\") returned %d lines, want %d", len(got), len(lines))
	}
}
