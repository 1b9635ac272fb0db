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
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read partial wraps (3)", maxLines: 3, expected: expectedAll[7:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
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
	if len(got) != 0 {
		t.Fatalf("Read() = %v, want no lines", got)
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		line string
		want Level
	}{
		{`time="2026-10-16T09:00:00Z" level=info msg="data refreshed" past=50 upcoming=18`, LevelInfo},
		{`time="2026-10-16T09:00:00Z" level=warning msg="fetch failed, treating as empty"`, LevelWarn},
		{`time="2026-10-16T09:00:00Z" level=error msg="boom"`, LevelError},
		{`time="2026-10-16T09:00:00Z" level=debug msg="GET /rockets"`, LevelDebug},
		{`plain text`, LevelNone},
		{`level=mystery`, LevelNone},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.line); got != tt.want {
			t.Errorf("LevelOf(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	lines := []string{
		`level=debug msg=a`,
		`level=info msg=b`,
		`continuation`,
		`level=warning msg=c`,
		`level=error msg=d`,
	}

	if got := Filter(lines, LevelNone); !reflect.DeepEqual(got, lines) {
		t.Fatalf("Filter(None) = %v, want all lines", got)
	}
	want := []string{`level=warning msg=c`, `level=error msg=d`}
	if got := Filter(lines, LevelWarn); !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter(Warn) = %v, want %v", got, want)
	}
}
