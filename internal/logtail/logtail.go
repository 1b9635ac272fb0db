package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Level is the severity parsed out of a diagnostics log line.
type Level int

const (
	LevelNone Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelField = regexp.MustCompile(`\blevel=(\w+)`)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return ring[:count:count], nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[idx:]...)
	lines = append(lines, ring[:idx]...)
	return lines, nil
}

// LevelOf extracts the level=... field written by the logrus text formatter.
func LevelOf(line string) Level {
	m := levelField.FindStringSubmatch(line)
	if m == nil {
		return LevelNone
	}
	switch strings.ToLower(m[1]) {
	case "trace", "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error", "fatal", "panic":
		return LevelError
	default:
		return LevelNone
	}
}

// Filter keeps lines at or above min. LevelNone lines (continuations,
// foreign output) are kept only when min is LevelNone.
func Filter(lines []string, min Level) []string {
	if min == LevelNone {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if LevelOf(line) >= min {
			out = append(out, line)
		}
	}
	return out
}
