package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

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

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed line of vidly's console-encoded log.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  string // trailing JSON object, if any
	Raw     string
}

var lineRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s+(DEBUG|INFO|WARN|ERROR|DPANIC|PANIC|FATAL)\s+(.*)$`)

// Parse splits a log line into its parts. Lines that do not start with a
// timestamp and level (stack traces, wrapped output) come back with only
// Raw and Message set.
func Parse(line string) Entry {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{Message: line, Raw: line}
	}
	entry := Entry{Time: m[1], Level: m[2], Raw: line}
	rest := m[3]
	if i := strings.Index(rest, "\t{"); i >= 0 {
		entry.Message, entry.Fields = rest[:i], strings.TrimSpace(rest[i+1:])
	} else if i := strings.Index(rest, " {"); i >= 0 && strings.HasSuffix(rest, "}") {
		entry.Message, entry.Fields = rest[:i], rest[i+1:]
	} else {
		entry.Message = rest
	}
	entry.Message = strings.TrimSpace(entry.Message)
	return entry
}

var levelRank = map[string]int{
	"DEBUG":  0,
	"INFO":   1,
	"WARN":   2,
	"ERROR":  3,
	"DPANIC": 4,
	"PANIC":  4,
	"FATAL":  4,
}

// AtLeast reports whether the entry's level is at or above min. Entries
// without a level (continuation lines) always pass.
func (e Entry) AtLeast(min string) bool {
	if e.Level == "" || min == "" {
		return true
	}
	want, ok := levelRank[strings.ToUpper(min)]
	if !ok {
		return true
	}
	return levelRank[e.Level] >= want
}

// Filter keeps the lines whose level is at least min.
func Filter(lines []string, min string) []string {
	if min == "" {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if Parse(line).AtLeast(min) {
			out = append(out, line)
		}
	}
	return out
}
