package hourlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseError describes a malformed hour log line.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Parse reads hour log entries from r. The name is only used in error
// messages and may be empty.
//
// Each non-blank, non-comment line has the form
//
//	DATE DURATION [tag, tag] description
//
// where the bracketed tag list is optional.
func Parse(r io.Reader, name string) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Msg: err.Error()}
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{File: name, Line: lineNo, Msg: err.Error()}
	}

	return entries, nil
}

// ParseFile reads hour log entries from the file at path.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hour log: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

func parseLine(line string) (Entry, error) {
	dateField, rest, ok := strings.Cut(line, " ")
	if !ok {
		return Entry{}, fmt.Errorf("expected \"DATE DURATION [tags] description\"")
	}
	date, err := ParseDate(dateField)
	if err != nil {
		return Entry{}, err
	}

	rest = strings.TrimSpace(rest)
	hoursField, rest, ok := strings.Cut(rest, " ")
	if !ok {
		return Entry{}, fmt.Errorf("missing description")
	}
	hours, err := ParseHours(hoursField)
	if err != nil {
		return Entry{}, err
	}

	rest = strings.TrimSpace(rest)
	var tags []string
	if strings.HasPrefix(rest, "[") {
		tagList, after, ok := strings.Cut(rest[1:], "]")
		if !ok {
			return Entry{}, fmt.Errorf("unterminated tag list")
		}
		for _, tag := range strings.Split(tagList, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
		rest = strings.TrimSpace(after)
	}

	if rest == "" {
		return Entry{}, fmt.Errorf("missing description")
	}

	return Entry{Date: date, Hours: hours, Tags: tags, Description: rest}, nil
}
