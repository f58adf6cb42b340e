package sample

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNegativeLevel is wrapped by a ParseError when the level column holds a
// negative number.
var ErrNegativeLevel = errors.New("level must not be negative")

// ParseLine decodes one fixed-width record. Columns past the end of the line
// decode as empty strings; only a malformed level column is an error.
func ParseLine(line string) (Sample, error) {
	chars := []rune(line)

	raw := column(chars, LevelStart, LevelEnd)
	level, err := parseLevel(raw)
	if err != nil {
		return Sample{}, &ParseError{Field: "level", Value: raw, Err: err}
	}

	return Sample{
		Level:    level,
		District: strings.TrimSpace(column(chars, DistrictStart, DistrictEnd)),
		School:   strings.TrimSpace(column(chars, SchoolStart, SchoolEnd)),
		Location: strings.TrimSpace(column(chars, LocationStart, len(chars))),
	}, nil
}

// ParseLines decodes every line in order. Parsing stops at the first bad
// record and the returned ParseError carries its 1-based line number.
func ParseLines(lines []string) ([]Sample, error) {
	samples := make([]Sample, 0, len(lines))
	for i, line := range lines {
		s, err := ParseLine(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = i + 1
			}
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// Format renders a sample in the fixed-width layout. Fields wider than their
// column are written as-is, so Format only round-trips through ParseLine for
// samples that fit.
func Format(s Sample) string {
	return fmt.Sprintf("%04d%s|%*s|%*s|%s",
		s.Level, Unit,
		DistrictWidth, s.District,
		SchoolWidth, s.School,
		s.Location)
}

// column returns chars[start:end] clamped to the available characters.
func column(chars []rune, start, end int) string {
	if end > len(chars) {
		end = len(chars)
	}
	if start >= end {
		return ""
	}
	return string(chars[start:end])
}

func parseLevel(raw string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if level < 0 {
		return 0, ErrNegativeLevel
	}
	return level, nil
}
