// Package dataset supplies raw fixed-width sample lines to the parser.
//
// A set of illustrative fixed-width records is compiled into the binary and
// decoded only when a caller asks for it. The readings in it are made up to
// exercise the layout; they are not measurements from the schools named.
package dataset

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed data/sample_lines.txt
var sampleLines []byte

// Source yields raw fixed-width lines in their original order.
type Source interface {
	Lines(ctx context.Context) ([]string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]string, error)

// Lines calls f(ctx).
func (f SourceFunc) Lines(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// Embedded returns the built-in illustrative records.
func Embedded() Source {
	return SourceFunc(func(ctx context.Context) ([]string, error) {
		return FromReader(bytes.NewReader(sampleLines)).Lines(ctx)
	})
}

// Static returns a source over an in-memory list of lines.
func Static(lines ...string) Source {
	return SourceFunc(func(ctx context.Context) ([]string, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := make([]string, len(lines))
		copy(out, lines)
		return out, nil
	})
}

// FromReader returns a source that reads r to the end on first use. Blank
// lines are dropped and a trailing carriage return is stripped from each
// line. The reader is consumed once; later calls return the same lines.
// It is safe for concurrent use.
func FromReader(r io.Reader) Source {
	var (
		mu    sync.Mutex
		lines []string
		err   error
		done  bool
	)
	return SourceFunc(func(ctx context.Context) ([]string, error) {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		mu.Lock()
		defer mu.Unlock()
		if !done {
			lines, err = readLines(r)
			done = true
		}
		if err != nil {
			return nil, err
		}
		out := make([]string, len(lines))
		copy(out, lines)
		return out, nil
	})
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sample lines: %w", err)
	}
	return lines, nil
}
