// Package textsrc acquires input text from arguments, files and stdin.
package textsrc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultText is scored when no text is given.
const DefaultText = "僕は鰻だ！"

// StdinPath selects standard input in Load.
const StdinPath = "-"

// ErrInvalidUTF8 reports input that cannot be decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// FromArgs returns the first positional argument, or fallback when there is none.
func FromArgs(args []string, fallback string) (string, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	if err := Validate(args[0]); err != nil {
		return "", err
	}
	return args[0], nil
}

// Load reads the whole file at path. StdinPath reads from stdin instead.
func Load(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		return Read(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read consumes r and validates the result as UTF-8.
func Read(r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("no input reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := string(data)
	if err := Validate(text); err != nil {
		return "", err
	}
	return text, nil
}

// Validate returns ErrInvalidUTF8 with the offset of the first bad byte.
func Validate(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size <= 1 {
				return fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, i)
			}
		}
	}
	return ErrInvalidUTF8
}

// SplitLines returns the non-blank lines of text, trimmed.
func SplitLines(text string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
