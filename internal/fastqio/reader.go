package fastqio

import (
	"fmt"
	"io"
	"strings"
)

// ReadLines loads the whole file and splits it into lines. "\n", "\r\n" and
// a lone "\r" all end a line and are stripped. A final line without a
// terminator is kept; an empty file yields no lines.
func ReadLines(path string) ([]string, error) {
	if err := CheckInput(path); err != nil {
		return nil, err
	}
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text the way ReadLines does.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
