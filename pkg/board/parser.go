package board

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseFile loads a board layout from a plain text file: one row per line,
// letters for ship cells, spaces for water. Trailing newlines are ignored
// and short rows are padded to the longest row.
func ParseFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening board file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading board file: %w", err)
	}

	// Drop trailing blank lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}

	width := 0
	for _, line := range lines {
		if len([]rune(line)) > width {
			width = len([]rune(line))
		}
	}
	for i, line := range lines {
		if pad := width - len([]rune(line)); pad > 0 {
			lines[i] = line + strings.Repeat(string(EmptyCell), pad)
		}
	}

	b, err := NewFromLayout(lines)
	if err != nil {
		return nil, fmt.Errorf("error parsing board layout from %s: %w", path, err)
	}
	return b, nil
}
