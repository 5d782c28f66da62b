package giftlist

import (
	"bufio"
	"io"
	"strings"
)

// ParseQueries reads one gift idea per line. Blank lines are skipped,
// surrounding whitespace is trimmed, and exact duplicates are dropped
// keeping the first occurrence.
func ParseQueries(r io.Reader) ([]string, error) {
	var queries []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		q := strings.TrimSpace(scanner.Text())
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		queries = append(queries, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}
