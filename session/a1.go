package session

import (
	"fmt"
	"regexp"
	"strings"
)

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// ParseURL extracts the spreadsheet ID from a Google Sheets URL.
func ParseURL(url string) (string, error) {
	match := spreadsheetURL.FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// A1 converts 1-based row and column indices to A1 notation e.g. (2,3) -> C2.
func A1(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("invalid cell (%v,%v) - row and column start at 1", row, col)
	}

	letters := ""
	for c := col; c > 0; c = (c - 1) / 26 {
		letters = string(rune('A'+(c-1)%26)) + letters
	}

	return fmt.Sprintf("%v%v", letters, row), nil
}

// quote returns the worksheet title as an absolute range prefix, escaping embedded quotes.
func quote(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
