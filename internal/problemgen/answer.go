package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAnswer parses the player's raw input as an integer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "007" is 7)
// - A single leading minus sign is allowed; a plus sign is not
// - Empty or non-numeric input is an error
func ParseAnswer(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty answer")
	}
	if raw[0] == '+' {
		return 0, fmt.Errorf("invalid integer %q: sign must be '-' or absent", raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}
	return n, nil
}
