// Package shared provides common utility functions used across multiple
// packages in the wingetup codebase.
package shared

import (
	"fmt"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}

// ContainsToken reports whether any whitespace-separated token on any
// line of content equals match, comparing case-insensitively.
func ContainsToken(content string, match string) bool {
	for _, line := range strings.Split(content, "\n") {
		for _, field := range strings.Fields(line) {
			if strings.EqualFold(field, match) {
				return true
			}
		}
	}
	return false
}
