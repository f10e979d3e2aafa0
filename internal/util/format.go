package util

import (
	"fmt"
	"strings"
)

// BulletedList renders items as markdown bullets, one per line.
func BulletedList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s", item))
	}
	return strings.Join(lines, "\n")
}

// NumberedList renders items as a 1-indexed numbered list, one per line.
func NumberedList(items []string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, "\n")
}
