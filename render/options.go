package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align selects which edge the face hugs.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// String returns "left" or "right".
func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// ParseAlign accepts "left" or "right", case-insensitively.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("render: unknown alignment %q", s)
}

func (a Align) position() lipgloss.Position {
	if a == AlignRight {
		return lipgloss.Right
	}
	return lipgloss.Left
}

// Options controls face layout. Width 0 sizes the block to its widest line.
type Options struct {
	Align Align
	Width int
}
