package model

import (
	"slices"

	"github.com/leighmacdonald/agri-tui/internal/ui/input"
)

// Ring is an ordered set of focusable items, such as the landing cards or a chart's action nodes.
type Ring[T comparable] []T

// Next moves focus one step in dir, wrapping at either end. Unknown items focus the first entry.
func (r Ring[T]) Next(current T, dir input.Direction) T {
	if len(r) == 0 {
		return current
	}

	index := slices.Index(r, current)
	if index == -1 {
		return r[0]
	}

	switch dir {
	case input.Left, input.Up:
		// Wrap into the last entry
		if index-1 < 0 {
			return r[len(r)-1]
		}
		return r[index-1]
	case input.Right, input.Down:
		// Wrap into the first entry
		if index+1 >= len(r) {
			return r[0]
		}
		return r[index+1]
	default:
		return current
	}
}
