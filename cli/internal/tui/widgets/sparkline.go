// ABOUTME: Sparkline widget renders per-node profiles using block characters
// ABOUTME: Used for the link usage profile across nodes of a placement

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SparklineBlocks are the Unicode block characters for different heights
var SparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one block per value, scaled between the minimum and maximum.
// width resamples the values; pass len(values) to keep one block per node.
func Sparkline(values []float64, width int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := sampleValues(values, width)
	lo, hi := bounds(sampled)

	result := make([]rune, len(sampled))
	for i, v := range sampled {
		result[i] = valueToBlock(v, lo, hi)
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(string(result))
}

// LoadProfile renders used/capacity ratios per node, scaled from zero to the
// highest ratio, colored by utilization and red where a node overflows.
func LoadProfile(used, capacity []float64, okColor, warnColor, overColor lipgloss.Color) string {
	n := len(used)
	if len(capacity) < n {
		n = len(capacity)
	}
	if n == 0 {
		return ""
	}

	ratios := make([]float64, n)
	for i := 0; i < n; i++ {
		ratios[i] = UsagePercent(used[i], capacity[i])
	}
	_, hi := bounds(ratios)

	var sb strings.Builder
	for _, r := range ratios {
		color := okColor
		switch {
		case r > 100:
			color = overColor
		case r >= 80:
			color = warnColor
		}
		block := valueToBlock(r, 0, hi)
		if r == 0 {
			block = ' '
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(block)))
	}
	return sb.String()
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// sampleValues resamples the values slice to the target width
func sampleValues(values []float64, width int) []float64 {
	if len(values) == width {
		return values
	}

	result := make([]float64, width)

	if len(values) < width {
		// Pad with zeros at the beginning
		copy(result[width-len(values):], values)
	} else {
		ratio := float64(len(values)) / float64(width)
		for i := 0; i < width; i++ {
			idx := int(float64(i) * ratio)
			if idx >= len(values) {
				idx = len(values) - 1
			}
			result[i] = values[idx]
		}
	}

	return result
}

// valueToBlock converts a value to a block character based on its position in the range
func valueToBlock(value, lo, hi float64) rune {
	if hi == lo {
		return SparklineBlocks[len(SparklineBlocks)/2]
	}

	normalized := (value - lo) / (hi - lo)

	idx := int(normalized * float64(len(SparklineBlocks)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(SparklineBlocks) {
		idx = len(SparklineBlocks) - 1
	}

	return SparklineBlocks[idx]
}
