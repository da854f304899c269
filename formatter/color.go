package formatter

import (
	"github.com/fatih/color"

	"github.com/philipp01105/logonce/core"
)

// Trace and Debug keep the terminal default; the target is always cyan.
var (
	levelColors = [...]*color.Color{
		core.TraceLevel: color.New(color.Reset),
		core.DebugLevel: color.New(color.Reset),
		core.InfoLevel:  color.New(color.FgGreen),
		core.WarnLevel:  color.New(color.FgYellow),
		core.ErrorLevel: color.New(color.FgRed),
	}
	targetColor = color.New(color.FgCyan)
)

// Colors are applied whether or not stdout is a terminal; the caller
// decides by choosing a colorized formatter at all.
func init() {
	for _, c := range levelColors {
		c.EnableColor()
	}
	targetColor.EnableColor()
}

// pre-rendered level columns, right-aligned to levelWidth
var (
	plainLevels   [core.OffLevel]string
	coloredLevels [core.OffLevel]string
)

func init() {
	for l := core.TraceLevel; l < core.OffLevel; l++ {
		plainLevels[l] = padLeft(l.String(), levelWidth)
		coloredLevels[l] = levelColors[l].Sprint(plainLevels[l])
	}
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}
