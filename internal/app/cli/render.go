package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubetools/gocubing"
)

// Facelet styles
var colorStyles = map[gocubing.Color]lipgloss.Style{
	gocubing.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	gocubing.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	gocubing.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	gocubing.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	gocubing.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	gocubing.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
}

var unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func renderCell(c gocubing.Color) string {
	style, ok := colorStyles[c]
	if !ok {
		return unknownStyle.Render("··")
	}
	return style.Render("██")
}

func renderFaceRow(c *gocubing.Cube, f gocubing.Face, i int) string {
	var sb strings.Builder
	n := c.Size()
	for j := 0; j < n; j++ {
		sb.WriteString(renderCell(c.At(f, i, j)))
	}
	return sb.String()
}

// RenderCube draws the cube as an unfolded net: top above the front face,
// the four side faces in a row, bottom below.
func RenderCube(c *gocubing.Cube) string {
	n := c.Size()
	indent := strings.Repeat(" ", n*2)
	var sb strings.Builder

	for i := 0; i < n; i++ {
		sb.WriteString(indent)
		sb.WriteString(renderFaceRow(c, gocubing.Top, i))
		sb.WriteString("\n")
	}
	for i := 0; i < n; i++ {
		sb.WriteString(renderFaceRow(c, gocubing.Left, i))
		sb.WriteString(renderFaceRow(c, gocubing.Front, i))
		sb.WriteString(renderFaceRow(c, gocubing.Right, i))
		sb.WriteString(renderFaceRow(c, gocubing.Back, i))
		sb.WriteString("\n")
	}
	for i := 0; i < n; i++ {
		sb.WriteString(indent)
		sb.WriteString(renderFaceRow(c, gocubing.Bottom, i))
		sb.WriteString("\n")
	}

	return sb.String()
}
