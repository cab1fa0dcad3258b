// pkg/render/terminal.go
package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/djkeyes/Trydent/pkg/geometry"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals.
// Sprites are plotted as single characters on a fixed-size grid.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos *geometry.Position
}

// NewTerminalRenderer creates a new terminal renderer with the specified
// dimensions. scale is the number of world units per character cell.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:     width,
		height:    height,
		buffer:    buffer,
		scale:     scale,
		centerPos: geometry.NewPosition(0, 0),
	}
}

// SetCenter sets the world position mapped to the center of the view.
func (r *TerminalRenderer) SetCenter(pos *geometry.Position) {
	if pos == nil {
		return
	}
	r.centerPos = pos.Copy()
}

// worldToScreen converts world coordinates to screen coordinates.
func (r *TerminalRenderer) worldToScreen(pos *geometry.Position) (int, int) {
	screenX := int((pos.X()-r.centerPos.X())/r.scale + float64(r.width)/2)
	screenY := int((pos.Y()-r.centerPos.Y())/r.scale + float64(r.height)/2)
	return screenX, screenY
}

// Clear implements Renderer.
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// DrawSprite implements Renderer. The sprite is plotted as the first
// letter of its name, or a heading arrow when the name is empty.
func (r *TerminalRenderer) DrawSprite(name string, orientation *geometry.Orientation) {
	if orientation == nil || orientation.Translation == nil {
		return
	}

	x, y := r.worldToScreen(orientation.Translation)
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}

	r.buffer[y][x] = spriteSymbol(name, orientation.Rotation)
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Print("\033[H\033[2J")
	fmt.Print(r.Frame())
}

// Frame returns the current buffer as a bordered string without
// flushing it to the terminal.
func (r *TerminalRenderer) Frame() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", r.width) + "+\n"

	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteString("|")
		for x := range r.buffer[y] {
			sb.WriteRune(r.buffer[y][x])
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	return sb.String()
}

// spriteSymbol picks the glyph for a sprite. Named sprites use the first
// letter of the name; anonymous sprites show their heading.
func spriteSymbol(name string, rotation float64) rune {
	for _, r := range name {
		return unicode.ToUpper(r)
	}

	angle := geometry.NormalizeAngle(rotation) + 45
	if angle < 0 {
		angle += 360
	}
	arrows := []rune{'>', '^', '<', 'v'}
	return arrows[int(angle/90)%4]
}
