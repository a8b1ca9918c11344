package scene

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultColor is the face colour used while colorize is off.
const DefaultColor = lipgloss.Color("#ffaa22")

const hexDigits = "0123456789abcdef"

// RandomColor draws a colour uniformly from the 24-bit space.
func RandomColor(r *rand.Rand) lipgloss.Color {
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 6; i++ {
		b.WriteByte(hexDigits[r.IntN(len(hexDigits))])
	}
	return lipgloss.Color(b.String())
}

// ColorNeighbor derives the colour of face n from a base "#rrggbb" colour.
//
// Digit big = (n%3)*2 is bumped by one, saturating at f by stepping back to e.
// The paired digit (big+1 for even n, big-1 otherwise, -1 meaning 5) receives
// the very same bumped value, not its own increment. Faces therefore differ
// from the base only through the big digit's value.
func ColorNeighbor(hex lipgloss.Color, n int) lipgloss.Color {
	digits := []byte(strings.ToLower(strings.TrimPrefix(string(hex), "#")))
	if len(digits) != 6 {
		return hex
	}
	if n < 0 {
		n = -n
	}

	big := (n % 3) * 2
	small := big - 1
	if n%2 == 0 {
		small = big + 1
	}
	if small == -1 {
		small = 5
	}

	bumped := bump(digits[big])
	digits[big] = bumped
	digits[small] = bumped

	return lipgloss.Color("#" + string(digits))
}

func bump(d byte) byte {
	if d == 'f' {
		return 'e'
	}
	i := strings.IndexByte(hexDigits, d)
	if i < 0 {
		return hexDigits[0]
	}
	return hexDigits[i+1]
}

// RGB splits a "#rrggbb" colour into channels. Malformed input yields black.
func RGB(c lipgloss.Color) (r, g, b uint8) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi := strings.IndexByte(hexDigits, lower(s[i*2]))
		lo := strings.IndexByte(hexDigits, lower(s[i*2+1]))
		if hi < 0 || lo < 0 {
			return 0, 0, 0
		}
		v[i] = uint8(hi<<4 | lo)
	}
	return v[0], v[1], v[2]
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
