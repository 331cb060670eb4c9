package robot

import (
	"bufio"
	"io"
)

// Render draws the grid with row 1 on top. The robot is shown by the glyph of
// its orientation, every other cell as '.'.
func Render(w io.Writer, s State) error {
	bw := bufio.NewWriter(w)
	for row := MinCoord; row <= MaxCoord; row++ {
		for col := MinCoord; col <= MaxCoord; col++ {
			c := byte('.')
			if row == s.Row && col == s.Col {
				c = s.Orientation.Glyph()
			}
			bw.WriteByte(c)
			if col < MaxCoord {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
