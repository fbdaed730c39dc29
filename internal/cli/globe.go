package cli

import "strings"

// globeArt is the stylized Earth. '#' cells are land, '.' cells are ocean.
var globeArt = []string{
	"          .........          ",
	"      ....###..........      ",
	"    ...#####....##.......    ",
	"   ..######.....####.....#.  ",
	"  ....####.......###..####.. ",
	" .......##........#######... ",
	" ........###......######.... ",
	" .........####.....####..... ",
	"  .........###......##....#. ",
	"   ........##..........###.  ",
	"    .......#............#    ",
	"      ...............##      ",
	"          .........          ",
}

// renderGlobe draws the globe with the palette, or as one solid block while
// flashing.
func renderGlobe(p *palette, flashing bool) string {
	var b strings.Builder

	for i, row := range globeArt {
		if i > 0 {
			b.WriteByte('\n')
		}

		if flashing {
			b.WriteString(p.flash.Render(strings.Repeat(" ", len(row))))
			continue
		}

		b.WriteString(renderRow(p, row))
	}

	return b.String()
}

func renderRow(p *palette, row string) string {
	var b strings.Builder

	for _, r := range row {
		switch r {
		case '#':
			b.WriteString(p.land.Render("█"))
		case '.':
			b.WriteString(p.ocean.Render("░"))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
