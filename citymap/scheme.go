package citymap

import (
	"image/color"

	"github.com/voidshard/citygrid"

	"golang.org/x/image/colornames"
)

// ColourScheme defines how various features in a city should be coloured.
type ColourScheme struct {
	Background color.Color
	Roads      color.Color
	Lanes      color.Color
	Buildings  map[citygrid.BuildingKind]color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.Lightgreen,
		Roads:      colornames.Dimgray,
		Lanes:      colornames.Yellow,
		Buildings: map[citygrid.BuildingKind]color.Color{
			citygrid.Residential: colornames.Royalblue,
			citygrid.Commercial:  colornames.Hotpink,
			citygrid.Industrial:  colornames.Firebrick,
		},
	}
}
