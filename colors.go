package linechart

const DefaultColor = "black"

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette

	// DefaultPalette starts with a rose color then follows Category10.
	DefaultPalette Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")

	DefaultPalette = append(DefaultPalette, "#d47582")
	DefaultPalette = append(DefaultPalette, Category10...)
}

// Color gives the color of the serie at index i. Indexes past the end of the
// palette get DefaultColor.
func (p Palette) Color(i int) string {
	if i < 0 || i >= len(p) {
		return DefaultColor
	}
	return p[i]
}

// Cycle gives the color of the serie at index i, wrapping around the palette.
func (p Palette) Cycle(i int) string {
	if len(p) == 0 || i < 0 {
		return DefaultColor
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
