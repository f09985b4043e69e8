package linechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPalette(t *testing.T) {
	assert.Len(t, DefaultPalette, 11)
	assert.Equal(t, "#d47582", DefaultPalette[0])
	assert.Equal(t, Category10, DefaultPalette[1:])
}

func TestPalette_Color(t *testing.T) {
	p := Palette{"red", "green", "blue"}
	assert.Equal(t, "red", p.Color(0))
	assert.Equal(t, "blue", p.Color(2))
	assert.Equal(t, DefaultColor, p.Color(3))
	assert.Equal(t, DefaultColor, p.Color(-1))
	assert.Equal(t, DefaultColor, Palette(nil).Color(0))
}

func TestPalette_Cycle(t *testing.T) {
	p := Palette{"red", "green", "blue"}
	for i := 0; i < 9; i++ {
		assert.Equal(t, p[i%3], p.Cycle(i))
	}
	assert.Equal(t, DefaultColor, Palette(nil).Cycle(4))
}
