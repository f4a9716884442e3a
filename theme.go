package neoncube

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme maps logical colour ids to rendered colours. Two faces may share a
// rendered colour (neon does); the solve check never looks at these values.
type Theme struct {
	Name   string
	Colors [6]colorful.Color // indexed by ColorID
}

// Built-in themes.
var (
	ThemeNeon = newTheme("neon", map[ColorID]string{
		ColorFront:  "#00ffff",
		ColorBack:   "#ff00ff",
		ColorTop:    "#ffffff",
		ColorBottom: "#ffff00",
		ColorLeft:   "#ff00ff",
		ColorRight:  "#00ffff",
	})

	ThemeTron = newTheme("tron", map[ColorID]string{
		ColorFront:  "#00b7eb",
		ColorBack:   "#ff4500",
		ColorTop:    "#e0ffff",
		ColorBottom: "#ffd700",
		ColorLeft:   "#ff1493",
		ColorRight:  "#7fffd4",
	})

	ThemeMatrix = newTheme("matrix", map[ColorID]string{
		ColorFront:  "#00ff00",
		ColorBack:   "#00cc00",
		ColorTop:    "#ffffff",
		ColorBottom: "#33ff33",
		ColorLeft:   "#009900",
		ColorRight:  "#66ff66",
	})
)

var themes = map[string]Theme{
	ThemeNeon.Name:   ThemeNeon,
	ThemeTron.Name:   ThemeTron,
	ThemeMatrix.Name: ThemeMatrix,
}

func newTheme(name string, hex map[ColorID]string) Theme {
	t := Theme{Name: name}
	for id, h := range hex {
		t.Colors[id] = mustHex(h)
	}
	return t
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(fmt.Sprintf("neoncube: bad theme colour %q: %v", h, err))
	}
	return c
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// ThemeNames returns the built-in theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the displayed colour for id with an additive highlight
// applied to every channel, clamped to the RGB cube.
func (t Theme) Render(id ColorID, highlight float64) colorful.Color {
	c := t.Colors[id]
	if highlight == 0 {
		return c
	}
	return colorful.Color{R: c.R + highlight, G: c.G + highlight, B: c.B + highlight}.Clamped()
}

// Hex is Render formatted as #rrggbb.
func (t Theme) Hex(id ColorID, highlight float64) string {
	return t.Render(id, highlight).Hex()
}
