package museum

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/redexp/familymuseum-lsp/layout"
	"github.com/redexp/familymuseum-lsp/virtual"
)

type Settings struct {
	Locale        string         `toml:"locale"`
	InferSiblings bool           `toml:"infer_siblings"`
	Style         layout.Style   `toml:"style"`
	Virtual       virtual.Config `toml:"virtual"`
	Viewport      ViewportLimits `toml:"viewport"`
	Timings       Timings        `toml:"timings"`
}

// ViewportLimits clamps the client window to the smallest tree canvas.
type ViewportLimits struct {
	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`
	MarginX   float64 `toml:"margin_x"`
	MarginY   float64 `toml:"margin_y"`
}

type Timings struct {
	Resize    time.Duration `toml:"resize"`
	Scroll    time.Duration `toml:"scroll"`
	Searching time.Duration `toml:"searching"`
	SaveDelay time.Duration `toml:"save_delay"`
	Saving    time.Duration `toml:"saving"`
	Load      time.Duration `toml:"load"`
	Welcome   time.Duration `toml:"welcome"`
}

func DefaultSettings() Settings {
	return Settings{
		Locale:  "en",
		Style:   layout.Default,
		Virtual: virtual.Default,
		Viewport: ViewportLimits{
			MinWidth:  1200,
			MinHeight: 800,
			MarginX:   100,
			MarginY:   200,
		},
		Timings: Timings{
			Resize:    150 * time.Millisecond,
			Scroll:    100 * time.Millisecond,
			Searching: 800 * time.Millisecond,
			SaveDelay: 2000 * time.Millisecond,
			Saving:    1000 * time.Millisecond,
			Load:      2000 * time.Millisecond,
			Welcome:   3000 * time.Millisecond,
		},
	}
}

// LoadSettings reads a TOML file on top of the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)

	if err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		log.Warningf("settings %s: unknown key %s", path, key.String())
	}

	return s, nil
}

func (limits ViewportLimits) Clamp(width, height float64) layout.Viewport {
	return layout.Viewport{
		Width:  max(limits.MinWidth, width-limits.MarginX),
		Height: max(limits.MinHeight, height-limits.MarginY),
	}
}

func (limits ViewportLimits) Initial() layout.Viewport {
	return layout.Viewport{
		Width:  limits.MinWidth,
		Height: limits.MinHeight,
	}
}
