package domain

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// ThemeColors are the color tokens a passport is styled with.
type ThemeColors struct {
	Accent1 string `json:"accent1"`
	Accent2 string `json:"accent2"`
	Glow    string `json:"glow"`
	BG1     string `json:"bg1"`
	BG2     string `json:"bg2"`
}

// Theme is a named, immutable color palette.
type Theme struct {
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
}

var themes = [...]Theme{
	{
		Name: "Cyberpunk Neon",
		Colors: ThemeColors{
			Accent1: "#00ffff",
			Accent2: "#ff00ff",
			Glow:    "rgba(0, 255, 255, 0.7)",
			BG1:     "rgba(75, 0, 130, 0.3)",
			BG2:     "rgba(0, 50, 100, 0.3)",
		},
	},
	{
		Name: "Solar Flare",
		Colors: ThemeColors{
			Accent1: "#ff8c00",
			Accent2: "#ff4500",
			Glow:    "rgba(255, 140, 0, 0.7)",
			BG1:     "rgba(139, 0, 0, 0.3)",
			BG2:     "rgba(100, 40, 0, 0.3)",
		},
	},
	{
		Name: "Matrix Code",
		Colors: ThemeColors{
			Accent1: "#32cd32",
			Accent2: "#00ff7f",
			Glow:    "rgba(50, 205, 50, 0.7)",
			BG1:     "rgba(0, 50, 0, 0.3)",
			BG2:     "rgba(10, 30, 10, 0.3)",
		},
	},
	{
		Name: "Void Runner",
		Colors: ThemeColors{
			Accent1: "#9370db",
			Accent2: "#ffffff",
			Glow:    "rgba(147, 112, 219, 0.7)",
			BG1:     "rgba(30, 0, 50, 0.3)",
			BG2:     "rgba(50, 50, 50, 0.3)",
		},
	},
}

// Themes returns a copy of the theme table.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes[:])
	return out
}

// ThemeByName looks up a theme from the table.
func ThemeByName(name string) (Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// ThemeSelector picks themes uniformly at random from the theme table.
// It is safe for concurrent use.
type ThemeSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewThemeSelector creates a selector backed by the given source.
// A nil source uses a randomly seeded PCG generator.
func NewThemeSelector(src rand.Source) *ThemeSelector {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &ThemeSelector{rng: rand.New(src)}
}

// Select returns one theme chosen uniformly from the table.
func (s *ThemeSelector) Select() Theme {
	s.mu.Lock()
	i := s.rng.IntN(len(themes))
	s.mu.Unlock()
	return themes[i]
}
