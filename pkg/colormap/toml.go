package colormap

import (
	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/errors"
)

// tomlFile mirrors the on-wire TOML structure for custom colormaps.
type tomlFile struct {
	Colormaps []tomlColormap `toml:"colormap"`
}

type tomlColormap struct {
	Name      string    `toml:"name"`
	Kind      string    `toml:"kind"` // "linear" (default) or "listed"
	Colors    []string  `toml:"colors"`
	Positions []float64 `toml:"positions"` // optional, linear only
}

// ParseTOML decodes custom colormap definitions from TOML data. Each
// [[colormap]] table needs a name and a list of #rrggbb colors; linear maps
// may optionally anchor the colors at explicit positions:
//
//	[[colormap]]
//	name = "icefire"
//	kind = "linear"
//	colors = ["#75aadb", "#101010", "#e06c4b"]
//	positions = [0.0, 0.4, 1.0]
//
// The decoded maps are returned in definition order; callers register them
// with [Register] as needed.
func ParseTOML(data []byte) ([]Colormap, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding colormap TOML")
	}
	if len(file.Colormaps) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no [[colormap]] tables found")
	}

	maps := make([]Colormap, 0, len(file.Colormaps))
	for _, def := range file.Colormaps {
		cm, err := def.build()
		if err != nil {
			return nil, err
		}
		maps = append(maps, cm)
	}
	return maps, nil
}

func (def tomlColormap) build() (Colormap, error) {
	if def.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "colormap definition missing name")
	}

	colors := make([]colorful.Color, len(def.Colors))
	for i, s := range def.Colors {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err,
				"colormap %q color %d", def.Name, i)
		}
		colors[i] = c
	}

	switch def.Kind {
	case "listed":
		return NewListed(def.Name, colors...)
	case "", "linear":
		if len(def.Positions) == 0 {
			return NewLinearFromColors(def.Name, colors...)
		}
		if len(def.Positions) != len(colors) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"colormap %q has %d positions for %d colors", def.Name, len(def.Positions), len(colors))
		}
		stops := make([]Stop, len(colors))
		for i := range colors {
			stops[i] = Stop{Pos: def.Positions[i], Color: colors[i]}
		}
		return NewLinear(def.Name, stops)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"colormap %q has unknown kind %q", def.Name, def.Kind)
	}
}
