package colormap

import (
	"sort"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/colorize/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Colormap{}
)

// Get resolves a colormap by name, case-insensitively. It returns an
// INVALID_SCHEME error for unknown names.
func Get(name string) (Colormap, error) {
	registryMu.RLock()
	cm, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidScheme, "unknown colormap: %q", name)
	}
	return cm, nil
}

// Register adds a colormap to the registry under its name, replacing any
// existing map with the same name.
func Register(cm Colormap) {
	registryMu.Lock()
	registry[strings.ToLower(cm.Name())] = cm
	registryMu.Unlock()
}

// Names returns the sorted names of all registered colormaps.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}

// hex parses a #rrggbb literal for the built-in tables below.
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("colormap: bad builtin color " + s)
	}
	return c
}

func mustLinear(name string, colors ...colorful.Color) *Linear {
	m, err := NewLinearFromColors(name, colors...)
	if err != nil {
		panic("colormap: bad builtin table " + name)
	}
	return m
}

// Standard maps. The perceptually uniform tables (viridis, plasma, inferno)
// are keypoint approximations of the matplotlib originals; the classics
// (gray, jet, hot, ...) are exact by construction.
func init() {
	for _, m := range []*Linear{
		mustLinear("gray", hex("#000000"), hex("#ffffff")),
		mustLinear("rainbow",
			hex("#ff00ff"), hex("#0000ff"), hex("#00ff00"), hex("#ffff00"), hex("#ff0000")),
		mustLinear("jet",
			hex("#00007f"), hex("#0000ff"), hex("#007fff"), hex("#00ffff"),
			hex("#7fff7f"), hex("#ffff00"), hex("#ff7f00"), hex("#ff0000"), hex("#7f0000")),
		mustLinear("viridis",
			hex("#482172"), hex("#433e85"), hex("#38578c"), hex("#2d6f8e"),
			hex("#24858e"), hex("#1e9b8a"), hex("#2ab07f"), hex("#51c569"),
			hex("#86d449"), hex("#c2df23"), hex("#fde725")),
		mustLinear("plasma",
			hex("#3d049b"), hex("#6300a7"), hex("#8506a6"), hex("#a62098"),
			hex("#c03a83"), hex("#d5546e"), hex("#e76f5a"), hex("#f68d45"),
			hex("#fdae32"), hex("#fcd224"), hex("#f0f821")),
		mustLinear("inferno",
			hex("#250c03"), hex("#130b34"), hex("#390963"), hex("#5f136e"),
			hex("#85216b"), hex("#a92e5e"), hex("#cb4149"), hex("#e65d2f"),
			hex("#f78311"), hex("#fcae13"), hex("#f5db4c"), hex("#fcfea4")),
		mustLinear("hot",
			hex("#000000"), hex("#ff0000"), hex("#ffff00"), hex("#ffffff")),
		mustLinear("cool", hex("#00ffff"), hex("#ff00ff")),
		mustLinear("spring", hex("#ff00ff"), hex("#ffff00")),
		mustLinear("summer", hex("#008066"), hex("#ffff66")),
		mustLinear("autumn", hex("#ff0000"), hex("#ffff00")),
		mustLinear("winter", hex("#0000ff"), hex("#00ff80")),
		mustLinear("bone",
			hex("#000000"), hex("#545474"), hex("#a8c4c4"), hex("#ffffff")),
		mustLinear("copper", hex("#000000"), hex("#ffc77f")),
	} {
		Register(m)
	}
}
