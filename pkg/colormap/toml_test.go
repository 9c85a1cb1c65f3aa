package colormap

import (
	"testing"

	"github.com/matzehuels/colorize/pkg/errors"
)

func TestParseTOML(t *testing.T) {
	data := []byte(`
[[colormap]]
name = "icefire"
kind = "linear"
colors = ["#75aadb", "#101010", "#e06c4b"]
positions = [0.0, 0.4, 1.0]

[[colormap]]
name = "flags"
kind = "listed"
colors = ["#ff0000", "#00ff00"]
`)
	maps, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML: %v", err)
	}
	if len(maps) != 2 {
		t.Fatalf("ParseTOML returned %d maps, want 2", len(maps))
	}

	if maps[0].Name() != "icefire" {
		t.Errorf("maps[0].Name() = %q, want icefire", maps[0].Name())
	}
	if _, ok := maps[0].(*Linear); !ok {
		t.Errorf("maps[0] is %T, want *Linear", maps[0])
	}

	listed, ok := maps[1].(*Listed)
	if !ok {
		t.Fatalf("maps[1] is %T, want *Listed", maps[1])
	}
	if listed.Len() != 2 {
		t.Errorf("listed.Len() = %d, want 2", listed.Len())
	}

	// At the anchored keypoint the linear map returns the middle color.
	mid := maps[0].At(0.4)
	if mid.R > 0.1 || mid.G > 0.1 || mid.B > 0.1 {
		t.Errorf("icefire At(0.4) = %+v, want near-black keypoint", mid)
	}
}

func TestParseTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"NotTOML", `{"json": true}`},
		{"NoTables", `other = 1`},
		{"MissingName", "[[colormap]]\ncolors = [\"#000000\", \"#ffffff\"]"},
		{"BadColor", "[[colormap]]\nname = \"x\"\ncolors = [\"purple\", \"#ffffff\"]"},
		{"BadKind", "[[colormap]]\nname = \"x\"\nkind = \"cubic\"\ncolors = [\"#000000\", \"#ffffff\"]"},
		{"PositionCountMismatch", "[[colormap]]\nname = \"x\"\ncolors = [\"#000000\", \"#ffffff\"]\npositions = [0.0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTOML([]byte(tt.data))
			if err == nil {
				t.Fatalf("ParseTOML succeeded, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
			}
		})
	}
}
