package trip

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads a trip from a .toml or .json file.
func LoadFile(path string) (*Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trip file: %w", err)
	}

	var t Trip
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &t)
	case ".json":
		err = json.Unmarshal(data, &t)
	default:
		return nil, fmt.Errorf("unsupported trip file format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing trip file: %w", err)
	}

	t.AssignLegIDs()
	return &t, nil
}

// MarshalTOML renders a trip in the same shape LoadFile accepts.
func MarshalTOML(t Trip) ([]byte, error) {
	out, err := toml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshaling trip: %w", err)
	}
	return out, nil
}

// Schema returns the JSON schema describing trip files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&Trip{})
	s.Title = "jetlagr trip"
	return json.MarshalIndent(s, "", "  ")
}
