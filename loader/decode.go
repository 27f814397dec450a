package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/curricula/curriculum"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads the definition at path and builds its curriculum.
func Load(path string, opts ...curriculum.Option) (*curriculum.Curriculum, error) {
	def, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return def.Build(opts...)
}

// ReadFile decodes the definition at path, choosing the codec by extension.
func ReadFile(path string) (*Definition, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	return parse(data, f, path)
}

// Decode reads one definition of format f from r and builds its curriculum.
func Decode(r io.Reader, f Format, opts ...curriculum.Option) (*curriculum.Curriculum, error) {
	def, err := DecodeDefinition(r, f)
	if err != nil {
		return nil, err
	}

	return def.Build(opts...)
}

// DecodeDefinition reads one definition of format f from r.
func DecodeDefinition(r io.Reader, f Format) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return parse(data, f, "definition."+string(f))
}

func parse(data []byte, f Format, name string) (*Definition, error) {
	var (
		def Definition
		err error
	)
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&def)
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&def)
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&def)
	case HCL:
		return parseHCL(data, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("loader: decode %s %s: %w", f, name, err)
	}

	return &def, nil
}
