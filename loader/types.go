package loader

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat indicates a file extension or format name that no codec handles.
	ErrUnknownFormat = errors.New("loader: unknown format")

	// ErrInvalidDefinition indicates a structurally incomplete definition.
	ErrInvalidDefinition = errors.New("loader: invalid definition")
)

// Format names a definition encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
	HCL  Format = "hcl"
)

// Formats lists every supported format.
var Formats = []Format{YAML, TOML, JSON, HCL}

// ParseFormat accepts a format name, case-insensitively; "yml" means YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case YAML, TOML, JSON, HCL:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", errors.Join(ErrUnknownFormat, errors.New(s))
	}
}

// FormatOf derives the format from path's extension.
func FormatOf(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Join(ErrUnknownFormat, errors.New("no extension: "+path))
	}

	return ParseFormat(ext)
}

// Definition is the decoded form of a curriculum file.
type Definition struct {
	ID          string      `yaml:"id,omitempty" toml:"id,omitempty" json:"id,omitempty"`
	Name        string      `yaml:"name" toml:"name" json:"name"`
	Institution string      `yaml:"institution,omitempty" toml:"institution,omitempty" json:"institution,omitempty"`
	DegreeType  string      `yaml:"degree_type,omitempty" toml:"degree_type,omitempty" json:"degree_type,omitempty"`
	CIP         string      `yaml:"cip,omitempty" toml:"cip,omitempty" json:"cip,omitempty"`
	Courses     []CourseDef `yaml:"courses" toml:"courses" json:"courses"`
}

// CourseDef describes one course or, with Members, one collection.
type CourseDef struct {
	ID            string         `yaml:"id,omitempty" toml:"id,omitempty" json:"id,omitempty"`
	Name          string         `yaml:"name" toml:"name" json:"name"`
	Credits       float64        `yaml:"credits" toml:"credits" json:"credits"`
	Prefix        string         `yaml:"prefix,omitempty" toml:"prefix,omitempty" json:"prefix,omitempty"`
	Num           string         `yaml:"num,omitempty" toml:"num,omitempty" json:"num,omitempty"`
	Institution   string         `yaml:"institution,omitempty" toml:"institution,omitempty" json:"institution,omitempty"`
	College       string         `yaml:"college,omitempty" toml:"college,omitempty" json:"college,omitempty"`
	Department    string         `yaml:"department,omitempty" toml:"department,omitempty" json:"department,omitempty"`
	CanonicalName string         `yaml:"canonical_name,omitempty" toml:"canonical_name,omitempty" json:"canonical_name,omitempty"`
	Requisites    []RequisiteDef `yaml:"requisites,omitempty" toml:"requisites,omitempty" json:"requisites,omitempty"`
	Members       []CourseDef    `yaml:"members,omitempty" toml:"members,omitempty" json:"members,omitempty"`
}

// RequisiteDef names a requisite course and its kind ("pre" when empty).
type RequisiteDef struct {
	ID   string `yaml:"id" toml:"id" json:"id"`
	Kind string `yaml:"kind,omitempty" toml:"kind,omitempty" json:"kind,omitempty"`
}
