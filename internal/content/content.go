package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jellydator/validation"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

var errUnsupportedFormat = errors.New("unsupported content format")

type Skill struct {
	Name  string `yaml:"name" toml:"name" json:"name"`
	Level int    `yaml:"level" toml:"level" json:"level"`
	Icon  string `yaml:"icon" toml:"icon" json:"icon"`
}

func (s Skill) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Level, validation.Min(0), validation.Max(100)),
	)
}

type Project struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	Tech        []string `yaml:"tech" toml:"tech" json:"tech"`
	Status      string   `yaml:"status" toml:"status" json:"status"`
	Image       string   `yaml:"image" toml:"image" json:"image"`
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
	)
}

type Contact struct {
	Email    string `yaml:"email" toml:"email" json:"email"`
	GitHub   string `yaml:"github" toml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" toml:"linkedin" json:"linkedin"`
	Location string `yaml:"location" toml:"location" json:"location"`
}

// Portfolio is the read-only profile shown on the home page. It is loaded
// once at startup and shared by all requests.
type Portfolio struct {
	Name     string    `yaml:"name" toml:"name"`
	Title    string    `yaml:"title" toml:"title"`
	Bio      string    `yaml:"bio" toml:"bio"`
	Skills   []Skill   `yaml:"skills" toml:"skills"`
	Projects []Project `yaml:"projects" toml:"projects"`
	Contact  Contact   `yaml:"contact" toml:"contact"`

	// BioHTML is Bio rendered from markdown. Raw HTML in the source is
	// dropped by the renderer.
	BioHTML template.HTML `yaml:"-" toml:"-"`
}

func (p Portfolio) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Skills),
		validation.Field(&p.Projects),
	)
}

// Default returns the built-in portfolio.
func Default() (Portfolio, error) {
	return parse(defaultDocument, ".yaml")
}

// Load reads a portfolio from a YAML or TOML file, picked by extension.
func Load(path string) (Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("reading content file: %w", err)
	}

	return parse(data, strings.ToLower(filepath.Ext(path)))
}

func parse(data []byte, ext string) (Portfolio, error) {
	var p Portfolio

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Portfolio{}, fmt.Errorf("parsing content: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &p); err != nil {
			return Portfolio{}, fmt.Errorf("parsing content: %w", err)
		}
	default:
		return Portfolio{}, fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}

	if err := p.Validate(); err != nil {
		return Portfolio{}, fmt.Errorf("validating content: %w", err)
	}

	var bio bytes.Buffer
	if err := goldmark.Convert([]byte(p.Bio), &bio); err != nil {
		return Portfolio{}, fmt.Errorf("rendering bio: %w", err)
	}
	p.BioHTML = template.HTML(bio.String())

	return p, nil
}
