package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColorMode = errors.New("invalid color mode")
	ErrInvalidFormat    = errors.New("invalid format")
)

type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"   // Use colors only when TTY
	ColorModeAlways ColorMode = "always" // Always use colors
	ColorModeNever  ColorMode = "never"  // Never use colors
)

// String implements the pflag.Value interface for ColorMode
func (c *ColorMode) String() string {
	if c == nil || *c == "" {
		return string(ColorModeAuto)
	}
	return string(*c)
}

// Set implements the pflag.Value interface for ColorMode
func (c *ColorMode) Set(value string) error {
	switch value {
	case "always", "auto", "never":
		*c = ColorMode(value)
		return nil
	default:
		return fmt.Errorf("%w: %s (must be 'always', 'auto', or 'never')", ErrInvalidColorMode, value)
	}
}

// Type implements the pflag.Value interface for ColorMode
func (c *ColorMode) Type() string {
	return "string"
}

// Format selects how the view is rendered by the render command
type Format string

const (
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Formats lists every supported format, in help order
var Formats = []Format{FormatText, FormatHTML, FormatMarkdown, FormatJSON}

// String implements the pflag.Value interface for Format
func (f *Format) String() string {
	if f == nil || *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

// Set implements the pflag.Value interface for Format
func (f *Format) Set(value string) error {
	switch Format(value) {
	case FormatText, FormatHTML, FormatMarkdown, FormatJSON:
		*f = Format(value)
		return nil
	case "md":
		*f = FormatMarkdown
		return nil
	default:
		return fmt.Errorf("%w: %s (must be 'text', 'html', 'markdown', or 'json')", ErrInvalidFormat, value)
	}
}

// Type implements the pflag.Value interface for Format
func (f *Format) Type() string {
	return "format"
}

type ConfigFlags struct {
	Version  bool
	Color    ColorMode
	Format   Format
	Output   string
	Force    bool
	Fragment bool
	Width    int
	Height   int
}

type Config struct {
	Flags ConfigFlags
}

func (c Config) GetConfigFlags() ConfigFlags {
	return c.Flags
}

func NewConfig(cfg Config) Config {
	return cfg
}
