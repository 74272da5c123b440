package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("new config creation", func(t *testing.T) {
		flags := ConfigFlags{
			Version: true,
			Format:  FormatHTML,
			Width:   120,
		}
		cfg := NewConfig(Config{Flags: flags})

		assert.Equal(t, true, cfg.Flags.Version)
		assert.Equal(t, FormatHTML, cfg.Flags.Format)
		assert.Equal(t, 120, cfg.Flags.Width)
	})

	t.Run("get config flags", func(t *testing.T) {
		flags := ConfigFlags{
			Output: "index.html",
			Force:  true,
		}
		cfg := Config{Flags: flags}

		result := cfg.GetConfigFlags()
		assert.Equal(t, "index.html", result.Output)
		assert.True(t, result.Force)
	})

	t.Run("config flags default values", func(t *testing.T) {
		var flags ConfigFlags
		cfg := Config{Flags: flags}

		result := cfg.GetConfigFlags()
		assert.Equal(t, false, result.Version)
		assert.Equal(t, ColorMode(""), result.Color)
		assert.Equal(t, Format(""), result.Format)
		assert.Equal(t, 0, result.Width)
	})
}

func TestColorMode(t *testing.T) {
	t.Run("defaults to auto", func(t *testing.T) {
		var c ColorMode
		assert.Equal(t, "auto", c.String())

		var nilMode *ColorMode
		assert.Equal(t, "auto", nilMode.String())
	})

	t.Run("accepts known modes", func(t *testing.T) {
		for _, value := range []string{"always", "auto", "never"} {
			var c ColorMode
			require.NoError(t, c.Set(value))
			assert.Equal(t, value, c.String())
		}
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		var c ColorMode
		err := c.Set("sometimes")
		assert.ErrorIs(t, err, ErrInvalidColorMode)
		assert.Equal(t, ColorMode(""), c)
	})

	t.Run("type", func(t *testing.T) {
		var c ColorMode
		assert.Equal(t, "string", c.Type())
	})
}

func TestFormat(t *testing.T) {
	t.Run("defaults to text", func(t *testing.T) {
		var f Format
		assert.Equal(t, "text", f.String())
	})

	t.Run("accepts known formats", func(t *testing.T) {
		for _, want := range Formats {
			var f Format
			require.NoError(t, f.Set(string(want)))
			assert.Equal(t, want, f)
		}
	})

	t.Run("md is an alias for markdown", func(t *testing.T) {
		var f Format
		require.NoError(t, f.Set("md"))
		assert.Equal(t, FormatMarkdown, f)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		var f Format
		assert.ErrorIs(t, f.Set("pdf"), ErrInvalidFormat)
	})

	t.Run("usable as a pflag value", func(t *testing.T) {
		var f Format
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.VarP(&f, "format", "f", "output format")

		require.NoError(t, fs.Parse([]string{"-f", "json"}))
		assert.Equal(t, FormatJSON, f)
		assert.Error(t, fs.Parse([]string{"--format", "yaml"}))
	})
}
