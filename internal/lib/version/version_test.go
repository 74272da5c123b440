package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	t.Run("version variable exists", func(t *testing.T) {
		assert.IsType(t, "", VERSION)
	})

	t.Run("development builds", func(t *testing.T) {
		prev := VERSION
		defer func() { VERSION = prev }()

		VERSION = "dev"
		assert.True(t, IsDevelopment())
		VERSION = ""
		assert.True(t, IsDevelopment())
		VERSION = "1.0.0"
		assert.False(t, IsDevelopment())
	})
}
