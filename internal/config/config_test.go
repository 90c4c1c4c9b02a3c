package config

import (
	"testing"

	"address-copier/internal/loader"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, loader.DefaultFileName, cfg.CSVFile)
	assert.Equal(t, "nan", cfg.LoaderOptions().MissingValue)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"empty csv":     func(c *Config) { c.CSVFile = "  " },
		"bad clipboard": func(c *Config) { c.Clipboard = "osc52" },
		"bad level":     func(c *Config) { c.LogLevel = "chatty" },
		"tiny window":   func(c *Config) { c.WindowWidth = 10 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, eris.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestValidate_AllowsEmptyPlaceholder(t *testing.T) {
	cfg := Default()
	cfg.MissingValue = ""
	assert.NoError(t, cfg.Validate())
}
