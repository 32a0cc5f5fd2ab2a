package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	a := test.NewTempApp(t)
	assert.Equal(t, Default(), Load(a.Preferences()))
}

func TestSaveLoad(t *testing.T) {
	a := test.NewTempApp(t)
	want := Config{
		CanvasWidth:  640,
		CanvasHeight: 480,
		SharePort:    9000,
		Share:        true,
		Advertise:    false,
		Demo:         false,
	}
	want.Save(a.Preferences())
	assert.Equal(t, want, Load(a.Preferences()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.CanvasWidth = 0 }, true},
		{"negative height", func(c *Config) { c.CanvasHeight = -1 }, true},
		{"port too large", func(c *Config) { c.SharePort = 70000 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
