// Package config holds the board's settings, stored in fyne preferences.
package config

import (
	"fmt"

	"fyne.io/fyne/v2"
)

const (
	keyCanvasWidth  = "canvas.width"
	keyCanvasHeight = "canvas.height"
	keySharePort    = "share.port"
	keyShare        = "share.enabled"
	keyAdvertise    = "share.advertise"
	keyDemo         = "board.demo"
)

type Config struct {
	CanvasWidth  float64
	CanvasHeight float64
	SharePort    int
	Share        bool // serve the live view
	Advertise    bool // announce the live view over mDNS
	Demo         bool // start with the demo shapes
}

func Default() Config {
	return Config{
		CanvasWidth:  1200,
		CanvasHeight: 900,
		SharePort:    8888,
		Advertise:    true,
		Demo:         true,
	}
}

// Load reads the config from prefs, falling back to Default for unset keys.
func Load(prefs fyne.Preferences) Config {
	d := Default()
	return Config{
		CanvasWidth:  prefs.FloatWithFallback(keyCanvasWidth, d.CanvasWidth),
		CanvasHeight: prefs.FloatWithFallback(keyCanvasHeight, d.CanvasHeight),
		SharePort:    prefs.IntWithFallback(keySharePort, d.SharePort),
		Share:        prefs.BoolWithFallback(keyShare, d.Share),
		Advertise:    prefs.BoolWithFallback(keyAdvertise, d.Advertise),
		Demo:         prefs.BoolWithFallback(keyDemo, d.Demo),
	}
}

// Save writes every field to prefs.
func (c Config) Save(prefs fyne.Preferences) {
	prefs.SetFloat(keyCanvasWidth, c.CanvasWidth)
	prefs.SetFloat(keyCanvasHeight, c.CanvasHeight)
	prefs.SetInt(keySharePort, c.SharePort)
	prefs.SetBool(keyShare, c.Share)
	prefs.SetBool(keyAdvertise, c.Advertise)
	prefs.SetBool(keyDemo, c.Demo)
}

func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size %gx%g must be positive", c.CanvasWidth, c.CanvasHeight)
	}
	if c.SharePort <= 0 || c.SharePort > 65535 {
		return fmt.Errorf("share port %d out of range", c.SharePort)
	}
	return nil
}
