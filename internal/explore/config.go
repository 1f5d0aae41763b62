package explore

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"fog-explore/pkg/fog"

	"gopkg.in/yaml.v3"
)

// Config collects every setting needed to build a Session and the GUI around
// it. Field tags name the keys accepted by YAML files and FromMap.
type Config struct {
	CenterX       float64 `yaml:"center_x"`
	CenterY       float64 `yaml:"center_y"`
	RotationDeg   float64 `yaml:"rotation_deg"`
	ScaleX        float64 `yaml:"scale_x"`
	ScaleY        float64 `yaml:"scale_y"`
	PixelWidth    int     `yaml:"pixel_width"`
	PixelHeight   int     `yaml:"pixel_height"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`

	Resolution   int     `yaml:"resolution"`
	VisionRadius float64 `yaml:"vision_radius"`
	FadeWidth    float64 `yaml:"fade_width"`
	Epsilon      float64 `yaml:"epsilon"`

	Walker      string            `yaml:"walker"`
	Speed       float64           `yaml:"speed"`
	WalkerOpts  map[string]string `yaml:"walker_options"`
	Seed        int64             `yaml:"seed"`
	Scale       int               `yaml:"scale"`
	TPS         int               `yaml:"tps"`
	FogColor    string            `yaml:"fog_color"`
	HUDWidth    int               `yaml:"hud_width"`
	StartPaused bool              `yaml:"start_paused"`
}

// DefaultConfig returns the standard configuration: a 1024x768 map at 32
// pixels per unit with a wandering explorer.
func DefaultConfig() Config {
	return Config{
		ScaleX:        1,
		ScaleY:        1,
		PixelWidth:    1024,
		PixelHeight:   768,
		PixelsPerUnit: 32,
		Resolution:    512,
		VisionRadius:  3,
		FadeWidth:     1,
		Epsilon:       fog.DefaultEpsilon,
		Walker:        "wander",
		Speed:         3,
		Seed:          42,
		Scale:         1,
		TPS:           60,
		FogColor:      "#000000B3",
		HUDWidth:      220,
	}
}

// Surface converts the map settings into a fog surface descriptor.
func (c Config) Surface() fog.Surface {
	return fog.SpriteSurface(
		fog.Vec2{X: c.CenterX, Y: c.CenterY},
		c.RotationDeg*math.Pi/180,
		fog.Vec2{X: c.ScaleX, Y: c.ScaleY},
		c.PixelWidth, c.PixelHeight, c.PixelsPerUnit,
	)
}

// FogRGBA parses FogColor.
func (c Config) FogRGBA() (color.RGBA, error) {
	return ParseHexColor(c.FogColor)
}

// ParseHexColor accepts #RRGGBB or #RRGGBBAA, with or without the leading
// hash.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// LoadFile overlays the YAML document at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.CenterX, "center-x", c.CenterX, "map centre x in world units")
	fs.Float64Var(&c.CenterY, "center-y", c.CenterY, "map centre y in world units")
	fs.Float64Var(&c.RotationDeg, "rotation", c.RotationDeg, "map rotation in degrees")
	fs.Float64Var(&c.ScaleX, "scale-x", c.ScaleX, "map world scale along x")
	fs.Float64Var(&c.ScaleY, "scale-y", c.ScaleY, "map world scale along y")
	fs.IntVar(&c.PixelWidth, "map-w", c.PixelWidth, "map texture width in pixels")
	fs.IntVar(&c.PixelHeight, "map-h", c.PixelHeight, "map texture height in pixels")
	fs.Float64Var(&c.PixelsPerUnit, "ppu", c.PixelsPerUnit, "map pixels per world unit")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "fog mask size along the longer axis")
	fs.Float64Var(&c.VisionRadius, "vision", c.VisionRadius, "vision radius in world units")
	fs.Float64Var(&c.FadeWidth, "fade", c.FadeWidth, "fade edge width in world units")
	fs.Float64Var(&c.Epsilon, "epsilon", c.Epsilon, "minimum movement before another reveal")
	fs.StringVar(&c.Walker, "walker", c.Walker, "explorer to run (route, wander, orbit)")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "explorer speed in world units per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for explorer reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per map pixel")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.FogColor, "fog-color", c.FogColor, "fog colour as #RRGGBBAA")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "start paused")
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	floats := map[string]*float64{
		"center_x":        &c.CenterX,
		"center_y":        &c.CenterY,
		"rotation_deg":    &c.RotationDeg,
		"scale_x":         &c.ScaleX,
		"scale_y":         &c.ScaleY,
		"pixels_per_unit": &c.PixelsPerUnit,
		"vision_radius":   &c.VisionRadius,
		"fade_width":      &c.FadeWidth,
		"epsilon":         &c.Epsilon,
		"speed":           &c.Speed,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	ints := map[string]*int{
		"pixel_width":  &c.PixelWidth,
		"pixel_height": &c.PixelHeight,
		"resolution":   &c.Resolution,
		"scale":        &c.Scale,
		"tps":          &c.TPS,
		"hud_width":    &c.HUDWidth,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["walker"]; ok && v != "" {
		c.Walker = v
	}
	if v, ok := cfg["fog_color"]; ok {
		if _, err := ParseHexColor(v); err == nil {
			c.FogColor = v
		}
	}
	if v, ok := cfg["start_paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StartPaused = parsed
		}
	}
	return c
}
