package plot

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// rcFileName is looked up in the home directory when -config is not given
const rcFileName = ".grapherrc"

// Config holds all tunables of the plotter
type Config struct {
	Title    string
	Width    int
	Height   int
	FPS      float64 // Target frames per second
	PollRate int     // Input polls per second

	// Zooming
	DefaultScale float64 // Pixels per unit at startup
	MinScale     float64
	MaxScale     float64
	ZoomSpeed    float64 // Pixels per unit per wheel notch

	// Dragging
	DragSpeed float64 // Coasting speed multiplier
	DragDecay float64 // Velocity decay per second

	// Grid and design
	GridUnit        float64 // Major grid interval in units at startup
	SubDivisions    int     // Minor lines per major line
	AxisThickness   float64
	RibbonThickness float64
	LabelSize       float64

	FontPath    string // TTF file; empty uses the embedded Go Regular face
	Function    string // Initial function preset
	NoiseSeed   int64
	SnapshotDir string
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Title:           "Grapher",
		Width:           2048,
		Height:          1536,
		FPS:             60,
		PollRate:        120,
		DefaultScale:    100,
		MinScale:        10,
		MaxScale:        1000,
		ZoomSpeed:       10,
		DragSpeed:       8,
		DragDecay:       10,
		GridUnit:        1,
		SubDivisions:    4,
		AxisThickness:   2,
		RibbonThickness: 2,
		LabelSize:       24,
		Function:        "waves",
		NoiseSeed:       1,
		SnapshotDir:     ".",
	}
}

// LoadConfig builds the configuration from defaults, the rc file and args,
// in increasing order of precedence
func LoadConfig(args []string) (*Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("grapher", flag.ContinueOnError)
	rcPath := fs.String("config", defaultRCPath(), "Path to a key=value config file.")
	cfg.bindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	if *rcPath != "" {
		if err := cfg.LoadFile(*rcPath); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}
	// Parse again so flags win over the file.
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultRCPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, rcFileName)
}

func (c *Config) bindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "Window title.")
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "Target frames per second.")
	fs.IntVar(&c.PollRate, "poll", c.PollRate, "Input polls per second.")
	fs.Float64Var(&c.DefaultScale, "scale", c.DefaultScale, "Initial pixels per unit.")
	fs.Float64Var(&c.MinScale, "min-scale", c.MinScale, "Minimum pixels per unit.")
	fs.Float64Var(&c.MaxScale, "max-scale", c.MaxScale, "Maximum pixels per unit.")
	fs.Float64Var(&c.ZoomSpeed, "zoom-speed", c.ZoomSpeed, "Pixels per unit per wheel notch.")
	fs.Float64Var(&c.DragSpeed, "drag-speed", c.DragSpeed, "Coasting speed multiplier.")
	fs.Float64Var(&c.DragDecay, "drag-decay", c.DragDecay, "Drag velocity decay per second.")
	fs.Float64Var(&c.GridUnit, "grid-unit", c.GridUnit, "Initial major grid interval in units.")
	fs.IntVar(&c.SubDivisions, "subdivisions", c.SubDivisions, "Minor grid lines per major line.")
	fs.Float64Var(&c.LabelSize, "label-size", c.LabelSize, "Tick label font size.")
	fs.StringVar(&c.FontPath, "font", c.FontPath, "TTF font file (default: embedded Go Regular).")
	fs.StringVar(&c.Function, "func", c.Function, "Function to plot: waves, sinc, gauss or noise.")
	fs.Int64Var(&c.NoiseSeed, "seed", c.NoiseSeed, "Seed of the noise function.")
	fs.StringVar(&c.SnapshotDir, "snapshots", c.SnapshotDir, "Directory for PNG snapshots.")
}

// LoadFile applies key=value settings from path
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := c.Parse(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse applies key=value lines read from r. Blank lines and lines starting
// with # are skipped, unknown keys are ignored.
func (c *Config) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("line %d: expected key=value", lineNo)
		}
		key := normalizeKey(parts[0])
		value := strings.TrimSpace(parts[1])
		if err := c.set(key, value); err != nil {
			return fmt.Errorf("line %d: %s: %w", lineNo, key, err)
		}
	}
	return scanner.Err()
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.ReplaceAll(k, "_", "")
	return strings.ReplaceAll(k, "-", "")
}

func (c *Config) set(key, value string) error {
	var err error
	switch key {
	case "title":
		c.Title = value
	case "width":
		c.Width, err = strconv.Atoi(value)
	case "height":
		c.Height, err = strconv.Atoi(value)
	case "fps":
		c.FPS, err = strconv.ParseFloat(value, 64)
	case "poll", "pollrate":
		c.PollRate, err = strconv.Atoi(value)
	case "scale", "defaultscale":
		c.DefaultScale, err = strconv.ParseFloat(value, 64)
	case "minscale":
		c.MinScale, err = strconv.ParseFloat(value, 64)
	case "maxscale":
		c.MaxScale, err = strconv.ParseFloat(value, 64)
	case "zoomspeed":
		c.ZoomSpeed, err = strconv.ParseFloat(value, 64)
	case "dragspeed":
		c.DragSpeed, err = strconv.ParseFloat(value, 64)
	case "dragdecay":
		c.DragDecay, err = strconv.ParseFloat(value, 64)
	case "gridunit":
		c.GridUnit, err = strconv.ParseFloat(value, 64)
	case "subdivisions":
		c.SubDivisions, err = strconv.Atoi(value)
	case "axisthickness":
		c.AxisThickness, err = strconv.ParseFloat(value, 64)
	case "ribbonthickness":
		c.RibbonThickness, err = strconv.ParseFloat(value, 64)
	case "labelsize":
		c.LabelSize, err = strconv.ParseFloat(value, 64)
	case "font", "fontpath":
		c.FontPath = expandHome(value)
	case "func", "function":
		c.Function = value
	case "seed", "noiseseed":
		c.NoiseSeed, err = strconv.ParseInt(value, 10, 64)
	case "snapshots", "snapshotdir":
		c.SnapshotDir = expandHome(value)
	}
	return err
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// minSubGridSpacing is the smallest minor grid spacing in pixels the
// configuration may produce
const minSubGridSpacing = 1.0

// Validate checks the invariants the view math relies on
func (c *Config) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"fps", c.FPS},
		{"scale", c.DefaultScale},
		{"min scale", c.MinScale},
		{"max scale", c.MaxScale},
		{"zoom speed", c.ZoomSpeed},
		{"drag speed", c.DragSpeed},
		{"drag decay", c.DragDecay},
		{"grid unit", c.GridUnit},
		{"axis thickness", c.AxisThickness},
		{"ribbon thickness", c.RibbonThickness},
		{"label size", c.LabelSize},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v must be finite", f.name, f.v)
		}
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case !(c.FPS > 0):
		return fmt.Errorf("fps %v must be positive", c.FPS)
	case c.PollRate <= 0:
		return fmt.Errorf("poll rate %d must be positive", c.PollRate)
	case !(c.MinScale > 0):
		return fmt.Errorf("min scale %v must be positive", c.MinScale)
	case c.MinScale > c.MaxScale:
		return fmt.Errorf("min scale %v exceeds max scale %v", c.MinScale, c.MaxScale)
	case c.DefaultScale < c.MinScale || c.DefaultScale > c.MaxScale:
		return fmt.Errorf("scale %v outside [%v, %v]", c.DefaultScale, c.MinScale, c.MaxScale)
	case !(c.GridUnit > 0):
		return fmt.Errorf("grid unit %v must be positive", c.GridUnit)
	case c.SubDivisions <= 0:
		return fmt.Errorf("subdivisions %d must be positive", c.SubDivisions)
	case c.GridUnit*c.DefaultScale/float64(2*c.SubDivisions) < minSubGridSpacing:
		// The grid level keeps major spacing above half its starting pixel size.
		return fmt.Errorf("grid unit %v with %d subdivisions at scale %v spaces minor lines under %v pixel",
			c.GridUnit, c.SubDivisions, c.DefaultScale, minSubGridSpacing)
	case !(c.ZoomSpeed > 0):
		return fmt.Errorf("zoom speed %v must be positive", c.ZoomSpeed)
	case c.DragDecay < 0 || c.DragSpeed < 0:
		return errors.New("drag speed and decay must not be negative")
	case !(c.AxisThickness > 0):
		return fmt.Errorf("axis thickness %v must be positive", c.AxisThickness)
	case !(c.RibbonThickness > 0):
		return fmt.Errorf("ribbon thickness %v must be positive", c.RibbonThickness)
	case !(c.LabelSize > 0):
		return fmt.Errorf("label size %v must be positive", c.LabelSize)
	}
	return nil
}

// Size returns the window size in pixels
func (c *Config) Size() curve.Size {
	return curve.Sz(float64(c.Width), float64(c.Height))
}

// SceneStyle returns the drawing sizes configured in c
func (c *Config) SceneStyle() SceneStyle {
	return SceneStyle{AxisThickness: c.AxisThickness, RibbonThickness: c.RibbonThickness}
}
