package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/pong/common"
	"gopkg.in/yaml.v3"
)

// DefaultGameSpec is the embedded spec name.
const DefaultGameSpec = "pong.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the YAML description of a match. FirstServer is "left" or
// "right". Numeric fields are pointers so an explicit 0 is kept and only an
// absent field falls back to the default.
type GameSpec struct {
	Name        string        `yaml:"name"`
	Playfield   PlayfieldSpec `yaml:"playfield"`
	Paddle      PaddleSpec    `yaml:"paddle"`
	Ball        BallSpec      `yaml:"ball"`
	TargetFPS   *int          `yaml:"target_fps"`
	FirstServer string        `yaml:"first_server"`
	Seed        *int64        `yaml:"seed"`
	Players     PlayersSpec   `yaml:"players"`
	Colors      PaletteSpec   `yaml:"colors"`
	Audio       []AudioSpec   `yaml:"audio"`
}

type PlayfieldSpec struct {
	Width        *float64 `yaml:"width"`
	Height       *float64 `yaml:"height"`
	TopBarHeight *float64 `yaml:"top_bar_height"`
	Border       *float64 `yaml:"border"`
}

type PaddleSpec struct {
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
	Inset  *float64 `yaml:"inset"`
	Speed  *float64 `yaml:"speed"`
}

type BallSpec struct {
	Size              *float64 `yaml:"size"`
	LaunchSpeed       *float64 `yaml:"launch_speed"`
	LaunchVerticalMin *float64 `yaml:"launch_vertical_min"`
	LaunchVerticalMax *float64 `yaml:"launch_vertical_max"`
	ServeMargin       *float64 `yaml:"serve_margin"`
}

type PlayersSpec struct {
	Left  KeysSpec `yaml:"left"`
	Right KeysSpec `yaml:"right"`
}

type KeysSpec struct {
	Down  string `yaml:"down"`
	Up    string `yaml:"up"`
	Serve string `yaml:"serve"`
}

type PaletteSpec struct {
	Background  YAMLColor `yaml:"background"`
	TopBar      YAMLColor `yaml:"top_bar"`
	Border      YAMLColor `yaml:"border"`
	LeftPaddle  YAMLColor `yaml:"left_paddle"`
	RightPaddle YAMLColor `yaml:"right_paddle"`
	Ball        YAMLColor `yaml:"ball"`
}

// AudioSpec describes a generated tone played on a bounce. Event is one of
// "wall", "side" or "paddle".
type AudioSpec struct {
	Event      string  `yaml:"event"`
	Frequency  float64 `yaml:"frequency"`
	DurationMs int     `yaml:"duration_ms"`
	Volume     float64 `yaml:"volume"`
}

// LoadGameSpec loads a game spec from disk or the embedded prefabs.
func LoadGameSpec(name string) (*GameSpec, error) {
	if name == "" {
		name = DefaultGameSpec
	}
	spec, err := LoadSpec[GameSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ToConfig converts the spec into a validated simulation config. Fields the
// spec leaves out keep their defaults.
func (s *GameSpec) ToConfig() (common.Config, error) {
	cfg := common.DefaultConfig()
	if s == nil {
		return cfg, nil
	}

	setIf(&cfg.Playfield.Width, s.Playfield.Width)
	setIf(&cfg.Playfield.Height, s.Playfield.Height)
	setIf(&cfg.Playfield.TopBarHeight, s.Playfield.TopBarHeight)
	setIf(&cfg.Playfield.Border, s.Playfield.Border)

	setIf(&cfg.PaddleWidth, s.Paddle.Width)
	setIf(&cfg.PaddleHeight, s.Paddle.Height)
	setIf(&cfg.PaddleInset, s.Paddle.Inset)
	setIf(&cfg.PaddleSpeed, s.Paddle.Speed)

	setIf(&cfg.BallSize, s.Ball.Size)
	setIf(&cfg.LaunchSpeed, s.Ball.LaunchSpeed)
	setIf(&cfg.LaunchVerticalMin, s.Ball.LaunchVerticalMin)
	setIf(&cfg.LaunchVerticalMax, s.Ball.LaunchVerticalMax)
	setIf(&cfg.ServeMargin, s.Ball.ServeMargin)

	if s.TargetFPS != nil {
		cfg.TargetFPS = *s.TargetFPS
	}
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
	side, err := common.ParseSide(s.FirstServer)
	if err != nil {
		return cfg, fmt.Errorf("prefabs: first_server: %w", err)
	}
	cfg.FirstServer = side

	cfg.Left = s.Players.Left.bindings(cfg.Left)
	cfg.Right = s.Players.Right.bindings(cfg.Right)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return cfg, nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func (k KeysSpec) bindings(def common.Bindings) common.Bindings {
	b := def
	if k.Down != "" {
		b.Down = common.Key(k.Down)
	}
	if k.Up != "" {
		b.Up = common.Key(k.Up)
	}
	if k.Serve != "" {
		b.Serve = common.Key(k.Serve)
	}
	return b
}

// ColorOr returns the colour, or def when the spec left it out.
func (c YAMLColor) ColorOr(def color.Color) color.Color {
	if c.Color == nil {
		return def
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
