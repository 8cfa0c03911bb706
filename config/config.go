// Package config loads the tunables for a steer session from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Collision radius rules.
const (
	RadiusRuleSum          = "sum"
	RadiusRuleDoubledFirst = "doubled-first"
)

type Config struct {
	World      WorldConfig      `yaml:"world"`
	Steering   SteeringConfig   `yaml:"steering"`
	Commander  CommanderConfig  `yaml:"commander"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Collision  CollisionConfig  `yaml:"collision"`
	Obstacles  []Obstacle       `yaml:"obstacles"`
	Host       HostConfig       `yaml:"host"`
	Log        LogConfig        `yaml:"log"`
}

// WorldConfig is the rectangle bounded entities are clamped into.
type WorldConfig struct {
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	MinY float32 `yaml:"min_y"`
	MaxY float32 `yaml:"max_y"`
}

type SteeringConfig struct {
	MaxForce      float32 `yaml:"max_force"`
	SlowingRadius float32 `yaml:"slowing_radius"`
}

type CommanderConfig struct {
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
	Mass     float32 `yaml:"mass"`
	Radius   float32 `yaml:"radius"`
	Cooldown float64 `yaml:"cooldown"`
}

type ProjectileConfig struct {
	Radius float32 `yaml:"radius"`
	// SpeedMultiplier scales the global speed limit to get the launch speed.
	SpeedMultiplier float32 `yaml:"speed_multiplier"`
	// Lifetime in seconds; 0 keeps projectiles until they collide.
	Lifetime float64 `yaml:"lifetime"`
}

type CollisionConfig struct {
	RadiusRule string `yaml:"radius_rule"`
}

// Obstacle is a static circle that is removed when something collides with it.
type Obstacle struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Radius float32 `yaml:"radius"`
}

type HostConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TPS    int     `yaml:"tps"`
	Zoom   float32 `yaml:"zoom"`
	// CameraSpeed is how far the camera may move toward the commander per second.
	CameraSpeed float32 `yaml:"camera_speed"`
	Debug       bool    `yaml:"debug"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		World: WorldConfig{MinX: -300, MaxX: 300, MinY: -200, MaxY: 200},
		Steering: SteeringConfig{
			MaxForce:      100,
			SlowingRadius: 50,
		},
		Commander: CommanderConfig{
			Mass:     20,
			Radius:   16,
			Cooldown: 0.5,
		},
		Projectile: ProjectileConfig{
			Radius:          4,
			SpeedMultiplier: 2,
		},
		Collision: CollisionConfig{RadiusRule: RadiusRuleSum},
		Host: HostConfig{
			Title:       "steer",
			Width:       1280,
			Height:      720,
			TPS:         60,
			Zoom:        1,
			CameraSpeed: 200,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every problem found, wrapped in ErrInvalid.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for _, f := range c.floats() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			add("%s must be finite, got %v", f.name, f.value)
		}
	}
	if c.World.MinX >= c.World.MaxX || c.World.MinY >= c.World.MaxY {
		add("world bounds are empty: x [%v, %v], y [%v, %v]", c.World.MinX, c.World.MaxX, c.World.MinY, c.World.MaxY)
	}
	if c.Steering.MaxForce <= 0 {
		add("steering.max_force must be positive, got %v", c.Steering.MaxForce)
	}
	if c.Steering.SlowingRadius < 0 {
		add("steering.slowing_radius must not be negative, got %v", c.Steering.SlowingRadius)
	}
	if c.Commander.Mass <= 0 {
		add("commander.mass must be positive, got %v", c.Commander.Mass)
	}
	if c.Commander.Radius <= 0 {
		add("commander.radius must be positive, got %v", c.Commander.Radius)
	}
	if c.Commander.Cooldown < 0 {
		add("commander.cooldown must not be negative, got %v", c.Commander.Cooldown)
	}
	if c.Projectile.Radius <= 0 {
		add("projectile.radius must be positive, got %v", c.Projectile.Radius)
	}
	if c.Projectile.SpeedMultiplier < 0 {
		add("projectile.speed_multiplier must not be negative, got %v", c.Projectile.SpeedMultiplier)
	}
	if c.Projectile.Lifetime < 0 {
		add("projectile.lifetime must not be negative, got %v", c.Projectile.Lifetime)
	}
	switch c.Collision.RadiusRule {
	case RadiusRuleSum, RadiusRuleDoubledFirst:
	default:
		add("collision.radius_rule must be %q or %q, got %q", RadiusRuleSum, RadiusRuleDoubledFirst, c.Collision.RadiusRule)
	}
	for i, o := range c.Obstacles {
		if o.Radius <= 0 {
			add("obstacles[%d].radius must be positive, got %v", i, o.Radius)
		}
	}
	if c.Host.Width <= 0 || c.Host.Height <= 0 {
		add("host size must be positive, got %dx%d", c.Host.Width, c.Host.Height)
	}
	if c.Host.TPS <= 0 {
		add("host.tps must be positive, got %d", c.Host.TPS)
	}
	if c.Host.Zoom <= 0 {
		add("host.zoom must be positive, got %v", c.Host.Zoom)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

type namedFloat struct {
	name  string
	value float64
}

// floats lists every floating-point tunable by its YAML path.
func (c Config) floats() []namedFloat {
	fs := []namedFloat{
		{"world.min_x", float64(c.World.MinX)},
		{"world.max_x", float64(c.World.MaxX)},
		{"world.min_y", float64(c.World.MinY)},
		{"world.max_y", float64(c.World.MaxY)},
		{"steering.max_force", float64(c.Steering.MaxForce)},
		{"steering.slowing_radius", float64(c.Steering.SlowingRadius)},
		{"commander.x", float64(c.Commander.X)},
		{"commander.y", float64(c.Commander.Y)},
		{"commander.mass", float64(c.Commander.Mass)},
		{"commander.radius", float64(c.Commander.Radius)},
		{"commander.cooldown", c.Commander.Cooldown},
		{"projectile.radius", float64(c.Projectile.Radius)},
		{"projectile.speed_multiplier", float64(c.Projectile.SpeedMultiplier)},
		{"projectile.lifetime", c.Projectile.Lifetime},
		{"host.zoom", float64(c.Host.Zoom)},
		{"host.camera_speed", float64(c.Host.CameraSpeed)},
	}
	for i, o := range c.Obstacles {
		fs = append(fs,
			namedFloat{fmt.Sprintf("obstacles[%d].x", i), float64(o.X)},
			namedFloat{fmt.Sprintf("obstacles[%d].y", i), float64(o.Y)},
			namedFloat{fmt.Sprintf("obstacles[%d].radius", i), float64(o.Radius)},
		)
	}
	return fs
}
