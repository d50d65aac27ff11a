package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// TuningFile is the prefab holding every gameplay constant.
const TuningFile = "tuning.yaml"

// Millis is a duration written in YAML as whole milliseconds.
type Millis int

func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

type Tuning struct {
	Window     WindowTuning `yaml:"window"`
	Framerate  int          `yaml:"framerate"`
	Scale      int          `yaml:"scale"`
	TileSize   int          `yaml:"tile_size"`
	Background *YAMLColor   `yaml:"background"`
	Player     PlayerTuning `yaml:"player"`
	Bullet     BulletTuning `yaml:"bullet"`
	Fire       FireTuning   `yaml:"fire"`
	Enemy      EnemyTuning  `yaml:"enemy"`
	Bee        BeeTuning    `yaml:"bee"`
	Snake      SnakeTuning  `yaml:"snake"`
}

type WindowTuning struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerTuning struct {
	Speed          float64 `yaml:"speed"`
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	AnimationSpeed float64 `yaml:"animation_speed"`
	ShootCooldown  Millis  `yaml:"shoot_cooldown_ms"`
	FloorProbe     float64 `yaml:"floor_probe"`
}

type BulletTuning struct {
	Speed        float64 `yaml:"speed"`
	MaxStep      float64 `yaml:"max_step"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
	// DespawnMargin is how far past the playable span a bullet may travel
	// before it is removed. Zero uses the window width.
	DespawnMargin float64 `yaml:"despawn_margin"`
}

type FireTuning struct {
	Lifetime Millis  `yaml:"lifetime_ms"`
	OffsetY  float64 `yaml:"offset_y"`
}

type EnemyTuning struct {
	AnimationSpeed float64 `yaml:"animation_speed"`
	DeathDelay     Millis  `yaml:"death_delay_ms"`
}

type BeeTuning struct {
	SpawnPeriod  Millis  `yaml:"spawn_period_ms"`
	SpeedMin     int     `yaml:"speed_min"`
	SpeedMax     int     `yaml:"speed_max"`
	AmplitudeMin float64 `yaml:"amplitude_min"`
	AmplitudeMax float64 `yaml:"amplitude_max"`
	PeriodMin    float64 `yaml:"period_min"`
	PeriodMax    float64 `yaml:"period_max"`
}

type SnakeTuning struct {
	SpeedMin int `yaml:"speed_min"`
	SpeedMax int `yaml:"speed_max"`
}

// DefaultTuning returns the built-in constants.
func DefaultTuning() *Tuning {
	return &Tuning{
		Window:    WindowTuning{Width: 1280, Height: 720},
		Framerate: 60,
		Scale:     6,
		TileSize:  16,
		Player: PlayerTuning{
			Speed:          120,
			Gravity:        30,
			JumpImpulse:    -15,
			AnimationSpeed: 10,
			ShootCooldown:  500,
			FloorProbe:     2,
		},
		Bullet: BulletTuning{Speed: 850, MaxStep: 4, MuzzleOffset: 34},
		Fire:   FireTuning{Lifetime: 100, OffsetY: 8},
		Enemy:  EnemyTuning{AnimationSpeed: 10, DeathDelay: 200},
		Bee: BeeTuning{
			SpawnPeriod:  500,
			SpeedMin:     300,
			SpeedMax:     500,
			AmplitudeMin: 30,
			AmplitudeMax: 80,
			PeriodMin:    1.5,
			PeriodMax:    3.0,
		},
		Snake: SnakeTuning{SpeedMin: 50, SpeedMax: 60},
	}
}

// LoadTuning reads tuning.yaml and fills unset fields from DefaultTuning.
func LoadTuning() (*Tuning, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning data on top of the defaults.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	switch {
	case t.Window.Width <= 0 || t.Window.Height <= 0:
		return fmt.Errorf("prefabs: window size must be positive, got %dx%d", t.Window.Width, t.Window.Height)
	case t.Framerate <= 0:
		return fmt.Errorf("prefabs: framerate must be positive, got %d", t.Framerate)
	case t.Scale <= 0 || t.TileSize <= 0:
		return fmt.Errorf("prefabs: scale and tile_size must be positive")
	case t.Bullet.MaxStep <= 0:
		return fmt.Errorf("prefabs: bullet max_step must be positive, got %v", t.Bullet.MaxStep)
	case t.Bee.SpawnPeriod <= 0:
		return fmt.Errorf("prefabs: bee spawn_period_ms must be positive, got %d", t.Bee.SpawnPeriod)
	case t.Bee.SpeedMax < t.Bee.SpeedMin || t.Snake.SpeedMax < t.Snake.SpeedMin:
		return fmt.Errorf("prefabs: speed ranges must have min <= max")
	case t.Bee.AmplitudeMax < t.Bee.AmplitudeMin || t.Bee.PeriodMax < t.Bee.PeriodMin:
		return fmt.Errorf("prefabs: bee oscillation ranges must have min <= max")
	case t.Bee.PeriodMin <= 0:
		return fmt.Errorf("prefabs: bee period_min must be positive")
	}
	return nil
}

// BulletMargin returns the despawn margin, defaulting to the window width.
func (t *Tuning) BulletMargin() float64 {
	if t.Bullet.DespawnMargin > 0 {
		return t.Bullet.DespawnMargin
	}
	return float64(t.Window.Width)
}
