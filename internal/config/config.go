// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/viper"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "CORE"
	MaxDeltaTime = 0.06

	TextCharWidth  = 7
	TextLineHeight = 16
)

var (
	BackgroundColor  = color.RGBA{5, 5, 15, 255}
	CoreColor        = color.RGBA{0, 255, 255, 255}
	TurretColor      = color.RGBA{0, 255, 0, 255}
	EnemyColor       = color.RGBA{255, 0, 0, 255}
	FastEnemyColor   = color.RGBA{255, 255, 0, 255}
	ProjectileColor  = color.RGBA{0, 255, 255, 255}
	PreviewValid     = color.RGBA{0, 255, 0, 160}
	PreviewInvalid   = color.RGBA{255, 0, 0, 160}
	HoverColor       = color.RGBA{255, 255, 255, 255}
	SelectedColor    = color.RGBA{255, 200, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{140, 140, 150, 255}
	PanelColor       = color.RGBA{10, 20, 30, 220}
	PanelStrokeColor = color.RGBA{0, 200, 255, 255}
	HighlightColor   = color.RGBA{0, 255, 255, 255}
	WarningColor     = color.RGBA{255, 60, 60, 255}
	AffordableColor  = color.RGBA{0, 255, 0, 255}
)

// Config — типизированный снимок всех настроек игры.
type Config struct {
	Window     WindowConfig     `mapstructure:"window"`
	Seed       int64            `mapstructure:"seed"`
	Wave       WaveConfig       `mapstructure:"wave"`
	Spawner    SpawnerConfig    `mapstructure:"spawner"`
	Turret     TurretConfig     `mapstructure:"turret"`
	Projectile ProjectileConfig `mapstructure:"projectile"`
	Item       ItemConfig       `mapstructure:"item"`
	Loot       LootConfig       `mapstructure:"loot"`
	Camera     CameraConfig     `mapstructure:"camera"`
	Placement  PlacementConfig  `mapstructure:"placement"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// WaveConfig — константы кривой сложности и экономики.
type WaveConfig struct {
	InitialDelay         float32 `mapstructure:"initial_delay"`
	DelayBetweenWaves    float32 `mapstructure:"delay_between_waves"`
	BaseEnemies          int     `mapstructure:"base_enemies"`
	EnemiesPerWave       int     `mapstructure:"enemies_per_wave"`
	InitialSpawnInterval float32 `mapstructure:"initial_spawn_interval"`
	MinSpawnInterval     float32 `mapstructure:"min_spawn_interval"`
	SpawnIntervalStep    float32 `mapstructure:"spawn_interval_step"`
	DifficultyStep       float32 `mapstructure:"difficulty_step"`
	CoreHealth           int     `mapstructure:"core_health"`
	StartingCurrency     int     `mapstructure:"starting_currency"`
	RewardPerEnemy       int     `mapstructure:"reward_per_enemy"`
}

type SpawnerConfig struct {
	Radius     float32 `mapstructure:"radius"`
	FastChance float32 `mapstructure:"fast_chance"`
}

type TurretConfig struct {
	MinDistanceFromCenter float32 `mapstructure:"min_distance_from_center"`
	MaxDistanceFromCenter float32 `mapstructure:"max_distance_from_center"`
	MinDistanceBetween    float32 `mapstructure:"min_distance_between"`
	MaxTurrets            int     `mapstructure:"max_turrets"`
	InitialCost           int     `mapstructure:"initial_cost"`
	SelectRadius          float32 `mapstructure:"select_radius"`
	HoverRadius           float32 `mapstructure:"hover_radius"`
}

type ProjectileConfig struct {
	Speed     float32 `mapstructure:"speed"`
	Lifetime  float32 `mapstructure:"lifetime"`
	HitRadius float32 `mapstructure:"hit_radius"`
}

type ItemConfig struct {
	MaxDropped  int     `mapstructure:"max_dropped"`
	HoverRadius float32 `mapstructure:"hover_radius"`
}

// LootConfig — политика выпадения предметов при убийстве врага.
type LootConfig struct {
	DropChance float64 `mapstructure:"drop_chance"`
}

type CameraConfig struct {
	Distance    float32 `mapstructure:"distance"`
	MinZoom     float32 `mapstructure:"min_zoom"`
	MaxZoom     float32 `mapstructure:"max_zoom"`
	Sensitivity float32 `mapstructure:"sensitivity"`
	PitchLimit  float32 `mapstructure:"pitch_limit"`
	FOV         float32 `mapstructure:"fov"`
	Near        float32 `mapstructure:"near"`
	Far         float32 `mapstructure:"far"`
	ScrollZoom  float32 `mapstructure:"scroll_zoom"`
}

type PlacementConfig struct {
	Distance    float32 `mapstructure:"distance"`
	MinDistance float32 `mapstructure:"min_distance"`
	MaxDistance float32 `mapstructure:"max_distance"`
	AdjustSpeed float32 `mapstructure:"adjust_speed"`
}

type LoggingConfig struct {
	Level          string `mapstructure:"level"`
	GraylogAddress string `mapstructure:"graylog_address"`
}

func registerDefaults(v *viper.Viper) {
	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.title", WindowTitle)
	v.SetDefault("seed", 0)

	v.SetDefault("wave.initial_delay", 10.0)
	v.SetDefault("wave.delay_between_waves", 10.0)
	v.SetDefault("wave.base_enemies", 10)
	v.SetDefault("wave.enemies_per_wave", 5)
	v.SetDefault("wave.initial_spawn_interval", 0.5)
	v.SetDefault("wave.min_spawn_interval", 0.15)
	v.SetDefault("wave.spawn_interval_step", 0.03)
	v.SetDefault("wave.difficulty_step", 0.15)
	v.SetDefault("wave.core_health", 10)
	v.SetDefault("wave.starting_currency", 6)
	v.SetDefault("wave.reward_per_enemy", 1)

	v.SetDefault("spawner.radius", 30.0)
	v.SetDefault("spawner.fast_chance", 0.3)

	v.SetDefault("turret.min_distance_from_center", 5.0)
	v.SetDefault("turret.max_distance_from_center", 20.0)
	v.SetDefault("turret.min_distance_between", 3.0)
	v.SetDefault("turret.max_turrets", 50)
	v.SetDefault("turret.initial_cost", 1)
	v.SetDefault("turret.select_radius", 1.5)
	v.SetDefault("turret.hover_radius", 2.0)

	v.SetDefault("projectile.speed", 30.0)
	v.SetDefault("projectile.lifetime", 3.0)
	v.SetDefault("projectile.hit_radius", 1.2)

	v.SetDefault("item.max_dropped", 50)
	v.SetDefault("item.hover_radius", 1.5)

	v.SetDefault("loot.drop_chance", 0.25)

	v.SetDefault("camera.distance", 25.0)
	v.SetDefault("camera.min_zoom", 15.0)
	v.SetDefault("camera.max_zoom", 40.0)
	v.SetDefault("camera.sensitivity", 0.005)
	v.SetDefault("camera.pitch_limit", 1.5)
	v.SetDefault("camera.fov", 45.0)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 1000.0)
	v.SetDefault("camera.scroll_zoom", 3.0)

	v.SetDefault("placement.distance", 15.0)
	v.SetDefault("placement.min_distance", 5.0)
	v.SetDefault("placement.max_distance", 30.0)
	v.SetDefault("placement.adjust_speed", 10.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.graylog_address", "")
}

// Load регистрирует значения по умолчанию и читает необязательный файл
// config.(json|yaml) из каталога configDir. Переменные окружения с префиксом
// CORE_ переопределяют файл (CORE_WAVE_CORE_HEALTH=20).
func Load(configDir string) error {
	registerDefaults(viper.GetViper())

	viper.SetConfigName("config")
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("core")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get возвращает снимок текущей конфигурации из глобального viper.
func Get() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Default возвращает конфигурацию только из значений по умолчанию,
// не затрагивая глобальный viper.
func Default() Config {
	v := viper.New()
	registerDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// значения по умолчанию всегда декодируются
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}
