package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	units "github.com/docker/go-units"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/skillcoder/minecraft-compose/internal/infra/cronparser"
	"github.com/skillcoder/minecraft-compose/internal/logic/datapacks"
	"github.com/skillcoder/minecraft-compose/internal/logic/lifecycle"
)

var (
	ErrNotFound = errors.New("config file not found")
	ErrInvalid  = errors.New("invalid config")
)

type Config struct {
	Name      string          `mapstructure:"name" validate:"required,container_name"`
	Host      string          `mapstructure:"host" validate:"required,ip|hostname_rfc1123"`
	Port      int             `mapstructure:"port" validate:"min=1,max=65535"`
	Server    ServerConfig    `mapstructure:"server"`
	World     WorldConfig     `mapstructure:"world"`
	Container ContainerConfig `mapstructure:"container"`
	Console   ConsoleConfig   `mapstructure:"console"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Serve     ServeConfig     `mapstructure:"serve"`

	// Datapacks maps an installed pack name to its source archive. Keys are
	// case-insensitive and read back lowercased.
	Datapacks map[string]string `mapstructure:"datapacks" validate:"dive,keys,datapack_name,endkeys,required"`

	// baseDir is the directory of the loaded file; relative paths resolve against it.
	baseDir string
}

type ServerConfig struct {
	Type    string `mapstructure:"type" validate:"oneof=vanilla"`
	Version string `mapstructure:"version" validate:"required"`
	Memory  string `mapstructure:"memory" validate:"omitempty,memory"`
}

type WorldConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Seed        string `mapstructure:"seed"`
	Gamemode    string `mapstructure:"gamemode" validate:"oneof=survival creative adventure spectator"`
	Difficulty  string `mapstructure:"difficulty" validate:"oneof=peaceful easy normal hard"`
	AllowFlight bool   `mapstructure:"allow_flight"`
}

type ContainerConfig struct {
	Image         string        `mapstructure:"image" validate:"required"`
	DataDir       string        `mapstructure:"data_dir" validate:"required"`
	StopTimeout   time.Duration `mapstructure:"stop_timeout" validate:"gte=0s"`
	RestartPolicy string        `mapstructure:"restart_policy" validate:"oneof=no always unless-stopped on-failure"`
}

type ConsoleConfig struct {
	DetachKeys string `mapstructure:"detach_keys"`
}

type ScheduleConfig struct {
	Restart  string `mapstructure:"restart" validate:"omitempty,cron"`
	Timezone string `mapstructure:"timezone" validate:"omitempty,timezone"`
}

type ServeConfig struct {
	HTTPPort    string `mapstructure:"http_port" validate:"required,numeric"`
	MetricsPort string `mapstructure:"metrics_port" validate:"required,numeric"`
}

// Load reads the TOML file at path, applies defaults and MCC_* environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg.baseDir = filepath.Dir(abs)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Keys without a default are registered empty so environment overrides
	// reach Unmarshal.
	v.SetDefault(keyName, "")
	v.SetDefault(keyHost, defaultHost)
	v.SetDefault(keyPort, defaultPort)
	v.SetDefault(keyServerType, defaultServerType)
	v.SetDefault(keyServerVersion, "")
	v.SetDefault(keyServerMemory, "")
	v.SetDefault(keyWorldName, defaultWorldName)
	v.SetDefault(keyWorldSeed, "")
	v.SetDefault(keyWorldGamemode, defaultWorldGamemode)
	v.SetDefault(keyWorldDifficulty, defaultWorldDifficulty)
	v.SetDefault(keyWorldAllowFlight, false)
	v.SetDefault(keyContainerImage, defaultContainerImage)
	v.SetDefault(keyContainerDataDir, defaultContainerDataDir)
	v.SetDefault(keyContainerStopTimeout, defaultContainerStopTimeout)
	v.SetDefault(keyContainerRestartPolicy, defaultContainerRestartPolicy)
	v.SetDefault(keyConsoleDetachKeys, defaultConsoleDetachKeys)
	v.SetDefault(keyScheduleRestart, "")
	v.SetDefault(keyScheduleTimezone, defaultScheduleTimezone)
	v.SetDefault(keyServeHTTPPort, defaultServeHTTPPort)
	v.SetDefault(keyServeMetricsPort, defaultServeMetricsPort)
}

// Validate checks the config against its validation tags.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		msgs = append(msgs, fmt.Sprintf("%s: %q fails %s", key, fmt.Sprint(fe.Value()), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("container_name", func(fl validator.FieldLevel) bool {
		return lifecycle.ValidName(fl.Field().String())
	})

	_ = v.RegisterValidation("memory", func(fl validator.FieldLevel) bool {
		size, err := units.RAMInBytes(fl.Field().String())

		return err == nil && size > 0
	})

	_ = v.RegisterValidation("datapack_name", func(fl validator.FieldLevel) bool {
		return datapacks.ValidName(fl.Field().String())
	})

	_ = v.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		return cronparser.Validate(fl.Field().String(), "") == nil
	})

	return v
}

// Identity returns the server identity.
func (c *Config) Identity() (lifecycle.Identity, error) {
	identity, err := lifecycle.NewIdentity(c.Name, c.Host, c.Port)
	if err != nil {
		return lifecycle.Identity{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return identity, nil
}

// DataDir returns the absolute host data directory.
func (c *Config) DataDir() string {
	if filepath.IsAbs(c.Container.DataDir) || c.baseDir == "" {
		return c.Container.DataDir
	}

	return filepath.Join(c.baseDir, c.Container.DataDir)
}

// DatapackSourceDir returns the directory relative datapack sources
// resolve against: datapacks/ next to the config file.
func (c *Config) DatapackSourceDir() string {
	return filepath.Join(c.baseDir, datapackSourceDir)
}

// DatapackInstallDir returns the datapacks directory of the configured world.
func (c *Config) DatapackInstallDir() string {
	return filepath.Join(c.DataDir(), c.World.Name, "datapacks")
}

// LaunchParams returns the container parameters for the configured variant.
func (c *Config) LaunchParams() lifecycle.LaunchParams {
	env := []string{
		"EULA=TRUE",
		"TYPE=" + strings.ToUpper(c.Server.Type),
		"VERSION=" + c.Server.Version,
	}

	if c.Server.Memory != "" {
		env = append(env, "MEMORY="+c.Server.Memory)
	}

	env = append(env,
		"LEVEL="+c.World.Name,
		"MODE="+c.World.Gamemode,
		"DIFFICULTY="+c.World.Difficulty,
		"ALLOW_FLIGHT="+strings.ToUpper(fmt.Sprint(c.World.AllowFlight)),
	)

	if c.World.Seed != "" {
		env = append(env, "SEED="+c.World.Seed)
	}

	return lifecycle.LaunchParams{
		Image:         c.Container.Image,
		Env:           env,
		DataDir:       c.DataDir(),
		ContainerPort: containerGamePort,
		RestartPolicy: c.Container.RestartPolicy,
	}
}
