package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/focusdeck/internal/storage"
)

var ErrInvalidConfig = errors.New("config: invalid value")

const (
	EnvPrefix      = "FOCUSDECK"
	configName     = ".focusdeck"
	configPathEnv  = "FOCUSDECK_CONFIG_PATH"
	defaultDataDir = "~/.focusdeck"
)

type StorageConfig struct {
	Backend string
	Path    string
}

type LogConfig struct {
	File  string
	Level string
}

type TimerConfig struct {
	AutoCycle    bool
	WorkMinutes  int
	BreakMinutes int
}

type Config struct {
	Storage              StorageConfig
	Log                  LogConfig
	Timer                TimerConfig
	DesktopNotifications bool
	Shuffle              bool
	SchedulerBuffer      int
	ConfigFile           string
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: storage.BackendFile,
			Path:    defaultDataDir,
		},
		Log: LogConfig{
			File:  defaultDataDir + "/focusdeck.log",
			Level: "info",
		},
		Timer: TimerConfig{
			WorkMinutes:  25,
			BreakMinutes: 5,
		},
		SchedulerBuffer: 64,
	}
}

// Load reads defaults, then an optional .focusdeck config file, then
// FOCUSDECK_* environment variables. A missing config file is not an error.
// explicitFile, when set, must exist.
func Load(explicitFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("timer.auto_cycle", def.Timer.AutoCycle)
	v.SetDefault("timer.work_minutes", def.Timer.WorkMinutes)
	v.SetDefault("timer.break_minutes", def.Timer.BreakMinutes)
	v.SetDefault("notifications.desktop", def.DesktopNotifications)
	v.SetDefault("music.shuffle", def.Shuffle)
	v.SetDefault("scheduler.buffer", def.SchedulerBuffer)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName(configName)
		if override := os.Getenv(configPathEnv); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	cfg := Config{
		Storage: StorageConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("storage.backend"))),
			Path:    v.GetString("storage.path"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
		Timer: TimerConfig{
			AutoCycle:    v.GetBool("timer.auto_cycle"),
			WorkMinutes:  v.GetInt("timer.work_minutes"),
			BreakMinutes: v.GetInt("timer.break_minutes"),
		},
		DesktopNotifications: v.GetBool("notifications.desktop"),
		Shuffle:              v.GetBool("music.shuffle"),
		SchedulerBuffer:      v.GetInt("scheduler.buffer"),
		ConfigFile:           v.ConfigFileUsed(),
	}

	var err error
	if cfg.Storage.Path, err = expand(cfg.Storage.Path); err != nil {
		return Config{}, err
	}
	if cfg.Log.File, err = expand(cfg.Log.File); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !storage.ValidBackend(c.Storage.Backend) {
		return fmt.Errorf("%w: storage.backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Storage.Backend != storage.BackendMemory && strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("%w: storage.path is required", ErrInvalidConfig)
	}
	if c.Timer.WorkMinutes < 1 || c.Timer.WorkMinutes > 120 {
		return fmt.Errorf("%w: timer.work_minutes %d", ErrInvalidConfig, c.Timer.WorkMinutes)
	}
	if c.Timer.BreakMinutes < 1 || c.Timer.BreakMinutes > 60 {
		return fmt.Errorf("%w: timer.break_minutes %d", ErrInvalidConfig, c.Timer.BreakMinutes)
	}
	if c.SchedulerBuffer <= 0 {
		return fmt.Errorf("%w: scheduler.buffer %d", ErrInvalidConfig, c.SchedulerBuffer)
	}
	return nil
}

func expand(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	out, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("config: expand %q: %w", path, err)
	}
	return out, nil
}
