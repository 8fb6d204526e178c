// Package settings loads user preferences for the eventui CLI from an
// optional config file, EVENTUI_* environment variables and flags.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. EVENTUI_LOG_LEVEL.
const EnvPrefix = "EVENTUI"

// Settings is the resolved user configuration.
type Settings struct {
	Theme   string      `mapstructure:"theme" validate:"oneof=light dark"`
	Width   int         `mapstructure:"width" validate:"min=0,max=400"`
	Stories string      `mapstructure:"stories"`
	Log     LogSettings `mapstructure:"log"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Human bool   `mapstructure:"human"`
}

// Loader wraps a private viper instance so tests and commands never share
// global state.
type Loader struct {
	v        *viper.Viper
	explicit bool
}

// NewLoader creates a loader. An empty path searches the user config
// directory for config.yaml; a missing file there is not an error.
func NewLoader(path string) *Loader {
	v := viper.New()

	v.SetDefault("theme", "light")
	v.SetDefault("width", 0)
	v.SetDefault("stories", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.human", true)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, explicit: path != ""}
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the config file if present, applies env and bound flags, and
// validates the result.
func (l *Loader) Load() (Settings, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.explicit || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))

	if err := validator.New().Struct(s); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			fe := ves[0]
			return Settings{}, fmt.Errorf("invalid setting %s=%v (want %s)", settingKey(fe), fe.Value(), fe.Param())
		}
		return Settings{}, err
	}
	return s, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func settingKey(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

func configDirs() []string {
	var dirs []string
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "eventui"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "eventui"))
	}
	return dirs
}
