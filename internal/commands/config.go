package commands

import (
	"github.com/spf13/viper"
)

// Defaults are the optional-flag defaults, overridable through a
// .patterncraft.yaml config file in the working directory.
type Defaults struct {
	NameScreen   string
	Database     string
	HotReload    string
	Localization string
}

// loadDefaults reads .patterncraft.yaml if present. A missing file just
// yields the built-in defaults; a malformed one is reported by the caller.
func loadDefaults() (Defaults, error) {
	v := viper.New()
	v.SetConfigName(".patterncraft")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("name_screen", "MainWindowScreen")
	v.SetDefault("database", "no")
	v.SetDefault("use_hotreload", "no")
	v.SetDefault("use_localization", "no")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Defaults{}, err
		}
	}

	return Defaults{
		NameScreen:   v.GetString("name_screen"),
		Database:     v.GetString("database"),
		HotReload:    v.GetString("use_hotreload"),
		Localization: v.GetString("use_localization"),
	}, nil
}
