// Config loading for the typemap demo CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "typemap"
	configFileType = "yaml"

	// Config keys consumed by the demo scenarios.
	cfgKeyAppName  = "app.name"
	cfgKeyAppDebug = "app.debug"
	cfgKeyMaxConns = "app.max_connections"
	cfgKeyTheme    = "ui.theme"
	cfgKeyLanguage = "ui.language"
)

// loadConfig reads demo settings with Viper. When path is empty the
// default typemap.yaml in the working directory is used; a missing config
// file is not an error, the defaults below apply.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAppName, "sovran-demo")
	v.SetDefault(cfgKeyAppDebug, true)
	v.SetDefault(cfgKeyMaxConns, 100)
	v.SetDefault(cfgKeyTheme, "light")
	v.SetDefault(cfgKeyLanguage, "en-US")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
