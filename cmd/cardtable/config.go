package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	cfgKeyCatalogPath = "catalog_path"
	cfgKeyRecipesPath = "recipes_path"
	cfgKeyBackend     = "backend"
	cfgKeySavePath    = "save_path"

	backendFile   = "file"
	backendSQLite = "sqlite"
)

// loadConfig builds the CLI configuration: defaults, then an optional
// config file, then CARDTABLE_* environment variables. A missing config
// file is not an error.
func loadConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(cfgKeyCatalogPath, "catalog.yaml")
	v.SetDefault(cfgKeyRecipesPath, "recipes.yaml")
	v.SetDefault(cfgKeyBackend, backendFile)
	v.SetDefault(cfgKeySavePath, "save.json")

	v.SetEnvPrefix("CARDTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName(".cardtable")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func validBackend(name string) bool {
	return name == backendFile || name == backendSQLite
}
