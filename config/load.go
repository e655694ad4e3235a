package config

import (
	"tenor/core"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *core.Config) error {
	config.AutomaticLoadEnv("TENOR")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		return err
	}

	return nil
}
