// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config into engine settings.
package config

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/loans"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for homeloan-calculator.
type Configuration struct {
	Settings SettingsConfig `yaml:"settings"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// SettingsConfig holds the pricing rules handed to the loan engine.
type SettingsConfig struct {
	ReservationFees         loans.ReservationFeeConfig  `yaml:"reservationFees"`
	GovernmentFees          loans.GovernmentFeeConfig   `yaml:"governmentFees"`
	ConstructionFees        loans.ConstructionFeeConfig `yaml:"constructionFees"`
	FinancingOptions        []loans.FinancingOption     `yaml:"financingOptions"`
	SpecialRuleInterestRate float64                     `yaml:"specialRuleInterestRate"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml, html
}

// Option adjusts the loader before the configuration is decoded.
type Option func(v *viper.Viper) error

// BindFlag lets a command-line flag override the configuration key when the
// flag is set explicitly.
func BindFlag(key string, flag *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if flag == nil {
			return fmt.Errorf("no flag to bind to %s", key)
		}
		return v.BindPFlag(key, flag)
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. HOMELOAN_ environment variables override file values
// and bound flags override both.
func LoadConfiguration(configPath string, opts ...Option) (*Configuration, error) {
	v, err := newViper(opts)
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader, opts ...Option) (*Configuration, error) {
	v, err := newViper(opts)
	if err != nil {
		return nil, err
	}

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}

	return decode(v)
}

// DefaultConfiguration returns the documented defaults with any HOMELOAN_
// environment overrides applied. It is used when no config file exists.
func DefaultConfiguration(opts ...Option) (*Configuration, error) {
	v, err := newViper(opts)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

func newViper(opts []Option) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, fmt.Errorf("unable to apply config option, %w", err)
		}
	}
	return v, nil
}

// setDefaults registers every settings key so that environment overrides are
// visible to Unmarshal even when the file omits the key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("settings.reservationFees.isActive", true)
	v.SetDefault("settings.reservationFees.modelHouse", constants.DefaultReservationFeeModelHouse)
	v.SetDefault("settings.reservationFees.lotOnly", constants.DefaultReservationFeeLotOnly)

	v.SetDefault("settings.governmentFees.isActive", true)
	v.SetDefault("settings.governmentFees.fixedAmountThreshold", constants.DefaultGovernmentFeeThreshold)
	v.SetDefault("settings.governmentFees.fixedAmount", constants.DefaultGovernmentFeeFixedAmount)
	v.SetDefault("settings.governmentFees.percentageRate", constants.DefaultGovernmentFeePercentage)

	v.SetDefault("settings.constructionFees.isActive", true)
	v.SetDefault("settings.constructionFees.lotFeeRate", constants.DefaultLotFeeRate)
	v.SetDefault("settings.constructionFees.houseConstructionFeeRate", constants.DefaultHouseConstructionFeeRate)

	v.SetDefault("settings.specialRuleInterestRate", constants.DefaultSpecialRuleInterestRate)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	hooks := mapstructure.ComposeDecodeHookFunc(
		financingOptionDefaults,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(&configuration, viper.DecodeHook(hooks)); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

var financingOptionType = reflect.TypeOf(loans.FinancingOption{})

// financingOptionDefaults treats a financing option that omits isActive as
// active.
func financingOptionDefaults(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != financingOptionType {
		return data, nil
	}

	switch entry := data.(type) {
	case map[string]interface{}:
		for key := range entry {
			if strings.EqualFold(key, "isActive") {
				return data, nil
			}
		}
		withDefault := make(map[string]interface{}, len(entry)+1)
		for key, value := range entry {
			withDefault[key] = value
		}
		withDefault["isActive"] = true
		return withDefault, nil
	case map[interface{}]interface{}:
		for key := range entry {
			if name, ok := key.(string); ok && strings.EqualFold(name, "isActive") {
				return data, nil
			}
		}
		withDefault := make(map[interface{}]interface{}, len(entry)+1)
		for key, value := range entry {
			withDefault[key] = value
		}
		withDefault["isActive"] = true
		return withDefault, nil
	}
	return data, nil
}

// EngineSettings converts the loaded configuration into engine settings. An empty
// financing option list falls back to the default options.
func (c *Configuration) EngineSettings() loans.Settings {
	reservation := c.Settings.ReservationFees
	government := c.Settings.GovernmentFees
	construction := c.Settings.ConstructionFees
	specialRate := c.Settings.SpecialRuleInterestRate

	options := make([]loans.FinancingOption, len(c.Settings.FinancingOptions))
	copy(options, c.Settings.FinancingOptions)
	if len(options) == 0 {
		options = loans.DefaultFinancingOptions()
	}

	return loans.Settings{
		ReservationFees:         &reservation,
		GovernmentFees:          &government,
		ConstructionFees:        &construction,
		FinancingOptions:        options,
		SpecialRuleInterestRate: &specialRate,
	}
}
