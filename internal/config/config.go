package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// StrategiesConfig names the default revenue and bonus strategies.
type StrategiesConfig struct {
	Revenue string
	Bonus   string
}

// DatasetConfig locates the startup dataset and bounds remote fetches.
type DatasetConfig struct {
	Path    string
	Timeout time.Duration
}

// Config is the service configuration read by InitConfig.
type Config struct {
	Address    string
	LogLevel   string
	Strategies StrategiesConfig
	Dataset    DatasetConfig
}

// String renders the config on a single line for logging.
func (c Config) String() string {
	return fmt.Sprintf(
		"Address: %s | LogLevel: %s | Strategies: [Revenue=%s, Bonus=%s] | Dataset: [Path=%s, Timeout=%s]",
		c.Address,
		c.LogLevel,
		c.Strategies.Revenue,
		c.Strategies.Bonus,
		c.Dataset.Path,
		c.Dataset.Timeout,
	)
}

// CONFIG_FILE_PATH is read when InitConfig gets an empty path.
const CONFIG_FILE_PATH = "./config.yaml"

// InitConfig reads the YAML file at configFilePath (or CONFIG_FILE_PATH when
// empty). A missing file is not an error; defaults and environment
// variables such as SERVER_ADDRESS or LOG_LEVEL still apply.
func InitConfig(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":8081")
	v.SetDefault("log.level", "info")
	v.SetDefault("strategies.revenue", "simple")
	v.SetDefault("strategies.bonus", "by_profit")
	v.SetDefault("dataset.path", "")
	v.SetDefault("dataset.timeout_seconds", 10)

	configFile := CONFIG_FILE_PATH
	if configFilePath != "" {
		configFile = configFilePath
	}

	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to stat config file %s", configFile)
	}

	timeout := v.GetInt("dataset.timeout_seconds")
	if timeout <= 0 {
		return nil, errors.Errorf("dataset.timeout_seconds must be positive, got %d", timeout)
	}

	config := &Config{
		Address:  v.GetString("server.address"),
		LogLevel: v.GetString("log.level"),
		Strategies: StrategiesConfig{
			Revenue: v.GetString("strategies.revenue"),
			Bonus:   v.GetString("strategies.bonus"),
		},
		Dataset: DatasetConfig{
			Path:    v.GetString("dataset.path"),
			Timeout: time.Duration(timeout) * time.Second,
		},
	}

	return config, nil
}
