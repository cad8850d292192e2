package configuration

import (
	"fmt"
	"os"
	"strconv"

	"yt-catalog/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App     App     `json:"app"`
	YouTube YouTube `json:"youtube"`
	Logger  Logger  `json:"logger"`
}

type App struct {
	Port int `json:"port"`
}

type Logger struct {
	Format string `json:"format"`
}

type YouTube struct {
	APIKey           string `json:"apiKey"`
	APIKeyFile       string `json:"apiKeyFile"`
	BaseURL          string `json:"baseURL"`
	WatchURL         string `json:"watchURL"`
	TimeoutSeconds   int    `json:"timeoutSeconds"`
	DescriptionLimit int    `json:"descriptionLimit"`
	FetchConcurrency int    `json:"fetchConcurrency"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10020
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10020
	}
}
