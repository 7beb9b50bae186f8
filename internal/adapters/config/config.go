package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/herbalife-clubes/admin-bot/internal/adapters/api"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/database/redis"
	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/location"
	"github.com/herbalife-clubes/admin-bot/pkg/logger"
)

type Config struct {
	API   *api.Client
	Redis *redis.Client
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := os.Setenv("BOT_TOKEN", viper.GetString("bot.token")); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	var loc *time.Location
	if tz := viper.GetString("settings.timezone"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			panic(err)
		}
		loc = parsed
	}
	location.Set(loc)

	err := logger.Init(logger.Config{
		Debug:        viper.GetBool("settings.debug"),
		TimeLocation: loc,
		LogToFile:    viper.GetBool("settings.log-to-file"),
		LogsDir:      viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	redisClient, err := redis.New(redis.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	}
	logger.Log.Info("Successfully connected to redis")

	apiLogger, err := logger.Named("api")
	if err != nil {
		logger.Log.Panicf("Failed to create api logger: %v", err)
	}

	timeout := viper.GetDuration("api.timeout")
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	apiClient := api.NewClient(api.Options{
		BaseURL:  viper.GetString("api.base-url"),
		Timeout:  timeout,
		Sessions: redisClient.Sessions,
		Logger:   apiLogger,
	})
	logger.Log.Infof("API client configured for %s", viper.GetString("api.base-url"))

	return &Config{
		API:   apiClient,
		Redis: redisClient,
	}
}
