package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string
		Port string
	}
	Database struct {
		Dsn          string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	ImageHost struct {
		UploadURL string
		APIKey    string
	}
	JWT struct {
		Secret string
	}
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}

	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	AppConfig.ImageHost.APIKey = getEnvOrDefault("IMAGE_HOST_API_KEY", AppConfig.ImageHost.APIKey)
	AppConfig.JWT.Secret = getEnvOrDefault("JWT_SECRET", AppConfig.JWT.Secret)

	initDB()
	initRedis()
	initRabbit()
}

// getEnvOrDefault reads an environment variable, falling back when unset.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
