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
		Env  string
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
	Jwt struct {
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

	// 环境变量优先于配置文件（密钥不落盘）
	AppConfig.Jwt.Secret = getEnvOrDefault("JWT_SECRET", AppConfig.Jwt.Secret)
	AppConfig.Database.Dsn = getEnvOrDefault("DB_DSN", AppConfig.Database.Dsn)
	AppConfig.App.Env = getEnvOrDefault("APP_ENV", AppConfig.App.Env)

	if AppConfig.Jwt.Secret == "" {
		log.Fatal("jwt secret is not configured")
	}

	initDB()
	initRedis()
	initRabbit()
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsProduction controls the cookie security attributes.
func IsProduction() bool {
	return AppConfig != nil && AppConfig.App.Env == "production"
}
