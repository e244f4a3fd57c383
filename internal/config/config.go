package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ExchangeConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	ExchangeDB   `yaml:"exchange_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Throttle     `yaml:"throttle"`
	Orders       `yaml:"orders"`
	AdminAPI     `yaml:"admin_api"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ExchangeDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

type Throttle struct {
	MaxRequests   int `yaml:"max_requests" env-default:"8"`
	WindowSeconds int `yaml:"window_seconds" env-default:"60"`
}

type Orders struct {
	ConfirmationsRequired int32 `yaml:"confirmations_required" env-default:"1"`
}

type AdminAPI struct {
	Token string `yaml:"token" env:"ADMIN_API_TOKEN"`
}

func MustLoad() *ExchangeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("EXCHANGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("EXCHANGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ExchangeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
