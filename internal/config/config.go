package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0:8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"DEBUG"`
	SeedDemoData  bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
	SeedRequests  int    `env:"SEED_REQUESTS" envDefault:"6"`
	SeedCustomers int    `env:"SEED_CUSTOMERS" envDefault:"4"`
	DiagnosisConfig
}

func NewConfig() (*Config, error) {
	config := &Config{}

	err := env.Parse(config)
	if err != nil {
		err = fmt.Errorf("config.NewConfig: %w", err)
	}
	return config, err
}

type DiagnosisConfig struct {
	BaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	APIKey  string        `env:"GEMINI_API_KEY" envDefault:""`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Timeout time.Duration `env:"DIAGNOSIS_TIMEOUT" envDefault:"15s"`
}

func NewDiagnosisConfig() (*DiagnosisConfig, error) {
	config := &DiagnosisConfig{}

	err := env.Parse(config)
	if err != nil {
		err = fmt.Errorf("config.NewDiagnosisConfig: %w", err)
	}
	return config, err
}
