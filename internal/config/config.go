package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cityledger/invoicegateway/internal/httpclient"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server              ServerConfig      `validate:"required"`
	Logging             LoggingConfig     `validate:"required"`
	DataWarehouseReader IntegrationConfig `validate:"required"`
	InvoiceCache        IntegrationConfig `validate:"required"`
	Idata               IdataConfig
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level string
}

// IntegrationConfig holds the per-backend connection settings. Timeouts and
// retries are applied inside the backend client layer only.
type IntegrationConfig struct {
	URL            string        `validate:"required,url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	RetryMax       int           `mapstructure:"retry_max"`
}

// IdataConfig configures the legacy HMAC-signed PDF backend
type IdataConfig struct {
	URL            string
	APIKey         string `mapstructure:"api_key"`
	SecretKey      string `mapstructure:"secret_key"`
	CustomerNumber string `mapstructure:"customer_number"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/invoicegateway")

	// Set up environment variables support
	v.SetEnvPrefix("INVOICEGATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("datawarehousereader.connect_timeout", 10*time.Second)
	v.SetDefault("datawarehousereader.read_timeout", 30*time.Second)
	v.SetDefault("invoicecache.connect_timeout", 10*time.Second)
	v.SetDefault("invoicecache.read_timeout", 30*time.Second)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: "debug"},
		DataWarehouseReader: IntegrationConfig{
			URL:         "http://localhost:9090",
			ReadTimeout: 30 * time.Second,
			RetryMax:    3,
		},
		InvoiceCache: IntegrationConfig{
			URL:         "http://localhost:9091",
			ReadTimeout: 30 * time.Second,
			RetryMax:    3,
		},
	}
}

// ClientConfig translates integration settings into http client settings
func (c IntegrationConfig) ClientConfig() httpclient.ClientConfig {
	return httpclient.ClientConfig{
		Timeout:   c.ReadTimeout,
		RetryMax:  c.RetryMax,
		RetryWait: 500 * time.Millisecond,
	}
}
