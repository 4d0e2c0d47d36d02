package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout   time.Duration `default:"5s" envconfig:"SHUTDOWN_TIMEOUT"`
}

// Backend — платёжно-заказной бэкенд, за которым живут заказы, адреса и карты.
type Backend struct {
	BaseURL string        `default:"http://localhost:3001" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

type Redis struct {
	Addr     string `default:"localhost:6379" envconfig:"ADDR"`
	Password string `default:"" envconfig:"PASSWORD"`
	DB       int    `default:"0" envconfig:"DB"`
	Prefix   string `default:"shopfront" envconfig:"PREFIX"`
}

// Storage — локальное хранилище блоба корзины: file (по умолчанию) или redis.
type Storage struct {
	Backend string `default:"file" envconfig:"BACKEND"`
	Dir     string `default:"./data" envconfig:"DIR"`
	Redis   Redis
}

type Pix struct {
	PollInterval time.Duration `default:"3s" envconfig:"POLL_INTERVAL"`
	ConfirmDelay time.Duration `default:"1500ms" envconfig:"CONFIRM_DELAY"`
	MaxWait      time.Duration `default:"15m" envconfig:"MAX_WAIT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"shopfront-gateway" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	Backend Backend
	Storage Storage
	Pix     Pix
	Tracing Tracing
	Logger  Logger
}

func Load() (Config, error) {
	return LoadWithPrefix("SHOP")
}

// LoadWithPrefix — чтение конфигурации из окружения с заданным префиксом.
// Отдельный вход нужен тестам: каждый тест работает со своим префиксом.
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
