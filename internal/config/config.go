package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"3000"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	// MatchTTL - how long finished matches stay in the archive, 0 keeps them forever.
	MatchTTL time.Duration `yaml:"match-ttl" env:"MATCH_TTL" env-default:"168h"`
	// EventQueueSize - buffered events waiting for the gateway, 0 means unbuffered.
	EventQueueSize int `yaml:"event-queue-size" env:"EVENT_QUEUE_SIZE" env-default:"64"`
}

// MustLoad - load all configurations in config.yml file, environment variables win.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if config.Game.EventQueueSize < 0 {
		panic(fmt.Errorf("event-queue-size must not be negative, got %d", config.Game.EventQueueSize))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
