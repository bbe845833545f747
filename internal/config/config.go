// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек шлюза
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	BackendAPI      `yaml:"backend_api"`
	HTTPServer      `yaml:"http_server"`
	Session         `yaml:"session"`
	RedisConnection `yaml:"redis_connection"`
}

// BackendAPI структура для подключения к внешнему REST-бэкенду
type BackendAPI struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"15s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Session структура для настройки сессионного хранилища.
// Store принимает значения "cookie" (запечатанная cookie) или "redis".
type Session struct {
	Store        string        `yaml:"store" env-default:"cookie"`
	CookieSecret string        `yaml:"cookie_secret" env:"SESSION_COOKIE_SECRET"`
	TTL          time.Duration `yaml:"ttl" env-default:"720h"`
	ResetTTL     time.Duration `yaml:"reset_ttl" env-default:"15m"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Timeout     time.Duration `yaml:"timeout"`
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH,
// завершает процесс при отсутствии или некорректности файла
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"BackendAPI:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Session:\n"+
			"  Store: %s\n"+
			"  TTL: %s\n"+
			"  ResetTTL: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n",
		c.Env,
		c.BaseURL,
		c.BackendAPI.Timeout,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Store,
		c.TTL,
		c.ResetTTL,
		c.Addr,
		c.User,
		c.DB,
	)
}
