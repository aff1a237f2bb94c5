package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env         string
	HTTPServer  HTTPServer
	Database    Database
	Storage     Storage
	UserService UserService
	Prometheus  Prometheus
}

type HTTPServer struct {
	Address            string
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	CorsAllowedOrigins []string
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
	MaxConns       int32
}

type Storage struct {
	Driver string
}

type UserService struct {
	BaseURL string
	Timeout time.Duration
}

type Prometheus struct {
	Address string
	Port    int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 5003)
	v.SetDefault("http_server.read_timeout", 15*time.Second)
	v.SetDefault("http_server.write_timeout", 15*time.Second)
	v.SetDefault("http_server.idle_timeout", 60*time.Second)
	v.SetDefault("http_server.cors_allowed_origins", []string{"*"})

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "blog-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "blogservice")
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("database.max_conns", 10)

	v.SetDefault("storage.driver", StorageDriverPostgres)

	v.SetDefault("user_service.base_url", "http://user-service:5000/user")
	v.SetDefault("user_service.timeout", 3000*time.Millisecond)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9104)
}

// Load reads config/config.yaml (optional), a .env file (optional) and BLOG_* environment
// variables, in increasing order of precedence.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix("blog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:            v.GetString("http_server.address"),
			Port:               v.GetInt("http_server.port"),
			ReadTimeout:        v.GetDuration("http_server.read_timeout"),
			WriteTimeout:       v.GetDuration("http_server.write_timeout"),
			IdleTimeout:        v.GetDuration("http_server.idle_timeout"),
			CorsAllowedOrigins: v.GetStringSlice("http_server.cors_allowed_origins"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			MigrationsPath: v.GetString("database.migrations_path"),
			MaxConns:       v.GetInt32("database.max_conns"),
		},
		Storage: Storage{
			Driver: v.GetString("storage.driver"),
		},
		UserService: UserService{
			BaseURL: strings.TrimRight(v.GetString("user_service.base_url"), "/"),
			Timeout: v.GetDuration("user_service.timeout"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
	}

	return config, nil
}

// DSN builds the postgres connection string used by both pgxpool and the migrator.
func (d Database) DSN() string {
	return "postgresql://" + d.Username + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DbName + "?sslmode=disable"
}
