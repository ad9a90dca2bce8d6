package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string       `yaml:"env" env:"ENV" env-default:"local"`
	DSN    string       `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
	HTTP   HTTPConfig   `yaml:"http"`
	Upload UploadConfig `yaml:"upload"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HOST" env-default:"127.0.0.1"`
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

type UploadConfig struct {
	// MaxFileSize bounds a single image payload in bytes.
	MaxFileSize int64 `yaml:"max_file_size" env:"MAX_FILE_SIZE" env-default:"10485760"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path != "" {
		return MustLoadPath(path)
	}

	// no config file, environment variables only
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read config from environment: " + err.Error())
	}

	return &cfg
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
