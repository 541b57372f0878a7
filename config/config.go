package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string

	ApiServer   ServerConfigs
	Database    DatabaseConfigs
	Redis       RedisConfigs
	Auth        AuthConfigs
	Progression ProgressionConfigs
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Addr string
}

type AuthConfigs struct {
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Secret     string
	Expiration Duration
}

type ProgressionConfigs struct {
	// ChallengeSweepInterval is how often expired challenges are moved to
	// the failed status.
	ChallengeSweepInterval Duration
}

// Duration makes time.Duration decodable from TOML strings like "1h30m".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load reads configurations from a TOML file, then applies environment
// overrides for values that should not live on disk.
func Load(path string) (Configs, error) {
	var cfg Configs
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}

	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.AccessToken.Secret = v
	}

	if cfg.Progression.ChallengeSweepInterval == 0 {
		cfg.Progression.ChallengeSweepInterval = Duration(time.Hour)
	}

	return cfg, nil
}
