package configs

import (
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.SetEnvPrefix("portalchat")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)

		if err := v.ReadInConfig(); err != nil {
			log.Println("No config file found, using defaults and environment:", err)
		}

		config = &Config{Viper: v}
	})
	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "portalchat")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_time", 86400)
	v.SetDefault("identity_cache.ttl_seconds", 60)
	v.SetDefault("reconcile.interval_minutes", 60)
	v.SetDefault("reconcile.concurrency", 1)
}

func (c *Config) JwtKey() []byte {
	secret := c.Viper.GetString("jwt.secret")
	if secret == "" {
		log.Println("jwt.secret is not set, tokens will not verify across restarts")
	}
	return []byte(secret)
}
