package config

import (
	"fmt"
	"github.com/spf13/viper"
	"path"
	"strings"
)

// Config is the root configuration
type Config struct {
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Log      LogConfig      `mapstructure:"log"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Registry RegistryConfig `mapstructure:"registry"`
}

// CacheConfig for the in-process name index and the memcached campaign views
type CacheConfig struct {
	NameIndexSize int    `mapstructure:"name_index_size"`
	ViewTTL       uint32 `mapstructure:"view_ttl"`
	Enabled       bool   `mapstructure:"enabled"`
}

// MetricsConfig for the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    uint16 `mapstructure:"port"`
}

// ListenString ...
func (c MetricsConfig) ListenString() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", 3306)
	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 5)
	v.SetDefault("mysql.conn_max_lifetime_seconds", 300)

	v.SetDefault("memcache.host", "localhost")
	v.SetDefault("memcache.port", 11211)
	v.SetDefault("memcache.num_conns", 1)
	v.SetDefault("memcache.retry_seconds", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("cache.name_index_size", 8*1024*1024)
	v.SetDefault("cache.view_ttl", 300)

	v.SetDefault("metrics.host", "0.0.0.0")
	v.SetDefault("metrics.port", 10090)
}

func loadConfig(v *viper.Viper) Config {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory, env variables take precedence
func Load() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return loadConfig(v)
}

// LoadTestConfig reads config.test.yml at rootDir
func LoadTestConfig(rootDir string) Config {
	v := viper.New()
	v.SetConfigFile(path.Join(rootDir, "config.test.yml"))
	return loadConfig(v)
}
