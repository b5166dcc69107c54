package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读 config.yaml，再用环境变量覆盖
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		setDefaults(v)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalf("read config file: %v", err)
			}
			// 没有配置文件时全部走默认值和环境变量
		}

		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("unmarshal config: %v", err)
		}
		if err := envconfig.Process("app", cfg); err != nil {
			log.Fatalf("process env config: %v", err)
		}

		instance = cfg
	})
}

// Get 获取全局配置，Init 之前调用会 panic
func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// InitTest 测试用配置，不读文件
func InitTest() {
	instance = &Config{
		Host:   "127.0.0.1",
		Port:   "8080",
		Mode:   ModeDebug,
		Prefix: "",
		Database: Database{
			Driver: "sqlite",
			SQLite: SQLite{Path: ":memory:"},
		},
		JWT: JWT{
			AccessSecret: "test-secret",
			AccessExpire: 1800,
		},
		Log: Log{Level: "error"},
		Storage: Storage{
			StaticDir: "./static",
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8000")
	v.SetDefault("mode", string(ModeDebug))
	v.SetDefault("prefix", "")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.sqlite.path", "school.db")
	v.SetDefault("jwt.accesssecret", "change-me")
	v.SetDefault("jwt.accessexpire", 1800)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.static_dir", "./static")
	v.SetDefault("features.require_approval", false)
	v.SetDefault("otel.service_name", "school-activities-system")
}
