package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Sanity   SanityConfig   `mapstructure:"sanity"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
}

type SanityConfig struct {
	ProjectID  string        `mapstructure:"projectId"`
	Dataset    string        `mapstructure:"dataset"`
	APIVersion string        `mapstructure:"apiVersion"`
	UseCDN     bool          `mapstructure:"useCdn"`
	Token      string        `mapstructure:"token"`
	APIHost    string        `mapstructure:"apiHost"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	To   string `mapstructure:"to"`
}

type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Release reports whether the server runs in gin's release mode.
func (c Config) Release() bool {
	return c.Server.Mode == "release"
}

// envBindings keeps the variable names the site has always used
// (PORT, SMTP_HOST, ADMIN_PASSWORD...) working next to the nested keys.
var envBindings = map[string]string{
	"sanity.projectId":  "SANITY_PROJECT_ID",
	"sanity.dataset":    "SANITY_DATASET",
	"sanity.apiVersion": "SANITY_API_VERSION",
	"sanity.useCdn":     "SANITY_USE_CDN",
	"sanity.token":      "SANITY_TOKEN",
	"sanity.apiHost":    "SANITY_API_HOST",
	"sanity.timeout":    "SANITY_TIMEOUT",
	"server.port":       "PORT",
	"server.mode":       "GIN_MODE",
	"database.path":     "DATABASE_PATH",
	"smtp.host":         "SMTP_HOST",
	"smtp.port":         "SMTP_PORT",
	"smtp.user":         "SMTP_USER",
	"smtp.pass":         "SMTP_PASS",
	"smtp.to":           "TO_EMAIL",
	"admin.username":    "ADMIN_USERNAME",
	"admin.password":    "ADMIN_PASSWORD",
	"log.level":         "LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sanity.projectId", "")
	v.SetDefault("sanity.dataset", "production")
	v.SetDefault("sanity.apiVersion", "2024-01-01")
	v.SetDefault("sanity.token", "")
	v.SetDefault("sanity.apiHost", "")
	v.SetDefault("sanity.timeout", time.Duration(0))

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.path", "portfolio.db")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.pass", "")
	v.SetDefault("smtp.to", "")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")

	v.SetDefault("log.level", "info")
}

// Load builds the configuration from defaults, an optional config file and
// the environment. An explicit cfgFile must exist; otherwise ./config.yaml is
// read when present.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	// The CDN is only worth using once the site is live, so it follows the
	// server mode unless set explicitly.
	if !v.IsSet("sanity.useCdn") {
		v.Set("sanity.useCdn", v.GetString("server.mode") == "release")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
