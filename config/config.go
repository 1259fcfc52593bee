package config

import (
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type    string `yaml:"type" json:"type"`
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	Name    string `yaml:"name" json:"name"`
	User    string `yaml:"user" json:"user"`
	Passwd  string `yaml:"passwd" json:"passwd"`
	MaxConn int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int   `yaml:"idle_conn" json:"idle_conn"`
	Debug   bool   `yaml:"debug" json:"debug"`
}

type SmtpConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
	Sender   string `yaml:"sender" json:"sender"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Smtp     SmtpConfig   `yaml:"smtp" json:"smtp"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "Storefront",
		Location: "Asia/Shanghai",
		Workdir:  "/var/storefront",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1880,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "storefront",
		User:     "postgres",
		Passwd:   "myroot",
		MaxConn:  100,
		IdleConn: 10,
	},
	Smtp: SmtpConfig{
		Host:     "smtp.gmail.com",
		Port:     465,
		Username: "example@gmail.com",
		Password: "password",
		From:     "noreply@techvault.com",
		Sender:   "TechVault",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/storefront/storefront.log",
	},
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

// LoadConfig reads configuration from the given YAML file, falling back to
// defaults, and applies STOREFRONT_* environment overrides last.
func LoadConfig(cfile string) *AppConfig {
	if cfile == "" {
		cfile = "storefront.yml"
	}
	cfg := new(AppConfig)
	if _, err := os.Stat(cfile); err == nil {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	} else {
		cfg = DefaultAppConfig
	}

	setEnvValue("STOREFRONT_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvBoolValue("STOREFRONT_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("STOREFRONT_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("STOREFRONT_WEB_PORT", &cfg.Web.Port)

	setEnvValue("STOREFRONT_DB_TYPE", &cfg.Database.Type)
	setEnvValue("STOREFRONT_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("STOREFRONT_DB_PORT", &cfg.Database.Port)
	setEnvValue("STOREFRONT_DB_NAME", &cfg.Database.Name)
	setEnvValue("STOREFRONT_DB_USER", &cfg.Database.User)
	setEnvValue("STOREFRONT_DB_PWD", &cfg.Database.Passwd)
	setEnvBoolValue("STOREFRONT_DB_DEBUG", &cfg.Database.Debug)

	setEnvValue("STOREFRONT_SMTP_HOST", &cfg.Smtp.Host)
	setEnvIntValue("STOREFRONT_SMTP_PORT", &cfg.Smtp.Port)
	setEnvValue("STOREFRONT_SMTP_USERNAME", &cfg.Smtp.Username)
	setEnvValue("STOREFRONT_SMTP_PASSWORD", &cfg.Smtp.Password)
	setEnvValue("STOREFRONT_SMTP_FROM", &cfg.Smtp.From)

	setEnvValue("STOREFRONT_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("STOREFRONT_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = path.Join(cfg.System.Workdir, "storefront.log")
	}

	return cfg
}
