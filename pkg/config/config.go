package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	WeChat   WeChatConfig   `mapstructure:"wechat"`
	Task     TaskConfig     `mapstructure:"task"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug | release
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN 拼接 postgres 连接串
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.DbName, c.Port, c.SSLMode)
}

type JWTConfig struct {
	SecretKey      string `mapstructure:"secret_key"`
	AccessTTLHours int    `mapstructure:"access_ttl_hours"`
	Issuer         string `mapstructure:"issuer"`
}

type StorageConfig struct {
	Provider  string `mapstructure:"provider"` // s3 | local
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	CDNDomain string `mapstructure:"cdn_domain"`
	BasePath  string `mapstructure:"base_path"`
	LocalDir  string `mapstructure:"local_dir"`
}

type WeChatConfig struct {
	BaseURL string `mapstructure:"base_url"`
	AppID   string `mapstructure:"app_id"`
	Secret  string `mapstructure:"secret"`
}

type TaskConfig struct {
	SettlementEnabled bool   `mapstructure:"settlement_enabled"`
	SettlementCron    string `mapstructure:"settlement_cron"`
}

// LoadConfig 读取配置文件
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// 默认值
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("jwt.access_ttl_hours", 2)
	viper.SetDefault("jwt.issuer", "mall-admin")
	viper.SetDefault("storage.provider", "local")
	viper.SetDefault("storage.local_dir", "./uploads")
	viper.SetDefault("wechat.base_url", "https://api.weixin.qq.com")
	viper.SetDefault("task.settlement_enabled", true)
	// 每月10号凌晨2点生成结算单（秒级 cron 表达式）
	viper.SetDefault("task.settlement_cron", "0 0 2 10 * *")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	log.Printf("Config loaded successfully from %s", path)
	return &config, nil
}
