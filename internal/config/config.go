package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	PayPro   PayProConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port int
	Env  string // "development", "production"
}

type PayProConfig struct {
	BaseURL      string
	AuthPath     string
	OrderPath    string
	ClientID     string
	ClientSecret string
	MerchantID   string
	HomeCurrency string
	OrderDueDate string
	Timeout      time.Duration
	KeepAlive    bool
}

type DatabaseConfig struct {
	Host    string
	Port    string
	Name    string
	User    string
	Pass    string
	Charset string
}

type RedisConfig struct {
	Addr string
	Pass string
	DB   int
}

type NotifyConfig struct {
	BotToken string
	ChatID   string
}

// Load reads configuration from .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if missing)
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_PORT", 3000)
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("PAYPRO_BASE_URL", "https://api.paypro.com.pk")
	viper.SetDefault("PAYPRO_AUTH_PATH", "/v2/ppro/auth")
	viper.SetDefault("PAYPRO_ORDER_PATH", "/v2/ppro/co")
	viper.SetDefault("PAYPRO_HOME_CURRENCY", "PKR")
	viper.SetDefault("PAYPRO_ORDER_DUE_DATE", "31/12/2025")
	viper.SetDefault("PAYPRO_TIMEOUT", "30s")
	viper.SetDefault("TOKEN_KEEPALIVE", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_CHARSET", "utf8mb4")
	viper.SetDefault("REDIS_DB", 0)

	timeout, err := time.ParseDuration(viper.GetString("PAYPRO_TIMEOUT"))
	if err != nil {
		timeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		PayPro: PayProConfig{
			BaseURL:      viper.GetString("PAYPRO_BASE_URL"),
			AuthPath:     viper.GetString("PAYPRO_AUTH_PATH"),
			OrderPath:    viper.GetString("PAYPRO_ORDER_PATH"),
			ClientID:     viper.GetString("PAYPRO_CLIENT_ID"),
			ClientSecret: viper.GetString("PAYPRO_CLIENT_SECRET"),
			MerchantID:   viper.GetString("PAYPRO_MERCHANT_ID"),
			HomeCurrency: viper.GetString("PAYPRO_HOME_CURRENCY"),
			OrderDueDate: viper.GetString("PAYPRO_ORDER_DUE_DATE"),
			Timeout:      timeout,
			KeepAlive:    viper.GetBool("TOKEN_KEEPALIVE"),
		},
		Database: DatabaseConfig{
			Host:    viper.GetString("DB_HOST"),
			Port:    viper.GetString("DB_PORT"),
			Name:    viper.GetString("DB_NAME"),
			User:    viper.GetString("DB_USER"),
			Pass:    viper.GetString("DB_PASS"),
			Charset: viper.GetString("DB_CHARSET"),
		},
		Redis: RedisConfig{
			Addr: viper.GetString("REDIS_ADDR"),
			Pass: viper.GetString("REDIS_PASS"),
			DB:   viper.GetInt("REDIS_DB"),
		},
		Notify: NotifyConfig{
			BotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
			ChatID:   viper.GetString("TELEGRAM_CHAT_ID"),
		},
	}

	if cfg.PayPro.ClientID == "" {
		log.Println("WARNING: PAYPRO_CLIENT_ID is not set")
	}
	if cfg.PayPro.MerchantID == "" {
		log.Println("WARNING: PAYPRO_MERCHANT_ID is not set")
	}

	return cfg, nil
}

// AuthURL returns the full auth endpoint URL.
func (p *PayProConfig) AuthURL() string {
	return p.BaseURL + p.AuthPath
}

// OrderURL returns the full create-order endpoint URL.
func (p *PayProConfig) OrderURL() string {
	return p.BaseURL + p.OrderPath
}

// DSN returns the MySQL DSN string for GORM.
func (d *DatabaseConfig) DSN() string {
	return d.User + ":" + d.Pass + "@tcp(" + d.Host + ":" + d.Port + ")/" + d.Name + "?charset=" + d.Charset + "&parseTime=True&loc=Local"
}
