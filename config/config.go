package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Pricing defaults. Prices fall back to DefaultCurrency when neither a
	// scheme nor a rate card names one; DefaultTaxRatePct is the VAT rate
	// applied when an invoice request doesn't carry its own.
	DefaultCurrency   string  `mapstructure:"DEFAULT_CURRENCY"`
	DefaultTaxRatePct float64 `mapstructure:"DEFAULT_TAX_RATE_PCT"`

	// Static currency conversion table, keyed by currency code, valued as
	// units per DefaultCurrency. Display conversion only; quotes are always
	// computed in the tariff's own currency.
	CurrencyRates map[string]float64 `mapstructure:"CURRENCY_RATES"`

	// Night/weekend surcharge window (local pickup time, whole hours).
	NightStartHour int `mapstructure:"NIGHT_START_HOUR"`
	NightEndHour   int `mapstructure:"NIGHT_END_HOUR"`

	// Payment collection.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Push delivery.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// config.yaml may sit beside the binary or under config/; environment
	// variables override file values.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "voyago")
	viper.SetDefault("DEFAULT_CURRENCY", "GBP")
	viper.SetDefault("DEFAULT_TAX_RATE_PCT", 20.0)
	viper.SetDefault("NIGHT_START_HOUR", 22)
	viper.SetDefault("NIGHT_END_HOUR", 6)
	viper.SetDefault("CURRENCY_RATES", map[string]float64{
		"GBP": 1.0,
		"EUR": 1.17,
		"USD": 1.27,
	})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("config file not found, relying on env and defaults")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("config unmarshal: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
