package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is built once at startup and handed to collaborators; nothing reads
// configuration after Load returns.
type Config struct {
	Port              string
	DBDSN             string
	MediaDir          string
	LogFile           string
	WhatsAppNumber    string
	AdminUsername     string
	AdminPassword     string
	LowStockThreshold int
}

func Load() Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_DSN", "tiendacell.db")
	viper.SetDefault("MEDIA_DIR", "./web/media")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("WHATSAPP_NUMBER", "+543764225116")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "adminpass")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 5)
	viper.AutomaticEnv()

	cfg := Config{
		Port:              viper.GetString("PORT"),
		DBDSN:             viper.GetString("DB_DSN"),
		MediaDir:          viper.GetString("MEDIA_DIR"),
		LogFile:           viper.GetString("LOG_FILE"),
		WhatsAppNumber:    viper.GetString("WHATSAPP_NUMBER"),
		AdminUsername:     viper.GetString("ADMIN_USERNAME"),
		AdminPassword:     viper.GetString("ADMIN_PASSWORD"),
		LowStockThreshold: viper.GetInt("LOW_STOCK_THRESHOLD"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOW_STOCK_THRESHOLD=%d",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LowStockThreshold)
	return cfg
}
