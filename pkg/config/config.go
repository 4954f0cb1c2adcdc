// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// ErrMissingToken is returned by Load when no Discord token is configured.
// The process cannot do anything useful without it.
var ErrMissingToken = errors.New("DISCORD_TOKEN no encontrado en el entorno")

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string
	DevGuildID string

	// MongoDB
	MongoDBURL string
	DBName     string

	// Guild surfaces (channel/role/category names resolved per guild)
	WelcomeChannelName string
	LogChannelName     string
	AutoRoleName       string
	MuteRoleName       string
	TicketCategoryName string

	// Minecraft network
	MCServerHost string
	MCServerPort int

	// MQTT
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Web Server
	Port string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook string
	LogsWebhook  string

	// Anti-spam
	SpamWindowSeconds int
	SpamMaxMessages   int
	SpamMuteSeconds   int
}

var (
	Version   = "Dev-Local"
	BuildTime = "Hoy"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgErr  error
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgErr = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		// Discord
		BotToken:   getEnv("DISCORD_TOKEN", ""),
		DevGuildID: getEnv("devGuildId", ""),

		// MongoDB
		MongoDBURL: getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:     getEnv("dbName", "DarkMCBot"),

		// Guild surfaces
		WelcomeChannelName: getEnv("welcomeChannel", "welcome"),
		LogChannelName:     getEnv("logChannel", "mod-logs"),
		AutoRoleName:       getEnv("autoRole", "Member"),
		MuteRoleName:       getEnv("muteRole", "Muted"),
		TicketCategoryName: getEnv("ticketCategory", "Tickets"),

		// Minecraft network
		MCServerHost: getEnv("mcServerHost", "play.darkmc.net"),
		MCServerPort: getEnvInt("mcServerPort", 25565),

		// MQTT
		MQTTHost:     getEnv("MQTT_Host", ""),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		// Web Server
		Port: getEnv("PORT", "3000"),

		// Environment
		Environment: getEnv("enviroment", "dev"),

		// Webhooks
		ErrorWebhook: getEnv("errorWebhook", ""),
		LogsWebhook:  getEnv("logsWebhook", ""),

		// Anti-spam
		SpamWindowSeconds: getEnvInt("spamWindowSeconds", 6),
		SpamMaxMessages:   getEnvInt("spamMaxMessages", 5),
		SpamMuteSeconds:   getEnvInt("spamMuteSeconds", 30),
	}

	if cfg.BotToken == "" {
		cfgErr = ErrMissingToken
	}
}

// Load initializes the configuration from environment variables.
// It returns ErrMissingToken when no Discord token is set.
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, cfgErr
}

// Get returns the current configuration
func Get() *Config {
	// Use sync.Once to ensure thread-safe initialization if Load wasn't called
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
