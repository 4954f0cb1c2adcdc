package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("DISCORD_TOKEN", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("DISCORD_TOKEN")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestLoadWithoutToken(t *testing.T) {
	os.Unsetenv("DISCORD_TOKEN")
	resetForTesting()

	_, err := Load()
	if err != ErrMissingToken {
		t.Errorf("Load() error = %v, want %v", err, ErrMissingToken)
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("TEST_INT", "42")
	defer os.Unsetenv("TEST_INT")

	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt() = %v, want %v", got, 42)
	}

	if got := getEnvInt("NON_EXISTENT_INT", 7); got != 7 {
		t.Errorf("getEnvInt() = %v, want %v", got, 7)
	}

	os.Setenv("TEST_INT", "not-a-number")
	if got := getEnvInt("TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt() with invalid value = %v, want %v", got, 7)
	}
}

func TestIsProd(t *testing.T) {
	os.Setenv("DISCORD_TOKEN", "test-token")
	defer os.Unsetenv("DISCORD_TOKEN")

	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestDefaultValues(t *testing.T) {
	os.Setenv("DISCORD_TOKEN", "test-token")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("welcomeChannel")
	os.Unsetenv("logChannel")
	os.Unsetenv("muteRole")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")
	defer os.Unsetenv("DISCORD_TOKEN")

	resetForTesting()
	config, _ := Load()

	// Check default values
	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL default = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}

	if config.DBName != "DarkMCBot" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "DarkMCBot")
	}

	if config.WelcomeChannelName != "welcome" {
		t.Errorf("WelcomeChannelName default = %v, want %v", config.WelcomeChannelName, "welcome")
	}

	if config.LogChannelName != "mod-logs" {
		t.Errorf("LogChannelName default = %v, want %v", config.LogChannelName, "mod-logs")
	}

	if config.MuteRoleName != "Muted" {
		t.Errorf("MuteRoleName default = %v, want %v", config.MuteRoleName, "Muted")
	}

	if config.Port != "3000" {
		t.Errorf("Port default = %v, want %v", config.Port, "3000")
	}

	if config.SpamWindowSeconds != 6 {
		t.Errorf("SpamWindowSeconds default = %v, want %v", config.SpamWindowSeconds, 6)
	}

	if config.SpamMaxMessages != 5 {
		t.Errorf("SpamMaxMessages default = %v, want %v", config.SpamMaxMessages, 5)
	}

	if config.SpamMuteSeconds != 30 {
		t.Errorf("SpamMuteSeconds default = %v, want %v", config.SpamMuteSeconds, 30)
	}
}
