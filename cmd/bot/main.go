// Package main is the entry point for the DarkMC Bot application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/internal/antispam"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/commands"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/economy"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/events"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/moderation"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/reactionroles"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/config"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/database"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/mcstatus"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/mqtt"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando DarkMC Bot...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				return
			}
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database - it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			if err := db.Disconnect(); err != nil {
				return
			}
		}
	}()

	// Initialize global DataManagers and persistence services
	database.InitGlobalDataManagers(db)

	accountService := database.NewAccountService(db)
	warnService := database.NewWarnService(db)
	shopService := database.NewShopService(db)
	reactionRoleService := database.NewReactionRoleService(db)

	if err := shopService.Seed(); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo sembrar la tienda: %v", err), "Main")
	}

	// Initialize MQTT when a broker is configured
	var mqttClient *mqtt.MqttCommunicator
	if cfg.MQTTHost != "" {
		mqttClientID := "darkmcbot"
		if !cfg.IsProd() {
			mqttClientID = "darkmcbot_canary"
		}

		mqttClient = mqtt.Init(
			cfg.MQTTHost,
			cfg.MQTTPort,
			cfg.MQTTUser,
			cfg.MQTTPassword,
			mqttClientID,
		)
		defer mqttClient.Destroy()
	}

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Audit fan-out: every moderation action lands in the mod-log
	// channel, the log stream and (when configured) the MQTT broker.
	audit := func(guildID, line string) {
		logger.Info(line, "Audit")
		discordClient.SendToChannelByName(guildID, cfg.LogChannelName, line)
		if mqttClient != nil {
			mqttClient.PublishAudit(guildID, line)
		}
	}

	// Build the engines
	economyEngine := economy.New(accountService, shopService)
	moderationEngine := moderation.New(warnService, discordClient, audit)
	binder := reactionroles.New(reactionRoleService)
	detector := antispam.New(
		time.Duration(cfg.SpamWindowSeconds)*time.Second,
		cfg.SpamMaxMessages,
	)
	mcClient := mcstatus.New(5 * time.Second)

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Register commands and events
	commands.RegisterAll(discordClient, &commands.Deps{
		Economy:    economyEngine,
		Moderation: moderationEngine,
		Binder:     binder,
		Shop:       shopService,
		MC:         mcClient,
	})

	events.RegisterAll(discordClient, &events.Deps{
		Moderation:   moderationEngine,
		Detector:     detector,
		Binder:       binder,
		SpamMuteTime: time.Duration(cfg.SpamMuteSeconds) * time.Second,
	})

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		if err := discordClient.Stop(); err != nil {
			return
		}
	}(discordClient)

	// Heartbeats for the network panel
	if mqttClient != nil {
		mqttClient.StartHeartbeat(30*time.Second, discordClient.GuildCount)
	}

	logger.Success("DarkMC Bot iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando DarkMC Bot...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
