// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/moderation"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
)

// engine is set once at registration and shared by all handlers
var engine *moderation.Engine

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, modEngine *moderation.Engine) {
	engine = modEngine

	banCmd := createBanCommand()
	kickCmd := createKickCommand()
	warnCmd := createWarnCommand()
	muteCmd := createMuteCommand()
	unmuteCmd := createUnmuteCommand()
	warningsCmd := createWarningsCommand()
	unwarnCmd := createUnwarnCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		banCmd,
		kickCmd,
		warnCmd,
		muteCmd,
		unmuteCmd,
		warningsCmd,
		unwarnCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
