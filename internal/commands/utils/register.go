// Package utils provides general-purpose commands under /utils
package utils

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/mcstatus"
)

// mcClient is set once at registration and shared by the mcstatus handler
var mcClient *mcstatus.Client

// RegisterUtilsCommands registers all utility commands as /utils subcommands
func RegisterUtilsCommands(client *discord.ExtendedClient, mc *mcstatus.Client) {
	mcClient = mc

	pingCmd := createPingCommand()
	statusCmd := createStatusCommand()
	helpCmd := createHelpCommand()
	statsCmd := createStatsCommand()
	mcstatusCmd := createMcStatusCommand()
	serverinfoCmd := createServerInfoCommand()
	userinfoCmd := createUserInfoCommand()
	avatarCmd := createAvatarCommand()
	sayCmd := createSayCommand()
	memeCmd := createMemeCommand()

	// Build the /utils command group with all subcommands
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Comandos de utilidad",
		pingCmd,
		statusCmd,
		helpCmd,
		statsCmd,
		mcstatusCmd,
		serverinfoCmd,
		userinfoCmd,
		avatarCmd,
		sayCmd,
		memeCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(utilsGroup)

	// Tickets get a top-level command of their own
	client.CommandHandler.RegisterCommand(createTicketCommand())
}
