// Package roles provides reaction-role management commands under /roles
package roles

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/reactionroles"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
)

// binder is set once at registration and shared by all handlers
var binder *reactionroles.Binder

// RegisterRoleCommands registers the reaction-role commands as /roles subcommands
func RegisterRoleCommands(client *discord.ExtendedClient, roleBinder *reactionroles.Binder) {
	binder = roleBinder

	bindCmd := createBindCommand()
	unbindCmd := createUnbindCommand()

	rolesGroup := client.CommandHandler.BuildCommandGroup(
		"roles",
		"Roles por reacción",
		bindCmd,
		unbindCmd,
	)

	client.CommandHandler.AddGlobalCommand(rolesGroup)
}
