// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, eco, mod, roles)
package commands

import (
	ecocmd "github.com/DarkMCNetwork/DarkMCBotGo/internal/commands/economy"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/commands/mod"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/commands/roles"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/commands/utils"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/economy"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/moderation"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/reactionroles"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/database"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/mcstatus"
)

// Deps carries the engines and services the command handlers need
type Deps struct {
	Economy    *economy.Engine
	Moderation *moderation.Engine
	Binder     *reactionroles.Binder
	Shop       *database.ShopService
	MC         *mcstatus.Client
}

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, deps *Deps) {
	// Utility commands (/utils ..., /ticket)
	utils.RegisterUtilsCommands(client, deps.MC)

	// Economy commands (/eco balance, /eco daily, /eco work, /eco shop, /eco buy)
	ecocmd.RegisterEconomyCommands(client, deps.Economy, deps.Shop)

	// Moderation commands (/mod ban, /mod kick, /mod warn, /mod mute, ...)
	mod.RegisterModCommands(client, deps.Moderation)

	// Reaction-role commands (/roles bind, /roles unbind)
	roles.RegisterRoleCommands(client, deps.Binder)
}
