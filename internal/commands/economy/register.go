// Package economy provides the coin economy commands under /eco
// Each command is in its own file for better organization
package economy

import (
	ecoengine "github.com/DarkMCNetwork/DarkMCBotGo/internal/economy"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/database"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
)

// engine and shop are set once at registration and shared by all handlers
var (
	engine *ecoengine.Engine
	shop   *database.ShopService
)

// RegisterEconomyCommands registers all economy commands as /eco subcommands
func RegisterEconomyCommands(client *discord.ExtendedClient, ecoEngine *ecoengine.Engine, shopService *database.ShopService) {
	engine = ecoEngine
	shop = shopService

	balanceCmd := createBalanceCommand()
	dailyCmd := createDailyCommand()
	workCmd := createWorkCommand()
	shopCmd := createShopCommand()
	buyCmd := createBuyCommand()

	ecoGroup := client.CommandHandler.BuildCommandGroup(
		"eco",
		"Comandos de economía",
		balanceCmd,
		dailyCmd,
		workCmd,
		shopCmd,
		buyCmd,
	)

	client.CommandHandler.AddGlobalCommand(ecoGroup)
}
