// Package economy - /eco buy command
package economy

import (
	"errors"
	"fmt"

	ecoengine "github.com/DarkMCNetwork/DarkMCBotGo/internal/economy"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	botErrors "github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createBuyCommand creates the /eco buy subcommand
func createBuyCommand() *discord.Command {
	return discord.NewCommand(
		"buy",
		"Compra un artículo de la tienda",
		"economy",
		buyHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "articulo",
			Description: "Nombre del artículo",
			Required:    true,
		},
	).RequiresDatabase()
}

// buyHandler handles the /eco buy command
func buyHandler(ctx *discord.CommandContext) error {
	itemName := ctx.GetStringOption("articulo")
	if itemName == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar un artículo.")
	}

	userID := ctx.User().ID
	guildID := ctx.Interaction.GuildID

	go func() {
		defer botErrors.RecoverMiddleware()()

		result, err := engine.Purchase(userID, itemName)
		if errors.Is(err, ecoengine.ErrNoSuchItem) {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ El artículo **%s** no existe en la tienda.", itemName))
			return
		}
		if errors.Is(err, ecoengine.ErrInsufficientFunds) {
			ctx.ReplyEphemeral("❌ No tienes suficientes monedas para esa compra.")
			return
		}
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudo completar la compra. Inténtalo de nuevo.")
			return
		}

		// Grant the matching guild role as a side effect, best-effort:
		// a guild without the role still gets the purchase.
		granted := grantPurchaseRole(ctx, guildID, userID, result.RoleName)

		msg := fmt.Sprintf("✅ Has comprado **%s** por **%d** monedas.", result.Item.Item, result.Item.Price)
		if granted {
			msg += fmt.Sprintf("\n🎖️ Se te ha asignado el rol **%s**.", result.RoleName)
		}
		ctx.Reply(msg)
	}()
	return nil
}

// grantPurchaseRole assigns the guild role matching the item name, if any
func grantPurchaseRole(ctx *discord.CommandContext, guildID, userID, roleName string) bool {
	if roleName == "" || guildID == "" {
		return false
	}

	role, err := ctx.Client.RoleByName(guildID, roleName)
	if err != nil || role == nil {
		return false
	}

	if err := ctx.Client.AddRole(guildID, userID, role.ID, "Compra en la tienda"); err != nil {
		logger.Warn("No se pudo asignar el rol de compra: "+err.Error(), "Economy")
		return false
	}
	return true
}
