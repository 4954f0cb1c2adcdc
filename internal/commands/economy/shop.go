// Package economy - /eco shop command
package economy

import (
	"fmt"
	"strings"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createShopCommand creates the /eco shop subcommand
func createShopCommand() *discord.Command {
	return discord.NewCommand(
		"shop",
		"Muestra los artículos de la tienda",
		"economy",
		shopHandler,
	).RequiresDatabase()
}

// shopHandler handles the /eco shop command
func shopHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		items, err := shop.Items()
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudo cargar la tienda. Inténtalo de nuevo.")
			return
		}

		if len(items) == 0 {
			ctx.Reply("🛒 La tienda está vacía por ahora.")
			return
		}

		var sb strings.Builder
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("**%s** — %d monedas\n%s\n\n", item.Item, item.Price, item.Description))
		}

		ctx.ReplyEmbed(&discordgo.MessageEmbed{
			Title:       "🛒 Tienda de DarkMC",
			Description: sb.String(),
			Color:       0x00AE86,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Compra con /eco buy",
			},
		})
	}()
	return nil
}
