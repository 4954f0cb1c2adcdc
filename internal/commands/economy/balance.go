// Package economy - /eco balance command
package economy

import (
	"fmt"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createBalanceCommand creates the /eco balance subcommand
func createBalanceCommand() *discord.Command {
	return discord.NewCommand(
		"balance",
		"Muestra tu saldo de monedas",
		"economy",
		balanceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	).RequiresDatabase()
}

// balanceHandler handles the /eco balance command
func balanceHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil {
		target = ctx.User()
	}

	go func() {
		defer errors.RecoverMiddleware()()

		balance, err := engine.GetBalance(target.ID)
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudo consultar el saldo. Inténtalo de nuevo.")
			return
		}

		ctx.ReplyEmbed(&discordgo.MessageEmbed{
			Title:       "💰 Saldo",
			Description: fmt.Sprintf("**%s** tiene **%d** monedas.", target.Username, balance),
			Color:       0xFFD700,
		})
	}()
	return nil
}
