// Package utils - /utils say command
package utils

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createSayCommand creates the /utils say subcommand
func createSayCommand() *discord.Command {
	return discord.NewCommand(
		"say",
		"Hace que el bot repita un mensaje",
		"utils",
		sayHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "Mensaje a enviar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

// sayHandler handles the /utils say command
func sayHandler(ctx *discord.CommandContext) error {
	message := ctx.GetStringOption("mensaje")
	if message == "" {
		return ctx.ReplyEphemeral("❌ Debes escribir un mensaje.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if _, err := ctx.Session.ChannelMessageSend(ctx.Interaction.ChannelID, message); err != nil {
			ctx.ReplyEphemeral("❌ No se pudo enviar el mensaje.")
			return
		}
		ctx.ReplyEphemeral("✅ Mensaje enviado.")
	}()
	return nil
}
