// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una razón.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		id, err := engine.Warn(ctx.Interaction.GuildID, user.ID, ctx.User().ID, reason, time.Now())
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudo guardar la advertencia. Inténtalo de nuevo.")
			return
		}

		ctx.Reply(fmt.Sprintf("⚠️ **%s** ha sido advertido. (advertencia #%d)\n**Razón:** %s\n**Moderador:** %s",
			user.Username,
			id,
			reason,
			ctx.User().Username,
		))
	}()
	return nil
}
