// Package roles - /roles bind and /roles unbind commands
package roles

import (
	"fmt"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createBindCommand creates the /roles bind subcommand
func createBindCommand() *discord.Command {
	return discord.NewCommand(
		"bind",
		"Vincula una reacción de un mensaje a un rol",
		"roles",
		bindHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "ID del mensaje",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "emoji",
			Description: "Emoji de la reacción",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol a otorgar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).
		WithBotPermissions(discordgo.PermissionManageRoles).
		RequiresDatabase()
}

// bindHandler handles the /roles bind command.
// The message id is not validated: a binding to a deleted message is
// harmless, it just never matches a reaction.
func bindHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("mensaje")
	emoji := ctx.GetStringOption("emoji")
	role := ctx.GetRoleOption("rol")

	if messageID == "" || emoji == "" || role == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar mensaje, emoji y rol.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := binder.Bind(messageID, emoji, role.ID); err != nil {
			ctx.ReplyEphemeral("❌ No se pudo guardar la vinculación.")
			return
		}

		ctx.Reply(fmt.Sprintf("🔗 Reaccionar con %s en el mensaje `%s` otorgará el rol **%s**.",
			emoji, messageID, role.Name))
	}()
	return nil
}

// createUnbindCommand creates the /roles unbind subcommand
func createUnbindCommand() *discord.Command {
	return discord.NewCommand(
		"unbind",
		"Elimina la vinculación de una reacción",
		"roles",
		unbindHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "ID del mensaje",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "emoji",
			Description: "Emoji de la reacción",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).
		RequiresDatabase()
}

// unbindHandler handles the /roles unbind command
func unbindHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("mensaje")
	emoji := ctx.GetStringOption("emoji")

	if messageID == "" || emoji == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar mensaje y emoji.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := binder.Unbind(messageID, emoji); err != nil {
			ctx.ReplyEphemeral("❌ No se pudo eliminar la vinculación.")
			return
		}

		ctx.Reply(fmt.Sprintf("🔓 La reacción %s del mensaje `%s` ya no otorga ningún rol.", emoji, messageID))
	}()
	return nil
}
