// Package utils - /ticket command
package utils

import (
	"fmt"
	"strings"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/config"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// createTicketCommand creates the top-level /ticket command
func createTicketCommand() *discord.Command {
	return discord.NewCommand(
		"ticket",
		"Abre un ticket de soporte privado",
		"utils",
		ticketHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "asunto",
			Description: "Breve descripción del problema",
			Required:    false,
		},
	).WithBotPermissions(discordgo.PermissionManageChannels)
}

// ticketHandler creates a private channel under the tickets category,
// visible only to the author and the bot.
func ticketHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	if guildID == "" {
		return ctx.ReplyEphemeral("❌ Este comando solo funciona dentro de un servidor.")
	}

	subject := ctx.GetStringOption("asunto")
	user := ctx.User()

	go func() {
		defer errors.RecoverMiddleware()()

		cfg := config.Get()

		category, err := ctx.Client.EnsureCategory(guildID, cfg.TicketCategoryName)
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudo preparar la categoría de tickets.")
			return
		}

		// Short unique suffix keeps channel names collision-free
		suffix := strings.Split(uuid.New().String(), "-")[0]
		name := fmt.Sprintf("ticket-%s-%s", strings.ToLower(user.Username), suffix)

		channel, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
			Name:     name,
			Type:     discordgo.ChannelTypeGuildText,
			ParentID: category.ID,
			PermissionOverwrites: []*discordgo.PermissionOverwrite{
				{
					ID:   guildID, // @everyone
					Type: discordgo.PermissionOverwriteTypeRole,
					Deny: discordgo.PermissionViewChannel,
				},
				{
					ID:    user.ID,
					Type:  discordgo.PermissionOverwriteTypeMember,
					Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
				},
				{
					ID:    ctx.Session.State.User.ID,
					Type:  discordgo.PermissionOverwriteTypeMember,
					Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
				},
			},
		})
		if err != nil {
			logger.Error("No se pudo crear el canal de ticket: "+err.Error(), "Tickets")
			ctx.ReplyEphemeral("❌ No se pudo crear el ticket. Inténtalo de nuevo.")
			return
		}

		welcome := fmt.Sprintf("🎫 Hola <@%s>, el equipo te atenderá en breve.", user.ID)
		if subject != "" {
			welcome += fmt.Sprintf("\n**Asunto:** %s", subject)
		}
		ctx.Session.ChannelMessageSend(channel.ID, welcome)

		ctx.ReplyEphemeral(fmt.Sprintf("✅ Ticket creado: <#%s>", channel.ID))
	}()
	return nil
}
