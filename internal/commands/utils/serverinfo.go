// Package utils - /utils serverinfo command
package utils

import (
	"fmt"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createServerInfoCommand creates the /utils serverinfo subcommand
func createServerInfoCommand() *discord.Command {
	return discord.NewCommand(
		"serverinfo",
		"Muestra información del servidor",
		"utils",
		serverInfoHandler,
	)
}

// serverInfoHandler handles the /utils serverinfo command
func serverInfoHandler(ctx *discord.CommandContext) error {
	guild := ctx.Guild()
	if guild == nil {
		return ctx.ReplyEphemeral("❌ Este comando solo funciona dentro de un servidor.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		created, _ := discordgo.SnowflakeTimestamp(guild.ID)

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("🏠 %s", guild.Name),
			Color: 0x5865F2,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: guild.IconURL("256"),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🆔 ID",
					Value:  guild.ID,
					Inline: true,
				},
				{
					Name:   "👑 Dueño",
					Value:  fmt.Sprintf("<@%s>", guild.OwnerID),
					Inline: true,
				},
				{
					Name:   "👥 Miembros",
					Value:  fmt.Sprintf("%d", guild.MemberCount),
					Inline: true,
				},
				{
					Name:   "💬 Canales",
					Value:  fmt.Sprintf("%d", len(guild.Channels)),
					Inline: true,
				},
				{
					Name:   "🎭 Roles",
					Value:  fmt.Sprintf("%d", len(guild.Roles)),
					Inline: true,
				},
				{
					Name:   "📅 Creado",
					Value:  created.Format("2006-01-02"),
					Inline: true,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
