// Package utils - /utils userinfo and /utils avatar commands
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createUserInfoCommand creates the /utils userinfo subcommand
func createUserInfoCommand() *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"Muestra información de un usuario",
		"utils",
		userInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// userInfoHandler handles the /utils userinfo command
func userInfoHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	go func() {
		defer errors.RecoverMiddleware()()

		created, _ := discordgo.SnowflakeTimestamp(user.ID)

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("👤 %s", user.Username),
			Color: 0x5865F2,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL("256"),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🆔 ID",
					Value:  user.ID,
					Inline: true,
				},
				{
					Name:   "🤖 Bot",
					Value:  boolToSiNo(user.Bot),
					Inline: true,
				},
				{
					Name:   "📅 Cuenta creada",
					Value:  created.Format("2006-01-02"),
					Inline: true,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		// Guild-only details
		member, err := ctx.Session.GuildMember(ctx.Interaction.GuildID, user.ID)
		if err == nil && member != nil {
			if !member.JoinedAt.IsZero() {
				embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
					Name:   "📥 Se unió",
					Value:  member.JoinedAt.Format("2006-01-02"),
					Inline: true,
				})
			}
			if len(member.Roles) > 0 {
				mentions := make([]string, 0, len(member.Roles))
				for _, roleID := range member.Roles {
					mentions = append(mentions, fmt.Sprintf("<@&%s>", roleID))
				}
				embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
					Name:  "🎭 Roles",
					Value: strings.Join(mentions, " "),
				})
			}
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}

// createAvatarCommand creates the /utils avatar subcommand
func createAvatarCommand() *discord.Command {
	return discord.NewCommand(
		"avatar",
		"Muestra el avatar de un usuario",
		"utils",
		avatarHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// avatarHandler handles the /utils avatar command
func avatarHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		user = ctx.User()
	}

	go func() {
		defer errors.RecoverMiddleware()()

		ctx.ReplyEmbed(&discordgo.MessageEmbed{
			Title: fmt.Sprintf("🖼️ Avatar de %s", user.Username),
			Color: 0x5865F2,
			Image: &discordgo.MessageEmbedImage{
				URL: user.AvatarURL("1024"),
			},
		})
	}()
	return nil
}

// boolToSiNo renders a boolean in the bot's language
func boolToSiNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
