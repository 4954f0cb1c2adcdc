// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Lista las advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		warns, err := engine.Warnings(user.ID)
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudieron consultar las advertencias.")
			return
		}

		if len(warns) == 0 {
			ctx.Reply(fmt.Sprintf("✅ **%s** no tiene advertencias.", user.Username))
			return
		}

		var sb strings.Builder
		for _, warn := range warns {
			when := time.Unix(warn.Timestamp, 0).Format("2006-01-02 15:04")
			sb.WriteString(fmt.Sprintf("`#%d` %s — %s (por <@%s>)\n", warn.ID, when, warn.Reason, warn.ModID))
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("⚠️ Advertencias de %s (%d)", user.Username, len(warns)),
			Description: sb.String(),
			Color:       0xFFA500,
		}
		ctx.ReplyEmbed(embed)
	}()
	return nil
}
