// Package mod - /mod unwarn command
package mod

import (
	"fmt"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createUnwarnCommand creates the /mod unwarn subcommand
func createUnwarnCommand() *discord.Command {
	return discord.NewCommand(
		"unwarn",
		"Elimina una advertencia por su número",
		"mod",
		unwarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "numero",
			Description: "Número de la advertencia",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// unwarnHandler handles the /mod unwarn command
func unwarnHandler(ctx *discord.CommandContext) error {
	id := ctx.GetIntOption("numero")
	if id < 1 {
		return ctx.ReplyEphemeral("❌ Debes especificar el número de la advertencia.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := engine.Unwarn(ctx.Interaction.GuildID, id); err != nil {
			ctx.ReplyEphemeral("❌ No se pudo eliminar la advertencia.")
			return
		}

		// Removing a number that never existed reports success too:
		// the end state is the same either way.
		ctx.Reply(fmt.Sprintf("🗑️ Advertencia `#%d` eliminada.", id))
	}()
	return nil
}
