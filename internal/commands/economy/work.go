// Package economy - /eco work command
package economy

import (
	"fmt"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
)

// Flavor lines for the work reward message
var workJobs = []string{
	"minar diamantes",
	"talar un bosque entero",
	"cuidar la granja de aldeanos",
	"limpiar el Nether",
	"reparar los raíles de la mina",
}

// createWorkCommand creates the /eco work subcommand
func createWorkCommand() *discord.Command {
	return discord.NewCommand(
		"work",
		"Trabaja para ganar monedas",
		"economy",
		workHandler,
	).RequiresDatabase()
}

// workHandler handles the /eco work command
func workHandler(ctx *discord.CommandContext) error {
	userID := ctx.User().ID

	go func() {
		defer errors.RecoverMiddleware()()

		amount, err := engine.Work(userID)
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudo completar el trabajo. Inténtalo de nuevo.")
			return
		}

		job := workJobs[int(amount)%len(workJobs)]
		ctx.Reply(fmt.Sprintf("⛏️ Acabas de %s y has ganado **%d** monedas.", job, amount))
	}()
	return nil
}
