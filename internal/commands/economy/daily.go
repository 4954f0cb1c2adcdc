// Package economy - /eco daily command
package economy

import (
	"fmt"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
)

// createDailyCommand creates the /eco daily subcommand
func createDailyCommand() *discord.Command {
	return discord.NewCommand(
		"daily",
		"Reclama tu recompensa diaria",
		"economy",
		dailyHandler,
	).RequiresDatabase()
}

// dailyHandler handles the /eco daily command
func dailyHandler(ctx *discord.CommandContext) error {
	userID := ctx.User().ID

	go func() {
		defer errors.RecoverMiddleware()()

		result, err := engine.DailyClaim(userID, time.Now())
		if err != nil {
			ctx.ReplyEphemeral("❌ No se pudo reclamar la recompensa. Inténtalo de nuevo.")
			return
		}

		if !result.Granted {
			ctx.ReplyEphemeral(fmt.Sprintf("⏳ Ya reclamaste tu recompensa diaria. Vuelve en **%s**.", roundUpWait(result.Wait)))
			return
		}

		ctx.Reply(fmt.Sprintf("🎁 ¡Recompensa diaria reclamada! Has recibido **%d** monedas.", result.Amount))
	}()
	return nil
}

// roundUpWait rounds the remaining cooldown up to whole seconds, with a
// one-second floor: a nearly-expired cooldown must never read as "0s".
func roundUpWait(wait time.Duration) time.Duration {
	rounded := wait.Truncate(time.Second)
	if rounded < wait {
		rounded += time.Second
	}
	if rounded < time.Second {
		rounded = time.Second
	}
	return rounded
}
