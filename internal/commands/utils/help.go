package utils

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de DarkMC Bot**\n\n" +
				"**Economía:**\n" +
				"• `/eco balance` - Consulta tu saldo\n" +
				"• `/eco daily` - Recompensa diaria\n" +
				"• `/eco work` - Trabaja para ganar monedas\n" +
				"• `/eco shop` - Tienda de artículos\n" +
				"• `/eco buy <articulo>` - Compra un artículo\n\n" +
				"**Moderación:**\n" +
				"• `/mod ban <usuario> <razón>` - Banea a un usuario\n" +
				"• `/mod kick <usuario> <razón>` - Expulsa a un usuario\n" +
				"• `/mod warn <usuario> <razón>` - Advierte a un usuario\n" +
				"• `/mod mute <usuario> <duración>` - Silencia a un usuario\n" +
				"• `/mod unmute <usuario>` - Quita el silencio\n" +
				"• `/mod warnings <usuario>` - Lista las advertencias\n" +
				"• `/mod unwarn <numero>` - Elimina una advertencia\n\n" +
				"**Roles:**\n" +
				"• `/roles bind` - Vincula reacción con rol\n" +
				"• `/roles unbind` - Quita la vinculación\n\n" +
				"**Utilidad:**\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils mcstatus` - Estado del servidor de Minecraft\n" +
				"• `/utils serverinfo` - Información del servidor\n" +
				"• `/utils userinfo <usuario>` - Información de un usuario\n" +
				"• `/utils meme` - Un meme aleatorio\n" +
				"• `/ticket` - Abre un ticket de soporte",
		)
	}()
	return nil
}
