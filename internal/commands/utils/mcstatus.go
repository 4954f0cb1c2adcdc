// Package utils - /utils mcstatus command
package utils

import (
	"fmt"
	"strings"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/config"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/mcstatus"
	"github.com/bwmarrin/discordgo"
)

// createMcStatusCommand creates the /utils mcstatus subcommand
func createMcStatusCommand() *discord.Command {
	return discord.NewCommand(
		"mcstatus",
		"Muestra el estado del servidor de Minecraft",
		"utils",
		mcStatusHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "servidor",
			Description: "Dirección del servidor (por defecto el de la red)",
			Required:    false,
		},
	)
}

// mcStatusHandler handles the /utils mcstatus command. The ping can take
// a few seconds, so the response is deferred first.
func mcStatusHandler(ctx *discord.CommandContext) error {
	cfg := config.Get()

	host := ctx.GetStringOption("servidor")
	port := cfg.MCServerPort
	if host == "" {
		host = cfg.MCServerHost
	} else if h, p, ok := strings.Cut(host, ":"); ok {
		host = h
		fmt.Sscanf(p, "%d", &port)
	} else {
		port = mcstatus.DefaultPort
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()

		status, err := mcClient.Ping(host, port)
		if err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Dirección inválida: %v", err))
			return
		}

		if !status.Online {
			ctx.EditReplyEmbed(&discordgo.MessageEmbed{
				Title:       "🔴 Servidor fuera de línea",
				Description: fmt.Sprintf("**%s** no responde en este momento.", host),
				Color:       0xFF0000,
			})
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("🟢 %s", host),
			Color: 0x00FF00,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "👥 Jugadores",
					Value:  fmt.Sprintf("%d / %d", status.OnlinePlayers, status.MaxPlayers),
					Inline: true,
				},
				{
					Name:   "🧩 Versión",
					Value:  status.Version,
					Inline: true,
				},
				{
					Name:   "📶 Latencia",
					Value:  fmt.Sprintf("%dms", status.Latency.Milliseconds()),
					Inline: true,
				},
			},
		}

		if status.MOTD != "" {
			embed.Description = status.MOTD
		}

		if len(status.Sample) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "🎮 En línea",
				Value: strings.Join(status.Sample, ", "),
			})
		}

		ctx.EditReplyEmbed(embed)
	}()
	return nil
}
