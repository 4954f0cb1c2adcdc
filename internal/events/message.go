// Package events provides event handlers for message events
package events

import (
	"fmt"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
}

// onMessageCreate runs every guild message through the anti-spam
// detector. Bots are exempt, including this one.
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}

	// Respond to direct mentions with a pointer to the slash commands
	for _, mention := range m.Mentions {
		if mention.ID == s.State.User.ID {
			_, err := s.ChannelMessageSend(m.ChannelID,
				fmt.Sprintf("¡Hola <@%s>! 👋 Usa comandos **slash (/)** para interactuar conmigo. Prueba `/utils help`.", m.Author.ID))
			if err != nil {
				logger.Error(fmt.Sprintf("Error enviando respuesta: %v", err), "Message")
			}
			break
		}
	}

	if !deps.Detector.Track(m.Author.ID, time.Now()) {
		return
	}

	// Flood detected: short mute through the moderation engine so the
	// unmute scheduling and audit line follow the usual path.
	go func() {
		defer errors.RecoverMiddleware()()

		logger.Warn(fmt.Sprintf("🚨 Spam detectado de %s en %s", m.Author.Username, m.GuildID), "AntiSpam")

		err := deps.Moderation.Mute(m.GuildID, m.Author.ID, deps.SpamMuteTime, "Spam detectado")
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo silenciar al spammer: %v", err), "AntiSpam")
			return
		}

		s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("🤫 <@%s> ha sido silenciado **%d segundos** por enviar mensajes demasiado rápido.",
				m.Author.ID, int(deps.SpamMuteTime.Seconds())))
	}()
}
