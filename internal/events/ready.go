// Package events provides event handlers for the bot
package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// presenceInterval is how often the bot rotates its displayed activity
const presenceInterval = 20 * time.Second

var presenceOnce sync.Once

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot conectado: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Conectado a %d servidores", len(r.Guilds)), "Ready")

	// Reconnects fire Ready again; only one rotation loop is wanted
	presenceOnce.Do(func() {
		go rotatePresence(s)
	})
}

// rotatePresence cycles the bot activity through the network statuses
func rotatePresence(s *discordgo.Session) {
	statuses := []func() string{
		func() string { return "⛏️ play.darkmc.net" },
		func() string {
			total := 0
			s.State.RLock()
			for _, guild := range s.State.Guilds {
				total += guild.MemberCount
			}
			s.State.RUnlock()
			return fmt.Sprintf("👥 %d miembros", total)
		},
		func() string { return "❓ /utils help" },
	}

	ticker := time.NewTicker(presenceInterval)
	defer ticker.Stop()

	index := 0
	for {
		status := statuses[index%len(statuses)]()
		if err := s.UpdateGameStatus(0, status); err != nil {
			logger.Debug(fmt.Sprintf("Error estableciendo estado: %v", err), "Ready")
		}
		index++
		<-ticker.C
	}
}
