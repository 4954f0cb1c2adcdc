// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, message, reaction)
package events

import (
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/internal/antispam"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/moderation"
	"github.com/DarkMCNetwork/DarkMCBotGo/internal/reactionroles"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
)

// Deps carries the engines the event handlers need
type Deps struct {
	Moderation   *moderation.Engine
	Detector     *antispam.Detector
	Binder       *reactionroles.Binder
	SpamMuteTime time.Duration
}

// deps is set once at registration and shared by all handlers
var deps *Deps

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, d *Deps) {
	deps = d

	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup, presence rotation)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	// Message events (anti-spam pipeline)
	RegisterMessageEvents(client)

	// Reaction events (reaction roles)
	RegisterReactionEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
