// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/config"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberAdd is called when a new member joins the server.
// Every step is best-effort: a guild without the welcome channel or
// the auto-role still gets the rest.
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s en servidor %s",
		m.User.Username, m.GuildID), "Member")

	cfg := config.Get()
	client := discord.Get()

	guild, err := s.Guild(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error obteniendo servidor: %v", err), "Member")
		return
	}

	// Auto-role
	if role, err := client.RoleByName(m.GuildID, cfg.AutoRoleName); err == nil && role != nil {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, role.ID); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo asignar el rol automático: %v", err), "Member")
		}
	}

	// Welcome embed
	welcomeEmbed := &discordgo.MessageEmbed{
		Title:       "¡Bienvenido/a a DarkMC! 🎉",
		Description: fmt.Sprintf("Dale la bienvenida a <@%s>\nAhora somos **%d** miembros.\n\nConéctate en **play.darkmc.net** ⛏️", m.User.ID, guild.MemberCount),
		Color:       0x00ff00,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("128"),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    guild.Name,
			IconURL: guild.IconURL("64"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	client.SendEmbedToChannelByName(m.GuildID, cfg.WelcomeChannelName, welcomeEmbed)

	// Mod-log line
	client.SendToChannelByName(m.GuildID, cfg.LogChannelName,
		fmt.Sprintf("📥 **%s** (`%s`) se ha unido al servidor.", m.User.Username, m.User.ID))
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s salió del servidor %s",
		m.User.Username, m.GuildID), "Member")

	cfg := config.Get()
	client := discord.Get()

	// Drop any in-flight spam tracking for the user
	deps.Detector.Forget(m.User.ID)

	client.SendToChannelByName(m.GuildID, cfg.LogChannelName,
		fmt.Sprintf("📤 **%s** (`%s`) ha salido del servidor.", m.User.Username, m.User.ID))
}
