// Package events provides event handlers for reaction-role events
package events

import (
	"fmt"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/discord"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/errors"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReactionEvents registers the reaction add/remove handlers
func RegisterReactionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageReactionAdd)
	client.Session.AddHandler(onMessageReactionRemove)
}

// onMessageReactionAdd grants the bound role, if any. Failures (user
// left, role deleted, missing permissions) are logged and swallowed.
func onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}

	go func() {
		defer errors.RecoverMiddleware()()

		roleID, err := deps.Binder.RoleToGrant(r.MessageID, r.Emoji.Name)
		if err != nil {
			logger.Error(fmt.Sprintf("Error consultando reaction role: %v", err), "ReactionRoles")
			return
		}
		if roleID == "" {
			return
		}

		if err := s.GuildMemberRoleAdd(r.GuildID, r.UserID, roleID); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo otorgar el rol %s: %v", roleID, err), "ReactionRoles")
		}
	}()
}

// onMessageReactionRemove revokes the bound role, if any
func onMessageReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.UserID == s.State.User.ID {
		return
	}

	go func() {
		defer errors.RecoverMiddleware()()

		roleID, err := deps.Binder.RoleToRevoke(r.MessageID, r.Emoji.Name)
		if err != nil {
			logger.Error(fmt.Sprintf("Error consultando reaction role: %v", err), "ReactionRoles")
			return
		}
		if roleID == "" {
			return
		}

		if err := s.GuildMemberRoleRemove(r.GuildID, r.UserID, roleID); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo retirar el rol %s: %v", roleID, err), "ReactionRoles")
		}
	}()
}
