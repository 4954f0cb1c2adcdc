// Package discord provides guild-level helpers: role management,
// channel lookup by name and the mute role lifecycle.
package discord

import (
	"fmt"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/config"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RoleByName returns the first guild role with the given name, or nil
func (c *ExtendedClient) RoleByName(guildID, name string) (*discordgo.Role, error) {
	roles, err := c.Session.GuildRoles(guildID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

// ChannelByName returns the first guild text channel with the given name, or nil
func (c *ExtendedClient) ChannelByName(guildID, name string) (*discordgo.Channel, error) {
	channels, err := c.Session.GuildChannels(guildID)
	if err != nil {
		return nil, err
	}
	for _, channel := range channels {
		if channel.Type == discordgo.ChannelTypeGuildText && channel.Name == name {
			return channel, nil
		}
	}
	return nil, nil
}

// CategoryByName returns the first category channel with the given name, or nil
func (c *ExtendedClient) CategoryByName(guildID, name string) (*discordgo.Channel, error) {
	channels, err := c.Session.GuildChannels(guildID)
	if err != nil {
		return nil, err
	}
	for _, channel := range channels {
		if channel.Type == discordgo.ChannelTypeGuildCategory && channel.Name == name {
			return channel, nil
		}
	}
	return nil, nil
}

// EnsureCategory returns the category with the given name, creating it
// when it does not exist yet.
func (c *ExtendedClient) EnsureCategory(guildID, name string) (*discordgo.Channel, error) {
	category, err := c.CategoryByName(guildID, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}
	return c.Session.GuildChannelCreate(guildID, name, discordgo.ChannelTypeGuildCategory)
}

// SendToChannelByName sends a message to the named text channel.
// Missing channels are silently skipped so guilds without the standard
// layout keep working.
func (c *ExtendedClient) SendToChannelByName(guildID, name, content string) {
	channel, err := c.ChannelByName(guildID, name)
	if err != nil || channel == nil {
		return
	}
	if _, err := c.Session.ChannelMessageSend(channel.ID, content); err != nil {
		logger.Warn("No se pudo enviar mensaje a #"+name+": "+err.Error(), "Guild")
	}
}

// SendEmbedToChannelByName sends an embed to the named text channel, best-effort
func (c *ExtendedClient) SendEmbedToChannelByName(guildID, name string, embed *discordgo.MessageEmbed) {
	channel, err := c.ChannelByName(guildID, name)
	if err != nil || channel == nil {
		return
	}
	if _, err := c.Session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		logger.Warn("No se pudo enviar embed a #"+name+": "+err.Error(), "Guild")
	}
}

// EnsureMuteRole returns the id of the configured mute role, creating
// the role and its channel overwrites on first use. The id is cached
// per guild after the first lookup.
func (c *ExtendedClient) EnsureMuteRole(guildID string) (string, error) {
	if cached, ok := c.muteRoles.Load(guildID); ok {
		return cached.(string), nil
	}

	cfg := config.Get()

	role, err := c.RoleByName(guildID, cfg.MuteRoleName)
	if err != nil {
		return "", err
	}

	if role == nil {
		var perms int64
		role, err = c.Session.GuildRoleCreate(guildID, &discordgo.RoleParams{
			Name:        cfg.MuteRoleName,
			Permissions: &perms,
		})
		if err != nil {
			return "", err
		}

		// Deny sending in every existing text channel. New channels
		// inherit from their category, so this only runs at creation.
		channels, err := c.Session.GuildChannels(guildID)
		if err == nil {
			for _, channel := range channels {
				if channel.Type != discordgo.ChannelTypeGuildText && channel.Type != discordgo.ChannelTypeGuildCategory {
					continue
				}
				err := c.Session.ChannelPermissionSet(
					channel.ID,
					role.ID,
					discordgo.PermissionOverwriteTypeRole,
					0,
					discordgo.PermissionSendMessages|discordgo.PermissionAddReactions,
				)
				if err != nil {
					logger.Warn("No se pudo restringir #"+channel.Name+": "+err.Error(), "Guild")
				}
			}
		}

		logger.System(fmt.Sprintf("Rol %s creado en el servidor %s", cfg.MuteRoleName, guildID), "Guild")
	}

	c.muteRoles.Store(guildID, role.ID)
	return role.ID, nil
}

// AddRole grants a role to a member
func (c *ExtendedClient) AddRole(guildID, userID, roleID, reason string) error {
	return c.Session.GuildMemberRoleAdd(guildID, userID, roleID)
}

// RemoveRole revokes a role from a member
func (c *ExtendedClient) RemoveRole(guildID, userID, roleID, reason string) error {
	return c.Session.GuildMemberRoleRemove(guildID, userID, roleID)
}

// Ban bans a member, keeping their messages
func (c *ExtendedClient) Ban(guildID, userID, reason string) error {
	return c.Session.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

// Kick removes a member from the guild
func (c *ExtendedClient) Kick(guildID, userID, reason string) error {
	return c.Session.GuildMemberDeleteWithReason(guildID, userID, reason)
}
