package commands

import (
	"fmt"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/store"
)

const (
	securityRoleName   = "Security Admin"
	securityLogsName   = "security-logs"
	securityToolsColor = discord.Color(0xFF0000)
)

// logsOverwrites hides the logs channel from everyone except the security role.
func logsOverwrites(guildID discord.GuildID, roleID discord.RoleID) []discord.Overwrite {
	return []discord.Overwrite{
		{
			ID:   discord.Snowflake(guildID),
			Type: discord.OverwriteRole,
			Deny: discord.PermissionViewChannel,
		},
		{
			ID:    discord.Snowflake(roleID),
			Type:  discord.OverwriteRole,
			Allow: discord.PermissionViewChannel | discord.PermissionSendMessages | discord.PermissionReadMessageHistory,
		},
	}
}

// securityToolsClient is the part of the Discord API used to create security tools.
type securityToolsClient interface {
	CreateRole(discord.GuildID, api.CreateRoleData) (*discord.Role, error)
	DeleteRole(discord.GuildID, discord.RoleID, api.AuditLogReason) error
	CreateChannel(discord.GuildID, api.CreateChannelData) (*discord.Channel, error)
}

// createSecurityTools creates the security role and the logs channel.
// If the channel can't be created, the role is deleted again.
func createSecurityTools(c securityToolsClient, guildID discord.GuildID) (*discord.Role, *discord.Channel, error) {
	role, err := c.CreateRole(guildID, api.CreateRoleData{
		Name:           securityRoleName,
		Color:          securityToolsColor,
		AuditLogReason: "Security role for managing server protection",
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "create security role")
	}

	ch, err := c.CreateChannel(guildID, api.CreateChannelData{
		Name:           securityLogsName,
		Type:           discord.GuildText,
		Topic:          "Security logs for server protection",
		Overwrites:     logsOverwrites(guildID, role.ID),
		AuditLogReason: "Security logs channel",
	})
	if err != nil {
		if delErr := c.DeleteRole(guildID, role.ID, "Security tools setup failed"); delErr != nil {
			return nil, nil, errors.Combine(
				errors.Wrap(err, "create security logs channel"),
				errors.Wrap(delErr, "delete security role"),
			)
		}
		return nil, nil, errors.Wrap(err, "create security logs channel")
	}

	return role, ch, nil
}

func (bot *Bot) securityTools(ctx *bcr.Context) (err error) {
	guildID := ctx.Message.GuildID
	settings := bot.Store.Settings(guildID)

	if settings.LogChannel.IsValid() && settings.SecurityRole.IsValid() {
		ch, chErr := ctx.State.Channel(settings.LogChannel)
		role, roleErr := ctx.State.Role(guildID, settings.SecurityRole)
		if chErr == nil && roleErr == nil {
			_, err = ctx.Reply(
				"Security tools are already set up with logs channel %v and security role %v. Use `%vsecuritytools reset` to reset them.",
				ch.Mention(), role.Mention(), bot.prefix(),
			)
			return
		}
	}

	role, ch, err := createSecurityTools(ctx.State, guildID)
	if err != nil {
		return bot.securityToolsError(ctx, err)
	}

	bot.Store.SetLogChannel(guildID, ch.ID)
	bot.Store.SetSecurityRole(guildID, role.ID)

	err = ctx.State.AddRole(guildID, ctx.Author.ID, role.ID, api.AddRoleData{
		AuditLogReason: "Security tools set up",
	})
	if err != nil {
		bot.log.Errorf("Error giving %v the security role in %v: %v", ctx.Author.ID, guildID, err)
	}

	_, err = ctx.State.SendEmbeds(ch.ID, discord.Embed{
		Title:       "Security Logs Channel",
		Description: "This channel will display security-related events for your server.",
		Color:       bcr.ColourBlue,
		Fields: []discord.EmbedField{
			{Name: "Purpose", Value: "Monitor all security events including banned users, role/channel modifications, and system changes."},
			{Name: "Access", Value: fmt.Sprintf("Only users with the %v role can view this channel.", securityRoleName)},
			{Name: "Commands", Value: fmt.Sprintf("Use `%vsecurity help` to see all available security commands.", bot.prefix())},
		},
		Timestamp: discord.NowTimestamp(),
	})
	if err != nil {
		bot.log.Errorf("Error sending welcome message in %v: %v", ch.ID, err)
	}

	bot.log.Infof("Security tools set up by %v in %v", ctx.Author.Tag(), guildID)

	_, err = ctx.Send("", discord.Embed{
		Title:       "Security Tools Created",
		Description: "Security tools have been set up successfully!",
		Color:       bcr.ColourGreen,
		Fields: []discord.EmbedField{
			{Name: "Security Logs Channel", Value: ch.Mention()},
			{Name: "Security Admin Role", Value: role.Mention()},
			{Name: "Next Steps", Value: "Assign the Security Admin role to trusted staff who should manage security settings."},
		},
		Footer:    requestedBy(ctx),
		Timestamp: discord.NowTimestamp(),
	})
	return
}

func (bot *Bot) securityToolsError(ctx *bcr.Context, err error) error {
	bot.log.Errorf("Error setting up security tools in %v: %v", ctx.Message.GuildID, err)

	_, err = ctx.Replyc(bcr.ColourRed, "An error occurred while setting up security tools. Please check my permissions and try again later.")
	return err
}

func (bot *Bot) securityToolsReset(ctx *bcr.Context) (err error) {
	guildID := ctx.Message.GuildID

	bot.Store.Update(guildID, func(gs *store.GuildSettings) {
		gs.LogChannel = 0
		gs.SecurityRole = 0
	})

	bot.log.Infof("Security tools reset by %v in %v", ctx.Author.Tag(), guildID)

	_, err = ctx.Send("", discord.Embed{
		Title:       "Security Tools Reset",
		Description: fmt.Sprintf("Security tools have been reset. You can set them up again using `%vsecuritytools`.", bot.prefix()),
		Color:       bcr.ColourRed,
		Footer:      requestedBy(ctx),
		Timestamp:   discord.NowTimestamp(),
	})
	return
}
