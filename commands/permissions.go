package commands

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
	"github.com/starshine-sys/warden/common"
)

// Principal is the user running a command.
type Principal struct {
	UserID      discord.UserID
	OwnerID     discord.UserID
	Permissions discord.Permissions
	RoleIDs     []discord.RoleID
}

// CanManage returns true if p may change security settings:
// the guild owner, anyone with Administrator, and holders of the security role.
func CanManage(p Principal, securityRole discord.RoleID) bool {
	if p.UserID == p.OwnerID {
		return true
	}

	if p.Permissions.Has(discord.PermissionAdministrator) {
		return true
	}

	return securityRole.IsValid() && common.Contains(p.RoleIDs, securityRole)
}

func (bot *Bot) principal(ctx *bcr.Context) (p Principal, err error) {
	p.UserID = ctx.Author.ID
	if ctx.Guild != nil {
		p.OwnerID = ctx.Guild.OwnerID
	}
	if ctx.Member != nil {
		p.RoleIDs = ctx.Member.RoleIDs
	}

	p.Permissions, err = ctx.State.Permissions(ctx.Message.ChannelID, ctx.Author.ID)
	return p, err
}

// checkManage replies to the user and returns false if they can't manage security settings.
func (bot *Bot) checkManage(ctx *bcr.Context) (ok bool, err error) {
	if !ctx.Message.GuildID.IsValid() {
		_, err = ctx.Replyc(bcr.ColourRed, "This command can only be used in a server.")
		return false, err
	}

	p, err := bot.principal(ctx)
	if err != nil {
		return false, bot.ReportError(ctx, err)
	}

	settings := bot.Store.Settings(ctx.Message.GuildID)
	if CanManage(p, settings.SecurityRole) {
		return true, nil
	}

	if !settings.SecurityRole.IsValid() {
		bot.log.Debugf("No security role set in %v, denied %v", ctx.Message.GuildID, ctx.Author.ID)
	}

	_, err = ctx.Replyc(bcr.ColourRed, "You do not have permission to use this command. Only users with the Security Admin role can use security commands.")
	return false, err
}
