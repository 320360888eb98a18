package commands

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
)

func TestCanManage(t *testing.T) {
	const (
		owner    discord.UserID = 1
		user     discord.UserID = 2
		secRole  discord.RoleID = 10
		modRole  discord.RoleID = 11
		noRole   discord.RoleID = 0
		sendMsgs                = discord.PermissionSendMessages
	)

	tests := []struct {
		name string
		p    Principal
		role discord.RoleID
		want bool
	}{
		{"owner", Principal{UserID: owner, OwnerID: owner}, secRole, true},
		{"owner without security role", Principal{UserID: owner, OwnerID: owner}, noRole, true},
		{"administrator", Principal{UserID: user, OwnerID: owner, Permissions: discord.PermissionAdministrator}, noRole, true},
		{"security role", Principal{UserID: user, OwnerID: owner, Permissions: sendMsgs, RoleIDs: []discord.RoleID{modRole, secRole}}, secRole, true},
		{"other role", Principal{UserID: user, OwnerID: owner, Permissions: sendMsgs, RoleIDs: []discord.RoleID{modRole}}, secRole, false},
		{"no security role set", Principal{UserID: user, OwnerID: owner, Permissions: sendMsgs, RoleIDs: []discord.RoleID{modRole}}, noRole, false},
		{"manage guild is not enough", Principal{UserID: user, OwnerID: owner, Permissions: discord.PermissionManageGuild}, secRole, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanManage(tc.p, tc.role))
		})
	}
}
