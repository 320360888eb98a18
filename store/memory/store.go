// Package memory provides an in-memory store.
package memory

import (
	"sync"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/common"
	"github.com/starshine-sys/warden/store"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	settings *common.Map[discord.GuildID, store.GuildSettings]

	deleted   map[discord.GuildID]*deletedItems
	deletedMu sync.RWMutex
}

type deletedItems struct {
	channels []store.ChannelSnapshot
	roles    []store.RoleSnapshot
}

func New() *Store {
	return &Store{
		settings: common.NewMap[discord.GuildID, store.GuildSettings](),
		deleted:  make(map[discord.GuildID]*deletedItems),
	}
}
