package antinuke

import (
	"context"
	"testing"

	"emperror.dev/errors"
	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreChannelsWithFailure(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"one", "two", "three"} {
		env.store.AddDeletedChannel(testGuild, store.ChannelSnapshot{Name: name})
	}
	env.store.AddDeletedRole(testGuild, store.RoleSnapshot{Name: "untouched"})
	env.mod.fail["create_channel two"] = errForbidden

	res, err := env.eng.Restore(context.Background(), testGuild, RestoreChannels)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 2, res.Restored)
	assert.Equal(t, []string{"two"}, res.Failed)
	// oldest first
	assert.Equal(t, []string{"create_channel one", "create_channel two", "create_channel three"}, env.mod.Calls())

	chs, roles := env.store.Deleted(testGuild)
	assert.Empty(t, chs, "failed channels are not re-queued")
	assert.Len(t, roles, 1)
}

func TestRestoreRoles(t *testing.T) {
	env := newTestEnv(t)
	env.store.AddDeletedRole(testGuild, store.RoleSnapshot{Name: "Moderators"})
	env.store.AddDeletedRole(testGuild, store.RoleSnapshot{Name: "Members"})

	res, err := env.eng.Restore(context.Background(), testGuild, RestoreRoles)
	require.NoError(t, err)
	assert.Equal(t, RestoreResult{Kind: RestoreRoles, Attempted: 2, Restored: 2}, res)

	_, roles := env.store.Deleted(testGuild)
	assert.Empty(t, roles)
}

func TestRestoreNothing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.eng.Restore(context.Background(), testGuild, RestoreChannels)
	assert.True(t, errors.Is(err, ErrNothingToRestore))

	_, err = env.eng.Restore(context.Background(), testGuild, RestoreRoles)
	assert.True(t, errors.Is(err, ErrNothingToRestore))
	assert.Empty(t, env.mod.Calls())
}
