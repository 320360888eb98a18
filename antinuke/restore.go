package antinuke

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

// ErrNothingToRestore is returned by Restore if there are no deleted items of the requested kind.
const ErrNothingToRestore = errors.Sentinel("nothing to restore")

// RestoreKind is the category of items to restore.
type RestoreKind uint8

const (
	RestoreChannels RestoreKind = iota
	RestoreRoles
)

func (k RestoreKind) String() string {
	if k == RestoreRoles {
		return "roles"
	}
	return "channels"
}

const restoreReason = "Restoring deleted items"

// RestoreResult is the result of a restore.
type RestoreResult struct {
	Kind      RestoreKind
	Attempted int
	Restored  int
	// Failed holds the names of items that couldn't be recreated.
	Failed []string
}

// Restore recreates every buffered deleted item of the given kind.
// The buffer is cleared up front; items that fail to restore are dropped.
func (eng *Engine) Restore(ctx context.Context, guildID discord.GuildID, kind RestoreKind) (res RestoreResult, err error) {
	res.Kind = kind
	log := eng.Log.With("guild", guildID)

	switch kind {
	case RestoreChannels:
		chs := eng.Store.TakeDeletedChannels(guildID)
		if len(chs) == 0 {
			return res, ErrNothingToRestore
		}
		res.Attempted = len(chs)

		// the buffer is most recent first, recreate oldest first
		for i := len(chs) - 1; i >= 0; i-- {
			err := eng.Moderator.CreateChannel(ctx, guildID, chs[i], restoreReason)
			if err != nil {
				log.Errorf("Error restoring channel %q: %v", chs[i].Name, err)
				res.Failed = append(res.Failed, chs[i].Name)
				continue
			}
			res.Restored++
		}
	case RestoreRoles:
		roles := eng.Store.TakeDeletedRoles(guildID)
		if len(roles) == 0 {
			return res, ErrNothingToRestore
		}
		res.Attempted = len(roles)

		for i := len(roles) - 1; i >= 0; i-- {
			err := eng.Moderator.CreateRole(ctx, guildID, roles[i], restoreReason)
			if err != nil {
				log.Errorf("Error restoring role %q: %v", roles[i].Name, err)
				res.Failed = append(res.Failed, roles[i].Name)
				continue
			}
			res.Restored++
		}
	default:
		return res, errors.Errorf("unknown restore kind %d", kind)
	}

	log.Infof("Restored %d/%d %v", res.Restored, res.Attempted, kind)
	return res, nil
}
