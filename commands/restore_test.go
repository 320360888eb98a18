package commands

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/store"
	"github.com/stretchr/testify/assert"
)

func TestChannelLines(t *testing.T) {
	assert.Equal(t, "No deleted channels found.", channelLines(nil))

	lines := channelLines([]store.ChannelSnapshot{
		{Name: "general", Type: discord.GuildText, DeletedAt: time.Now()},
		{Name: "Voice", Type: discord.GuildVoice, DeletedAt: time.Now()},
	})
	assert.Contains(t, lines, "• general (text, deleted now)")
	assert.Contains(t, lines, "• Voice (voice, deleted now)")
}

func TestRoleLines(t *testing.T) {
	assert.Equal(t, "No deleted roles found.", roleLines(nil))
	assert.Equal(t,
		"• Moderators (Colour: #FF0000, deleted now)",
		roleLines([]store.RoleSnapshot{{Name: "Moderators", Color: 0xff0000, DeletedAt: time.Now()}}),
	)
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "a\nb", joinLines([]string{"a", "b"}, 3))
	assert.Equal(t, "aaaa\n…and 4 more", joinLines([]string{"aaaa", "bbbb", "cccc", "dddd", "eeee"}, 20))
	assert.Equal(t, "…and 1 more", joinLines([]string{strings.Repeat("a", 50)}, 20))
}

func TestChannelLinesFitInField(t *testing.T) {
	chs := make([]store.ChannelSnapshot, store.MaxDeleted)
	for i := range chs {
		chs[i] = store.ChannelSnapshot{Name: strings.Repeat("x", 100), Type: discord.GuildText, DeletedAt: time.Now()}
	}

	lines := channelLines(chs)
	assert.LessOrEqual(t, utf8.RuneCountInString(lines), fieldLimit)
	assert.True(t, strings.HasSuffix(lines, "more"))
	assert.True(t, strings.HasPrefix(lines, "• "+strings.Repeat("x", 100)))
}
