package antinuke

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/warden/store"
	"github.com/starshine-sys/warden/store/memory"
	"go.uber.org/zap"
)

var now = time.Date(2022, 2, 6, 12, 0, 0, 0, time.UTC)

const (
	testGuild   discord.GuildID   = 100
	testActor   discord.UserID    = 200
	testSelf    discord.UserID    = 300
	testLogChan discord.ChannelID = 400
)

var errForbidden = errors.New("403 Forbidden: Missing Permissions")

type fakeAudit struct {
	mu      sync.Mutex
	entries map[discord.AuditLogEvent][]AuditEntry
	err     error
	calls   int
	nextID  discord.AuditLogEntryID
}

func (f *fakeAudit) RecentEntries(_ context.Context, _ discord.GuildID, action discord.AuditLogEvent, limit uint) ([]AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	e := f.entries[action]
	if uint(len(e)) > limit {
		e = e[:limit]
	}
	return e, nil
}

// add inserts an entry as the most recent one of its type.
func (f *fakeAudit) add(action discord.AuditLogEvent, actor discord.UserID, age time.Duration, target discord.Snowflake, targetName string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	e := AuditEntry{
		ID:         f.nextID,
		ActorID:    actor,
		TargetID:   target,
		TargetName: targetName,
		Time:       now.Add(-age),
	}
	f.entries[action] = append([]AuditEntry{e}, f.entries[action]...)
}

type fakeModerator struct {
	mu    sync.Mutex
	calls []string
	// fail maps a call prefix ("ban", "delete_role", "create_channel general") to the error it returns.
	fail map[string]error
}

func (f *fakeModerator) call(name string, id interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := fmt.Sprintf("%s %v", name, id)
	f.calls = append(f.calls, c)
	if err, ok := f.fail[c]; ok {
		return err
	}
	return f.fail[name]
}

func (f *fakeModerator) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeModerator) Ban(_ context.Context, _ discord.GuildID, userID discord.UserID, _ string) error {
	return f.call("ban", userID)
}

func (f *fakeModerator) Kick(_ context.Context, _ discord.GuildID, userID discord.UserID, _ string) error {
	return f.call("kick", userID)
}

func (f *fakeModerator) DeleteRole(_ context.Context, _ discord.GuildID, roleID discord.RoleID, _ string) error {
	return f.call("delete_role", roleID)
}

func (f *fakeModerator) DeleteWebhook(_ context.Context, _ discord.GuildID, webhookID discord.WebhookID, _ string) error {
	return f.call("delete_webhook", webhookID)
}

func (f *fakeModerator) CreateRole(_ context.Context, _ discord.GuildID, r store.RoleSnapshot, _ string) error {
	return f.call("create_role", r.Name)
}

func (f *fakeModerator) CreateChannel(_ context.Context, _ discord.GuildID, ch store.ChannelSnapshot, _ string) error {
	return f.call("create_channel", ch.Name)
}

type fakeNotifier struct {
	mu       sync.Mutex
	reports  []Report
	channels []discord.ChannelID
	err      error
}

func (f *fakeNotifier) Notify(_ context.Context, channelID discord.ChannelID, r Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.channels = append(f.channels, channelID)
	f.reports = append(f.reports, r)
	return f.err
}

type testEnv struct {
	eng   *Engine
	store *memory.Store
	audit *fakeAudit
	mod   *fakeModerator
	notif *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store: memory.New(),
		audit: &fakeAudit{entries: make(map[discord.AuditLogEvent][]AuditEntry)},
		mod:   &fakeModerator{fail: make(map[string]error)},
		notif: &fakeNotifier{},
	}

	env.eng = New(env.store, env.audit, env.mod, env.notif, nil, zap.NewNop().Sugar())
	env.eng.Resolver.Now = func() time.Time { return now }
	env.eng.SetSelf(testSelf)

	env.store.SetLogChannel(testGuild, testLogChan)
	return env
}
