package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal-keeper/internal/app"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/reencrypt"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	cfg := config.Defaults()
	cfg.Crypto.KDFTime = 1
	cfg.Crypto.KDFMemoryKiB = 64
	cfg.Crypto.KDFThreads = 1
	cfg.Session.IdleTimeout = time.Hour

	svcs, err := service.NewServices(store.NewMemoryAccountStore(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { svcs.Session.ClearKey(session.ReasonShutdown) })
	return svcs
}

// runScript feeds lines to a fresh App and returns everything it printed.
func runScript(t *testing.T, svcs *service.Services, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	a := newApp(svcs, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, logger.Nop())
	require.NoError(t, a.Run(context.Background()))
	return out.String()
}

func TestApp_JournalSession(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs,
		"signup alice",
		"s3cret-pass",
		"s3cret-pass",
		"add Feeling better today",
		"add Feeling tired",
		"topic Health",
		"search better",
		"find-topic health",
		"show",
		"lock",
		"add too late",
		"quit",
	)

	assert.Contains(t, out, app.MsgPasswordUnrecoverable)
	assert.Contains(t, out, "account alice created and unlocked")
	assert.Contains(t, out, "Feeling better today")
	assert.Contains(t, out, "Feeling tired")
	assert.Contains(t, out, "Health")
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, app.MsgLocked)
	assert.NotContains(t, out, "too late")
}

func TestApp_SearchWithoutMatches(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs,
		"signup alice", "pw-123", "pw-123",
		"add Feeling better today",
		"search weather",
	)

	assert.Contains(t, out, app.MsgNoResults)
}

func TestApp_SignupPasswordsMustMatch(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs, "signup bob", "first", "second")

	assert.Contains(t, out, "passwords do not match")
	assert.Empty(t, svcs.Session.AccountID())
}

func TestApp_Unlock(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs,
		"signup alice", "right-pass", "right-pass",
		"add hello world",
		"lock",
		"unlock alice", "wrong-pass",
		"unlock nobody", "whatever",
		"unlock alice", "right-pass",
		"show",
	)

	assert.Contains(t, out, app.MsgWrongPassword)
	assert.Contains(t, out, app.MsgAccountNotFound)
	assert.Contains(t, out, "unlocked")
	assert.Contains(t, out, "hello world")
}

func TestApp_SignupTwice(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs,
		"signup alice", "pw-123", "pw-123",
		"signup alice", "pw-456", "pw-456",
	)

	assert.Contains(t, out, app.MsgAccountAlreadyExists)
}

func TestApp_ChangePassword(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs,
		"signup alice", "old-pass", "old-pass",
		"add first entry",
		"add second entry",
		"passwd", "old-pass", "new-pass", "new-pass",
		"show",
		"unlock alice", "old-pass",
		"unlock alice", "new-pass",
		"show",
	)

	assert.Contains(t, out, fmt.Sprintf(app.MsgPasswordChanged, 2))
	assert.Contains(t, out, "re-encrypting 2/2")
	assert.Contains(t, out, app.MsgLocked)
	assert.Contains(t, out, app.MsgWrongPassword)
	assert.Contains(t, out, "second entry")
}

func TestApp_ChangePasswordWrongCurrent(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs,
		"signup alice", "old-pass", "old-pass",
		"passwd", "not-it", "new-pass", "new-pass",
		"show",
	)

	assert.Contains(t, out, app.MsgWrongPassword)
	assert.NotContains(t, out, app.MsgLocked)
}

func TestApp_UnknownCommandAndUsage(t *testing.T) {
	svcs := newTestServices(t)

	out := runScript(t, svcs, "dance", "signup", "unlock", "help", "version")

	assert.Contains(t, out, `unknown command "dance"`)
	assert.Contains(t, out, "usage: signup <account>")
	assert.Contains(t, out, "usage: unlock <account>")
	assert.Contains(t, out, "find-topic <name>")
	assert.Contains(t, out, "Build version: N/A")
}

func TestApp_EndOfInputClearsKey(t *testing.T) {
	svcs := newTestServices(t)

	runScript(t, svcs, "signup alice", "pw-123", "pw-123")

	_, ok := svcs.Session.GetKey()
	assert.False(t, ok)
}

func TestApp_CancelledContext(t *testing.T) {
	svcs := newTestServices(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	a := newApp(svcs, strings.NewReader("signup alice\npw\npw\n"), &out, logger.Nop())
	require.NoError(t, a.Run(ctx))

	assert.Empty(t, svcs.Session.AccountID())
	assert.NotContains(t, out.String(), "created")
}

func TestApp_InactivityNotice(t *testing.T) {
	svcs := newTestServices(t)
	var out bytes.Buffer
	newApp(svcs, strings.NewReader(""), &out, logger.Nop())

	svcs.Session.ClearKey(session.ReasonInactivity)

	assert.Contains(t, out.String(), app.MsgLockedAfterInactivity)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "locked",
			err:  fmt.Errorf("save: %w", session.ErrKeyUnavailable),
			want: app.MsgLocked,
		},
		{
			name: "empty password",
			err:  service.ErrEmptyPassword,
			want: app.MsgEmptyPassword,
		},
		{
			name: "storage down",
			err:  fmt.Errorf("put: %w", store.ErrStorageUnavailable),
			want: app.MsgStorageUnavailable,
		},
		{
			name: "aborted",
			err: &reencrypt.AbortedError{
				Stage: reencrypt.StageReencryptingBatch, Processed: 3, Total: 10,
				Err: errors.New("cipher: message authentication failed"),
			},
			want: fmt.Sprintf(app.MsgPasswordChangeAborted, "reencrypting batch", 3, 10),
		},
		{
			name: "aborted by concurrent change",
			err: &reencrypt.AbortedError{
				Stage: reencrypt.StageCommitting, Processed: 10, Total: 10,
				Err: fmt.Errorf("commit: %w", store.ErrCredentialConflict),
			},
			want: app.MsgPasswordChangeConflict,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
