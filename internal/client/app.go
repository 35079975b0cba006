package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/MKhiriev/go-journal-keeper/internal/app"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/reencrypt"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/models"
)

const helpText = `commands:
  signup <account>       create an account and unlock it
  unlock <account>       unlock an existing account
  add <text>             add a journal entry
  topic <name>           add a topic
  field <value>          add a custom field value
  show                   list every record
  search <words>         find entries containing all words
  find-topic <name>      find a topic by name
  passwd                 change the password
  lock                   lock the journal
  version                show build information
  quit                   exit`

// App is the interactive console client.
type App struct {
	services *service.Services
	in       *bufio.Scanner
	// ttyFd is the terminal passwords are read from without echo, or -1 when
	// input is not a terminal and passwords arrive as ordinary lines.
	ttyFd     int
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	outMu sync.Mutex
	out   io.Writer
}

// NewApp creates a console App bound to the process's stdin and stdout.
func NewApp(services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: services are required")
	}
	a := newApp(services, os.Stdin, os.Stdout, log)
	a.buildInfo = buildInfo
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		a.ttyFd = fd
	}
	return a, nil
}

func newApp(services *service.Services, in io.Reader, out io.Writer, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	a := &App{
		services: services,
		in:       bufio.NewScanner(in),
		ttyFd:    -1,
		logger:   log,
		out:      out,
	}
	services.Session.OnClear(func(reason session.ClearReason) {
		if reason == session.ReasonInactivity {
			a.println(app.MsgLockedAfterInactivity)
		}
	})
	return a
}

// Run restores a cached session if there is one, starts the idle watcher and
// processes commands until quit, end of input or ctx cancellation. The key is
// always cleared on the way out. Cancellation clears it at once, the loop
// itself ends once the pending read returns.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	defer a.services.Session.ClearKey(session.ReasonShutdown)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.services.Session.ClearKey(session.ReasonShutdown)
		case <-done:
		}
	}()

	if a.services.Vault.Bootstrap(ctx) {
		a.printf("session restored for %s\n", a.services.Session.AccountID())
	}

	a.services.IdleWatcher.Start(ctx)
	defer a.services.IdleWatcher.Stop()

	a.println(`type "help" for commands`)
	for {
		if ctx.Err() != nil {
			return nil
		}
		a.printf("> ")
		if !a.in.Scan() {
			return a.in.Err()
		}
		a.services.IdleWatcher.Touch()

		cmd, arg, _ := strings.Cut(strings.TrimSpace(a.in.Text()), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := a.dispatch(ctx, cmd, arg); err != nil {
			a.println(userMessage(err))
			a.logger.Debug().Err(err).Str("func", "App.Run").Str("command", cmd).Msg("command failed")
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "":
		return nil
	case "help":
		a.println(helpText)
		return nil
	case "signup":
		return a.signup(ctx, arg)
	case "unlock":
		return a.unlock(ctx, arg)
	case "add":
		return a.save(ctx, models.KindEntryBody, arg)
	case "topic":
		return a.save(ctx, models.KindTopicName, arg)
	case "field":
		return a.save(ctx, models.KindCustomField, arg)
	case "show":
		return a.show(ctx)
	case "search":
		ids, err := a.services.Vault.Search(ctx, arg)
		if err != nil {
			return err
		}
		return a.showMatches(ctx, ids)
	case "find-topic":
		ids, err := a.services.Vault.FindTopic(ctx, arg)
		if err != nil {
			return err
		}
		return a.showMatches(ctx, ids)
	case "passwd":
		return a.changePassword(ctx)
	case "version":
		a.println(a.buildInfo.String())
		return nil
	case "lock":
		a.services.Vault.Lock(session.ReasonLogout)
		a.println("locked")
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", service.ErrInvalidDataProvided, cmd)
}

func (a *App) signup(ctx context.Context, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: usage: signup <account>", service.ErrInvalidDataProvided)
	}
	a.println(app.MsgPasswordUnrecoverable)

	password, err := a.newPassword("password: ")
	if err != nil {
		return err
	}
	if err = a.services.Vault.Signup(ctx, accountID, password); err != nil {
		return err
	}
	a.printf("account %s created and unlocked\n", accountID)
	return nil
}

func (a *App) unlock(ctx context.Context, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: usage: unlock <account>", service.ErrInvalidDataProvided)
	}
	password, err := a.password("password: ")
	if err != nil {
		return err
	}
	key, err := a.services.Vault.Unlock(ctx, accountID, password)
	if err != nil {
		return err
	}
	key.Zero()
	a.println("unlocked")
	return nil
}

func (a *App) save(ctx context.Context, kind models.RecordKind, text string) error {
	if text == "" {
		return fmt.Errorf("%w: nothing to save", service.ErrInvalidDataProvided)
	}
	id, err := a.services.Vault.SaveRecord(ctx, kind, "", text)
	if err != nil {
		return err
	}
	a.printf("saved %s %s\n", kind, id)
	return nil
}

func (a *App) show(ctx context.Context) error {
	recs, err := a.services.Vault.Records(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		a.println(app.MsgNoResults)
	}
	for _, rec := range recs {
		a.printRecord(rec)
	}
	return nil
}

func (a *App) showMatches(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		a.println(app.MsgNoResults)
		return nil
	}
	recs, err := a.services.Vault.Records(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]models.DecryptedRecord, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
	}
	for _, id := range ids {
		if rec, ok := byID[id]; ok {
			a.printRecord(rec)
		}
	}
	return nil
}

func (a *App) changePassword(ctx context.Context) error {
	a.println(app.MsgPasswordUnrecoverable)

	current, err := a.password("current password: ")
	if err != nil {
		return err
	}
	next, err := a.newPassword("new password: ")
	if err != nil {
		return err
	}

	res, err := a.services.Vault.ChangePassword(ctx, current, next, func(e reencrypt.Event) {
		if e.Stage == reencrypt.StageReencryptingBatch && e.Total > 0 {
			a.printf("\rre-encrypting %d/%d", e.Processed, e.Total)
			return
		}
		a.logger.Debug().Str("func", "App.changePassword").Str("stage", string(e.Stage)).Msg("password change progress")
	})
	a.println("")
	if err != nil {
		return err
	}

	a.printf(app.MsgPasswordChanged+"\n", res.Records)
	return nil
}

// newPassword reads a password twice and requires both to match.
func (a *App) newPassword(prompt string) (string, error) {
	first, err := a.password(prompt)
	if err != nil {
		return "", err
	}
	second, err := a.password("repeat " + prompt)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("%w: passwords do not match", service.ErrInvalidDataProvided)
	}
	return first, nil
}

func (a *App) printRecord(rec models.DecryptedRecord) {
	a.printf("[%s] %-12s %s\n", rec.ID, rec.Kind, rec.Text)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(s string) {
	a.printf("%s\n", s)
}

// userMessage turns an error into the wording shown on the console.
func userMessage(err error) string {
	var aborted *reencrypt.AbortedError
	switch {
	case errors.As(err, &aborted) &&
		(errors.Is(err, store.ErrCredentialConflict) || errors.Is(err, store.ErrRecordSetChanged)):
		return app.MsgPasswordChangeConflict
	case errors.As(err, &aborted):
		return fmt.Sprintf(app.MsgPasswordChangeAborted, strings.ReplaceAll(string(aborted.Stage), "_", " "), aborted.Processed, aborted.Total)
	case errors.Is(err, session.ErrKeyUnavailable):
		return app.MsgLocked
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgWrongPassword
	case errors.Is(err, service.ErrEmptyPassword):
		return app.MsgEmptyPassword
	case errors.Is(err, store.ErrAccountNotFound):
		return app.MsgAccountNotFound
	case errors.Is(err, store.ErrAccountAlreadyExists):
		return app.MsgAccountAlreadyExists
	case errors.Is(err, store.ErrStorageUnavailable):
		return app.MsgStorageUnavailable
	}
	return err.Error()
}

// password reads one password after printing prompt. On a terminal the input
// is not echoed.
func (a *App) password(prompt string) (string, error) {
	a.printf("%s", prompt)
	if a.ttyFd >= 0 {
		b, err := term.ReadPassword(a.ttyFd)
		a.println("")
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", fmt.Errorf("read password: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimRight(a.in.Text(), "\r"), nil
}
