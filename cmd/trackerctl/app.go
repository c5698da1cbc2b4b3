package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gametracker/internal/app/tracker"
	"gametracker/internal/client"
	"gametracker/internal/configs"
	"gametracker/internal/session"
	"gametracker/internal/view"
)

var errNotLoggedIn = errors.New("not logged in, run: trackerctl login -email <email>")

type app struct {
	api   *client.Client
	sess  *session.Store
	in    *bufio.Reader
	out   io.Writer
	yes   bool
	token session.TokenStore
}

func newApp(cfg *configs.ClientConfig, in io.Reader, out io.Writer) *app {
	a := &app{
		in:    bufio.NewReader(in),
		out:   out,
		token: session.NewFileStore(cfg.TokenFile),
	}

	a.api = client.New(cfg.APIURL, session.StoredToken{Tokens: a.token},
		client.WithTimeout(cfg.Timeout),
		client.WithUnauthorizedHook(func() {
			if a.sess != nil {
				a.sess.Expire()
			}
		}),
	)
	a.sess = session.New(a.token, a.api.Auth)
	return a
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "logout":
		a.sess.Logout()
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	case "whoami":
		return a.whoami(ctx)
	case "games":
		return a.games(ctx, rest)
	case "achievements":
		return a.achievements(ctx, rest)
	case "ask":
		return a.ask(ctx, rest)
	case "help", "-h", "--help":
		printUsage(a.out)
		return nil
	default:
		return errUsage
	}
}

// requireUser restores the stored session and fails when nobody is signed in.
func (a *app) requireUser(ctx context.Context) (tracker.User, error) {
	if err := a.sess.Restore(ctx); err != nil {
		return tracker.User{}, fmt.Errorf("restore session: %w", err)
	}
	user, ok := a.sess.User()
	if !ok {
		if msg := a.sess.LastError(); msg != "" {
			return tracker.User{}, fmt.Errorf("%s: %w", msg, errNotLoggedIn)
		}
		return tracker.User{}, errNotLoggedIn
	}
	return user, nil
}

// Confirm implements view.Confirmer on the terminal.
func (a *app) Confirm(_ context.Context, prompt string) bool {
	if a.yes {
		return true
	}
	fmt.Fprintf(a.out, "%s [y/N] ", prompt)
	line, _ := a.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

var _ view.Confirmer = (*app)(nil)

func (a *app) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *email == "" {
		return errUsage
	}
	if *password == "" {
		*password = a.prompt("Password")
	}

	if err := a.sess.Login(ctx, *email, *password); err != nil {
		return err
	}
	user, _ := a.sess.User()
	fmt.Fprintf(a.out, "Logged in as %s.\n", user.Username)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	username := fs.String("username", "", "user name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *username == "" || *email == "" {
		return errUsage
	}
	if *password == "" {
		*password = a.prompt("Password")
	}

	if err := a.sess.Register(ctx, *username, *email, *password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", *username)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.Username, user.Email)
	return nil
}

func (a *app) ask(ctx context.Context, args []string) error {
	if _, err := a.requireUser(ctx); err != nil {
		return err
	}

	chat := view.NewChatView(a.api.Chatbot)
	reply, sent := chat.Send(ctx, strings.Join(args, " "))
	if !sent {
		return errUsage
	}
	fmt.Fprintln(a.out, reply.Text)
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// viewError prefers the view's user-facing message over the raw error.
func viewError(msg string, err error) error {
	if msg != "" {
		return errors.New(msg)
	}
	return err
}
