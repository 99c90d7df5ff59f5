// Package admin implements catalogctl, the operator command line of the
// back office: schema migrations, account creation and the welcome page
// team roster.
package admin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
)

type Accounts interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, string, error)
}

type Roster interface {
	AddTeamMember(ctx context.Context, username string, position int) (*models.TeamMember, error)
}

// Env is what the commands operate on. Close releases it.
type Env struct {
	Migrate  func(ctx context.Context) error
	Accounts Accounts
	Roster   Roster
	Close    func() error
}

// Opener connects an Env on demand so that --help never touches the
// database.
type Opener func(ctx context.Context) (*Env, error)

// NewRootCommand builds the catalogctl command tree reading prompts from in
// and writing to out.
func NewRootCommand(open Opener, in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "CatalogKeeper administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(
		migrateCommand(open),
		userCommand(open),
		teamCommand(open),
	)
	return root
}

// withEnv opens the Env, runs fn and closes it again.
func withEnv(ctx context.Context, open Opener, fn func(*Env) error) error {
	env, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if env.Close != nil {
			_ = env.Close()
		}
	}()
	return fn(env)
}

func migrateCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), open, func(env *Env) error {
				if err := env.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
				return nil
			})
		},
	}
}

func userCommand(open Opener) *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	var email, password string
	create := &cobra.Command{
		Use:   "create USERNAME",
		Short: "Create an account together with its profile",
		Long: `Create an account together with its profile.

The password is prompted for without echo unless --password is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if password == "" {
				p1, err := GetPassword("Password", out)
				if err != nil {
					return err
				}
				p2, err := GetPassword("Password (again)", out)
				if err != nil {
					return err
				}
				if p1 != p2 {
					return errors.New("passwords do not match")
				}
				password = p1
			}

			form := &forms.SignupForm{Username: args[0], Email: email, Password1: password, Password2: password}
			if err := binding.Validator.ValidateStruct(form); err != nil {
				return errors.New(strings.Join(forms.FromBinding(form, err).Messages(), "\n"))
			}

			return withEnv(cmd.Context(), open, func(env *Env) error {
				u, _, err := env.Accounts.Signup(cmd.Context(), form.Username, form.Email, form.Password1)
				if err != nil {
					if errors.Is(err, common.ErrorAlreadyExists) {
						return fmt.Errorf("user %q already exists", form.Username)
					}
					return err
				}
				fmt.Fprintf(out, "User %s created (id %d).\n", u.Username, u.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&email, "email", "", "E-mail address")
	create.Flags().StringVar(&password, "password", "", "Password (prompted when empty)")

	user.AddCommand(create)
	return user
}

func teamCommand(open Opener) *cobra.Command {
	team := &cobra.Command{
		Use:   "team",
		Short: "Manage the team shown on the welcome page",
	}

	var position int
	add := &cobra.Command{
		Use:   "add [USERNAME]",
		Short: "Put a user's profile on the welcome page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var username string
			if len(args) == 1 {
				username = args[0]
			} else {
				var err error
				username, err = GetSimpleText(bufio.NewReader(cmd.InOrStdin()), "Enter username", out)
				if err != nil {
					return err
				}
			}

			return withEnv(cmd.Context(), open, func(env *Env) error {
				m, err := env.Roster.AddTeamMember(cmd.Context(), username, position)
				if err != nil {
					if errors.Is(err, common.ErrorNotFound) {
						return fmt.Errorf("user %q not found", username)
					}
					return err
				}
				fmt.Fprintf(out, "Team member %d added at position %d.\n", m.ID, m.Position)
				return nil
			})
		},
	}
	add.Flags().IntVar(&position, "position", 0, "Display order on the welcome page")

	team.AddCommand(add)
	return team
}
