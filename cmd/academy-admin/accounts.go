package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/nextgen-academy/academy-api/internal/adapters/credauth"
	"github.com/nextgen-academy/academy-api/internal/bootstrap"
	"github.com/nextgen-academy/academy-api/internal/data"
	domainauth "github.com/nextgen-academy/academy-api/internal/domain/auth"
	"github.com/nextgen-academy/academy-api/internal/domain/model"
)

const (
	defaultMigrationTimeout = 5 * time.Minute
	defaultCommandTimeout   = time.Minute
)

type createAccountOptions struct {
	Email    string
	Password string
}

type roleOptions struct {
	UserID string
	Email  string
	Yes    bool
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	timeout := fs.Duration("timeout", defaultMigrationTimeout, "Maximum duration to wait for migrations to complete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *timeout <= 0 {
		return errors.New("--timeout must be greater than zero")
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if err := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runCreateAccount(cmdCtx *commandContext, args []string) error {
	opts, err := parseCreateAccountFlags(args)
	if err != nil {
		return err
	}

	req := model.CreateAccountRequest{Email: opts.Email, Password: opts.Password}
	if validateErr := req.Validate(); validateErr != nil {
		return validateErr
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		hash, hashErr := credauth.NewHasher().Hash(req.Password)
		if hashErr != nil {
			return fmt.Errorf("hash password: %w", hashErr)
		}

		account, createErr := data.NewAccountRepo(db).Create(ctx, req.Email, hash)
		if createErr != nil {
			return fmt.Errorf("create account: %w", createErr)
		}

		cmdCtx.Logger.Info("account created", "user_id", account.ID, "email", account.Email)
		return writef(os.Stdout, "Created account %s (%s)\n", account.ID, account.Email)
	})
}

func runGrantAdmin(cmdCtx *commandContext, args []string) error {
	opts, err := parseRoleFlags("grant-admin", args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		userID, resolveErr := resolveUserID(ctx, db, opts)
		if resolveErr != nil {
			return resolveErr
		}

		if grantErr := data.NewUserRoleRepo(db).Grant(ctx, userID, domainauth.RoleAdmin); grantErr != nil {
			return fmt.Errorf("grant admin: %w", grantErr)
		}

		cmdCtx.Logger.Info("admin role granted", "user_id", userID)
		return writef(os.Stdout, "Granted admin to %s\n", userID)
	})
}

func runRevokeAdmin(cmdCtx *commandContext, args []string) error {
	opts, err := parseRoleFlags("revoke-admin", args)
	if err != nil {
		return err
	}
	if confirmErr := confirmRevoke(opts); confirmErr != nil {
		return confirmErr
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		userID, resolveErr := resolveUserID(ctx, db, opts)
		if resolveErr != nil {
			return resolveErr
		}

		revoked, revokeErr := data.NewUserRoleRepo(db).Revoke(ctx, userID, domainauth.RoleAdmin)
		if revokeErr != nil {
			return fmt.Errorf("revoke admin: %w", revokeErr)
		}
		if !revoked {
			return writef(os.Stdout, "User %s did not hold the admin role\n", userID)
		}

		cmdCtx.Logger.Info("admin role revoked", "user_id", userID)
		// Live sessions lose access the next time their gate re-verifies.
		return writef(os.Stdout, "Revoked admin from %s\n", userID)
	})
}

func runListAdmins(cmdCtx *commandContext, _ []string) error {
	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		admins, listErr := data.NewUserRoleRepo(db).ListByRole(ctx, domainauth.RoleAdmin)
		if listErr != nil {
			return fmt.Errorf("list admins: %w", listErr)
		}

		if len(admins) == 0 {
			return writeln(os.Stdout, "No admin role assignments found")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if err := writeln(w, "User ID\tGranted At"); err != nil {
			return err
		}
		for _, a := range admins {
			if err := writef(w, "%s\t%s\n", a.UserID, a.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush admin table: %w", err)
		}
		return nil
	})
}

func parseCreateAccountFlags(args []string) (createAccountOptions, error) {
	fs := flag.NewFlagSet("create-account", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts createAccountOptions
	fs.StringVar(&opts.Email, "email", "", "Email address for the new account (required)")
	fs.StringVar(&opts.Password, "password", "", "Password for the new account (prompted when omitted)")

	if err := fs.Parse(args); err != nil {
		return createAccountOptions{}, err
	}

	opts.Email = strings.TrimSpace(opts.Email)
	if opts.Email == "" {
		return createAccountOptions{}, errors.New("--email is required")
	}
	if opts.Password == "" {
		password, err := promptLine("Password: ")
		if err != nil {
			return createAccountOptions{}, err
		}
		opts.Password = password
	}

	return opts, nil
}

func parseRoleFlags(name string, args []string) (roleOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts roleOptions
	fs.StringVar(&opts.UserID, "user-id", "", "User ID to target (alternative to --email)")
	fs.StringVar(&opts.Email, "email", "", "Account email to target (alternative to --user-id)")
	fs.BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	if err := fs.Parse(args); err != nil {
		return roleOptions{}, err
	}

	opts.UserID = strings.TrimSpace(opts.UserID)
	opts.Email = strings.TrimSpace(opts.Email)
	if (opts.UserID == "") == (opts.Email == "") {
		return roleOptions{}, errors.New("exactly one of --user-id or --email is required")
	}

	return opts, nil
}

// resolveUserID maps an email to its account id when --email was given.
func resolveUserID(ctx context.Context, db *sql.DB, opts roleOptions) (string, error) {
	if opts.UserID != "" {
		return opts.UserID, nil
	}
	account, err := data.NewAccountRepo(db).GetByEmail(ctx, opts.Email)
	if err != nil {
		return "", fmt.Errorf("look up account %q: %w", opts.Email, err)
	}
	return account.ID, nil
}

func confirmRevoke(opts roleOptions) error {
	if opts.Yes {
		return nil
	}
	target := opts.UserID
	if target == "" {
		target = opts.Email
	}
	resp, err := promptLine(fmt.Sprintf("Revoke admin from %s? Type 'yes' to continue: ", target))
	if err != nil {
		return err
	}
	if resp != "yes" {
		return errors.New("aborted by user")
	}
	return nil
}

func promptLine(prompt string) (string, error) {
	if err := writef(os.Stderr, "%s", prompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	f func(context.Context, *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", cerr)
		}
	}()

	return f(ctx, db)
}
