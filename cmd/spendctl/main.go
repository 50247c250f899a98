// spendctl administers the users of a SpendWise database.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/service"
	"github.com/spendwise/backend/internal/validate"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
)

const usage = `Usage: spendctl <command> [flags]

Commands:
  adduser     create a user
  deactivate  deactivate the user with the given email
  seed        create the demo user with the default categories
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "adduser":
		return addUser(args[1:], stdin, stdout, stderr)
	case "deactivate":
		return deactivate(args[1:], stdout, stderr)
	case "seed":
		return seed(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return flag.ErrHelp
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// flags returns a flag set with the database flag.
func flags(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "data/spendwise.db"
	}

	return fs, fs.String("db", dbPath, "Path to the database file")
}

func connect(dbPath string) (func(), error) {
	if err := models.Connect(dbPath); err != nil {
		return nil, err
	}

	return func() {
		if sqlDB, err := models.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}, nil
}

func addUser(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, dbPath := flags("adduser", stderr)
	email := fs.String("email", "", "Email address")
	username := fs.String("username", "", "Username")
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var missing []string
	for name, value := range map[string]string{"email": *email, "username": *username, "first-name": *firstName, "last-name": *lastName} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	v := validator.New()
	_ = v.RegisterValidation("password", validate.Password)
	_ = v.RegisterValidation("mailformat", validate.MailFormat)

	if err := v.Var(*email, "mailformat"); err != nil {
		return fmt.Errorf("invalid email address %q", *email)
	}
	if err := v.Var(password, "password"); err != nil {
		return fmt.Errorf("password must be at least 8 characters long, at most %d bytes long and contain an uppercase letter, a lowercase letter and a digit", validate.MaxPasswordBytes)
	}

	closeDB, err := connect(*dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	user, err := service.Register(models.DB, service.Registration{
		Email:     *email,
		Username:  *username,
		Password:  password,
		FirstName: *firstName,
		LastName:  *lastName,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d\n", user.Username, user.ID)
	return nil
}

func deactivate(args []string, stdout, stderr io.Writer) error {
	fs, dbPath := flags("deactivate", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: spendctl deactivate [-db <path>] <email>")
		return errors.New("exactly one email address is required")
	}

	closeDB, err := connect(*dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	user, err := service.DeactivateUser(models.DB, fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s deactivated\n", user.Email)
	return nil
}

func seed(args []string, stdout, stderr io.Writer) error {
	fs, dbPath := flags("seed", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	closeDB, err := connect(*dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	user, created, err := service.SeedDemo(models.DB)
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	if !created {
		fmt.Fprintf(stdout, "Demo user %s already exists\n", user.Email)
		return nil
	}

	fmt.Fprintf(stdout, "Demo user %s created with password %s\n", user.Email, service.DemoPassword)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
