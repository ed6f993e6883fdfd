package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/mzalendo/shule/apps"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	registry *apps.Registry
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -username USERNAME          - log in; the password is prompted next")
	fmt.Fprintln(cli.out, "  logout                            - log out and forget the stored token")
	fmt.Fprintln(cli.out, "  whoami                            - show the current account")
	fmt.Fprintln(cli.out, "  photo -f FILE                     - upload the account's profile photo")
	fmt.Fprintln(cli.out, "  students list|search|add|rm       - manage students")
	fmt.Fprintln(cli.out, "  subjects list|mine|load           - list subjects / teacher load")
	fmt.Fprintln(cli.out, "  professors list|add|rm            - manage professor accounts")
	fmt.Fprintln(cli.out, "  grades set|update|rm              - capture grades")
	fmt.Fprintln(cli.out, "  reports export|summary|student|stats - reporting and CSV export")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "login":
		return cli.runLogin(ctx, args[2:])
	case "logout":
		cli.registry.Session.Logout()
		fmt.Fprintln(cli.out, "Logged out.")
		return nil
	case "whoami":
		return cli.runWhoami(ctx)
	case "photo":
		return cli.runPhoto(ctx, args[2:])
	case "students":
		return cli.runStudents(ctx, args[2:])
	case "subjects":
		return cli.runSubjects(ctx, args[2:])
	case "professors":
		return cli.runProfessors(ctx, args[2:])
	case "grades":
		return cli.runGrades(ctx, args[2:])
	case "reports":
		return cli.runReports(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// restore hydrates the session from the persisted token before a protected command.
func (cli *commandLine) restore(ctx context.Context) error {
	return cli.registry.Session.Restore(ctx)
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
