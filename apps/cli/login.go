package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mzalendo/shule/core/user"
)

// portalFor maps the role the server sent to its portal; unknown roles land on the
// public landing page.
func portalFor(role string) string {
	switch role {
	case user.RoleAdmin:
		return "/admin"
	case user.RoleProfessor:
		return "/teacher"
	case user.RoleStudent:
		return "/student"
	default:
		return "/"
	}
}

func (cli *commandLine) runLogin(ctx context.Context, args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	uname := loginCmd.String("username", "", "The account's email. The password will be prompted next.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *uname == "" {
		loginCmd.Usage()
		return errHelp
	}

	pwd, err := cli.promptPassword()
	if err != nil {
		return err
	}
	if pwd == "" {
		loginCmd.Usage()
		return errHelp
	}

	role, err := cli.registry.Session.Login(ctx, *uname, pwd)
	if err != nil {
		return err
	}

	snap := cli.registry.Session.Snapshot()
	fmt.Fprintf(cli.out, "Logged in as %s (%s) -> %s\n", snap.User.FullName, role, portalFor(role))
	return nil
}

func (cli *commandLine) runPhoto(ctx context.Context, args []string) error {
	photoCmd := flag.NewFlagSet("photo", flag.ExitOnError)
	file := photoCmd.String("f", "", "Image file to upload.")
	if err := photoCmd.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		photoCmd.Usage()
		return errHelp
	}
	if err := cli.restore(ctx); err != nil {
		return err
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	usr, err := cli.registry.Users.UpdateMyPhoto(ctx, filepath.Base(*file), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Updated photo for %s\n", usr.FullName)
	return nil
}

func (cli *commandLine) runWhoami(ctx context.Context) error {
	if err := cli.restore(ctx); err != nil {
		return err
	}
	snap := cli.registry.Session.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Fprintln(cli.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(cli.out, "%s <%s> (%s)\n", snap.User.FullName, snap.User.Email, snap.Role)
	return nil
}
