package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/mzalendo/shule/core/user"
)

func (cli *commandLine) runProfessors(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	if err := cli.restore(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		profs, err := cli.registry.Users.QueryProfessors(ctx)
		if err != nil {
			return err
		}
		if len(profs) == 0 {
			fmt.Fprintln(cli.out, "No professors.")
			return nil
		}
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tACTIVE")
		for _, prof := range profs {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", prof.ID, prof.FullName, prof.Email, prof.IsActive)
		}
		return tw.Flush()

	case "add":
		addCmd := flag.NewFlagSet("professors add", flag.ExitOnError)
		name := addCmd.String("name", "", "Full name.")
		email := addCmd.String("email", "", "Email address. The password will be prompted next.")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *email == "" {
			addCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		prof, err := cli.registry.Users.CreateProfessor(ctx, user.NewUser{
			FullName: *name,
			Email:    *email,
			Password: pwd,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Created professor #%d %s\n", prof.ID, prof.FullName)
		return nil

	case "rm":
		rmCmd := flag.NewFlagSet("professors rm", flag.ExitOnError)
		id := rmCmd.Int("id", 0, "Account ID.")
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			rmCmd.Usage()
			return errHelp
		}
		if err := cli.registry.Users.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Deleted account #%d\n", *id)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
