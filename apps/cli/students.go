package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/mzalendo/shule/core/student"
)

func (cli *commandLine) runStudents(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	if err := cli.restore(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		students, err := cli.registry.Students.QueryAll(ctx)
		if err != nil {
			return err
		}
		return cli.printStudents(students)

	case "search":
		searchCmd := flag.NewFlagSet("students search", flag.ExitOnError)
		q := searchCmd.String("q", "", "Search term (name, email or enrollment code).")
		if err := searchCmd.Parse(args[1:]); err != nil {
			return err
		}
		students, err := cli.registry.Students.SearchMine(ctx, *q)
		if err != nil {
			return err
		}
		return cli.printStudents(students)

	case "add":
		addCmd := flag.NewFlagSet("students add", flag.ExitOnError)
		first := addCmd.String("first", "", "First name.")
		last := addCmd.String("last", "", "Last name.")
		email := addCmd.String("email", "", "Email address.")
		code := addCmd.String("code", "", "Enrollment code.")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		st, err := cli.registry.Students.Create(ctx, student.NewStudent{
			FirstName:      *first,
			LastName:       *last,
			Email:          *email,
			EnrollmentCode: *code,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Created student #%d %s\n", st.ID, st.FullName())
		return nil

	case "rm":
		rmCmd := flag.NewFlagSet("students rm", flag.ExitOnError)
		id := rmCmd.Int("id", 0, "Student ID.")
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			rmCmd.Usage()
			return errHelp
		}
		if err := cli.registry.Students.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Deleted student #%d\n", *id)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printStudents(students []student.Student) error {
	if len(students) == 0 {
		fmt.Fprintln(cli.out, "No students.")
		return nil
	}
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tEMAIL")
	for _, st := range students {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", st.ID, st.EnrollmentCode, st.FullName(), st.Email)
	}
	return tw.Flush()
}
