package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/mzalendo/shule/core/subject"
)

func (cli *commandLine) runSubjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	if err := cli.restore(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		subjects, err := cli.registry.Subjects.QueryAll(ctx)
		if err != nil {
			return err
		}
		return cli.printSubjects(subjects)

	case "mine":
		subjects, err := cli.registry.Subjects.QueryMine(ctx)
		if err != nil {
			return err
		}
		return cli.printSubjects(subjects)

	case "load":
		load, err := cli.registry.Subjects.TeacherLoad(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tSUBJECT\tPROFESSOR")
		for _, row := range load {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Subject.Code, row.Subject.Name, row.Teacher)
		}
		return tw.Flush()

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printSubjects(subjects []subject.Subject) error {
	if len(subjects) == 0 {
		fmt.Fprintln(cli.out, "No subjects.")
		return nil
	}
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tCREDITS\tSCHEDULE")
	for _, subj := range subjects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", subj.ID, subj.Code, subj.Name, subj.Credits, subj.Schedule)
	}
	return tw.Flush()
}
