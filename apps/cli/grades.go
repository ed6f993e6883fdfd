package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/mzalendo/shule/core/grade"
)

func (cli *commandLine) runGrades(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	if err := cli.restore(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "set":
		setCmd := flag.NewFlagSet("grades set", flag.ExitOnError)
		studentID := setCmd.Int("student", 0, "Student ID.")
		subjectID := setCmd.Int("subject", 0, "Subject ID.")
		value := setCmd.Float64("grade", 0, "Grade on a 0-10 scale.")
		if err := setCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *studentID == 0 || *subjectID == 0 {
			setCmd.Usage()
			return errHelp
		}
		g, err := cli.registry.Grades.Create(ctx, grade.NewGrade{
			StudentID: *studentID,
			SubjectID: *subjectID,
			Value:     *value,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Captured grade #%d: %.1f\n", g.ID, g.Value)
		return nil

	case "update":
		updCmd := flag.NewFlagSet("grades update", flag.ExitOnError)
		id := updCmd.Int("id", 0, "Grade ID.")
		value := updCmd.Float64("grade", 0, "Grade on a 0-10 scale.")
		if err := updCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			updCmd.Usage()
			return errHelp
		}
		g, err := cli.registry.Grades.Update(ctx, *id, grade.UpdateGrade{Value: *value})
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Updated grade #%d: %.1f\n", g.ID, g.Value)
		return nil

	case "rm":
		rmCmd := flag.NewFlagSet("grades rm", flag.ExitOnError)
		id := rmCmd.Int("id", 0, "Grade ID.")
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			rmCmd.Usage()
			return errHelp
		}
		if err := cli.registry.Grades.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Deleted grade #%d\n", *id)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
