package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mzalendo/shule/core/report"
)

func (cli *commandLine) runReports(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	if err := cli.restore(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "export":
		exportCmd := flag.NewFlagSet("reports export", flag.ExitOnError)
		subjectID := exportCmd.Int("subject", 0, "Subject ID to export the grade sheet for.")
		out := exportCmd.String("o", "", "Output CSV file; stdout when omitted.")
		if err := exportCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *subjectID == 0 {
			exportCmd.Usage()
			return errHelp
		}
		rep, err := cli.registry.Reports.SubjectReportByID(ctx, *subjectID)
		if err != nil {
			return err
		}
		w := cli.out
		if *out != "" {
			f, err := os.Create(*out)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := report.WriteSubjectCSV(w, rep); err != nil {
			return err
		}
		if *out != "" {
			fmt.Fprintf(cli.out, "Wrote %s (%d students, average %.2f)\n", *out, len(rep.Rows), rep.Average)
		}
		return nil

	case "summary":
		rows, err := cli.registry.Reports.Summary(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tSUBJECT\tENROLLED\tGRADED\tAVERAGE")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f\n", row.Subject.Code, row.Subject.Name, row.Enrolled, row.Graded, row.Average)
		}
		return tw.Flush()

	case "student":
		stCmd := flag.NewFlagSet("reports student", flag.ExitOnError)
		id := stCmd.Int("id", 0, "Student ID.")
		if err := stCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == 0 {
			stCmd.Usage()
			return errHelp
		}
		rep, err := cli.registry.Reports.StudentFull(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%s (%s)\n", rep.Student.FullName(), rep.Student.EnrollmentCode)
		tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tSUBJECT\tGRADE")
		for _, row := range rep.Subjects {
			fmt.Fprintf(tw, "%s\t%s\t%.1f\n", row.Code, row.Subject, row.Grade)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Average: %.2f\n", rep.Average)
		return nil

	case "stats":
		stats, err := cli.registry.Reports.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Students: %d\nSubjects: %d\n", stats.TotalStudents, stats.TotalSubjects)
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}
