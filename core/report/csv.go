package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteSubjectCSV writes a subject grade sheet as CSV. Ungraded students get an
// empty grade cell rather than a zero.
func WriteSubjectCSV(w io.Writer, rep SubjectReport) error {
	cw := csv.NewWriter(w)

	header := []string{"enrollment_code", "first_name", "last_name", "email", "grade"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, row := range rep.Rows {
		grade := ""
		if row.Grade != nil {
			grade = strconv.FormatFloat(*row.Grade, 'f', 1, 64)
		}
		record := []string{
			row.Student.EnrollmentCode,
			row.Student.FirstName,
			row.Student.LastName,
			row.Student.Email,
			grade,
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "writing row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing")
}

// WriteSummaryCSV writes the per-subject averages summary as CSV.
func WriteSummaryCSV(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)

	header := []string{"code", "subject", "credits", "enrolled", "graded", "average"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, row := range rows {
		record := []string{
			row.Subject.Code,
			row.Subject.Name,
			strconv.Itoa(row.Subject.Credits),
			strconv.Itoa(row.Enrolled),
			strconv.Itoa(row.Graded),
			strconv.FormatFloat(row.Average, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "writing row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing")
}
