package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mzalendo/shule/core/report"
	"github.com/mzalendo/shule/core/student"
	"github.com/mzalendo/shule/core/subject"
)

func TestWriteSubjectCSV(t *testing.T) {
	val := 8.5
	rep := report.SubjectReport{
		Subject: subject.Subject{ID: 1, Name: "Matemáticas", Code: "MAT-101", Credits: 4},
		Rows: []report.Row{
			{
				Student: student.Student{FirstName: "Juan", LastName: "Pérez", Email: "juan@school.com", EnrollmentCode: "ENR-001"},
				Grade:   &val,
			},
			{
				Student: student.Student{FirstName: "Ana", LastName: "Rodríguez", Email: "ana@school.com", EnrollmentCode: "ENR-004"},
			},
		},
		Graded:  1,
		Average: 8.5,
	}

	var buf bytes.Buffer
	assert.NoError(t, report.WriteSubjectCSV(&buf, rep))

	want := "enrollment_code,first_name,last_name,email,grade\n" +
		"ENR-001,Juan,Pérez,juan@school.com,8.5\n" +
		"ENR-004,Ana,Rodríguez,ana@school.com,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummaryCSV(t *testing.T) {
	rows := []report.SummaryRow{
		{
			Subject:  subject.Subject{Name: "Física", Code: "FIS-102", Credits: 4},
			Enrolled: 2,
			Graded:   2,
			Average:  8.35,
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, report.WriteSummaryCSV(&buf, rows))

	want := "code,subject,credits,enrolled,graded,average\n" +
		"FIS-102,Física,4,2,2,8.35\n"
	assert.Equal(t, want, buf.String())
}
