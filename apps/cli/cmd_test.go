package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mzalendo/shule/apps"
	"github.com/mzalendo/shule/core"
	logsvc "github.com/mzalendo/shule/services/logger"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()

	conf := &core.Config{TestMode: true}
	conf.API.UseMocks = true
	registry, err := apps.NewRegistry(conf, logsvc.NewNopLogger())
	if err != nil {
		t.Fatalf("apps.NewRegistry(): %v", err)
	}

	var out bytes.Buffer
	return &commandLine{registry: registry, out: &out}, &out
}

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

type cliTest struct {
	name       string
	args       []string // without program name
	pwd        string
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func runTests(t *testing.T, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		args := append([]string{"shule"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t)
			if tt.pwd != "" {
				mockPassword(t, tt.pwd)
			}

			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("cli.run() output = %q, missing %q", out.String(), want)
				}
			}
		})
	}
}

func Test_commandLine_usage(t *testing.T) {
	runTests(t, []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "students: no subcommand", args: []string{"students"}, wantErr: errHelp},
		{name: "students: unknown subcommand", args: []string{"students", "lol"}, wantErr: errHelp},
		{name: "reports: no subcommand", args: []string{"reports"}, wantErr: errHelp},
	})
}

func Test_commandLine_login(t *testing.T) {
	runTests(t, []cliTest{
		{
			name:    "professor lands on the teacher portal",
			args:    []string{"login", "-username", "lucia@school.com"},
			pwd:     "s3cret",
			wantOut: []string{"Logged in as Lucía Fernández (profesor) -> /teacher"},
		},
		{
			name:       "unknown account",
			args:       []string{"login", "-username", "nobody@school.com"},
			pwd:        "s3cret",
			wantErrStr: "exchanging credentials: incorrect username or password",
		},
		{
			name:    "missing username",
			args:    []string{"login"},
			wantErr: errHelp,
		},
	})
}

func Test_commandLine_whoami(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		cli, out := setup(t)
		if err := cli.run([]string{"shule", "whoami"}); err != nil {
			t.Fatalf("cli.run() unexpected error = %v", err)
		}
		if !strings.Contains(out.String(), "Not logged in.") {
			t.Errorf("cli.run() output = %q", out.String())
		}
	})

	t.Run("logged in", func(t *testing.T) {
		cli, out := setup(t)
		mockPassword(t, "s3cret")
		if err := cli.run([]string{"shule", "login", "-username", "lucia@school.com"}); err != nil {
			t.Fatalf("login: %v", err)
		}

		out.Reset()
		if err := cli.run([]string{"shule", "whoami"}); err != nil {
			t.Fatalf("cli.run() unexpected error = %v", err)
		}
		if !strings.Contains(out.String(), "Lucía Fernández <lucia@school.com> (profesor)") {
			t.Errorf("cli.run() output = %q", out.String())
		}
	})
}

func Test_commandLine_logout(t *testing.T) {
	cli, out := setup(t)
	mockPassword(t, "s3cret")
	if err := cli.run([]string{"shule", "login", "-username", "lucia@school.com"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	out.Reset()
	if err := cli.run([]string{"shule", "logout"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if !strings.Contains(out.String(), "Logged out.") {
		t.Errorf("cli.run() output = %q", out.String())
	}
	if cli.registry.Session.IsAuthenticated() {
		t.Error("session still authenticated after logout")
	}
}

func Test_commandLine_students(t *testing.T) {
	runTests(t, []cliTest{
		{
			name:    "list",
			args:    []string{"students", "list"},
			wantOut: []string{"ENR-001", "Juan Pérez", "ENR-004", "Ana Rodríguez"},
		},
		{
			name:    "search",
			args:    []string{"students", "search", "-q", "ana"},
			wantOut: []string{"Ana Rodríguez"},
		},
		{
			name: "add",
			args: []string{
				"students", "add",
				"-first", "Luis", "-last", "Gómez", "-email", "luis@school.com", "-code", "ENR-005",
			},
			wantOut: []string{"Created student #5 Luis Gómez"},
		},
		{
			name:    "rm",
			args:    []string{"students", "rm", "-id", "4"},
			wantOut: []string{"Deleted student #4"},
		},
	})
}

func Test_commandLine_subjects(t *testing.T) {
	runTests(t, []cliTest{
		{name: "list", args: []string{"subjects", "list"}, wantOut: []string{"MAT-101", "Matemáticas", "QUI-103"}},
		{name: "mine", args: []string{"subjects", "mine"}, wantOut: []string{"FIS-102"}},
		{name: "load", args: []string{"subjects", "load"}, wantOut: []string{"MAT-101", "Lucía Fernández"}},
	})
}

func Test_commandLine_professors(t *testing.T) {
	runTests(t, []cliTest{
		{name: "list", args: []string{"professors", "list"}, wantOut: []string{"Lucía Fernández", "lucia@school.com"}},
		{
			name:    "add",
			args:    []string{"professors", "add", "-name", "Pedro Gómez", "-email", "pedro@school.com"},
			pwd:     "longenough1",
			wantOut: []string{"Created professor #3 Pedro Gómez"},
		},
		{name: "rm", args: []string{"professors", "rm", "-id", "2"}, wantOut: []string{"Deleted account #2"}},
	})
}

func Test_commandLine_grades(t *testing.T) {
	runTests(t, []cliTest{
		{
			name:    "set",
			args:    []string{"grades", "set", "-student", "4", "-subject", "3", "-grade", "9.5"},
			wantOut: []string{"Captured grade #8: 9.5"},
		},
		{
			name:    "update",
			args:    []string{"grades", "update", "-id", "1", "-grade", "6.0"},
			wantOut: []string{"Updated grade #1: 6.0"},
		},
		{name: "rm", args: []string{"grades", "rm", "-id", "1"}, wantOut: []string{"Deleted grade #1"}},
		{name: "set: missing ids", args: []string{"grades", "set"}, wantErr: errHelp},
	})
}

func Test_commandLine_photo(t *testing.T) {
	cli, out := setup(t)

	path := filepath.Join(t.TempDir(), "me.png")
	if err := ioutil.WriteFile(path, []byte("png-bytes"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := cli.run([]string{"shule", "photo", "-f", path}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if !strings.Contains(out.String(), "Updated photo for Lucía Fernández") {
		t.Errorf("cli.run() output = %q", out.String())
	}
}

func Test_commandLine_reports(t *testing.T) {
	runTests(t, []cliTest{
		{
			name:    "summary",
			args:    []string{"reports", "summary"},
			wantOut: []string{"MAT-101", "FIS-102", "QUI-103"},
		},
		{
			name: "export to stdout",
			args: []string{"reports", "export", "-subject", "1"},
			wantOut: []string{
				"enrollment_code,first_name,last_name,email,grade",
				"ENR-001,Juan,Pérez,juan@school.com,8.5",
			},
		},
		{
			name:    "export: missing subject",
			args:    []string{"reports", "export"},
			wantErr: errHelp,
		},
		{
			name:    "student",
			args:    []string{"reports", "student", "-id", "1"},
			wantOut: []string{"Juan Pérez (ENR-001)", "MAT-101", "Average: 8.15"},
		},
		{
			name:    "stats",
			args:    []string{"reports", "stats"},
			wantOut: []string{"Students: 4", "Subjects: 3"},
		},
	})
}
