package apps

import (
	"github.com/mzalendo/shule/core"
	"github.com/mzalendo/shule/core/grade"
	"github.com/mzalendo/shule/core/report"
	"github.com/mzalendo/shule/core/session"
	"github.com/mzalendo/shule/core/student"
	"github.com/mzalendo/shule/core/subject"
	"github.com/mzalendo/shule/core/user"
	"github.com/mzalendo/shule/restapi"
	"github.com/mzalendo/shule/storage/mockapi"
	"github.com/mzalendo/shule/storage/tokenfile"
	"github.com/mzalendo/shule/storage/tokenmem"
)

// Registry bundles the session store and the resource services an app consumes.
type Registry struct {
	Session  *session.Store
	Students *student.Service
	Subjects *subject.Service
	Grades   *grade.Service
	Users    *user.Service
	Reports  *report.Service
}

// NewRegistry wires the services against the remote API, or against the canned
// mock backend when api.usemocks is set. Mock mode is the only fallback path;
// a failing real API is never silently substituted.
func NewRegistry(conf *core.Config, logger core.Logger) (*Registry, error) {
	if conf.API.UseMocks {
		logger.Info("using mock API data")
		return newMockRegistry(logger), nil
	}

	tokens := tokenfile.New(conf)
	client, err := restapi.NewClient(conf, tokens, logger)
	if err != nil {
		return nil, err
	}

	subjects := subject.NewService(restapi.NewSubjectRepository(client))
	grades := grade.NewService(restapi.NewGradeRepository(client))
	return &Registry{
		Session:  session.NewStore(client, tokens, logger),
		Students: student.NewService(restapi.NewStudentRepository(client)),
		Subjects: subjects,
		Grades:   grades,
		Users:    user.NewService(restapi.NewUserRepository(client)),
		Reports:  report.NewService(restapi.NewReportRepository(client), subjects, grades),
	}, nil
}

func newMockRegistry(logger core.Logger) *Registry {
	db := mockapi.Open()
	subjects := subject.NewService(mockapi.NewSubjectRepository(db))
	grades := grade.NewService(mockapi.NewGradeRepository(db))
	return &Registry{
		Session:  session.NewStore(mockapi.NewAuthAPI(db), tokenmem.New(), logger),
		Students: student.NewService(mockapi.NewStudentRepository(db)),
		Subjects: subjects,
		Grades:   grades,
		Users:    user.NewService(mockapi.NewUserRepository(db)),
		Reports:  report.NewService(mockapi.NewReportRepository(db), subjects, grades),
	}
}
