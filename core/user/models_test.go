package user

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected validator.ValidationErrors, got %T: %v", err, err)
	}
	fields := make(map[string]string, len(vErrs))
	for _, vErr := range vErrs {
		fields[vErr.Field()] = vErr.Tag()
	}
	return fields
}

func TestNewUser_Validate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		nu := NewUser{FullName: " Lucía Fernández ", Email: "Lucia@School.com", Password: "s3cret-pwd", Role: "Profesor"}
		assert.NoError(t, nu.Validate())

		// cleaned in place
		assert.Equal(t, "Lucía Fernández", nu.FullName)
		assert.Equal(t, "lucia@school.com", nu.Email)
		assert.Equal(t, RoleProfessor, nu.Role)
	})

	t.Run("missing everything", func(t *testing.T) {
		nu := NewUser{}
		fields := fieldErrors(t, nu.Validate())
		assert.Equal(t, "required", fields["full_name"])
		assert.Equal(t, "required", fields["email"])
		assert.Equal(t, "required", fields["password"])
	})

	t.Run("bad values", func(t *testing.T) {
		nu := NewUser{FullName: "X", Email: "not-an-email", Password: "short", Role: "director"}
		fields := fieldErrors(t, nu.Validate())
		assert.Equal(t, "email", fields["email"])
		assert.Equal(t, "min", fields["password"])
		assert.Equal(t, "role", fields["role"])
	})
}

func TestUpdateUser_Validate(t *testing.T) {
	t.Run("zero value is valid", func(t *testing.T) {
		uu := UpdateUser{}
		assert.NoError(t, uu.Validate())
	})

	t.Run("bad role", func(t *testing.T) {
		uu := UpdateUser{Role: "director"}
		fields := fieldErrors(t, uu.Validate())
		assert.Equal(t, "role", fields["role"])
	})
}

func TestQueryFilter_Clean(t *testing.T) {
	qf := QueryFilter{Role: " Profesor ", Search: "  ana  "}
	qf.Clean()
	assert.Equal(t, RoleProfessor, qf.Role)
	assert.Equal(t, "ana", qf.Search)
	assert.False(t, qf.IsEmpty())
}
