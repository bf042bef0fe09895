package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pagekit/internal/core/registration"
)

type appRun struct {
	out string
	err error
}

func runValidate(t *testing.T, stdin string, args ...string) appRun {
	t.Helper()

	var out, errOut bytes.Buffer
	app := &cli.Command{Name: "pagekit", Writer: &out, ErrWriter: &errOut}

	cmd := NewValidateCmd(&Flags{DataDir: t.TempDir()})
	cmd.input.Stdin = strings.NewReader(stdin)
	app = cmd.Register(app)

	err := app.Run(context.Background(), append([]string{"pagekit", "validate"}, args...))
	return appRun{out: out.String(), err: err}
}

func decodeResult(t *testing.T, out string) registration.Result {
	t.Helper()
	var res registration.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return res
}

func TestValidateCmd_Valid(t *testing.T) {
	run := runValidate(t, `{"name":"Ada","email":"ada@example.com","password":"secret12","confirm_password":"secret12","age":36}`)
	require.NoError(t, run.err)

	res := decodeResult(t, run.out)
	assert.True(t, res.Valid)
	assert.Len(t, res.Outcomes, len(registration.Fields))
}

func TestValidateCmd_Invalid(t *testing.T) {
	run := runValidate(t, `{"name":"  ","email":"ada@example","password":"short","confirm_password":"other","age":"12"}`)
	require.Error(t, run.err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, run.err, &fieldErrs)
	assert.Len(t, fieldErrs, 5)

	res := decodeResult(t, run.out)
	assert.False(t, res.Valid)

	want := map[registration.FieldID]string{
		registration.FieldName:            registration.MsgNameRequired,
		registration.FieldEmail:           registration.MsgEmailInvalid,
		registration.FieldPassword:        registration.MsgPasswordShort,
		registration.FieldConfirmPassword: registration.MsgPasswordMismatch,
		registration.FieldAge:             registration.MsgAgeRange,
	}
	for id, msg := range want {
		o, ok := res.Outcome(id)
		require.True(t, ok, id)
		assert.Equal(t, msg, o.Message, id)
	}
}

func TestValidateCmd_AgeForms(t *testing.T) {
	tests := []struct {
		name  string
		age   string
		valid bool
	}{
		{"number", `13`, true},
		{"decimal number", `13.5`, true},
		{"string", `"120"`, true},
		{"null is missing", `null`, false},
		{"too old", `121`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"name":"Ada","email":"ada@example.com","password":"secret12","confirm_password":"secret12","age":` + tt.age + `}`
			run := runValidate(t, doc)

			res := decodeResult(t, run.out)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.NoError(t, run.err)
			} else {
				assert.Error(t, run.err)
			}
		})
	}
}

func TestValidateCmd_BadInput(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		run := runValidate(t, `{"nickname":"ada"}`)
		require.Error(t, run.err)
		assert.Contains(t, run.err.Error(), "decode JSON")
		assert.Empty(t, run.out)
	})

	t.Run("age must be scalar", func(t *testing.T) {
		run := runValidate(t, `{"age":true}`)
		require.Error(t, run.err)
		assert.Contains(t, run.err.Error(), "must be a string or number")
	})
}

func TestValidateCmd_FileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Ada","email":"ada@example.com","password":"secret12","confirm_password":"secret12","age":"40"}`), 0o644))

	run := runValidate(t, "", "-f", path)
	require.NoError(t, run.err)
	assert.True(t, decodeResult(t, run.out).Valid)
}

func runConfigValidate(t *testing.T, yaml string, args ...string) appRun {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	var out, errOut bytes.Buffer
	app := &cli.Command{Name: "pagekit", Writer: &out, ErrWriter: &errOut}
	app = NewConfigValidateCmd(&Flags{ConfigPath: path, DataDir: dir}).Register(app)

	err := app.Run(context.Background(), append([]string{"pagekit", "config", "validate"}, args...))
	return appRun{out: out.String(), err: err}
}

func TestConfigValidateCmd(t *testing.T) {
	t.Run("valid text", func(t *testing.T) {
		run := runConfigValidate(t, "theme: dark\n")
		require.NoError(t, run.err)
		assert.Contains(t, run.out, "config is valid")
	})

	t.Run("invalid text", func(t *testing.T) {
		run := runConfigValidate(t, "theme: sepia\nflash_colors: [\"red\"]\n")
		require.Error(t, run.err)
		assert.Contains(t, run.out, "config is invalid")
		assert.Contains(t, run.out, "theme:")
		assert.Contains(t, run.out, "flash_colors[0]")
	})

	t.Run("invalid json", func(t *testing.T) {
		run := runConfigValidate(t, "theme: sepia\n", "--format", "json")
		require.Error(t, run.err)

		var out struct {
			Valid  bool          `json:"valid"`
			Issues []configIssue `json:"issues"`
		}
		require.NoError(t, json.Unmarshal([]byte(run.out), &out))
		assert.False(t, out.Valid)
		require.Len(t, out.Issues, 1)
		assert.Equal(t, "theme", out.Issues[0].Field)
	})

	t.Run("parse error is returned", func(t *testing.T) {
		run := runConfigValidate(t, "theme: [\n")
		require.Error(t, run.err)
		assert.Contains(t, run.err.Error(), "parse config file")
		assert.Empty(t, run.out)
	})
}

func TestFlags_LogFilePath(t *testing.T) {
	f := &Flags{DataDir: "/data"}
	assert.Equal(t, filepath.Join("/data", "pagekit.log"), f.LogFilePath())

	f.LogFile = "/tmp/x.log"
	assert.Equal(t, "/tmp/x.log", f.LogFilePath())
}

func TestFlags_LoadConfigCaches(t *testing.T) {
	f := &Flags{DataDir: t.TempDir(), ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}

	first, err := f.LoadConfig()
	require.NoError(t, err)
	second, err := f.LoadConfig()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
