package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/pagekit/internal/core/logging"
	"github.com/colonyops/pagekit/internal/core/registration"
	"github.com/colonyops/pagekit/internal/tui/jsoncolor"
	"github.com/colonyops/pagekit/pkg/iojson"
)

// RegistrationInput is the JSON document read by the validate command.
type RegistrationInput struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Password        string    `json:"password"`
	ConfirmPassword string    `json:"confirm_password"`
	Age             textValue `json:"age"`
}

// Values maps the input onto form field values.
func (in RegistrationInput) Values() registration.Values {
	return registration.Values{
		registration.FieldName:            in.Name,
		registration.FieldEmail:           in.Email,
		registration.FieldPassword:        in.Password,
		registration.FieldConfirmPassword: in.ConfirmPassword,
		registration.FieldAge:             string(in.Age),
	}
}

// textValue accepts a JSON string or number and keeps its text, so ages can
// be written either way and still go through the form's own parsing.
type textValue string

func (v *textValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = textValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("must be a string or number: %w", err)
		}
		*v = textValue(n.String())
	}
	return nil
}

type ValidateCmd struct {
	flags *Flags
	input iojson.FileReader[RegistrationInput]
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate a registration without the TUI",
		UsageText: "pagekit validate [-f file]",
		Description: `Reads a registration as JSON from a file or stdin and runs the same checks
as submitting the form. Prints the outcome of every field as JSON and exits
non-zero when any field fails.

Example:
  echo '{"name":"Ada","email":"ada@example.com","password":"secret12","confirm_password":"secret12","age":36}' | pagekit validate`,
		Flags:  []cli.Flag{cmd.input.Flag()},
		Action: cmd.run,
	})
	return app
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	log := logging.Component("validate")
	ctx = logging.WithCommand(ctx, "validate")

	in, err := cmd.input.Read()
	if err != nil {
		return fmt.Errorf("read registration: %w", err)
	}

	form := registration.NewForm()
	for id, value := range in.Values() {
		form.Input(id, value)
	}
	res := form.Submit()

	log.Debug().Ctx(ctx).Bool("valid", res.Valid).Msg("registration validated")

	if err := writeResult(c.Root().Writer, c.Root().ErrWriter, res); err != nil {
		return err
	}

	if !res.Valid {
		return fmt.Errorf("registration is invalid: %w", res.Err())
	}
	return nil
}

// writeResult prints res as JSON, colorized when w is a terminal.
func writeResult(w, ew io.Writer, res registration.Result) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return iojson.WriteWith(w, ew, res)
	}

	data, err := json.Marshal(res)
	if err != nil {
		return iojson.WriteError(ew, "error marshaling result", map[string]any{"json_error": err.Error()})
	}
	_, err = fmt.Fprintln(w, jsoncolor.Colorize(data))
	return err
}
