package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pagekit/internal/core/config"
	"github.com/colonyops/pagekit/internal/core/styles"
	"github.com/colonyops/pagekit/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "pagekit config validate [options]",
				Description: "Loads the configuration file and reports every invalid key: theme, timings, flash colors, FAQ entries, and tabs.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// configIssue is one invalid configuration key.
type configIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	_, err := config.Load(cmd.flags.ConfigPath, cmd.flags.DataDir)

	var issues []configIssue
	if err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			issues = append(issues, configIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		out := struct {
			Path   string        `json:"path"`
			Valid  bool          `json:"valid"`
			Issues []configIssue `json:"issues,omitempty"`
		}{
			Path:   cmd.flags.ConfigPath,
			Valid:  len(issues) == 0,
			Issues: issues,
		}
		if err := iojson.WriteWith(w, c.Root().ErrWriter, out); err != nil {
			return err
		}
	} else {
		writeConfigIssues(w, cmd.flags.ConfigPath, issues)
	}

	if len(issues) > 0 {
		return fmt.Errorf("config has %d invalid key(s)", len(issues))
	}
	return nil
}

func writeConfigIssues(w io.Writer, path string, issues []configIssue) {
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, styles.FormSuccessStyle.Render(styles.IconCheck+" config is valid: ")+path)
		return
	}

	_, _ = fmt.Fprintln(w, styles.FormErrorStyle.Render(styles.IconCross+" config is invalid: ")+path)
	for _, issue := range issues {
		_, _ = fmt.Fprintf(w, "  %s %s: %s\n", styles.IconDot, issue.Field, issue.Message)
	}
}
