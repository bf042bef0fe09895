package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	sectionKey contextKey = "section"
)

// WithCommand adds the running subcommand name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithSection adds the active TUI section to the context.
func WithSection(ctx context.Context, section string) context.Context {
	return context.WithValue(ctx, sectionKey, section)
}

// GetCommand retrieves the subcommand name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// GetSection retrieves the TUI section from the context.
// Returns empty string if not present.
func GetSection(ctx context.Context) string {
	if s, ok := ctx.Value(sectionKey).(string); ok {
		return s
	}
	return ""
}
