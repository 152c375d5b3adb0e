package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Output is the result of the render command.
type Output struct {
	SQL       string         `json:"sql"`
	Dialect   string         `json:"dialect,omitempty"`
	Binds     []BindOutput   `json:"binds,omitempty"`
	Args      []any          `json:"args,omitempty"`
	NamedArgs map[string]any `json:"named_args,omitempty"`
}

// BindOutput describes one bind variable.
type BindOutput struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Value   any    `json:"value"`
	Literal string `json:"-"`
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Write prints out in the configured format.
func (f *OutputFormatter) Write(out *Output) error {
	if f.Format == "json" {
		return f.writeJSON(out)
	}
	return f.writeText(out)
}

func (f *OutputFormatter) writeJSON(out *Output) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// writeText prints the SQL followed by one comment line per value.
func (f *OutputFormatter) writeText(out *Output) error {
	lines := []string{out.SQL}
	for _, b := range out.Binds {
		lines = append(lines, fmt.Sprintf("-- %s: %s", b.Name, b.Literal))
	}
	for i, a := range out.Args {
		lines = append(lines, fmt.Sprintf("-- %d: %#v", i+1, a))
	}
	names := make([]string, 0, len(out.NamedArgs))
	for name := range out.NamedArgs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("-- @%s: %#v", name, out.NamedArgs[name]))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(f.Writer, line); err != nil {
			return err
		}
	}
	return nil
}
