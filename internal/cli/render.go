package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zoobzio/bindq"
	"github.com/zoobzio/bindq/internal/logging"
	"github.com/zoobzio/bindq/internal/querydoc"
	"github.com/zoobzio/bindq/mariadb"
	"github.com/zoobzio/bindq/postgres"
	"github.com/zoobzio/bindq/sqlite"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Dialect string
}

// ValidDialects lists the --dialect values. "none" keeps {name}
// placeholders; "pgx" emits @name placeholders with named arguments.
var ValidDialects = []string{"none", "postgres", "pgx", "sqlite", "mariadb"}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <file.yaml>",
		Short: "Render a query document to SQL and bind variables",
		Long: `Render builds a query from a YAML document and prints the SQL with
its bind variables.

Without --dialect the SQL keeps {name} placeholders and binds are shown
as literals. With --dialect the SQL is rewritten for that driver and the
arguments are listed in the order the driver expects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Dialect, "dialect", "d", "none", "placeholder dialect (none|postgres|pgx|sqlite|mariadb)")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	if !slices.Contains(ValidDialects, opts.Dialect) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid dialect %q: must be one of %v", opts.Dialect, ValidDialects))
	}

	logger := logging.NewWithComponent(logging.Config{
		Level:  opts.LogLevel,
		Pretty: opts.Pretty,
		Output: cmd.ErrOrStderr(),
	}, "render")

	doc, err := querydoc.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load "+path, err)
	}
	logger.Debug().
		Str("file", path).
		Int("filters", len(doc.Filters)).
		Msg("query document loaded")

	q, err := querydoc.Build(doc, bindq.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitFailure, "build query", err)
	}
	if opts.Debug {
		q = q.Debug(true)
	}

	stmt, err := q.Render()
	if err != nil {
		return WrapExitError(ExitFailure, "render query", err)
	}

	out := compile(stmt, opts.Dialect)
	logger.Debug().
		Str("dialect", opts.Dialect).
		Int("binds", len(stmt.Binds)).
		Msg("query rendered")

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Write(out)
}

// compile rewrites stmt for the named dialect.
func compile(stmt bindq.Statement, dialect string) *Output {
	out := &Output{SQL: stmt.SQL}
	if dialect == "none" {
		out.Binds = make([]BindOutput, 0, len(stmt.Binds))
		for _, b := range stmt.Binds {
			out.Binds = append(out.Binds, BindOutput{
				Name:    b.Name(),
				Type:    bindType(b),
				Value:   b.Value(),
				Literal: b.Literal(),
			})
		}
		return out
	}

	out.Dialect = dialect
	switch dialect {
	case "pgx":
		sql, args := postgres.Named(stmt)
		out.SQL = sql
		out.NamedArgs = map[string]any(args)
	case "postgres":
		out.SQL, out.Args = postgres.Positional(stmt)
	case "sqlite":
		out.SQL, out.Args = stmt.Compile(sqlite.New())
	case "mariadb":
		out.SQL, out.Args = stmt.Compile(mariadb.New())
	}
	if out.Args == nil && out.NamedArgs == nil {
		out.Args = []any{}
	}
	return out
}

func bindType(b bindq.BindVariable) string {
	switch b.(type) {
	case bindq.Numeric:
		return querydoc.TypeNumeric
	case bindq.UniqueID:
		return querydoc.TypeUUID
	default:
		return querydoc.TypeText
	}
}
