// Package cli implements the fooditems command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/fooditems/internal/menu"
	"github.com/mesh-intelligence/fooditems/internal/paths"
	"github.com/mesh-intelligence/fooditems/internal/sqlite"
	"github.com/mesh-intelligence/fooditems/pkg/food"
	"github.com/mesh-intelligence/fooditems/pkg/types"
)

// Exit codes.
const (
	ExitSuccess   = 0
	ExitUserError = 1
	ExitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// app carries state shared by the subcommands of one root command.
type app struct {
	flags rootFlags
	cfg   *viper.Viper
}

// NewRootCmd creates the top-level "fooditems" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "fooditems",
		Short: "Price burgers built from stacked toppings",
		Long: "fooditems prices a burger wrapped in any stack of toppings.\n" +
			"Toppings are listed innermost first: \"fooditems cost patty cheese\"\n" +
			"prices Cheese(Patty(Burger)).",
		Version:       food.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		// Runnable so that an unknown subcommand reaches RunE and becomes a
		// user error instead of cobra's plain "unknown command" error.
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			msg := fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())
			if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
				msg += fmt.Sprintf(" (did you mean %q?)", suggestions[0])
			}
			return newUserError("%s", msg)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsConfig(cmd) {
				return nil
			}
			return a.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &userError{err: err}
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newDemoCmd())
	root.AddCommand(a.newCostCmd())
	root.AddCommand(a.newOrderCmd())
	root.AddCommand(a.newOrdersCmd())
	root.AddCommand(a.newShowCmd())

	return root
}

// Execute runs the command line in args and returns the process exit code.
// Errors are printed to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitCode(err)
}

// noConfigCommands never read config.yaml, so a broken config cannot stop
// them from printing help or version information.
var noConfigCommands = map[string]bool{
	"version":                       true,
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// skipsConfig reports whether cmd, or any of its parents, is a command that
// runs without configuration. The root itself only prints help or rejects an
// unknown subcommand.
func skipsConfig(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return true
	}
	for c := cmd; c.HasParent(); c = c.Parent() {
		if noConfigCommands[c.Name()] {
			return true
		}
	}
	return false
}

// userError marks an error caused by the command line rather than the system.
type userError struct {
	err error
}

func (e *userError) Error() string { return e.err.Error() }
func (e *userError) Unwrap() error { return e.err }

func newUserError(format string, args ...any) error {
	return &userError{err: fmt.Errorf(format, args...)}
}

// userArgs marks argument validation failures as user errors.
func userArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &userError{err: err}
		}
		return nil
	}
}

// exitCode maps an error to ExitUserError or ExitSysError.
func exitCode(err error) int {
	var ue *userError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, menu.ErrUnknownTopping),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidFilter):
		return ExitUserError
	default:
		return ExitSysError
	}
}

// jsonOutput reports whether results should be printed as JSON, either from
// --json or from "output: json" in config.yaml.
func (a *app) jsonOutput() bool {
	if a.flags.jsonMode {
		return true
	}
	return a.cfg != nil && a.cfg.GetString(cfgKeyOutput) == outputJSON
}

// attachJournal resolves the data directory and attaches the SQLite journal.
// The caller must Detach it.
func (a *app) attachJournal() (*sqlite.Backend, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: a.cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach journal: %w", err)
	}
	return backend, nil
}

func (a *app) resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(a.flags.configDir)
}

func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfg.GetString(cfgKeyDataDir))
}
