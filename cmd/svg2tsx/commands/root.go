// Package commands implements the CLI commands for svg2tsx.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/svg2tsx/internal/config"
	"github.com/jmylchreest/svg2tsx/internal/convert"
	"github.com/jmylchreest/svg2tsx/internal/logger"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitFailure
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if ExitCode(err) == ExitUsage && cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
	}
	return ExitCode(err)
}

// newRootCmd builds the command tree. Each tree owns its viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "svg2tsx <svg_file>",
		Short: "Convert dashboard asset SVG to TSX",
		Long: `Convert dashboard asset SVG to TSX.

svg2tsx reads an SVG exported from Inkscape, appends ref={name} after every
quoted dashboard ref name, strips sodipodi, inkscape, xmlns:* and xml:*
metadata and the XML declaration, and writes the result to ` + convert.OutputFile + `
in the current directory. Any existing ` + convert.OutputFile + ` is overwritten.

Tip: pipe the output file to xclip or Set-Clipboard to copy it to the clipboard.`,
		Example: `  svg2tsx assets/ev-dashboard.svg
  svg2tsx assets/ev-dashboard.svg && xclip -selection clipboard < ` + convert.OutputFile + `
  svg2tsx refs --format yaml`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		RunE:          runConvert,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, v)
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.svg2tsx.yaml or ./.svg2tsx.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.String("log-format", config.LogFormatText, "log format: text, json")

	_ = v.BindPFlag("debug", flags.Lookup("debug"))
	_ = v.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = v.BindPFlag("log_format", flags.Lookup("log-format"))

	root.AddCommand(newRefsCmd(), newVersionCmd())

	return root
}

// setup resolves the settings and initializes logging for every command.
func setup(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Setup(v, cfgFile); err != nil {
		return err
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	opts := logger.FromSettings(settings)
	opts.Output = cmd.ErrOrStderr()
	logger.Init(opts)

	logger.Debug("settings loaded", "config", v.ConfigFileUsed(), "log_format", settings.LogFormat)
	return nil
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
