package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/svg2tsx/internal/output"
	"github.com/jmylchreest/svg2tsx/pkg/cleaner/tsx"
)

// refEntry is one row of the refs listing.
type refEntry struct {
	Index      int    `json:"index" yaml:"index"`
	Name       string `json:"name" yaml:"name"`
	Annotation string `json:"annotation" yaml:"annotation"`
}

func (e refEntry) String() string {
	return e.Name
}

func newRefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refs",
		Short: "List the dashboard ref names that get a ref={...} binding",
		Long: `List the dashboard ref names recognized in SVG assets, in the order the
bindings are applied. A quoted occurrence such as id="socSpan" is rewritten
to id="socSpan" ref={socSpan}.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: runRefs,
	}

	cmd.Flags().StringP("format", "f", string(output.FormatText), "output format: "+strings.Join(output.Formats(), ", "))
	cmd.Flags().Bool("compact", false, "compact JSON output")

	return cmd
}

func runRefs(cmd *cobra.Command, args []string) error {
	formatStr, _ := cmd.Flags().GetString("format")
	compact, _ := cmd.Flags().GetBool("compact")

	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return &usageError{err: err}
	}

	w, err := output.NewWriter(cmd.OutOrStdout(), format, output.WithPretty(!compact))
	if err != nil {
		return err
	}

	for i, ref := range tsx.DefaultRefs {
		entry := refEntry{Index: i, Name: ref, Annotation: tsx.Annotation(ref)}
		if err := w.Write(entry); err != nil {
			return err
		}
	}
	return w.Flush()
}
