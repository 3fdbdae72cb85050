package commands

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/svg2tsx/internal/convert"
	"github.com/jmylchreest/svg2tsx/internal/logger"
	"github.com/jmylchreest/svg2tsx/pkg/cleaner/tsx"
)

// runConvert converts args[0] into convert.OutputFile.
func runConvert(cmd *cobra.Command, args []string) error {
	svgFile := args[0]
	log := logger.With("input", svgFile, "output", convert.OutputFile)

	conv, err := tsx.New(nil)
	if err != nil {
		return err
	}
	log.Debug("converting", "stages", conv.Stages())

	result, err := convert.File(conv, svgFile, convert.OutputFile)
	if err != nil {
		return err
	}

	stats := result.Stats
	for _, ref := range tsx.DefaultRefs {
		if n := stats.RefsBound[ref]; n > 0 {
			log.Debug("ref bound", "ref", ref, "count", n)
		}
	}
	for _, rule := range tsx.RuleNames() {
		log.Debug("strip rule", "rule", rule, "removed", stats.RuleMatches[rule])
	}

	log.Info("converted",
		"in", humanize.Bytes(uint64(stats.InputBytes)),
		"out", humanize.Bytes(uint64(stats.OutputBytes)),
		"refs_bound", stats.TotalRefsBound(),
		"removed", stats.TotalRemoved(),
		"took", stats.TotalDuration,
	)
	return nil
}
