package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"pyramid/pkg/game/devtools"
	"pyramid/pkg/game/locale"
	"pyramid/pkg/game/pathfinder"
)

func newSolveCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <map-file>",
		Short: "Search a map and print the path that collects its treasures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(v, cmd, args[0])
		},
		PreRun: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			MustBindPFlag(v, dumpFlag, flags.Lookup(dumpFlag))
			MustBindPFlag(v, showMapFlag, flags.Lookup(showMapFlag))
		},
	}

	flags := cmd.Flags()
	flags.String(dumpFlag, "", "write a debug dump of the search to this file")
	flags.Bool(showMapFlag, true, "draw the map with the path highlighted")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runSolve(v *viper.Viper, cmd *cobra.Command, mapPath string) error {
	out := cmd.OutOrStdout()

	logger, r, done, err := setup(v, out)
	if err != nil {
		return err
	}
	defer done()

	finder, err := pathfinder.New(mapPath, pathfinder.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), locale.Get("MAP_LOAD_FAILED", err))
		return err
	}

	path, err := finder.Path()
	if err != nil {
		return err
	}

	r.PrintTitle(out, locale.Get("MAP_TITLE", mapPath))
	if v.GetBool(showMapFlag) {
		r.RenderMap(out, finder.Map(), path)
		r.RenderLegend(out)
		fmt.Fprintln(out)
	}
	r.RenderPath(out, path)
	r.RenderSummary(out, finder.Found(), finder.Treasures(), path.Size())

	if dump := v.GetString(dumpFlag); dump != "" {
		written, err := devtools.DumpToFile(dump, finder.Map(), devtools.Result{
			Path:      path,
			Found:     finder.Found(),
			Treasures: finder.Treasures(),
		})
		if err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
		logger.Debug("dump written", zap.String("path", written))
		fmt.Fprintln(out, locale.Get("DUMP_WRITTEN", written))
	}

	return nil
}
