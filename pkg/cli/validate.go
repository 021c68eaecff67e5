package cli

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"pyramid/pkg/engine/world"
	"pyramid/pkg/game/locale"
	"pyramid/pkg/game/mapfile"
)

func newValidateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <map-file>...",
		Short: "Check map files and report how many treasures the entrance can reach",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(v, cmd, args)
		},
		PreRun: func(cmd *cobra.Command, args []string) {
			MustBindPFlag(v, workersFlag, cmd.Flags().Lookup(workersFlag))
		},
	}

	cmd.Flags().Int(workersFlag, 4, "number of map files checked at the same time")

	return cmd
}

// mapReport is the outcome of checking one map file.
type mapReport struct {
	path      string
	grid      *world.Grid
	reachable int
	err       error
}

func runValidate(v *viper.Viper, cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()

	logger, r, done, err := setup(v, out)
	if err != nil {
		return err
	}
	defer done()

	workers := v.GetInt(workersFlag)
	if workers < 1 {
		workers = 1
	}

	failed := 0
	for _, rep := range checkMaps(cmd.Context(), paths, workers) {
		if rep.err != nil {
			failed++
			logger.Warn("map rejected", zap.String("map", rep.path), zap.Error(rep.err))
			fmt.Fprintln(cmd.ErrOrStderr(), locale.Get("MAP_LOAD_FAILED", rep.err))
			continue
		}

		logger.Info("map validated",
			zap.String("map", rep.path),
			zap.Int("chambers", rep.grid.Len()),
			zap.Int("treasures", rep.grid.TreasureCount()),
			zap.Int("reachable_treasures", rep.reachable),
		)

		r.PrintTitle(out, locale.Get("MAP_TITLE", rep.path))
		fmt.Fprintln(out, locale.Get("VALIDATE_CHAMBERS", rep.grid.Len()))
		fmt.Fprintln(out, locale.Get("VALIDATE_TREASURES", rep.grid.TreasureCount(), rep.reachable))
		fmt.Fprintln(out, locale.Get("VALIDATE_OK"))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d map files are invalid", failed, len(paths))
	}
	return nil
}

// checkMaps loads every map with at most workers files in flight. Reports
// keep the order of paths.
func checkMaps(ctx context.Context, paths []string, workers int) []mapReport {
	reports := make([]mapReport, len(paths))

	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	for i, path := range paths {
		i, path := i, path
		p.Go(func(ctx context.Context) error {
			reports[i] = checkMap(ctx, path)
			return nil
		})
	}
	_ = p.Wait()

	return reports
}

func checkMap(ctx context.Context, path string) mapReport {
	rep := mapReport{path: path}
	if rep.err = ctx.Err(); rep.err != nil {
		return rep
	}

	grid, err := mapfile.Load(path)
	if err != nil {
		rep.err = err
		return rep
	}
	if err := grid.Validate(); err != nil {
		rep.err = fmt.Errorf("%s: %w", path, err)
		return rep
	}

	grid.Reachable(grid.Entrance()).Each(func(c *world.Chamber) {
		if c.Treasure {
			rep.reachable++
		}
	})
	rep.grid = grid
	return rep
}
