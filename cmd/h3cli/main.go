// Command h3cli is a thin command line front end over the grid library: it
// exercises the geoToCell/cellToGeo/cellToBoundary pipeline so it can be
// exercised without writing a throwaway Go program.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	h3grid "github.com/dggrid/h3grid"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "h3cli",
		Short: "Inspect cells of the discrete global hexagonal grid",
	}

	root.AddCommand(newIndexCmd(logger))
	root.AddCommand(newBoundaryCmd(logger))

	return root
}

func newIndexCmd(logger *zap.Logger) *cobra.Command {
	var res int

	cmd := &cobra.Command{
		Use:   "index [lat] [lon]",
		Short: "Encode a latitude/longitude pair (in degrees) into a cell index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lon, err := parseLatLon(args[0], args[1])
			if err != nil {
				return err
			}

			var g h3grid.GeoCoord
			g.SetGeoDegs(lat, lon)

			cell, err := h3grid.GeoToCell(g, res)
			if err != nil {
				logger.Error("geoToCell failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Int("res", res), zap.Error(err))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cell.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&res, "res", 9, "grid resolution (0-15)")
	return cmd
}

func newBoundaryCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boundary [index]",
		Short: "Print the boundary vertices (degrees) of a cell index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := h3grid.StringToH3(args[0])
			if h == h3grid.H3_NULL {
				return fmt.Errorf("not a valid cell index: %q", args[0])
			}

			gb, err := h3grid.CellToBoundary(h)
			if err != nil {
				logger.Error("cellToBoundary failed", zap.Stringer("cell", h), zap.Error(err))
				return err
			}

			for i := 0; i < gb.NumVerts(); i++ {
				v := gb.Vert(i)
				fmt.Fprintf(cmd.OutOrStdout(), "%f,%f\n", v.LatDegs(), v.LonDegs())
			}
			return nil
		},
	}

	return cmd
}

func parseLatLon(latStr, lonStr string) (float64, float64, error) {
	var lat, lon float64
	if _, err := fmt.Sscanf(latStr, "%g", &lat); err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	if _, err := fmt.Sscanf(lonStr, "%g", &lon); err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}
	return lat, lon, nil
}
