// Command mirrorctl completes symmetric outlines from the command line.
// It stands in for an editing host: it reads an outline document with
// selection flags, runs the seam-mirroring engine, and writes the
// reconstructed outline back as YAML.
//
//	mirrorctl --direction left glyph.yaml
//	mirrorctl -d top --snap -o full.yaml half.yaml
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/mirror/seam"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	directionKey = "direction"
	snapKey      = "snap"
	centerKey    = "center-band"
	epsKey       = "eps"
	mergeKey     = "merge-tolerance"
	outputKey    = "output"
)

var directionFlag string
var snapFlag bool
var centerBandFlag, epsFlag, mergeToleranceFlag float64
var outputFlag string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mirrorctl:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirrorctl [flags] <outline.yaml>",
		Short: "Mirror one half of a symmetric outline across its seam",
		Long: `Mirrorctl reconstructs a full symmetric outline from one edited half.
The outline document marks the kept half with selection flags; the seam
axis is detected from the selection (with a bounding-box fallback for
selections that do not touch a seam), the stale half is discarded, and
the mirrored copy is stitched in without doubling the seam points.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runMirror(args[0])
		},
	}
	configureFlags(cmd)
	return cmd
}

func configureFlags(cmd *cobra.Command) {
	defaults := seam.DefaultConfig()
	cmd.Flags().StringVarP(&directionFlag, directionKey, "d", "left",
		"edited half: top, right, bottom or left")
	cmd.Flags().BoolVar(&snapFlag, snapKey, false,
		"snap seam points to their mean before validation")
	cmd.Flags().Float64Var(&centerBandFlag, centerKey, defaults.CenterBand,
		"distance from the axis within which anchors count as seam points")
	cmd.Flags().Float64Var(&epsFlag, epsKey, defaults.Eps,
		"seam alignment tolerance")
	cmd.Flags().Float64Var(&mergeToleranceFlag, mergeKey, defaults.MergeTolerance,
		"distance within which boundary anchors are merged")
	cmd.Flags().StringVarP(&outputFlag, outputKey, "o", "",
		"write the result to a file instead of stdout")

	viper.SetEnvPrefix("MIRROR")
	viper.AutomaticEnv()
	for _, key := range []string{directionKey, snapKey, centerKey, epsKey, mergeKey, outputKey} {
		bindFlagToConfig(cmd.Flags().Lookup(key), key)
	}
}

// bindFlagToConfig wires a Cobra flag to a Viper key so env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func runMirror(name string) error {
	dir, err := seam.ParseDirection(viper.GetString(directionKey))
	if err != nil {
		return err
	}
	cfg := seam.Config{
		CenterBand:     viper.GetFloat64(centerKey),
		Eps:            viper.GetFloat64(epsKey),
		MergeTolerance: viper.GetFloat64(mergeKey),
		Snap:           viper.GetBool(snapKey),
	}
	doc, err := loadOutline(name)
	if err != nil {
		return reportError(err)
	}
	paths, err := doc.toPaths()
	if err != nil {
		return reportError(err)
	}
	results, err := seam.Mirror(paths, dir, cfg)
	if err != nil {
		return reportError(err)
	}
	out := os.Stdout
	if output := viper.GetString(outputKey); output != "" {
		f, err := os.Create(output)
		if err != nil {
			return reportError(err)
		}
		defer f.Close()
		out = f
	}
	return reportError(writeOutline(out, fromResults(results)))
}

// reportError prefixes the typed engine failures with a hint for the user;
// anything else passes through unchanged.
func reportError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, seam.ErrNoSelection):
		return fmt.Errorf("%w - mark the half to keep with 'selected: true'", err)
	case errors.Is(err, seam.ErrSeamOnlySelection):
		return fmt.Errorf("%w - select the half to keep, not just the center line", err)
	case errors.Is(err, seam.ErrNoSeamPoints):
		return fmt.Errorf("%w - select the seam points of every outline to mirror", err)
	case errors.Is(err, seam.ErrSeamAlignment):
		return fmt.Errorf("%w - align them manually or pass --snap", err)
	default:
		return err
	}
}
