package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/cosmic-rhythm/internal/bootstrap"
	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
	"github.com/yanqian/cosmic-rhythm/pkg/logger"
)

// Services are the engines the commands call into.
type Services struct {
	Biorhythm biorhythm.Service
	Maya      maya.Service
	Dress     advisory.Service
}

// Execute runs cosmicctl against engines built from the loaded config.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	engines, err := bootstrap.NewEngines(cfg, logger.NewTo(os.Stderr))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer engines.Close()

	cmd := NewRootCmd(Services{
		Biorhythm: engines.Biorhythm,
		Maya:      engines.Maya,
		Dress:     engines.Dress,
	})
	if err := cmd.Execute(); err != nil {
		engines.Close()
		os.Exit(1)
	}
}

// NewRootCmd assembles the command tree. Output goes to the command's out
// writer so tests can capture it.
func NewRootCmd(svcs Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cosmicctl",
		Short:        "Biorhythm, Maya calendar and dress advice from the terminal",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		biorhythmCmd(svcs.Biorhythm),
		forecastCmd(svcs.Biorhythm),
		chartCmd(svcs.Biorhythm),
		mayaCmd(svcs.Maya),
		birthCmd(svcs.Maya),
		dressCmd(svcs.Dress),
	)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
