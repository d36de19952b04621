// Command gaugectl renders the gauges listed in a configuration file to SVG,
// HTML and PNG files.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/gauge"
	"github.com/phanxgames/gauge/internal/config"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by the subcommands once the config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gaugectl",
		Short: "Render dashboard gauges to SVG, HTML and PNG",
		Long: `gaugectl builds the arc, ring, meter and speedometer gauges described
in gaugectl.yaml and writes them to the output directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: ./gaugectl.yaml)")

	root.AddCommand(newRenderCmd(a), newInspectCmd(a), newVersionCmd())
	return root
}

func (a *app) load() error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFromFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	a.cfg = cfg
	gauge.SetLogger(cfg.Logging.NewLogger(os.Stderr))
	return nil
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		only   []string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every configured gauge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.cfg.Output
			if outDir != "" {
				out.Dir = outDir
			}
			specs, err := selectGauges(a.cfg, only)
			if err != nil {
				return err
			}
			n, err := renderAll(cmd.Context(), out, specs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d gauges to %s\n", n, out.Dir)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "Render only the named gauges")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Output directory (overrides output.dir)")
	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>",
		Short: "Print the derived geometry of one gauge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, ok := a.cfg.Gauge(args[0])
			if !ok {
				return fmt.Errorf("no gauge named %q", args[0])
			}
			return inspect(cmd.OutOrStdout(), spec)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gaugectl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gaugectl %s\n", version)
		},
	}
}
