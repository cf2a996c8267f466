package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/flanksource/png2svg"
	"github.com/flanksource/png2svg/converter"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "png2svg",
		Short: "Convert PNG images to SVG format",
		Long: `png2svg converts raster PNG images to SVG by orchestrating external
converters (autotrace, potrace + ImageMagick) and cloud services (Aspose,
ConvertAPI). When the requested converter is not installed the image is
embedded as-is into a minimal SVG wrapper instead.`,
		Example: `  png2svg convert input.png output.svg
  png2svg convert input.png output.svg --method potrace
  png2svg convert input.png output.svg --options "--filter-iterations 4 --dpi 300"
  png2svg batch input_dir/ output_dir/ --recursive
  png2svg methods`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			png2svg.Flags.UseFlags()

			path := configFile
			explicit := cmd.Flags().Changed("config")
			if path == "" {
				path = png2svg.DefaultConfigPath()
			}
			if path == "" {
				return nil
			}
			if _, err := os.Stat(path); err != nil {
				if explicit {
					return fmt.Errorf("config file not found: %s", path)
				}
				return nil
			}

			cfg, err := png2svg.LoadConfig(path)
			if err != nil {
				return err
			}
			cfg.ApplyTo(&png2svg.Flags.ConvertFlags, cmd.Flags().Changed)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file with default conversion options (default ~/.png2svg.yaml)")
	png2svg.BindGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newMethodsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.png> <output.svg>",
		Short: "Convert a single PNG file to SVG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := converter.ParseMethod(png2svg.Flags.Method)
			if err != nil {
				return err
			}

			return png2svg.ConvertFile(cmd.Context(), converter.NewManager(), png2svg.ConvertRequest{
				Input:     args[0],
				Output:    args[1],
				Method:    method,
				Options:   png2svg.Flags.Options,
				Overwrite: png2svg.Flags.Overwrite,
			})
		},
	}

	png2svg.BindConvertFlags(cmd.Flags(), &png2svg.Flags.ConvertFlags)

	return cmd
}

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <input_dir> <output_dir>",
		Short: "Convert every PNG file in a directory to SVG",
		Long: `Convert every PNG file in a directory. A failed file does not stop the
batch; the command fails only when no file converts. With --recursive the
output directory mirrors the input's subdirectory structure.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := converter.ParseMethod(png2svg.Flags.Method)
			if err != nil {
				return err
			}

			_, err = png2svg.ConvertDir(cmd.Context(), converter.NewManager(), png2svg.BatchRequest{
				InputDir:  args[0],
				OutputDir: args[1],
				Method:    method,
				Options:   png2svg.Flags.Options,
				Overwrite: png2svg.Flags.Overwrite,
				Recursive: png2svg.Flags.Recursive,
			})
			return err
		},
	}

	png2svg.BindConvertFlags(cmd.Flags(), &png2svg.Flags.ConvertFlags)
	cmd.Flags().BoolVarP(&png2svg.Flags.Recursive, "recursive", "r", false, "Recursively process subdirectories")

	return cmd
}

func newMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List conversion methods and their availability",
		Run: func(cmd *cobra.Command, args []string) {
			renderer := lipgloss.NewRenderer(os.Stdout)
			available := renderer.NewStyle().Foreground(lipgloss.Color("10"))
			missing := renderer.NewStyle().Foreground(lipgloss.Color("9"))

			for _, c := range converter.NewManager().Converters() {
				status := missing.Render("unavailable")
				if c.IsAvailable() {
					status = available.Render("available")
				}
				fmt.Printf("%-12s %s\n", c.Name(), status)
			}
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("png2svg %s (commit: %s, built: %s, go: %s)\n",
				version, commit, date, runtime.Version())
		},
	}
}
