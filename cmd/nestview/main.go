package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nicobailon/nestview/internal/catalog"
	"github.com/nicobailon/nestview/internal/config"
	"github.com/nicobailon/nestview/internal/nested"
	"github.com/nicobailon/nestview/internal/recent"
	"github.com/nicobailon/nestview/internal/tui"
	"github.com/nicobailon/nestview/pkg/version"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	versionFlag bool

	renderWidth    int
	renderHeight   int
	renderScrollTo string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "nestview",
	Short:        "Browse sectioned rows of cards in the terminal",
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/nestview/config.yaml)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version")

	renderCmd.Flags().IntVar(&renderWidth, "width", 100, "Frame width in columns")
	renderCmd.Flags().IntVar(&renderHeight, "height", 30, "Frame height in lines")
	renderCmd.Flags().StringVar(&renderScrollTo, "scroll-to", "", "Scroll to SECTION,ITEM before rendering")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Println(version.Version)
		return nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return tui.New(cfg).Run()
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a single frame of the grid and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		var at *nested.Coordinate
		if renderScrollTo != "" {
			c, err := parseCoordinate(renderScrollTo)
			if err != nil {
				return err
			}
			at = &c
		}
		frame, err := tui.Snapshot(cfg, renderWidth, renderHeight, at)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), frame)
		return nil
	},
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the configured sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		for i, sec := range catalog.Build(cfg) {
			mark := " "
			if sec.Paging {
				mark = "◆"
			}
			fmt.Fprintf(out, " %s %2d  %-20s %-7s %d items\n", mark, i, sec.Title, sec.Style, len(sec.Items))
		}
		fmt.Fprintln(out)
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently selected titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recent.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		entries := store.Latest(10)
		if len(entries) == 0 {
			fmt.Fprintf(out, "Nothing selected yet (%s).\n", store.Path())
			return nil
		}
		fmt.Fprintln(out)
		for _, e := range entries {
			fmt.Fprintf(out, " - %-24s %-16s %s\n", fmt.Sprintf("%s (%d)", e.Name, e.Year), e.Section, e.LastAccess.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(out)
		return nil
	},
}

// parseCoordinate reads "section,item".
func parseCoordinate(s string) (nested.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nested.Coordinate{}, fmt.Errorf("scroll-to %q: want SECTION,ITEM", s)
	}
	section, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nested.Coordinate{}, fmt.Errorf("scroll-to section: %w", err)
	}
	item, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nested.Coordinate{}, fmt.Errorf("scroll-to item: %w", err)
	}
	return nested.Coordinate{Section: section, Item: item}, nil
}
