package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pagecraft/gridkit"
	"github.com/pagecraft/gridkit/grid"
)

var (
	propsFile    string
	widthPx      int
	strategyName string
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Emit the utility class string for a props file",
	Long: `Emits classes for every breakpoint present in the props; the mobile
breakpoint is unprefixed, larger breakpoints use the "{breakpoint}:{class}"
convention. No current breakpoint is involved - the CSS framework's media
queries resolve at paint time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := readProps(propsFile)
		if err != nil {
			return err
		}
		cols := gridkit.CurrentConfig().Grid.Columns
		fmt.Fprintln(cmd.OutOrStdout(), grid.Classes(props, cols))
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a props file into a style fragment at a viewport width",
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := readProps(propsFile)
		if err != nil {
			return err
		}
		cfg := gridkit.CurrentConfig()
		adaptation := cfg.AdaptationConfig()
		if strategyName != "" {
			s, err := grid.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			adaptation.Strategy = s
		}

		current := cfg.Registry().ForWidth(widthPx)
		style := grid.ItemStyle(props, current, adaptation, cfg.Grid.Columns)

		out, err := json.MarshalIndent(struct {
			Breakpoint string     `json:"breakpoint"`
			Style      grid.Style `json:"style"`
		}{current.String(), style}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var breakpointsCmd = &cobra.Command{
	Use:   "breakpoints",
	Short: "Print the breakpoint registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := gridkit.CurrentConfig().Registry()
		if err := reg.Validate(); err != nil {
			return err
		}
		for _, b := range grid.Order() {
			min, max := reg.Range(b)
			if b == grid.Desktop {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d px and up\n", b, min)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d-%d px\n", b, min, max)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a props file against the grid bounds",
	Long: `Checks every span and offset entry against the grid bounds and reports
all findings at once. Overflow (span + offset exceeding the column count)
is a warning, matching the engine's clamp-and-render behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := readProps(propsFile)
		if err != nil {
			return err
		}
		report := grid.ValidateGridProps(props, gridkit.CurrentConfig().Grid.Columns)
		for _, w := range report.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
		}
		for _, e := range report.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", e)
		}
		if !report.Valid {
			return fmt.Errorf("%d validation error(s)", len(report.Errors))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{classesCmd, resolveCmd, validateCmd} {
		c.Flags().StringVarP(&propsFile, "file", "f", "", "props YAML file")
		_ = c.MarkFlagRequired("file")
	}
	resolveCmd.Flags().IntVar(&widthPx, "width", 0, "viewport width in pixels")
	_ = resolveCmd.MarkFlagRequired("width")
	resolveCmd.Flags().StringVar(&strategyName, "strategy", "", "override resolution strategy")
}

func readProps(path string) (grid.GridSpanProps, error) {
	var props grid.GridSpanProps
	data, err := os.ReadFile(path)
	if err != nil {
		return props, fmt.Errorf("read props: %w", err)
	}
	if err := yaml.Unmarshal(data, &props); err != nil {
		return props, fmt.Errorf("parse %s: %w", path, err)
	}
	return props, nil
}
