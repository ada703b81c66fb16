package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/piwi3910/FutonFrame/internal/export"
	"github.com/piwi3910/FutonFrame/internal/model"
	"github.com/piwi3910/FutonFrame/internal/project"
	"github.com/spf13/cobra"
)

// options are the flags shared by every command.
type options struct {
	designPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "futonframe",
		Short:         "Futon frame structural calculator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, m, err := opts.calculate()
			if err != nil {
				return err
			}
			return model.WriteReport(cmd.OutOrStdout(), m)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.designPath, "design", "d", "", "design file (.json, .yaml, .yml or .xlsx)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(exportCmd(opts))
	rootCmd.AddCommand(snapshotCmd(opts))
	rootCmd.AddCommand(designCmd(opts))
	return rootCmd
}

// exporter writes one artifact for a calculated frame.
type exporter func(w io.Writer, d model.Design, m model.Measurements) error

func exportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a worksheet, cut tags, workbook or drawing to stdout",
	}

	formats := []struct {
		use, short string
		write      exporter
	}{
		{"pdf", "PDF worksheet with profile, measurements and cut list", export.WritePDF},
		{"labels", "PDF sheet of QR-coded cut tags", func(w io.Writer, d model.Design, m model.Measurements) error {
			return export.WriteLabels(w, model.CutList(d, m))
		}},
		{"xlsx", "Excel workbook of design, measurements and cut list", export.WriteWorkbook},
		{"dxf", "DXF side profile drawing", export.WriteDXF},
	}

	for _, f := range formats {
		write := f.write
		cmd.AddCommand(&cobra.Command{
			Use:   f.use,
			Short: f.short,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				d, m, err := opts.calculate()
				if err != nil {
					return err
				}
				if err := write(c.OutOrStdout(), d, m); err != nil {
					return fmt.Errorf("export %s: %w", c.Name(), err)
				}
				slog.Info("export written", "format", c.Name())
				return nil
			},
		})
	}
	return cmd
}

func snapshotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the design, measurements and cut list as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, m, err := opts.calculate()
			if err != nil {
				return err
			}
			snap := project.NewSnapshot(d, m)
			slog.Info("snapshot created", "id", snap.ID)
			return project.WriteSnapshot(cmd.OutOrStdout(), snap)
		},
	}
}

func designCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Print the design constants as a starting point for a design file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.design()
			if err != nil {
				return err
			}
			return project.WriteDesign(cmd.OutOrStdout(), d, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", project.FormatYAML, "output format: json or yaml")
	return cmd
}

// design returns the built-in constants, or the design file when one was given.
func (o *options) design() (model.Design, error) {
	if o.designPath == "" {
		slog.Info("using built-in design constants")
		return model.DefaultDesign(), nil
	}
	d, err := project.LoadDesign(o.designPath)
	if err != nil {
		return model.Design{}, fmt.Errorf("loading design: %w", err)
	}
	slog.Info("design loaded", "path", o.designPath)
	return d, nil
}

func (o *options) calculate() (model.Design, model.Measurements, error) {
	d, err := o.design()
	if err != nil {
		return model.Design{}, model.Measurements{}, err
	}
	m, err := model.Calculate(d)
	if err != nil {
		return model.Design{}, model.Measurements{}, fmt.Errorf("calculating frame: %w", err)
	}
	slog.Info("frame calculated",
		"main_beam_minimum_length", fmt.Sprintf("%.4f", m.MainBeamMinimumLength),
		"rear_support_total_height", fmt.Sprintf("%.4f", m.RearSupportTotalHeight),
	)
	return d, m, nil
}

// setupLogging sends structured logs to w. Only warnings and errors are
// shown unless verbose is set, so stdout carries nothing but the output.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
