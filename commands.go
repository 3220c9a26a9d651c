package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"calcdesigns/catalog"
	"calcdesigns/config"
	"calcdesigns/web"
	"calcdesigns/web/pages"
	"calcdesigns/web/pages/designs"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "calcdesigns",
		Short: "Design review showcase for the financial calculator landing page",
		// Running without a subcommand serves the showcase
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		newServeCmd(&configPath),
		newRenderCmd(&configPath),
		newListCmd(),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the showcase over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	logger.SetLogLevel(cfg.LogLevel)
	return cfg, nil
}

func runServe(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	srv := web.NewServer(cfg)
	return web.Run(srv, cfg.Address)
}

func newRenderCmd(configPath *string) *cobra.Command {
	var (
		design int
		set    string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one showcase page as a static html file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if set == "" {
				set = cfg.DefaultSet
			}
			// An explicit --design is taken as given, so 0 is rejected rather than defaulted
			if !cmd.Flags().Changed("design") {
				design = cfg.DefaultDesign
			}

			// Render fully before touching the output so a rejected selection
			// leaves a previous export intact
			var page bytes.Buffer
			if err := renderPage(&page, designs.Selection{Set: set, Design: design}, cfg.DefaultSet); err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(page.Bytes())
				return err
			}
			if err := writeFile(out, page.Bytes()); err != nil {
				return err
			}
			logger.Info("Rendered design", "set", set, "design", design, "path", out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&design, "design", "d", 0, "design number 1-5 (default from config)")
	cmd.Flags().StringVarP(&set, "set", "s", "", "design set: "+strings.Join(designs.Sets(), ", "))
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

// writeFile creates or truncates path. The Close error is returned too.
func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return serr.Wrap(err, "failed to create output file", "path", path)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return serr.Wrap(err, "failed to write output file", "path", path)
	}
	if err := f.Close(); err != nil {
		return serr.Wrap(err, "failed to close output file", "path", path)
	}
	return nil
}

// renderPage writes the showcase for sel. Unlike the web route, a bad
// selection here is an error: the caller typed it on purpose.
func renderPage(w io.Writer, sel designs.Selection, defaultSet string) error {
	if _, err := designs.Lookup(sel.Set, sel.Design); err != nil {
		return err
	}
	if _, err := io.WriteString(w, pages.NewShowcase(sel, defaultSet).Render()); err != nil {
		return serr.Wrap(err, "failed to write page")
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the calculator catalog and the available designs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), catalogTable(catalog.Calculators()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), designList())
			return err
		},
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

func catalogTable(calcs []catalog.Calculator) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("ID", "TITLE", "DESCRIPTION", "GRADIENT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, c := range calcs {
		t.Row(c.ID, c.Title, c.Description, c.Gradient.From+" → "+c.Gradient.To)
	}
	return t.Render()
}

func designList() string {
	var sb strings.Builder
	for _, set := range designs.Sets() {
		sb.WriteString(titleStyle.Render(set))
		sb.WriteString("\n")
		for _, v := range designs.Variants(set) {
			fmt.Fprintf(&sb, "  %d. %s %s\n", v.Number, v.Name, dimStyle.Render("· "+v.Tagline))
		}
	}
	return sb.String()
}
