package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/caphefalumi/Canvas-CLI-sub001/internal/config"
	"github.com/caphefalumi/Canvas-CLI-sub001/internal/log"
	"github.com/caphefalumi/Canvas-CLI-sub001/pkg/browser"
	"github.com/caphefalumi/Canvas-CLI-sub001/pkg/table"
	"github.com/caphefalumi/Canvas-CLI-sub001/pkg/textutil"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		wrap    bool
		numbers bool
		pick    bool
		watch   bool
		exts    []string
		filter  string
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:     "gridls [dir]",
		Short:   "Render a directory as a resize-aware table, or pick files interactively",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("config: %v, using defaults", err)
				cfg = config.New()
			}
			log.SetDebug(debug || cfg.Debug)
			table.SetTheme(cfg.Theme.Title, cfg.Theme.Border)
			browser.SetTheme(cfg.Theme.Title, cfg.Theme.Selected, cfg.Theme.Cursor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if pick {
				return runPick(dir, exts, filter, watch || cfg.Browser.Watch)
			}
			if !cmd.Flags().Changed("wrap") {
				wrap = cfg.Table.Wrap
			}
			if !cmd.Flags().Changed("numbers") {
				numbers = cfg.Table.RowNumbers
			}
			return runTable(dir, wrap, numbers)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gridls/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&wrap, "wrap", false, "wrap long cells over multiple lines")
	rootCmd.Flags().BoolVar(&numbers, "numbers", false, "show row numbers")
	rootCmd.Flags().BoolVar(&pick, "pick", false, "pick files interactively instead of printing a table")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "auto-reload the picker when the directory changes")
	rootCmd.Flags().StringSliceVar(&exts, "ext", nil, "extension allow-list for the picker (e.g. --ext .pdf,.docx)")
	rootCmd.Flags().StringVar(&filter, "filter", "", "glob filter for picker file names")

	return rootCmd
}

var dirNameStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7B61FF"))

func colorByType(text string, row table.Row) string {
	if row["type"] == "dir" {
		return dirNameStyle.Render(text)
	}
	return text
}

func runTable(dir string, wrap, numbers bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		row := table.Row{"name": e.Name(), "type": "file"}
		if e.IsDir() {
			row["type"] = "dir"
		}
		if info, err := e.Info(); err == nil {
			if !e.IsDir() {
				row["size"] = humanize.Bytes(uint64(info.Size()))
			}
			row["modified"] = info.ModTime().Format("2006-01-02 15:04")
		}
		rows = append(rows, row)
	}

	columns := []table.ColumnSpec{
		{Key: "name", Header: "Name", Flex: 1, MinWidth: 15, Color: colorByType},
		{Key: "type", Header: "Type", MinWidth: 4},
		{Key: "size", Header: "Size", Width: 10, Align: textutil.AlignRight},
		{Key: "modified", Header: "Modified", Width: 16},
	}

	tbl := table.New(columns, rows, table.Options{
		Title:           dir,
		ShowRowNumbers:  numbers,
		RowNumberHeader: "#",
		WrapMode:        wrap,
	})

	handle := tbl.RenderWithResize()
	defer handle.Stop()
	if handle.Watching() {
		// The table keeps adapting to resizes while we wait on the prompt.
		fmt.Print("Press enter to exit... ")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return nil
}

func runPick(dir string, exts []string, filter string, watch bool) error {
	var opts []browser.Option
	if len(exts) == 0 {
		exts = cfg.Browser.Extensions
	}
	if len(exts) > 0 {
		opts = append(opts, browser.WithExtensions(exts...))
	}
	if filter == "" {
		filter = cfg.Browser.Filter
	}
	if filter != "" {
		opts = append(opts, browser.WithGlobFilter(filter))
	}
	if watch {
		opts = append(opts, browser.WithWatch())
	}

	paths, err := browser.Pick(dir, opts...)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
