package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papeleta/papel/internal/api"
	"github.com/papeleta/papel/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var apiURL string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/papel/config.yml)")
	flag.StringVar(&apiURL, "api-url", "", "override the PDF service base URL")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("papel - PDF service client\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	theme, err := tui.LoadTheme(cfg.Skin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load skin %q: %v (using default)\n", cfg.Skin, err)
	}

	client := api.New(cfg.APIURL, cfg.RequestTimeout)
	specs := tui.DefaultFormSpecs(client, cfg.DownloadDir)
	app := tui.NewApp(specs, tui.NewStyles(theme))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
