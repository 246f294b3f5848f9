package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pondeditor/internal/blocks"
	"pondeditor/internal/config"
	"pondeditor/internal/programs"
)

// rootFlags override the config file.
type rootFlags struct {
	config   string
	program  string
	logLevel string
}

// newRootCmd builds the command tree with a fresh flag set.
func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "pondeditor",
		Short: "Edit duck programs as blocks or JavaScript",
		Long: `pondeditor is a terminal editor for Pond duck programs.

The Blocks tab edits the program as blocks; the JavaScript tab shows the
generated code. Editing the code by hand switches the program to text only
until the code is deleted.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), f)
		},
	}

	cmd.PersistentFlags().StringVar(&f.config, "config", "", "config file (default ~/.config/pondeditor/config.yaml)")
	cmd.PersistentFlags().StringVar(&f.program, "program", "", "saved program name or .xml file to open")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newRenderCmd(f), newListCmd(f))
	return cmd
}

// Execute builds the root command and runs it.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func (f *rootFlags) loadConfig() (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return cfg, err
	}
	if f.program != "" {
		cfg.Editor.Program = f.program
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	return cfg, nil
}

// openProgram resolves ref as an .xml path or a saved program name.
// An empty ref yields nil, the built-in default program.
func openProgram(cfg config.Config, ref string) (*blocks.Program, error) {
	if ref == "" {
		return nil, nil
	}
	if strings.HasSuffix(ref, ".xml") || strings.ContainsRune(ref, filepath.Separator) {
		return programs.LoadFile(ref)
	}
	store, err := programs.NewStore(cfg.Editor.ProgramsDir)
	if err != nil {
		return nil, fmt.Errorf("programs dir: %w", err)
	}
	return store.Load(ref)
}
