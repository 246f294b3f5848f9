package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pondeditor/internal/codegen"
)

func newRenderCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render <program>",
		Short: "Print the JavaScript generated from a block program",
		Long:  `Reads a Blockly XML file, or a saved program by name, and prints the generated JavaScript.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			p, err := openProgram(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), codegen.Indented(cfg.Editor.TabSize)(p))
			return nil
		},
	}
}
