package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/breedview/breeds/internal/config"
	"github.com/breedview/breeds/internal/logging"
)

func newLogsCmd(opts *rootOptions) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			entries, err := logging.Tail(cfg.LogFile, lines)
			if err != nil {
				return err
			}

			levelStyles := map[string]lipgloss.Style{
				"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
				"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
				"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
				"error": lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			}
			faint := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if e.Raw != "" {
					fmt.Fprintln(out, e.Raw)
					continue
				}
				level := levelStyles[e.Level].Render(fmt.Sprintf("%-5s", e.Level))
				line := fmt.Sprintf("%s %s %s", e.Time.Local().Format("15:04:05"), level, e.Message)
				if e.Logger != "" {
					line += " " + faint.Render("["+e.Logger+"]")
				}
				if fields := e.FieldString(); fields != "" {
					line += " " + faint.Render(fields)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries")
	return cmd
}
