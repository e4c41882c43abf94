package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
)

var (
	execCreate bool
	execQuiet  bool
)

var execCmd = &cobra.Command{
	Use:   "exec <layout> <content> [command...]",
	Short: "Run content commands against a saved layout",
	Long: `Open a saved layout, run one or more commands on the content whose
title or content id matches <content>, and save the result.

Without a command the commands currently available for the content are
listed. Commands run in order; the layout is saved once at the end.

Commands:
  ` + strings.Join(commandNames(), "\n  ") + `

Examples:
  docklayout exec default Output float
  docklayout exec default Terminal toggle-auto-hide
  docklayout exec --create scratch Welcome new-vertical-tab-group`,
	Args: cobra.MinimumNArgs(2),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().BoolVar(&execCreate, "create", false, "start from the starter layout when the layout does not exist")
	execCmd.Flags().BoolVarP(&execQuiet, "quiet", "q", false, "do not print the resulting layout")
}

func commandNames() []string {
	commands := usecase.ContentCommands()
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = string(c)
	}
	return names
}

func runExec(cmd *cobra.Command, args []string) (err error) {
	a, err := GetApp()
	if err != nil {
		return err
	}
	name := entity.LayoutName(args[0])

	commands := make([]usecase.ContentCommand, 0, len(args)-2)
	for _, arg := range args[2:] {
		c, ok := usecase.ParseContentCommand(arg)
		if !ok {
			return fmt.Errorf("unknown command %q", arg)
		}
		commands = append(commands, c)
	}

	ctx := a.Ctx()
	ws, err := a.OpenWorkspace(ctx, name, execCreate)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ws.Close(ctx); err == nil {
			err = cerr
		}
	}()

	out := cmd.OutOrStdout()
	if len(commands) == 0 {
		content, err := ws.FindContent(args[1])
		if err != nil {
			return err
		}
		for _, c := range a.Content.Available(content) {
			_, _ = fmt.Fprintln(out, c)
		}
		return nil
	}

	for _, c := range commands {
		if err := ws.Execute(ctx, args[1], c); err != nil {
			return fmt.Errorf("%s %s: %w", c, args[1], err)
		}
	}
	if !execQuiet {
		_, _ = fmt.Fprintln(out, a.Theme.RenderLayout(string(name), ws.CurrentLayout()))
	}
	return nil
}
