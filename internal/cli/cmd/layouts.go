package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/cli"
	"github.com/bnema/docklayout/internal/cli/model"
	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/domain/entity"
)

var (
	layoutsJSON   bool
	layoutsVerify bool
	showXML       bool
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `List, show, import, export and delete saved layouts.

Run without arguments to open the interactive layout browser.`,
	RunE: runLayoutsBrowse,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Long: `List saved layouts, most recently saved first.

With --verify every layout is decoded and checked; broken layouts are
reported with the reason.`,
	Args: cobra.NoArgs,
	RunE: runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a layout as a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsShow,
}

var layoutsNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Save the starter layout under a new name",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsNew,
}

var layoutsImportCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Import a layout from an XML file",
	Long: `Import a layout from an XML file. The file is decoded and validated
before it is stored, so a broken file never replaces a saved layout.
Use - to read from standard input.`,
	Args: cobra.ExactArgs(2),
	RunE: runLayoutsImport,
}

var layoutsExportCmd = &cobra.Command{
	Use:   "export <name> [file]",
	Short: "Write a layout as XML",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLayoutsExport,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runLayoutsDelete,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd, layoutsShowCmd, layoutsNewCmd,
		layoutsImportCmd, layoutsExportCmd, layoutsDeleteCmd)

	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
	layoutsListCmd.Flags().BoolVar(&layoutsVerify, "verify", false, "decode and validate every layout")
	layoutsShowCmd.Flags().BoolVar(&showXML, "xml", false, "print the stored XML instead of the tree")
}

func runLayoutsBrowse(_ *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	p := tea.NewProgram(model.NewLayoutsModel(a.Ctx(), a.Theme, a.Layouts), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runLayoutsList(cmd *cobra.Command, _ []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	infos, err := a.Layouts.List(a.Ctx())
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}

	var results []usecase.VerifyResult
	if layoutsVerify {
		names := make([]entity.LayoutName, len(infos))
		for i, info := range infos {
			names[i] = info.Name
		}
		if results, err = a.Layouts.Verify(a.Ctx(), names); err != nil {
			return fmt.Errorf("verify layouts: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if layoutsJSON {
		return writeLayoutsJSON(out, infos, results)
	}
	return writeLayoutsTable(out, a.Theme, infos, results)
}

type layoutJSON struct {
	entity.LayoutInfo
	Error string `json:"error,omitempty"`
}

func writeLayoutsJSON(w io.Writer, infos []entity.LayoutInfo, results []usecase.VerifyResult) error {
	rows := make([]layoutJSON, len(infos))
	for i, info := range infos {
		rows[i].LayoutInfo = info
		if i < len(results) && results[i].Err != nil {
			rows[i].Error = results[i].Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeLayoutsTable(w io.Writer, theme *styles.Theme, infos []entity.LayoutInfo, results []usecase.VerifyResult) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No saved layouts found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "NAME\tCONTENT\tFLOATING\tHIDDEN\tSIZE\tSAVED"
	if results != nil {
		header += "\tSTATUS"
	}
	_, _ = fmt.Fprintln(tw, header)

	for i, info := range infos {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s",
			info.Name,
			info.ContentCount,
			info.FloatingCount,
			info.HiddenCount,
			info.SizeBytes,
			styles.RelativeTime(info.SavedAt),
		)
		if results != nil {
			status := theme.SuccessStyle.Render("ok")
			if results[i].Err != nil {
				status = theme.ErrorStyle.Render(results[i].Err.Error())
			}
			_, _ = fmt.Fprintf(tw, "\t%s", status)
		}
		_, _ = fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func runLayoutsShow(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	name := entity.LayoutName(args[0])
	if showXML {
		snap, err := a.Layouts.Get(a.Ctx(), name)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(snap.Data)
		return err
	}
	r, err := a.Layouts.Load(a.Ctx(), name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderLayout(string(name), r))
	return err
}

func runLayoutsNew(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	name := entity.LayoutName(args[0])
	existing, err := a.Layouts.Get(a.Ctx(), name)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("layout %s already exists", name)
	}
	if _, err := a.Layouts.Save(a.Ctx(), usecase.SaveLayoutInput{Name: name, Root: cli.StarterLayout()}); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", name)
	return err
}

func runLayoutsImport(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	data, err := readInput(cmd.InOrStdin(), args[1])
	if err != nil {
		return err
	}
	snap, err := a.Layouts.Import(a.Ctx(), entity.LayoutName(args[0]), data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d items)\n", snap.Name, snap.ContentCount)
	return err
}

func runLayoutsExport(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	snap, err := a.Layouts.Get(a.Ctx(), entity.LayoutName(args[0]))
	if err != nil {
		return err
	}
	if len(args) == 1 || args[1] == "-" {
		_, err = cmd.OutOrStdout().Write(snap.Data)
		return err
	}
	return os.WriteFile(args[1], snap.Data, 0o600)
}

func runLayoutsDelete(cmd *cobra.Command, args []string) error {
	a, err := GetApp()
	if err != nil {
		return err
	}
	if err := a.Layouts.Delete(a.Ctx(), entity.LayoutName(args[0])); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func isNotFound(err error) bool {
	return errors.Is(err, usecase.ErrLayoutNotFound)
}
