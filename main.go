// sheetpo — converts a localization spreadsheet into gettext catalogs and
// merges translated catalogs back into the spreadsheet.
package main

import (
	"fmt"
	"os"

	"github.com/minios-linux/sheetpo/catalog"
	"github.com/minios-linux/sheetpo/config"
	"github.com/minios-linux/sheetpo/rewrite"
	"github.com/minios-linux/sheetpo/verify"
	"github.com/minios-linux/sheetpo/workbook"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	var keep bool

	root := &cobra.Command{
		Use:   "sheetpo",
		Short: "Convert a localization spreadsheet to gettext catalogs and back",
		Long: `sheetpo — converts a localization spreadsheet into gettext catalogs.

Every sheet is split into pages of about 150 rows. Each page becomes a
template (output/pot/<Sheet>_NN.pot) and a seed translation
(output/en-US/<Sheet>_NN.po). Columns: A key, B source, C translation,
D description. The "Msg" sheet stores declarations like name = "text";
only the quoted literal is translated.

Running sheetpo without a command is the same as "sheetpo generate".

Commands:
  generate    Write .pot/.po catalogs from the workbook
  export      Merge translated .po files back into a new workbook
  check       Verify generated .po files with an independent gettext reader`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootDir, keep)
		},
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")
	root.Flags().BoolVar(&keep, "keep-translations", false, "Keep translations already present in generated .po files")

	root.AddCommand(
		newGenerateCmd(),
		newExportCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sheetpo version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// generate (workbook -> catalogs)
// ---------------------------------------------------------------------------

func newGenerateCmd() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write .pot/.po catalogs from the workbook",
		Long: `Read every sheet of the workbook and write one template and one seed
translation per page. Existing files are overwritten unless
--keep-translations is given, in which case translations already in the
.po files win over the spreadsheet and removed rows are kept as obsolete.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootDir, keep)
		},
	}

	cmd.Flags().BoolVar(&keep, "keep-translations", false, "Keep translations already present in generated .po files")
	return cmd
}

func runGenerate(root string, keep bool) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	wb, err := workbook.Open(cfg.WorkbookPath())
	if err != nil {
		return err
	}
	defer wb.Close()

	logInfo("Reading %s", wb.Path())

	report, err := catalog.Generate(wb, catalog.Options{
		OutputDir:        cfg.OutputPath(),
		POTDir:           cfg.POTDir,
		Locale:           cfg.Locale,
		PageSize:         cfg.PageSize,
		MsgSheet:         cfg.MsgSheet,
		KeepTranslations: keep,
	})
	if report != nil {
		for _, p := range report.Pages {
			logInfo("%s page %s: %d messages, %d translated", p.Sheet, p.Label, p.Messages, p.Translated)
		}
	}
	if err != nil {
		return err
	}

	if len(report.Pages) == 0 {
		logWarning("Workbook has no sheets")
		return nil
	}
	logSuccess("Wrote %d catalog pages to %s", len(report.Pages), cfg.OutputPath())
	return nil
}

// ---------------------------------------------------------------------------
// export (catalogs -> workbook)
// ---------------------------------------------------------------------------

func newExportCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Merge translated .po files back into a new workbook",
		Long: `For each sheet, read the .po files named <sheet>_*.po from the
translations directory and write their msgstr values into column C of the
rows whose column-A key matches the msgctxt. The result is saved as a new
workbook in the output directory; the source workbook is not modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootDir, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every updated cell")
	return cmd
}

func runExport(root string, verbose bool) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	wb, err := workbook.Open(cfg.WorkbookPath())
	if err != nil {
		return err
	}
	defer wb.Close()

	logInfo("Merging translations from %s into %s", cfg.TranslationsPath(), wb.Path())

	changes, err := rewrite.Export(wb, rewrite.Options{
		TranslationsDir: cfg.TranslationsPath(),
		ExportPath:      cfg.ExportPath(),
		MsgSheet:        cfg.MsgSheet,
	})
	if verbose {
		for _, c := range changes {
			logInfo("%s!%s [%s] %s", c.Sheet, c.Cell, c.Key, c.Value)
		}
	}
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		logWarning("No translations matched any row")
	}
	logSuccess("Updated %d cells, saved %s", len(changes), cfg.ExportPath())
	return nil
}

// ---------------------------------------------------------------------------
// check (verify generated .po files)
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify generated .po files with an independent gettext reader",
		Long: `Load every .po file in the output locale directory with gotext and
confirm each translated message resolves by msgctxt and msgid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootDir)
		},
	}
}

func runCheck(root string) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	n, mismatches, err := verify.Dir(cfg.LocalePath())
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		logWarning("%s", m)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d messages do not resolve in %s", len(mismatches), cfg.LocalePath())
	}

	logSuccess("Checked %d files in %s", n, cfg.LocalePath())
	return nil
}
