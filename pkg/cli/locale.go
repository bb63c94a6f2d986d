package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/getfairy/fairy/locales"
	"github.com/getfairy/fairy/pkg/cli/internal/output"
	"github.com/getfairy/fairy/pkg/cli/templates"
	"github.com/getfairy/fairy/pkg/fairy"
)

var (
	localeNewOutput string
	localeNewForce  bool
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Inspect and scaffold locale data files",
	Long: `Inspect and scaffold locale data files.

Examples:
  # Locales bundled with the binary
  fairy locale list

  # Locales in a custom data directory
  fairy locale list --data-dir ./data

  # Scaffold a Spanish data file in the current directory
  fairy locale new es

  # Interactive scaffolding
  fairy locale new`,
}

var localeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available locales",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			codes []string
			err   error
		)
		if dataDir != "" {
			codes, err = fairy.LocalesIn(os.DirFS(dataDir), prefixFlag)
		} else {
			codes, err = fairy.Locales()
		}
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.JSON(codes)
		}
		if len(codes) == 0 {
			fmt.Println("No locale data files found")
			return nil
		}
		output.Lines(codes...)
		return nil
	},
}

var localeNewCmd = &cobra.Command{
	Use:   "new [code]",
	Short: "Scaffold a data file for a new locale",
	Long: `Scaffold a data file for a new locale. The file is named
<prefix>_<code>.yml and contains every section the producers read, with
sample entries to replace. When the output directory has no base
<prefix>.yml yet, the bundled defaults are copied next to it so the
directory works with --data-dir right away.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLocaleNew,
}

func init() {
	rootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeNewCmd)
	localeNewCmd.Flags().StringVarP(&localeNewOutput, "output", "o", ".", "Directory to write the data file into")
	localeNewCmd.Flags().BoolVar(&localeNewForce, "force", false, "Overwrite an existing data file")
}

func runLocaleNew(cmd *cobra.Command, args []string) error {
	code := ""
	if len(args) > 0 {
		code = args[0]
	}

	if code == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Which language code is the data file for?").
					Placeholder("es").
					Value(&code).
					Validate(validLocaleCode),
				huh.NewInput().
					Title("Where should it be written?").
					Value(&localeNewOutput),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validLocaleCode(code); err != nil {
		return err
	}

	content, err := templates.Locale(templates.LocaleData{Code: code, Prefix: prefixFlag})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(localeNewOutput, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(localeNewOutput, fmt.Sprintf("%s_%s.yml", prefixFlag, code))
	if _, err := os.Stat(path); err == nil && !localeNewForce {
		return fmt.Errorf("%s already exists, pass --force to overwrite", path)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Printf("Created %s\n", path)

	// A data directory also needs the base defaults file.
	basePath := filepath.Join(localeNewOutput, prefixFlag+".yml")
	if _, err := os.Stat(basePath); errors.Is(err, os.ErrNotExist) {
		base, err := locales.FS().ReadFile(locales.DefaultPrefix + ".yml")
		if err != nil {
			return err
		}
		if err := os.WriteFile(basePath, base, 0644); err != nil {
			return fmt.Errorf("failed to write base file: %w", err)
		}
		fmt.Printf("Created %s (base defaults)\n", basePath)
	}

	fmt.Println("\nEdit the sample entries, then try it out:")
	fmt.Printf("  fairy person --data-dir %s -l %s\n", localeNewOutput, code)
	return nil
}

// validLocaleCode accepts anything language.Parse can make sense of,
// plus well-formed private codes for custom data sets.
func validLocaleCode(code string) error {
	if code == "" {
		return errors.New("code is required")
	}
	if _, err := language.Parse(code); err != nil {
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return fmt.Errorf("malformed locale code %q", code)
		}
	}
	return nil
}
