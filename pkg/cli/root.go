package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/internal/cliconfig"
	"github.com/getfairy/fairy/pkg/fairy"
	"github.com/getfairy/fairy/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	localeFlag string
	prefixFlag string
	dataDir    string
	seedFlag   uint64
	jsonOutput bool
	verbose    bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fairy",
	Short: "fairy generates realistic fake data",
	Long: `fairy generates realistic, locale-aware fake data: people, companies,
addresses, credit cards, text and network identifiers.

Data for each locale lives in YAML files. Bundled locales ship inside the
binary; point --data-dir at a directory with your own files to extend or
replace them. Pass --seed to make every run reproducible.

Defaults can also be set through the environment: FAIRY_LOCALE,
FAIRY_DATA_DIR, FAIRY_FILE_PREFIX, FAIRY_SEED and FAIRY_VERBOSE.
Flags take precedence over the environment.`,
	// No Run function here means 'fairy' with no args will print help text by default.
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&localeFlag, "locale", "l", cliconfig.Locale(fairy.DefaultLocale), "Locale code for generated data (e.g. en, de, fr, pl)")
	rootCmd.PersistentFlags().StringVar(&prefixFlag, "file-prefix", cliconfig.FilePrefix(fairy.DefaultPrefix), "Data file prefix")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", cliconfig.DataDir(), "Directory with custom data files (overrides bundled data)")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Seed the random source for reproducible output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log data loading details to stderr")
}

// newGenerator builds a fairy instance from the persistent flags.
func newGenerator(cmd *cobra.Command) (*fairy.Fairy, error) {
	opts := []fairy.Option{
		fairy.WithLocale(localeFlag),
		fairy.WithFilePrefix(prefixFlag),
	}
	if dataDir != "" {
		opts = append(opts, fairy.WithDataDir(dataDir))
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, fairy.WithSeed(seedFlag))
	} else if seed, ok := cliconfig.Seed(); ok {
		opts = append(opts, fairy.WithSeed(seed))
	}
	if verbose || cliconfig.Verbose() {
		opts = append(opts, fairy.WithLogger(logging.New(logging.Config{
			Level:  logging.LevelDebug,
			Format: logging.FormatText,
			Output: os.Stderr,
		})))
	}
	return fairy.New(opts...)
}
