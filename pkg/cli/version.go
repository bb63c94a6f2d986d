package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
	"github.com/getfairy/fairy/pkg/fairy"
)

// VersionOutput represents JSON output format
type VersionOutput struct {
	Version string   `json:"version"`
	Commit  string   `json:"commit"`
	Date    string   `json:"date"`
	Go      string   `json:"go"`
	OS      string   `json:"os"`
	Arch    string   `json:"arch"`
	Locales []string `json:"locales"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show fairy version and bundled locales",
	RunE: func(cmd *cobra.Command, args []string) error {
		locales, _ := fairy.Locales()
		out := VersionOutput{
			Version: Version,
			Commit:  Commit,
			Date:    BuildDate,
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Locales: locales,
		}

		// Builds installed with `go install` carry no ldflags, so fall
		// back to module build info.
		if info, ok := debug.ReadBuildInfo(); ok {
			if out.Version == "dev" {
				out.Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if out.Commit == "none" {
						out.Commit = setting.Value
					}
				case "vcs.time":
					if out.Date == "unknown" {
						out.Date = setting.Value
					}
				case "vcs.modified":
					if setting.Value == "true" {
						out.Commit += "-dirty"
					}
				}
			}
		}

		if jsonOutput {
			return output.JSON(out)
		}

		v := out.Version
		if len(v) > 0 && v[0] != 'v' && v != "dev" && v != "(devel)" {
			v = "v" + v
		}
		fmt.Printf("fairy %s (%s, %s)\n", v, out.Commit, out.Date)
		fmt.Printf("%s %s/%s\n", out.Go, out.OS, out.Arch)
		fmt.Printf("locales: %s\n", strings.Join(out.Locales, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
