package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
)

var (
	networkCount     int
	networkSlugWords int
)

var networkCmd = &cobra.Command{
	Use:       "network [kind]",
	Short:     "Generate network identifiers",
	ValidArgs: []string{"ipv4", "private-ipv4", "ipv6", "mac", "uuid", "domain", "url", "slug"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Long: `Generate network identifiers. The kind defaults to ipv4.

Kinds: ipv4, private-ipv4, ipv6, mac, uuid, domain, url, slug

Examples:
  # An IPv4 address
  fairy network

  # Ten UUIDs
  fairy network uuid -n 10

  # A URL with a locale-flavored domain
  fairy network url -l de`,
	RunE: runNetwork,
}

func init() {
	rootCmd.AddCommand(networkCmd)
	networkCmd.Flags().IntVarP(&networkCount, "count", "n", 1, "Number of identifiers to generate")
	networkCmd.Flags().IntVar(&networkSlugWords, "words", 3, "Words per slug (slug kind only)")
}

func runNetwork(cmd *cobra.Command, args []string) error {
	if networkCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", networkCount)
	}
	kind := "ipv4"
	if len(args) > 0 {
		kind = args[0]
	}

	f, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	networks := f.Network()

	values := make([]string, 0, networkCount)
	for i := 0; i < networkCount; i++ {
		var value string
		var err error
		switch kind {
		case "ipv4":
			value = networks.IPv4()
		case "private-ipv4":
			value = networks.PrivateIPv4()
		case "ipv6":
			value = networks.IPv6()
		case "mac":
			value = networks.MACAddress()
		case "uuid":
			value = networks.UUID()
		case "domain":
			value, err = networks.Domain()
		case "url":
			value, err = networks.URL()
		case "slug":
			value, err = networks.Slug(networkSlugWords)
		}
		if err != nil {
			return err
		}
		values = append(values, value)
	}

	if jsonOutput {
		return output.Collection(values)
	}
	output.Lines(values...)
	return nil
}
