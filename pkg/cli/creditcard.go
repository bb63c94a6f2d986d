package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
	"github.com/getfairy/fairy/pkg/producer/payment"
)

var (
	creditcardCount   int
	creditcardVendor  string
	creditcardMasked  bool
	creditcardVendors bool
	creditcardFormat  string
)

var creditcardCmd = &cobra.Command{
	Use:     "creditcard",
	Aliases: []string{"cc"},
	Short:   "Generate fake credit cards",
	Long: `Generate fake credit cards. Numbers carry a real vendor prefix and a
valid Luhn check digit, so they pass format validation but belong to
nobody.

Examples:
  # One card from a weighted random vendor
  fairy creditcard

  # Three Visa cards as JSON
  fairy creditcard -n 3 --vendor visa --json

  # Masked numbers for fixtures that end up in screenshots
  fairy creditcard --masked

  # Vendors available in the selected locale
  fairy creditcard --list-vendors`,
	RunE: runCreditcard,
}

func init() {
	rootCmd.AddCommand(creditcardCmd)
	creditcardCmd.Flags().IntVarP(&creditcardCount, "count", "n", 1, "Number of cards to generate")
	creditcardCmd.Flags().StringVar(&creditcardVendor, "vendor", "", "Pin the card vendor (e.g. visa, mastercard)")
	creditcardCmd.Flags().BoolVar(&creditcardMasked, "masked", false, "Print numbers with all but the last four digits masked")
	creditcardCmd.Flags().BoolVar(&creditcardVendors, "list-vendors", false, "List available vendors and exit")
	creditcardCmd.Flags().StringVar(&creditcardFormat, "format", "", "Render each record through a Go template")
}

func runCreditcard(cmd *cobra.Command, args []string) error {
	f, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	if creditcardVendors {
		vendors, err := f.Payment().Vendors()
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(vendors)
		}
		output.Lines(vendors...)
		return nil
	}

	if creditcardCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", creditcardCount)
	}
	if creditcardFormat != "" && jsonOutput {
		return fmt.Errorf("--format cannot be combined with --json")
	}

	var opts []payment.Option
	if creditcardVendor != "" {
		opts = append(opts, payment.WithVendor(creditcardVendor))
	}

	cards := make([]payment.CreditCard, 0, creditcardCount)
	for i := 0; i < creditcardCount; i++ {
		card, err := f.CreditCard(opts...)
		if err != nil {
			return err
		}
		if creditcardMasked {
			card.Number = card.Masked()
		}
		cards = append(cards, card)
	}

	return printCards(cards)
}

func printCards(cards []payment.CreditCard) error {
	if creditcardFormat != "" {
		return renderRows(creditcardFormat, cards)
	}
	if jsonOutput {
		return output.Collection(cards)
	}

	w := output.Table()
	fmt.Fprintln(w, "VENDOR\tNUMBER\tEXPIRES\tCVV")
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Vendor, c.Number, c.ExpiryDate, c.CVV)
	}
	return w.Flush()
}
