package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
	"github.com/getfairy/fairy/pkg/producer/company"
)

var (
	companyCount  int
	companyWhere  string
	companyFormat string
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Generate fake companies",
	Long: `Generate fake companies with a name, web domain, contact email and
locale-shaped VAT and registration numbers.

Examples:
  # One company
  fairy company

  # Ten Polish companies as JSON
  fairy company -l pl -n 10 --json

  # Only companies whose name carries a legal suffix
  fairy company -n 5 --where 'name contains " "'`,
	RunE: runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)
	companyCmd.Flags().IntVarP(&companyCount, "count", "n", 1, "Number of companies to generate")
	companyCmd.Flags().StringVar(&companyWhere, "where", "", "Keep only rows matching this expression")
	companyCmd.Flags().StringVar(&companyFormat, "format", "", "Render each record through a Go template")
}

func runCompany(cmd *cobra.Command, args []string) error {
	if companyCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", companyCount)
	}
	if companyFormat != "" && jsonOutput {
		return fmt.Errorf("--format cannot be combined with --json")
	}

	f, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	companies, err := collect(companyCount, newRowFilter(companyWhere), func() (company.Company, error) {
		return f.Company()
	})
	if err != nil {
		return err
	}

	return printCompanies(companies)
}

func printCompanies(companies []company.Company) error {
	if companyFormat != "" {
		return renderRows(companyFormat, companies)
	}
	if jsonOutput {
		return output.Collection(companies)
	}

	w := output.Table()
	fmt.Fprintln(w, "NAME\tDOMAIN\tEMAIL\tVAT")
	for _, c := range companies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Domain, c.Email, c.VATNumber)
	}
	return w.Flush()
}
