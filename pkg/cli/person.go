package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
	"github.com/getfairy/fairy/pkg/producer/person"
)

var (
	personCount  int
	personSex    string
	personMinAge int
	personMaxAge int
	personAge    int
	personWhere  string
	personFormat string
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Generate fake people",
	Long: `Generate fake people with names, contact details, addresses, identity
documents and an employer, all consistent with the selected locale.

Examples:
  # One person
  fairy person

  # Five German women between 30 and 40, as JSON
  fairy person -l de -n 5 --sex female --min-age 30 --max-age 40 --json

  # Reproducible output
  fairy person --seed 42

  # Filter rows with an expression over the JSON fields
  fairy person -n 3 --where 'age > 30 && address.city != ""'

  # Shape output with a Go template
  fairy person -n 3 --format '{{.FirstName}};{{.Email}}'`,
	RunE: runPerson,
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.Flags().IntVarP(&personCount, "count", "n", 1, "Number of people to generate")
	personCmd.Flags().StringVar(&personSex, "sex", "", "Pin sex (male or female)")
	personCmd.Flags().IntVar(&personMinAge, "min-age", 0, "Minimum age (use with --max-age)")
	personCmd.Flags().IntVar(&personMaxAge, "max-age", 0, "Maximum age (use with --min-age)")
	personCmd.Flags().IntVar(&personAge, "age", 0, "Exact age")
	personCmd.Flags().StringVar(&personWhere, "where", "", "Keep only rows matching this expression")
	personCmd.Flags().StringVar(&personFormat, "format", "", "Render each record through a Go template")
}

func runPerson(cmd *cobra.Command, args []string) error {
	if personCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", personCount)
	}
	if personFormat != "" && jsonOutput {
		return fmt.Errorf("--format cannot be combined with --json")
	}

	opts, err := personOptions(cmd)
	if err != nil {
		return err
	}

	f, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	people, err := collect(personCount, newRowFilter(personWhere), func() (person.Person, error) {
		return f.Person(opts...)
	})
	if err != nil {
		return err
	}

	return printPeople(people)
}

// personOptions translates the person flags into producer options.
func personOptions(cmd *cobra.Command) ([]person.Option, error) {
	var opts []person.Option

	if personSex != "" {
		opts = append(opts, person.WithSex(person.Sex(personSex)))
	}

	minSet := cmd.Flags().Changed("min-age")
	maxSet := cmd.Flags().Changed("max-age")
	ageSet := cmd.Flags().Changed("age")
	switch {
	case ageSet && (minSet || maxSet):
		return nil, fmt.Errorf("--age cannot be combined with --min-age or --max-age")
	case ageSet:
		opts = append(opts, person.WithAge(personAge))
	case minSet != maxSet:
		return nil, fmt.Errorf("--min-age and --max-age must be given together")
	case minSet:
		opts = append(opts, person.WithAgeBetween(personMinAge, personMaxAge))
	}

	return opts, nil
}

func printPeople(people []person.Person) error {
	if personFormat != "" {
		return renderRows(personFormat, people)
	}
	if jsonOutput {
		return output.Collection(people)
	}

	w := output.Table()
	fmt.Fprintln(w, "NAME\tSEX\tAGE\tEMAIL\tPHONE\tCITY")
	for _, p := range people {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			p.FullName(), p.Sex, p.Age, p.Email, p.TelephoneNumber, p.Address.City)
	}
	return w.Flush()
}
