package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getfairy/fairy/pkg/cli/internal/output"
)

var (
	textCount     int
	textWords     int
	textSentences int
	textLatin     bool
	textLorem     bool
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Generate filler text",
	Long: `Generate filler text from the locale's word corpus. Without flags one
paragraph is printed; --words and --sentences ask for an exact amount
instead. --latin switches to the classic latin corpus regardless of
locale.

Examples:
  # One paragraph
  fairy text

  # Ten words
  fairy text --words 10

  # Three latin sentences
  fairy text --sentences 3 --latin

  # The canonical opening passage
  fairy text --lorem`,
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.Flags().IntVarP(&textCount, "count", "n", 1, "Number of paragraphs to generate")
	textCmd.Flags().IntVar(&textWords, "words", 0, "Generate exactly this many words")
	textCmd.Flags().IntVar(&textSentences, "sentences", 0, "Generate a paragraph of exactly this many sentences")
	textCmd.Flags().BoolVar(&textLatin, "latin", false, "Use the latin corpus instead of the locale's words")
	textCmd.Flags().BoolVar(&textLorem, "lorem", false, "Print the classic lorem ipsum passage")
}

func runText(cmd *cobra.Command, args []string) error {
	if textWords > 0 && textSentences > 0 {
		return fmt.Errorf("--words and --sentences cannot be combined")
	}

	f, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	texts := f.Text()

	if textLorem {
		return printText([]string{texts.LoremIpsum()})
	}

	if textWords > 0 {
		words, err := texts.Words(textWords)
		if textLatin {
			words, err = texts.LatinWords(textWords)
		}
		if err != nil {
			return err
		}
		return printText([]string{strings.Join(words, " ")})
	}

	if textCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", textCount)
	}

	paragraphs := make([]string, 0, textCount)
	for i := 0; i < textCount; i++ {
		var paragraph string
		switch {
		case textSentences > 0 && textLatin:
			paragraph, err = texts.LatinParagraph(textSentences)
		case textSentences > 0:
			paragraph, err = texts.Paragraph(textSentences)
		case textLatin:
			paragraph, err = texts.LatinText()
		default:
			paragraph, err = texts.Text()
		}
		if err != nil {
			return err
		}
		paragraphs = append(paragraphs, paragraph)
	}

	return printText(paragraphs)
}

func printText(paragraphs []string) error {
	if jsonOutput {
		return output.Collection(paragraphs)
	}
	fmt.Println(strings.Join(paragraphs, "\n\n"))
	return nil
}
