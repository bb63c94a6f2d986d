// Package text generates words, sentences and paragraphs from the
// locale's word corpus, plus classic latin filler.
package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/getfairy/fairy/internal/data"
	"github.com/getfairy/fairy/pkg/producer"
)

// Sentence length bounds used when the caller does not pick a count.
const (
	minSentenceWords  = 4
	maxSentenceWords  = 10
	minParagraphSents = 3
	maxParagraphSents = 6
)

// loremIpsum is the canonical opening passage.
const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

// Producer generates text. Sentences are capitalized with the casing
// rules of the producer's locale.
type Producer struct {
	base  *producer.Base
	store *data.Store
	tag   language.Tag
}

// New returns a text producer. The locale code only affects casing;
// an empty or unparseable code falls back to und.
func New(base *producer.Base, store *data.Store, locale string) *Producer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Producer{base: base, store: store, tag: tag}
}

// LoremIpsum returns the canonical lorem ipsum passage.
func (p *Producer) LoremIpsum() string {
	return loremIpsum
}

// Word returns one random word from the locale corpus.
func (p *Producer) Word() (string, error) {
	return p.corpusWord("text.words")
}

// Words returns count random words from the locale corpus.
func (p *Producer) Words(count int) ([]string, error) {
	return p.corpusWords("text.words", count)
}

// LatinWord returns one random latin word.
func (p *Producer) LatinWord() (string, error) {
	return p.corpusWord("text.latinWords")
}

// LatinWords returns count random latin words.
func (p *Producer) LatinWords(count int) ([]string, error) {
	return p.corpusWords("text.latinWords", count)
}

// Sentence returns a capitalized sentence of exactly wordCount corpus
// words, occasionally opened by a filler like "however".
func (p *Producer) Sentence(wordCount int) (string, error) {
	return p.sentence("text.words", wordCount, true)
}

// RandomSentence returns a sentence of random length.
func (p *Producer) RandomSentence() (string, error) {
	n, err := p.base.IntBetween(minSentenceWords, maxSentenceWords)
	if err != nil {
		return "", err
	}
	return p.Sentence(n)
}

// LatinSentence returns a capitalized sentence of wordCount latin words.
func (p *Producer) LatinSentence(wordCount int) (string, error) {
	return p.sentence("text.latinWords", wordCount, false)
}

// Paragraph returns sentenceCount random-length sentences joined by
// spaces.
func (p *Producer) Paragraph(sentenceCount int) (string, error) {
	return p.paragraph(sentenceCount, p.RandomSentence)
}

// LatinParagraph returns sentenceCount random-length latin sentences
// joined by spaces.
func (p *Producer) LatinParagraph(sentenceCount int) (string, error) {
	return p.paragraph(sentenceCount, func() (string, error) {
		n, err := p.base.IntBetween(minSentenceWords, maxSentenceWords)
		if err != nil {
			return "", err
		}
		return p.LatinSentence(n)
	})
}

func (p *Producer) paragraph(sentenceCount int, next func() (string, error)) (string, error) {
	if sentenceCount <= 0 {
		return "", &producer.ValidationError{Field: "sentenceCount", Message: fmt.Sprintf("%d must be positive", sentenceCount)}
	}
	sentences := make([]string, 0, sentenceCount)
	for i := 0; i < sentenceCount; i++ {
		s, err := next()
		if err != nil {
			return "", err
		}
		sentences = append(sentences, s)
	}
	return strings.Join(sentences, " "), nil
}

// Text returns a paragraph of random length.
func (p *Producer) Text() (string, error) {
	n, err := p.base.IntBetween(minParagraphSents, maxParagraphSents)
	if err != nil {
		return "", err
	}
	return p.Paragraph(n)
}

// LatinText returns a latin paragraph of random length.
func (p *Producer) LatinText() (string, error) {
	n, err := p.base.IntBetween(minParagraphSents, maxParagraphSents)
	if err != nil {
		return "", err
	}
	return p.LatinParagraph(n)
}

func (p *Producer) corpusWord(key string) (string, error) {
	words, err := p.store.StringList(key)
	if err != nil {
		return "", err
	}
	return p.base.Element(words)
}

func (p *Producer) corpusWords(key string, count int) ([]string, error) {
	if count <= 0 {
		return nil, &producer.ValidationError{Field: "count", Message: fmt.Sprintf("%d must be positive", count)}
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		w, err := p.corpusWord(key)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func (p *Producer) sentence(key string, wordCount int, fillers bool) (string, error) {
	if wordCount <= 0 {
		return "", &producer.ValidationError{Field: "wordCount", Message: fmt.Sprintf("%d must be positive", wordCount)}
	}

	opener := ""
	if fillers && p.store.Has("text.fillers") {
		chance, err := p.store.Float("text.fillerChance")
		if err != nil {
			return "", err
		}
		hit, err := p.base.Chance(chance)
		if err != nil {
			return "", err
		}
		if hit {
			list, err := p.store.StringList("text.fillers")
			if err != nil {
				return "", err
			}
			opener, err = p.base.Element(list)
			if err != nil {
				return "", err
			}
		}
	}

	words, err := p.corpusWords(key, wordCount)
	if err != nil {
		return "", err
	}

	caser := cases.Title(p.tag)
	if opener != "" {
		return caser.String(opener) + ", " + strings.Join(words, " ") + ".", nil
	}
	words[0] = caser.String(words[0])
	return strings.Join(words, " ") + ".", nil
}
