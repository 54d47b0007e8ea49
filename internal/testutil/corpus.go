// Package testutil generates synthetic bank and payment notifications for classifier tests.
package testutil

import (
	"fmt"
	"strings"
	"unicode"

	"msme-carbon/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// maxAttempts bounds the retries spent finding a message that hits only the target sector
const maxAttempts = 50

// channelSenders are sender tags made only of payment-channel tokens, so the merchant stage never accepts them
var channelSenders = []string{"VM-BANK", "AD-UPI", "JD-ALERTS", "BP-NEFT", "TM-IMPS", ""}

var templates = []string{
	"Rs %[1]s debited from a/c XX%[2]s for %[3]s on %[4]s",
	"INR %[1]s paid towards %[3]s, ref %[2]s",
	"%[3]s bill settled. Amount Rs %[1]s. Ref no %[2]s",
	"Your a/c XX%[2]s is credited with INR %[1]s against %[3]s",
}

// Message is a generated notification and the sector it was built for
type Message struct {
	Text   string
	Sender string
	Sector models.Sector
	Term   string
	Amount decimal.Decimal
}

// Corpus builds messages from a sector vocabulary. It is deterministic for a given seed.
type Corpus struct {
	faker      *gofakeit.Faker
	vocabulary [models.SectorCount][]string
}

// NewCorpus creates a corpus over the vocabulary returned for each declared sector
func NewCorpus(seed uint64, vocabulary func(models.Sector) []string) *Corpus {
	c := &Corpus{faker: gofakeit.New(seed)}
	for _, sector := range models.AllSectors() {
		for _, term := range vocabulary(sector) {
			if normalized := normalize(term); normalized != "" {
				c.vocabulary[sector] = append(c.vocabulary[sector], normalized)
			}
		}
	}
	return c
}

// Message generates a notification that names one vocabulary term of sector and no
// term of any other sector. It reports false when no such message was found.
func (c *Corpus) Message(sector models.Sector) (Message, bool) {
	terms := c.vocabulary[sector]
	if len(terms) == 0 {
		return Message{}, false
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		term := c.faker.RandomString(terms)
		amount := decimal.NewFromFloat(c.faker.Price(100, 250000)).Round(2)
		text := fmt.Sprintf(
			c.faker.RandomString(templates),
			amount.StringFixed(2),
			c.faker.DigitN(4),
			term,
			c.faker.Date().Format("02-Jan-06"),
		)

		if hits := c.Hits(text); len(hits) == 1 && hits[sector] > 0 {
			return Message{
				Text:   text,
				Sender: c.faker.RandomString(channelSenders),
				Sector: sector,
				Term:   term,
				Amount: amount,
			}, true
		}
	}
	return Message{}, false
}

// Generate returns up to perSector messages for every sector that carries vocabulary
func (c *Corpus) Generate(perSector int) []Message {
	var messages []Message
	for _, sector := range models.AllSectors() {
		for i := 0; i < perSector; i++ {
			if m, ok := c.Message(sector); ok {
				messages = append(messages, m)
			}
		}
	}
	return messages
}

// Noise returns a notification that hits no vocabulary term, or false if none was found
func (c *Corpus) Noise() (string, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text := fmt.Sprintf("Txn ref %s of Rs %s completed. %s",
			c.faker.DigitN(6),
			decimal.NewFromFloat(c.faker.Price(1, 5000)).StringFixed(2),
			c.faker.Noun(),
		)
		if len(c.Hits(text)) == 0 {
			return text, true
		}
	}
	return "", false
}

// Hits counts the distinct vocabulary terms of each sector that start at a word boundary in text
func (c *Corpus) Hits(text string) map[models.Sector]int {
	padded := " " + normalize(text) + " "
	hits := make(map[models.Sector]int)
	for _, sector := range models.AllSectors() {
		for _, term := range c.vocabulary[sector] {
			if strings.Contains(padded, " "+term) {
				hits[sector]++
			}
		}
	}
	return hits
}

func normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}
