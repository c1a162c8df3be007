package description

import (
	"errors"
	"fmt"
)

// ErrUnknownExample is returned by Example for a name outside the catalogue.
var ErrUnknownExample = errors.New("description: unknown example")

// NamedExample is a catalogue entry.
type NamedExample struct {
	Name     string
	Informal string
}

var examples = []NamedExample{
	{"Venn-3", "a b c abc ab ac bc"},
	{"Venn-4", "a b c d ab ac ad bc bd cd abc abd acd bcd abcd"},
	{"Venn-5", "a b c d e ab ac ad ae bc bd be cd ce de abc abd abe acd ace ade bcd bce bde cde abcd abce abde acde bcde abcde"},
	{"Double Piercing", "a b c ab ac af ag bc be cd abc abe abf abg acd acf afg bcd bce abcd abce abcf abfg"},
	{"Double Piercing 1", "a b c d ab ac ad ae bc bd cd abc abd acd ace bcd abcd acde"},
	{"Double Piercing 2", "p q r pq pr qr qs rs pqs prs qrs qrt pqrs"},
	{"Double Piercing 3", "a b c d ac ad bc bd cd ce df abd acd ace bcd bce bdf cdf abcd abce bcdf"},
	{"Edge Route", "a b c ab ac bc bd bf abc abd abf bcd bcf bdf abcd abdf bcdf"},
	{"Edge Route 1", "a b c d ab ac ad bc bd be cd abc abd abe acd bcd bce bde abcd abce abde"},
	{"Edge Route 2", "a b c d ab ac ad ae af bc bd cd abc abd acd ace acf adf bcd abcd acde adef"},
}

// Examples returns the built-in example catalogue in display order.
func Examples() []NamedExample {
	return append([]NamedExample(nil), examples...)
}

// Example parses the catalogue entry called name.
func Example(name string) (Description, error) {
	for _, e := range examples {
		if e.Name == name {
			return Parse(e.Informal)
		}
	}

	return Description{}, fmt.Errorf("Example(%q): %w", name, ErrUnknownExample)
}
