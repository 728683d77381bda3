// Package dex holds the static Pokémon dataset: species records, the
// case-insensitive species table, the type-effectiveness chart, and teams.
// Everything here is immutable after load; analyzers receive these values
// as explicit parameters rather than reaching for package globals.
package dex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
)

// Stats are the six base stats of a species. All values are non-negative.
type Stats struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// StatNames is the fixed presentation order for the six stats.
var StatNames = []string{"HP", "Attack", "Defense", "Sp. Attack", "Sp. Defense", "Speed"}

// Values returns the six stats in StatNames order.
func (s Stats) Values() [6]int {
	return [6]int{s.HP, s.Attack, s.Defense, s.SpAttack, s.SpDefense, s.Speed}
}

// Total is the sum of the six base stats.
func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpAttack + s.SpDefense + s.Speed
}

// Species is one Pokémon form. Records are immutable once loaded.
type Species struct {
	Name       string // normalized (lowercase) name, the table key
	Dex        int    // national dex number
	Generation int
	Types      []Type // 1 or 2 entries, ordered as in the source
	Stats      Stats
	Legendary  bool
}

var titleCaser = cases.Title(language.English)

// DisplayName renders the species name for human output ("mr-mime" stays
// hyphenated, "pikachu" becomes "Pikachu").
func (s *Species) DisplayName() string {
	return titleCaser.String(s.Name)
}

// TypeString renders the type pair as "fire/flying" or a single type name.
func (s *Species) TypeString() string {
	parts := make([]string, len(s.Types))
	for i, t := range s.Types {
		parts[i] = string(t)
	}
	return strings.Join(parts, "/")
}

// HasType reports whether the species has t as either of its types.
func (s *Species) HasType(t Type) bool {
	for _, own := range s.Types {
		if own == t {
			return true
		}
	}
	return false
}

// Normalize lowercases and trims a species name for table lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Table is the in-memory species table, keyed by normalized name.
// One record per species name; loaded once and read-only afterwards.
type Table struct {
	byName  map[string]*Species
	ordered []*Species // dex-file order, for deterministic iteration
}

// NewTable builds a table from the given records. The first record wins when
// two share a name; callers that care report the duplicate at parse time.
func NewTable(species []Species) *Table {
	t := &Table{byName: make(map[string]*Species, len(species))}
	for i := range species {
		sp := &species[i]
		key := Normalize(sp.Name)
		if _, exists := t.byName[key]; exists {
			continue
		}
		sp.Name = key
		t.byName[key] = sp
		t.ordered = append(t.ordered, sp)
	}
	return t
}

// Lookup finds a species by name, case-insensitively.
func (t *Table) Lookup(name string) (*Species, error) {
	if sp, ok := t.byName[Normalize(name)]; ok {
		return sp, nil
	}
	return nil, apperr.NotFound(name)
}

// Has reports whether the table contains the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[Normalize(name)]
	return ok
}

// All returns the species in load order. Callers must not mutate the records.
func (t *Table) All() []*Species {
	return t.ordered
}

// Len reports the number of species in the table.
func (t *Table) Len() int { return len(t.ordered) }
