package dex

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
)

// WarnFunc receives one message per skipped malformed row.
type WarnFunc func(msg string)

// LoadTable reads the species table from a CSV file. Malformed rows are
// skipped with a warning; an unreadable or empty source is a DataLoadError.
func LoadTable(path string, warn WarnFunc) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.DataLoad("species table", err)
	}
	defer f.Close()

	table, err := ParseTable(f, warn)
	if err != nil {
		return nil, apperr.DataLoad("species table", err)
	}
	return table, nil
}

// Expected header columns. type2 and legendary may be empty per row.
var requiredColumns = []string{
	"dex", "name", "generation", "type1", "type2",
	"hp", "attack", "defense", "sp_attack", "sp_defense", "speed",
}

// ParseTable decodes CSV species records from r.
func ParseTable(r io.Reader, warn WarnFunc) (*Table, error) {
	if warn == nil {
		warn = func(string) {}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length validated against the header below

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var species []Species
	line := 1
	for {
		line++
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			warn(fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		sp, err := parseRow(row, cols)
		if err != nil {
			warn(fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		species = append(species, sp)
	}

	if len(species) == 0 {
		return nil, fmt.Errorf("no usable species rows")
	}
	return NewTable(species), nil
}

func parseRow(row []string, cols map[string]int) (Species, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	intField := func(name string) (int, error) {
		v, err := strconv.Atoi(field(name))
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		if v < 0 {
			return 0, fmt.Errorf("column %q: negative value %d", name, v)
		}
		return v, nil
	}

	name := Normalize(field("name"))
	if name == "" {
		return Species{}, fmt.Errorf("empty name")
	}

	t1, ok := ParseType(field("type1"))
	if !ok {
		return Species{}, fmt.Errorf("unknown type1 %q", field("type1"))
	}
	types := []Type{t1}
	if raw := field("type2"); raw != "" {
		t2, ok := ParseType(raw)
		if !ok {
			return Species{}, fmt.Errorf("unknown type2 %q", raw)
		}
		if t2 != t1 {
			types = append(types, t2)
		}
	}

	var sp Species
	sp.Name = name
	sp.Types = types

	var err error
	if sp.Dex, err = intField("dex"); err != nil {
		return Species{}, err
	}
	if sp.Generation, err = intField("generation"); err != nil {
		return Species{}, err
	}
	if sp.Stats.HP, err = intField("hp"); err != nil {
		return Species{}, err
	}
	if sp.Stats.Attack, err = intField("attack"); err != nil {
		return Species{}, err
	}
	if sp.Stats.Defense, err = intField("defense"); err != nil {
		return Species{}, err
	}
	if sp.Stats.SpAttack, err = intField("sp_attack"); err != nil {
		return Species{}, err
	}
	if sp.Stats.SpDefense, err = intField("sp_defense"); err != nil {
		return Species{}, err
	}
	if sp.Stats.Speed, err = intField("speed"); err != nil {
		return Species{}, err
	}

	// Optional column: absent or empty means not legendary.
	if i, ok := cols["legendary"]; ok && i < len(row) {
		switch strings.ToLower(strings.TrimSpace(row[i])) {
		case "", "0", "false", "no":
		case "1", "true", "yes":
			sp.Legendary = true
		default:
			return Species{}, fmt.Errorf("column \"legendary\": bad value %q", row[i])
		}
	}

	return sp, nil
}
