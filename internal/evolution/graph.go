// Package evolution models evolution families as explicit, validated,
// acyclic trees loaded from a structured source. Nothing here is inferred
// at runtime: every family edge comes from the data file.
package evolution

import (
	"fmt"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/apperr"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
)

// Record is one entry of the evolution graph source: a species, its
// pre-evolution (empty for base forms), its ordered evolutions, and a branch
// group id shared by sibling branches at a branch point (0 when unbranched).
type Record struct {
	Name         string   `yaml:"name"`
	PreEvolution string   `yaml:"pre_evolution"`
	Evolutions   []string `yaml:"evolutions"`
	BranchGroup  int      `yaml:"branch_group"`
}

// Stage is one node of a family tree. Children are ordered as listed in the
// source; two or more children make this stage a branch point and the
// children sibling branches.
type Stage struct {
	Name        string
	BranchGroup int
	Children    []*Stage
}

// Edge is one parent→child evolution step.
type Edge struct {
	From, To string
}

// Family is the rooted tree of a base form and all its stages and branches.
type Family struct {
	Root    *Stage
	members map[string]*Stage
	depth   map[string]int // root = 0
}

// Member finds a stage by normalized species name.
func (f *Family) Member(name string) (*Stage, bool) {
	s, ok := f.members[dex.Normalize(name)]
	return s, ok
}

// Names lists all member names in pre-order (root first, branches in source
// order).
func (f *Family) Names() []string {
	var names []string
	var walk func(*Stage)
	walk = func(s *Stage) {
		names = append(names, s.Name)
		for _, c := range s.Children {
			walk(c)
		}
	}
	walk(f.Root)
	return names
}

// Edges lists every parent→child step in pre-order. A linear family of N
// stages yields N-1 edges; each branch adds one edge per sibling.
func (f *Family) Edges() []Edge {
	var edges []Edge
	var walk func(*Stage)
	walk = func(s *Stage) {
		for _, c := range s.Children {
			edges = append(edges, Edge{From: s.Name, To: c.Name})
			walk(c)
		}
	}
	walk(f.Root)
	return edges
}

// StageNumber reports the 1-based stage of a member (the root is stage 1),
// or 0 when the name is not part of the family.
func (f *Family) StageNumber(name string) int {
	d, ok := f.depth[dex.Normalize(name)]
	if !ok {
		return 0
	}
	return d + 1
}

// TotalStages is the depth of the deepest stage (a lone base form counts 1).
func (f *Family) TotalStages() int {
	max := 0
	for _, d := range f.depth {
		if d > max {
			max = d
		}
	}
	return max + 1
}

// CanEvolve reports whether the named member has at least one further stage.
func (f *Family) CanEvolve(name string) bool {
	s, ok := f.Member(name)
	return ok && len(s.Children) > 0
}

// Size is the number of members in the family.
func (f *Family) Size() int { return len(f.members) }

func singleStageFamily(name string) *Family {
	root := &Stage{Name: dex.Normalize(name)}
	return &Family{
		Root:    root,
		members: map[string]*Stage{root.Name: root},
		depth:   map[string]int{root.Name: 0},
	}
}

// Graph maps every known species to its family. Loaded once, read-only.
type Graph struct {
	families map[string]*Family
}

// Family returns the family containing the named species, if the graph
// knows it.
func (g *Graph) Family(name string) (*Family, bool) {
	f, ok := g.families[dex.Normalize(name)]
	return f, ok
}

// FamilyOf resolves the family for a species name against both the graph and
// the species table. A species known to the table but absent from the graph
// has no evolutions and yields a family of one. A name absent from both
// fails with NotFound.
func FamilyOf(g *Graph, table *dex.Table, name string) (*Family, error) {
	if f, ok := g.Family(name); ok {
		return f, nil
	}
	if table.Has(name) {
		return singleStageFamily(name), nil
	}
	return nil, apperr.NotFound(name)
}

// Build assembles and validates the graph from source records. It rejects
// dangling references, conflicting parent links, species reachable from two
// roots, and cycles.
func Build(records []Record) (*Graph, error) {
	byName := make(map[string]*Record, len(records))
	for i := range records {
		r := &records[i]
		key := dex.Normalize(r.Name)
		if key == "" {
			return nil, fmt.Errorf("record %d: empty name", i)
		}
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("duplicate record for %q", key)
		}
		r.Name = key
		r.PreEvolution = dex.Normalize(r.PreEvolution)
		for j, evo := range r.Evolutions {
			r.Evolutions[j] = dex.Normalize(evo)
		}
		byName[key] = r
	}

	// Cross-check both directions of every edge before building trees.
	for _, r := range byName {
		for _, child := range r.Evolutions {
			c, ok := byName[child]
			if !ok {
				return nil, fmt.Errorf("%s evolves into unknown species %q", r.Name, child)
			}
			if c.PreEvolution != r.Name {
				return nil, fmt.Errorf("%s lists evolution %s, but %s names pre-evolution %q",
					r.Name, child, child, c.PreEvolution)
			}
		}
		if r.PreEvolution != "" {
			p, ok := byName[r.PreEvolution]
			if !ok {
				return nil, fmt.Errorf("%s names unknown pre-evolution %q", r.Name, r.PreEvolution)
			}
			found := false
			for _, evo := range p.Evolutions {
				if evo == r.Name {
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("%s names pre-evolution %s, which does not list it", r.Name, r.PreEvolution)
			}
		}
	}

	g := &Graph{families: make(map[string]*Family)}
	assigned := make(map[string]bool, len(byName))

	for _, r := range byName {
		if r.PreEvolution != "" {
			continue // not a root
		}
		fam := &Family{
			members: make(map[string]*Stage),
			depth:   make(map[string]int),
		}
		root, err := buildStage(byName, fam, r, 0, len(byName))
		if err != nil {
			return nil, err
		}
		fam.Root = root
		for name := range fam.members {
			if assigned[name] {
				return nil, fmt.Errorf("%s belongs to more than one family", name)
			}
			assigned[name] = true
			g.families[name] = fam
		}
	}

	// Anything unassigned has a pre-evolution chain that never reaches a
	// root, which means a cycle.
	for name := range byName {
		if !assigned[name] {
			return nil, fmt.Errorf("%s is part of an evolution cycle", name)
		}
	}

	return g, nil
}

func buildStage(byName map[string]*Record, fam *Family, r *Record, depth, limit int) (*Stage, error) {
	if depth > limit {
		return nil, fmt.Errorf("%s is part of an evolution cycle", r.Name)
	}
	if _, seen := fam.members[r.Name]; seen {
		return nil, fmt.Errorf("%s appears twice within its family", r.Name)
	}
	s := &Stage{Name: r.Name, BranchGroup: r.BranchGroup}
	fam.members[r.Name] = s
	fam.depth[r.Name] = depth
	for _, childName := range r.Evolutions {
		child, err := buildStage(byName, fam, byName[childName], depth+1, limit)
		if err != nil {
			return nil, err
		}
		s.Children = append(s.Children, child)
	}
	return s, nil
}
