package advisor

import (
	"github.com/google/uuid"

	"github.com/pokedex-labs/pokeadvisor-cli/internal/analyzer"
	"github.com/pokedex-labs/pokeadvisor-cli/internal/dex"
)

// Request selects which sections of a team analysis to compute. Names must
// hold 1 to 6 entries; duplicates are allowed and flagged.
type Request struct {
	Names []string

	Balance     bool
	Defense     bool
	Offense     bool
	Duplicates  bool
	Suggestions bool
}

// FullRequest asks for every section for the given names.
func FullRequest(names []string) Request {
	return Request{
		Names:       names,
		Balance:     true,
		Defense:     true,
		Offense:     true,
		Duplicates:  true,
		Suggestions: true,
	}
}

// Result is one completed team analysis. Sections not requested stay nil.
type Result struct {
	// RequestID uniquely identifies this analysis run.
	RequestID string

	Team   dex.Team
	Failed []string // requested names that were not found

	Balance    *analyzer.BalanceSummary
	Defense    *analyzer.DefensiveProfile
	Offense    []dex.Type
	Duplicates map[string]int
	Counters   []WeaknessCounter
}

// AnalyzeTeam runs one synchronous analysis request. Team size is validated
// before any computation; individual unknown names are collected into
// Result.Failed while the remaining members are still analyzed. A request
// where every name fails returns a result with an empty team so the caller
// can report exactly which names were bad.
func (a *Advisor) AnalyzeTeam(req Request) (*Result, error) {
	team, failed, err := dex.ResolveTeam(a.Table, req.Names)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RequestID: "urn:uuid:" + uuid.New().String(),
		Team:      team,
		Failed:    failed,
	}
	if len(team) == 0 {
		return res, nil
	}

	if req.Balance {
		b := analyzer.Balance(team)
		res.Balance = &b
	}
	if req.Defense || req.Suggestions {
		d := analyzer.Defensive(team, a.Chart)
		if req.Defense {
			res.Defense = &d
		}
		if req.Suggestions {
			res.Counters = a.SuggestWeaknessCounters(team, d.Weaknesses)
		}
	}
	if req.Offense {
		res.Offense = analyzer.Offensive(team)
	}
	if req.Duplicates {
		res.Duplicates = FindDuplicates(team)
	}

	return res, nil
}
