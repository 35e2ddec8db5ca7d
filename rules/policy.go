package rules

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/nstehr/splgeo/model"
)

// Thresholds controls when a unit kind goes on the offensive.
// Above Aggressive the whole idle group attacks the chosen target;
// above Minimum it only picks off visible enemy units.
type Thresholds struct {
	Aggressive int `mapstructure:"aggressive" json:"aggressive"`
	Minimum    int `mapstructure:"minimum" json:"minimum"`
}

// Policy holds the fixed constants the rule set is compiled from.
// It is a plain value: the engine keeps its own copy and never changes it.
type Policy struct {
	IterationsPerMinute   int                   `mapstructure:"iterations_per_minute" json:"iterations_per_minute"`
	MaxWorkers            int                   `mapstructure:"max_workers" json:"max_workers"`
	WorkersPerMain        int                   `mapstructure:"workers_per_main" json:"workers_per_main"`
	SupplyMargin          int                   `mapstructure:"supply_margin" json:"supply_margin"`
	GasSearchRadius       float64               `mapstructure:"gas_search_radius" json:"gas_search_radius"`
	GasClaimRadius        float64               `mapstructure:"gas_claim_radius" json:"gas_claim_radius"`
	MaxMainStructures     int                   `mapstructure:"max_main_structures" json:"max_main_structures"`
	SecondMainCap         int                   `mapstructure:"second_main_cap" json:"second_main_cap"`
	SecondMainMaxDistance float64               `mapstructure:"second_main_max_distance" json:"second_main_max_distance"`
	DefenseEmplacementCap int                   `mapstructure:"defense_emplacement_cap" json:"defense_emplacement_cap"`
	DefenseSupportPrereq  int                   `mapstructure:"defense_support_prereq" json:"defense_support_prereq"`
	EarlyProductionCap    int                   `mapstructure:"early_production_cap" json:"early_production_cap"`
	AdvancedPerMain       int                   `mapstructure:"advanced_per_main" json:"advanced_per_main"`
	Aggression            map[string]Thresholds `mapstructure:"aggression" json:"aggression"`
	Seed                  uint64                `mapstructure:"seed" json:"seed"`
}

// DefaultPolicy returns the stock Protoss air build.
func DefaultPolicy() Policy {
	return Policy{
		IterationsPerMinute:   42,
		MaxWorkers:            120,
		WorkersPerMain:        16,
		SupplyMargin:          5,
		GasSearchRadius:       15.0,
		GasClaimRadius:        1.0,
		MaxMainStructures:     5,
		SecondMainCap:         2,
		SecondMainMaxDistance: 10,
		DefenseEmplacementCap: 7,
		DefenseSupportPrereq:  2,
		EarlyProductionCap:    1,
		AdvancedPerMain:       2,
		Aggression: map[string]Thresholds{
			model.VoidRay.String(): {Aggressive: 7, Minimum: 2},
		},
	}
}

// Validate clamps every constant into its valid range and normalises the
// aggression table. The table is rebuilt so the caller's map is never shared.
func (p *Policy) Validate() {
	p.IterationsPerMinute = clampInt(p.IterationsPerMinute, 1, 10000)
	p.MaxWorkers = clampInt(p.MaxWorkers, 0, 200)
	p.WorkersPerMain = clampInt(p.WorkersPerMain, 0, 100)
	p.SupplyMargin = clampInt(p.SupplyMargin, 0, 200)
	p.GasSearchRadius = clamp(p.GasSearchRadius, 0, 100)
	p.GasClaimRadius = clamp(p.GasClaimRadius, 0, 10)
	p.MaxMainStructures = clampInt(p.MaxMainStructures, 0, 50)
	p.SecondMainCap = clampInt(p.SecondMainCap, 0, 50)
	p.SecondMainMaxDistance = clamp(p.SecondMainMaxDistance, 0, 100)
	p.DefenseEmplacementCap = clampInt(p.DefenseEmplacementCap, 0, 100)
	p.DefenseSupportPrereq = clampInt(p.DefenseSupportPrereq, 0, 100)
	p.EarlyProductionCap = clampInt(p.EarlyProductionCap, 0, 50)
	p.AdvancedPerMain = clampInt(p.AdvancedPerMain, 0, 50)

	aggression := make(map[string]Thresholds, len(p.Aggression))
	for name, t := range p.Aggression {
		k, ok := model.ParseKind(name)
		if !ok || k.IsStructure() {
			slog.Warn("ignoring aggression entry for unknown unit kind", "kind", name)
			continue
		}
		t.Minimum = clampInt(t.Minimum, 0, 200)
		t.Aggressive = clampInt(t.Aggressive, 0, 200)
		aggression[k.String()] = t
	}
	p.Aggression = aggression
}

// aggressiveKinds returns the configured kinds in a stable order.
func (p Policy) aggressiveKinds() []model.Kind {
	var out []model.Kind
	for _, name := range slices.Sorted(maps.Keys(p.Aggression)) {
		if k, ok := model.ParseKind(name); ok {
			out = append(out, k)
		}
	}
	return out
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
