package rules

import (
	"github.com/nstehr/splgeo/model"
)

// RuleEnv wraps the tick's snapshot and exposes helper methods callable from
// expr expressions. Kind arguments are engine names ("nexus", "voidray");
// unknown names count as zero.
type RuleEnv struct {
	State  model.WorldSnapshot
	Policy Policy
}

func kindOf(name string) (model.Kind, bool) {
	return model.ParseKind(name)
}

// Count includes structures still under construction.
func (e RuleEnv) Count(kind string) int {
	k, ok := kindOf(kind)
	if !ok {
		return 0
	}
	return e.State.Count(k)
}

func (e RuleEnv) ReadyCount(kind string) int {
	k, ok := kindOf(kind)
	if !ok {
		return 0
	}
	return len(e.State.ReadyOwned(k))
}

// ReadyNoQueueCount counts finished producers with nothing in training.
func (e RuleEnv) ReadyNoQueueCount(kind string) int {
	k, ok := kindOf(kind)
	if !ok {
		return 0
	}
	return len(e.State.ReadyNoQueue(k))
}

func (e RuleEnv) IdleCount(kind string) int {
	k, ok := kindOf(kind)
	if !ok {
		return 0
	}
	return len(e.State.IdleOwned(k))
}

// Pending counts orders issued for kind that the engine has not started yet.
func (e RuleEnv) Pending(kind string) int {
	k, ok := kindOf(kind)
	if !ok {
		return 0
	}
	return e.State.Pending[k]
}

func (e RuleEnv) CanAfford(kind string) bool {
	k, ok := kindOf(kind)
	if !ok {
		return false
	}
	return e.State.CanAfford(k)
}

func (e RuleEnv) SupplyLeft() int { return e.State.SupplyLeft() }
func (e RuleEnv) Minerals() int   { return e.State.Minerals }
func (e RuleEnv) Vespene() int    { return e.State.Vespene }
func (e RuleEnv) Tick() int       { return e.State.Tick }

// Minutes converts the tick count to game minutes. The division is not
// truncated, so "fewer than Minutes()" thresholds grow smoothly.
func (e RuleEnv) Minutes() float64 {
	ipm := e.Policy.IterationsPerMinute
	if ipm <= 0 {
		ipm = 1
	}
	return float64(e.State.Tick) / float64(ipm)
}

func (e RuleEnv) EnemyUnitCount() int      { return len(e.State.EnemyUnits) }
func (e RuleEnv) EnemyStructureCount() int { return len(e.State.EnemyStructures) }
func (e RuleEnv) HasExpansion() bool       { return len(e.State.Expansions) > 0 }

// firstReady returns the first finished unit of kind k in snapshot order.
func (e RuleEnv) firstReady(k model.Kind) (model.Unit, bool) {
	for _, u := range e.State.Units {
		if u.Kind == k && u.Ready {
			return u, true
		}
	}
	return model.Unit{}, false
}

// buildWorker picks the worker closest to pos that may be pulled off mining.
// Workers in exclude were already given a job this tick.
func (e RuleEnv) buildWorker(pos model.Point, exclude map[int]bool) (model.Unit, bool) {
	var candidates []model.Unit
	for _, u := range e.State.Units {
		if u.Kind != model.Probe || !u.Ready || exclude[u.ID] {
			continue
		}
		if u.Idle || u.Gathering {
			candidates = append(candidates, u)
		}
	}
	i := model.Closest(candidates, pos)
	if i < 0 {
		return model.Unit{}, false
	}
	return candidates[i], true
}
