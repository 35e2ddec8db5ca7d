package rules

import (
	"math/rand/v2"

	"github.com/nstehr/splgeo/ipc"
	"github.com/nstehr/splgeo/model"
)

// Target is where an attack order goes: a known enemy by ID, or a map point
// when only the enemy start location is known.
type Target struct {
	EnemyID int
	Pos     model.Point
	IsPoint bool
}

// Order builds the attack command sending unitID at the target.
func (t Target) Order(unitID int) ipc.Command {
	if t.IsPoint {
		return ipc.AttackPoint(unitID, t.Pos)
	}
	return ipc.AttackUnit(unitID, t.EnemyID)
}

// FindTarget prefers a random known enemy unit, then a random known enemy
// structure, then the first enemy start location. It reports false when the
// snapshot knows nothing about the enemy at all.
func FindTarget(s model.WorldSnapshot, rng *rand.Rand) (Target, bool) {
	if len(s.EnemyUnits) > 0 {
		e := s.EnemyUnits[rng.IntN(len(s.EnemyUnits))]
		return Target{EnemyID: e.ID, Pos: e.Pos()}, true
	}
	if len(s.EnemyStructures) > 0 {
		e := s.EnemyStructures[rng.IntN(len(s.EnemyStructures))]
		return Target{EnemyID: e.ID, Pos: e.Pos()}, true
	}
	if len(s.EnemyStartLocations) > 0 {
		return Target{Pos: s.EnemyStartLocations[0], IsPoint: true}, true
	}
	return Target{}, false
}
