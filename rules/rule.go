package rules

import (
	"math/rand/v2"

	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/splgeo/ipc"
)

// ActionFunc returns the commands a rule issues when its condition is true.
// It reads only the environment; rng is the tick's deterministic random source.
type ActionFunc func(env RuleEnv, rng *rand.Rand) []ipc.Command

// Rule is the atomic unit of bot behavior: a condition → action pair.
// Rules run in descending priority order, every one of them every tick.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for logs
	ConditionSrc string      // expr source (preserved for diagnostics)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
