package rules

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/splgeo/ipc"
	"github.com/nstehr/splgeo/model"
)

// diagnosticsEvery throttles the per-tick economy summary.
const diagnosticsEvery = 100

// Engine runs compiled rules against a snapshot each tick.
// Every rule is evaluated in priority order; a rule whose condition holds
// appends its commands to the tick's output.
type Engine struct {
	mu     sync.RWMutex
	rules  []*Rule
	policy Policy
}

// NewEngine compiles the policy's rule set into expr bytecode.
func NewEngine(p Policy) (*Engine, error) {
	p.Validate()
	compiled, err := compileRules(CompilePolicy(p))
	if err != nil {
		return nil, err
	}
	return &Engine{
		rules:  compiled,
		policy: p,
	}, nil
}

// Evaluate returns the ordered commands for one tick. It has no side effects
// beyond logging: the same snapshot always yields the same commands.
func (e *Engine) Evaluate(ws model.WorldSnapshot) []ipc.Command {
	e.mu.RLock()
	rules := e.rules
	policy := e.policy
	e.mu.RUnlock()

	env := RuleEnv{State: ws, Policy: policy}
	rng := rand.New(rand.NewPCG(policy.Seed, uint64(ws.Tick)))
	logEconomyDiagnostics(env)

	var cmds []ipc.Command
	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		out := r.Action(env, rng)
		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category, "commands", len(out))
		cmds = append(cmds, out...)
	}

	return cmds
}

// Swap atomically replaces the policy and the rule set compiled from it.
// Compiles first; if compilation fails the old rules remain active.
func (e *Engine) Swap(p Policy) error {
	p.Validate()
	compiled, err := compileRules(CompilePolicy(p))
	if err != nil {
		return err
	}
	names := make([]string, len(compiled))
	for i, r := range compiled {
		names[i] = r.Name
	}
	e.mu.Lock()
	e.rules = compiled
	e.policy = p
	e.mu.Unlock()

	slog.Info("rule set swapped", "count", len(compiled), "rules", names)
	return nil
}

// Policy returns the policy the active rule set was compiled from.
func (e *Engine) Policy() Policy {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.policy
}

// RuleNames lists the active rules in evaluation order.
func (e *Engine) RuleNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

// logEconomyDiagnostics helps debug "why isn't the bot building anything?".
func logEconomyDiagnostics(env RuleEnv) {
	if env.State.Tick%diagnosticsEvery != 0 {
		return
	}
	slog.Info("economy diagnostics",
		"tick", env.State.Tick,
		"minutes", env.Minutes(),
		"minerals", env.State.Minerals,
		"vespene", env.State.Vespene,
		"supply", fmt.Sprintf("%d/%d", env.State.SupplyUsed, env.State.SupplyCap),
		"nexuses", env.Count("nexus"),
		"probes", env.Count("probe"),
		"stargates", env.Count("stargate"),
		"voidrays", env.Count("voidray"),
		"enemiesVisible", env.EnemyUnitCount(),
	)
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
