package rules

import (
	"log/slog"
	"math/rand/v2"

	"github.com/nstehr/splgeo/ipc"
	"github.com/nstehr/splgeo/model"
)

func ActionDistributeWorkers(env RuleEnv, _ *rand.Rand) []ipc.Command {
	slog.Debug("redistributing workers", "idle", env.IdleCount("probe"))
	return []ipc.Command{ipc.DistributeWorkers()}
}

// ActionTrainWorkers queues one probe at every ready nexus with an empty queue.
func ActionTrainWorkers(env RuleEnv, _ *rand.Rand) []ipc.Command {
	var cmds []ipc.Command
	for _, nx := range env.State.ReadyNoQueue(model.Nexus) {
		if !env.State.CanAfford(model.Probe) {
			break
		}
		slog.Debug("training worker", "nexus", nx.ID)
		cmds = append(cmds, ipc.Train(nx.ID, model.Probe))
	}
	return cmds
}

func ActionBuildSupply(env RuleEnv, _ *rand.Rand) []ipc.Command {
	nx, ok := env.firstReady(model.Nexus)
	if !ok {
		return nil
	}
	slog.Debug("building pylon", "near", nx.ID, "supplyLeft", env.SupplyLeft())
	return []ipc.Command{ipc.Build(model.Pylon, nx.Pos())}
}

// ActionBuildGas sends workers to put assimilators on geysers around each
// ready nexus. Assimilators never outnumber nexuses, and a geyser with an
// assimilator on it (or one already targeted this tick) is skipped.
func ActionBuildGas(env RuleEnv, _ *rand.Rand) []ipc.Command {
	s := env.State
	assimilators := s.Owned(model.Assimilator)
	limit := s.Count(model.Nexus)
	usedWorkers := make(map[int]bool)
	claimed := make(map[int]bool)

	var cmds []ipc.Command
	for _, nx := range s.ReadyOwned(model.Nexus) {
		if len(assimilators)+len(cmds) >= limit {
			break
		}
		for _, g := range model.CloserThan(s.Geysers, env.Policy.GasSearchRadius, nx.Pos()) {
			if len(assimilators)+len(cmds) >= limit || !s.CanAfford(model.Assimilator) {
				break
			}
			w, ok := env.buildWorker(g.Pos(), usedWorkers)
			if !ok {
				break
			}
			if claimed[g.ID] || len(model.CloserThan(assimilators, env.Policy.GasClaimRadius, g.Pos())) > 0 {
				continue
			}
			claimed[g.ID] = true
			usedWorkers[w.ID] = true
			slog.Debug("building assimilator", "geyser", g.ID, "worker", w.ID, "nexus", nx.ID)
			cmds = append(cmds, ipc.BuildOn(w.ID, model.Assimilator, g.ID))
		}
	}
	return cmds
}

// ActionBuildSecondMain places a nexus at the nearest free expansion with a
// bounded placement search.
func ActionBuildSecondMain(env RuleEnv, _ *rand.Rand) []ipc.Command {
	if len(env.State.Expansions) == 0 {
		return nil
	}
	loc := env.State.Expansions[0]
	slog.Debug("building second nexus", "x", loc.X, "y", loc.Y)
	return []ipc.Command{ipc.BuildWithin(model.Nexus, loc, env.Policy.SecondMainMaxDistance)}
}

func ActionExpand(env RuleEnv, _ *rand.Rand) []ipc.Command {
	slog.Debug("expanding", "nexuses", env.Count("nexus"), "minutes", env.Minutes())
	return []ipc.Command{ipc.Expand()}
}

// ActionBuildForge puts the forge by the ready pylon nearest the first nexus.
func ActionBuildForge(env RuleEnv, _ *rand.Rand) []ipc.Command {
	nx, ok := env.firstReady(model.Nexus)
	if !ok {
		return nil
	}
	pylons := env.State.ReadyOwned(model.Pylon)
	i := model.Closest(pylons, nx.Pos())
	if i < 0 {
		return nil
	}
	slog.Debug("building forge", "pylon", pylons[i].ID)
	return []ipc.Command{ipc.Build(model.Forge, pylons[i].Pos())}
}

// ActionBuildCannons queues one photon cannon per ready nexus, all placed
// around the first nexus, without exceeding the emplacement cap.
func ActionBuildCannons(env RuleEnv, _ *rand.Rand) []ipc.Command {
	nx, ok := env.firstReady(model.Nexus)
	if !ok {
		return nil
	}
	existing := env.State.Count(model.PhotonCannon)
	var cmds []ipc.Command
	for range env.State.ReadyOwned(model.Nexus) {
		if existing+len(cmds) >= env.Policy.DefenseEmplacementCap {
			break
		}
		cmds = append(cmds, ipc.Build(model.PhotonCannon, nx.Pos()))
	}
	slog.Debug("building photon cannons", "count", len(cmds), "existing", existing)
	return cmds
}

func randomReadyPylon(env RuleEnv, rng *rand.Rand) (model.Unit, bool) {
	pylons := env.State.ReadyOwned(model.Pylon)
	if len(pylons) == 0 {
		return model.Unit{}, false
	}
	return pylons[rng.IntN(len(pylons))], true
}

func buildNearRandomPylon(kind model.Kind) ActionFunc {
	return func(env RuleEnv, rng *rand.Rand) []ipc.Command {
		p, ok := randomReadyPylon(env, rng)
		if !ok {
			return nil
		}
		slog.Debug("building near pylon", "item", kind, "pylon", p.ID)
		return []ipc.Command{ipc.Build(kind, p.Pos())}
	}
}

var (
	ActionBuildCyberneticsCore = buildNearRandomPylon(model.CyberneticsCore)
	ActionBuildGateway         = buildNearRandomPylon(model.Gateway)
	ActionBuildStargate        = buildNearRandomPylon(model.Stargate)
)

// ActionTrainOffense queues a void ray at every idle ready stargate.
func ActionTrainOffense(env RuleEnv, _ *rand.Rand) []ipc.Command {
	var cmds []ipc.Command
	for _, sg := range env.State.ReadyNoQueue(model.Stargate) {
		if !env.State.CanAfford(model.VoidRay) || env.SupplyLeft() <= 0 {
			break
		}
		slog.Debug("training void ray", "stargate", sg.ID)
		cmds = append(cmds, ipc.Train(sg.ID, model.VoidRay))
	}
	return cmds
}

// attackWith sends every idle unit of kind at a freshly chosen target.
// Each unit draws its own target, spreading a large group across enemies.
func attackWith(kind model.Kind) ActionFunc {
	return func(env RuleEnv, rng *rand.Rand) []ipc.Command {
		var cmds []ipc.Command
		for _, u := range env.State.IdleOwned(kind) {
			t, ok := FindTarget(env.State, rng)
			if !ok {
				return cmds
			}
			cmds = append(cmds, t.Order(u.ID))
		}
		slog.Debug("attacking", "kind", kind, "units", len(cmds))
		return cmds
	}
}

// harassWith sends every idle unit of kind at a random visible enemy unit.
func harassWith(kind model.Kind) ActionFunc {
	return func(env RuleEnv, rng *rand.Rand) []ipc.Command {
		enemies := env.State.EnemyUnits
		if len(enemies) == 0 {
			return nil
		}
		var cmds []ipc.Command
		for _, u := range env.State.IdleOwned(kind) {
			e := enemies[rng.IntN(len(enemies))]
			cmds = append(cmds, ipc.AttackUnit(u.ID, e.ID))
		}
		slog.Debug("harassing", "kind", kind, "units", len(cmds))
		return cmds
	}
}
