package rules

import "fmt"

// CompilePolicy generates the full rule set from a policy. Thresholds are
// interpolated into the conditions with fmt.Sprintf, so the compiled rules
// carry their constants and never read mutable state.
//
// Priorities encode the fixed per-tick evaluation order.
func CompilePolicy(p Policy) []*Rule {
	p.Validate()
	var rules []*Rule

	// --- Economy ---

	rules = append(rules, &Rule{
		Name:         "distribute-workers",
		Priority:     1000,
		Category:     "economy",
		ConditionSrc: `IdleCount("probe") > 0`,
		Action:       ActionDistributeWorkers,
	})

	rules = append(rules, &Rule{
		Name:         "train-workers",
		Priority:     950,
		Category:     "economy",
		ConditionSrc: fmt.Sprintf(`Count("nexus") * %d > Count("probe") && Count("probe") < %d && ReadyNoQueueCount("nexus") > 0 && CanAfford("probe")`, p.WorkersPerMain, p.MaxWorkers),
		Action:       ActionTrainWorkers,
	})

	rules = append(rules, &Rule{
		Name:         "build-supply",
		Priority:     900,
		Category:     "economy",
		ConditionSrc: fmt.Sprintf(`SupplyLeft() < %d && Pending("pylon") == 0 && ReadyCount("nexus") > 0 && CanAfford("pylon")`, p.SupplyMargin),
		Action:       ActionBuildSupply,
	})

	rules = append(rules, &Rule{
		Name:         "build-gas",
		Priority:     850,
		Category:     "economy",
		ConditionSrc: `ReadyCount("nexus") > 0 && Count("assimilator") < Count("nexus") && CanAfford("assimilator")`,
		Action:       ActionBuildGas,
	})

	// --- Expansion ---

	rules = append(rules, &Rule{
		Name:         "build-second-main",
		Priority:     800,
		Category:     "expansion",
		ConditionSrc: fmt.Sprintf(`CanAfford("nexus") && Count("nexus") > 0 && Count("nexus") < %d && HasExpansion()`, p.SecondMainCap),
		Action:       ActionBuildSecondMain,
	})

	rules = append(rules, &Rule{
		Name:         "expand",
		Priority:     750,
		Category:     "expansion",
		ConditionSrc: fmt.Sprintf(`Count("nexus") < Minutes() && CanAfford("nexus") && Count("nexus") <= %d`, p.MaxMainStructures),
		Action:       ActionExpand,
	})

	// --- Static defense ---

	rules = append(rules, &Rule{
		Name:         "build-forge",
		Priority:     700,
		Category:     "defense",
		ConditionSrc: `ReadyCount("nexus") > 0 && ReadyCount("pylon") > 0 && Count("forge") < 1 && CanAfford("forge")`,
		Action:       ActionBuildForge,
	})

	rules = append(rules, &Rule{
		Name:         "build-cannons",
		Priority:     650,
		Category:     "defense",
		ConditionSrc: fmt.Sprintf(`ReadyCount("nexus") > 0 && ReadyCount("pylon") >= %d && ReadyCount("forge") > 0 && CanAfford("photoncannon") && Count("photoncannon") < %d`, p.DefenseSupportPrereq, p.DefenseEmplacementCap),
		Action:       ActionBuildCannons,
	})

	// --- Tech and production buildings ---
	// The gateway rule is the "else" branch of the cybernetics core rule:
	// while a finished gateway waits for its core, no more gateways go up.

	coreWanted := `ReadyCount("gateway") > 0 && Count("cyberneticscore") == 0`

	rules = append(rules, &Rule{
		Name:         "build-cybernetics-core",
		Priority:     600,
		Category:     "tech",
		ConditionSrc: fmt.Sprintf(`ReadyCount("pylon") > 0 && %s && CanAfford("cyberneticscore") && Pending("cyberneticscore") == 0`, coreWanted),
		Action:       ActionBuildCyberneticsCore,
	})

	rules = append(rules, &Rule{
		Name:         "build-gateway",
		Priority:     590,
		Category:     "tech",
		ConditionSrc: fmt.Sprintf(`ReadyCount("pylon") > 0 && !(%s) && Count("gateway") < Minutes() / 2 && CanAfford("gateway") && Pending("gateway") == 0 && Count("gateway") < %d`, coreWanted, p.EarlyProductionCap),
		Action:       ActionBuildGateway,
	})

	rules = append(rules, &Rule{
		Name:         "build-stargate",
		Priority:     550,
		Category:     "tech",
		ConditionSrc: fmt.Sprintf(`ReadyCount("pylon") > 0 && ReadyCount("cyberneticscore") > 0 && Count("stargate") < Minutes() && CanAfford("stargate") && Pending("stargate") == 0 && Count("stargate") < Count("nexus") * %d`, p.AdvancedPerMain),
		Action:       ActionBuildStargate,
	})

	// --- Army ---

	rules = append(rules, &Rule{
		Name:         "train-offense",
		Priority:     500,
		Category:     "production",
		ConditionSrc: `ReadyNoQueueCount("stargate") > 0 && CanAfford("voidray") && SupplyLeft() > 0`,
		Action:       ActionTrainOffense,
	})

	// --- Combat (one pair of rules per aggressive unit kind) ---

	priority := 400
	for _, k := range p.aggressiveKinds() {
		t := p.Aggression[k.String()]
		full := fmt.Sprintf(`Count("%s") > %d && Count("%s") > %d`, k, t.Aggressive, k, t.Minimum)

		rules = append(rules, &Rule{
			Name:         "attack-" + k.String(),
			Priority:     priority,
			Category:     "combat",
			ConditionSrc: fmt.Sprintf(`%s && IdleCount("%s") > 0`, full, k),
			Action:       attackWith(k),
		})

		rules = append(rules, &Rule{
			Name:         "harass-" + k.String(),
			Priority:     priority - 1,
			Category:     "combat",
			ConditionSrc: fmt.Sprintf(`!(%s) && Count("%s") > %d && EnemyUnitCount() > 0 && IdleCount("%s") > 0`, full, k, t.Minimum, k),
			Action:       harassWith(k),
		})
		priority -= 10
	}

	return rules
}
