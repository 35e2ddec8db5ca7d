package model

import "testing"

func TestCanAffordIsInclusive(t *testing.T) {
	s := WorldSnapshot{
		Minerals:   100,
		Vespene:    0,
		SupplyUsed: 10,
		SupplyCap:  11,
		Costs: map[Kind]Cost{
			Pylon:   {Minerals: 100},
			Probe:   {Minerals: 50, Supply: 1},
			VoidRay: {Minerals: 250, Vespene: 150, Supply: 4},
		},
	}
	if !s.CanAfford(Pylon) {
		t.Error("exactly 100 minerals should afford a 100-mineral pylon")
	}
	if !s.CanAfford(Probe) {
		t.Error("exactly 1 supply left should afford a 1-supply probe")
	}
	if s.CanAfford(VoidRay) {
		t.Error("void ray should not be affordable")
	}
	if s.CanAfford(Forge) {
		t.Error("unpriced kind must not be affordable")
	}
}

func TestSupplyLeftNeverNegative(t *testing.T) {
	s := WorldSnapshot{SupplyUsed: 20, SupplyCap: 15}
	if got := s.SupplyLeft(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	s = WorldSnapshot{SupplyUsed: 12, SupplyCap: 15}
	if got := s.SupplyLeft(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestOwnershipFilters(t *testing.T) {
	s := WorldSnapshot{
		Units: []Unit{
			{ID: 1, Kind: Nexus, Ready: true, Queued: 0},
			{ID: 2, Kind: Nexus, Ready: true, Queued: 1},
			{ID: 3, Kind: Nexus, Ready: false},
			{ID: 4, Kind: Probe, Ready: true, Idle: true},
			{ID: 5, Kind: Probe, Ready: true, Gathering: true},
		},
	}
	if got := s.Count(Nexus); got != 3 {
		t.Errorf("Count(nexus) = %d, want 3", got)
	}
	if got := len(s.Owned(Nexus)); got != 3 {
		t.Errorf("Owned(nexus) = %d, want 3", got)
	}
	if got := len(s.ReadyOwned(Nexus)); got != 2 {
		t.Errorf("ReadyOwned(nexus) = %d, want 2", got)
	}
	noq := s.ReadyNoQueue(Nexus)
	if len(noq) != 1 || noq[0].ID != 1 {
		t.Errorf("ReadyNoQueue(nexus) = %v, want only nexus 1", noq)
	}
	idle := s.IdleOwned(Probe)
	if len(idle) != 1 || idle[0].ID != 4 {
		t.Errorf("IdleOwned(probe) = %v, want only probe 4", idle)
	}
}
