package rules

import (
	"testing"

	"github.com/nstehr/splgeo/ipc"
	"github.com/nstehr/splgeo/model"
)

// stockCosts mirrors the engine's reported prices for the Protoss build.
func stockCosts() map[model.Kind]model.Cost {
	return map[model.Kind]model.Cost{
		model.Nexus:           {Minerals: 400},
		model.Probe:           {Minerals: 50, Supply: 1},
		model.Pylon:           {Minerals: 100},
		model.Assimilator:     {Minerals: 75},
		model.Gateway:         {Minerals: 150},
		model.CyberneticsCore: {Minerals: 150},
		model.Stargate:        {Minerals: 150, Vespene: 150},
		model.VoidRay:         {Minerals: 250, Vespene: 150, Supply: 4},
		model.Forge:           {Minerals: 150},
		model.PhotonCannon:    {Minerals: 150},
	}
}

// units builds n ready units of kind k starting at firstID.
func units(k model.Kind, firstID, n int, mod func(*model.Unit)) []model.Unit {
	out := make([]model.Unit, 0, n)
	for i := range n {
		u := model.Unit{ID: firstID + i, Kind: k, Ready: true}
		if mod != nil {
			mod(&u)
		}
		out = append(out, u)
	}
	return out
}

func idle(u *model.Unit)   { u.Idle = true }
func mining(u *model.Unit) { u.Gathering = true }

func newTestEngine(t *testing.T, p Policy) *Engine {
	t.Helper()
	e, err := NewEngine(p)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func evaluate(t *testing.T, ws model.WorldSnapshot) []ipc.Command {
	t.Helper()
	return newTestEngine(t, DefaultPolicy()).Evaluate(ws)
}

// commandsFor returns the commands of the given type for item.
// Pass model.Unknown to match any item.
func commandsFor(cmds []ipc.Command, typ string, item model.Kind) []ipc.Command {
	var out []ipc.Command
	for _, c := range cmds {
		if c.Type == typ && (item == model.Unknown || c.Item == item) {
			out = append(out, c)
		}
	}
	return out
}
