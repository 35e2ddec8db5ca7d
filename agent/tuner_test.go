package agent

import (
	"context"
	"testing"
	"time"

	"github.com/nstehr/splgeo/rules"
)

func TestTuner_NewEngineUsesCurrentPolicy(t *testing.T) {
	p := rules.DefaultPolicy()
	p.MaxWorkers = 60
	tuner := NewTuner(p)

	e, err := tuner.NewEngine("s1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if got := e.Policy().MaxWorkers; got != 60 {
		t.Errorf("MaxWorkers = %d, want 60", got)
	}
}

func TestTuner_SubmitKeepsLatest(t *testing.T) {
	tuner := NewTuner(rules.DefaultPolicy())

	first := rules.DefaultPolicy()
	first.MaxWorkers = 10
	second := rules.DefaultPolicy()
	second.MaxWorkers = 20

	tuner.Submit(first)
	tuner.Submit(second)

	select {
	case p := <-tuner.updates:
		if p.MaxWorkers != 20 {
			t.Errorf("queued MaxWorkers = %d, want 20", p.MaxWorkers)
		}
	default:
		t.Fatal("expected a queued update")
	}
}

func TestTuner_AppliesToLiveEngines(t *testing.T) {
	tuner := NewTuner(rules.DefaultPolicy())
	live, err := tuner.NewEngine("live")
	if err != nil {
		t.Fatal(err)
	}
	gone, err := tuner.NewEngine("gone")
	if err != nil {
		t.Fatal(err)
	}
	tuner.Release("gone")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tuner.Start(ctx)

	next := rules.DefaultPolicy()
	next.WorkersPerMain = 22
	tuner.Submit(next)

	deadline := time.Now().Add(2 * time.Second)
	for live.Policy().WorkersPerMain != 22 {
		if time.Now().After(deadline) {
			t.Fatal("live engine never received the new policy")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := tuner.Current().WorkersPerMain; got != 22 {
		t.Errorf("Current().WorkersPerMain = %d, want 22", got)
	}
	if got := gone.Policy().WorkersPerMain; got != rules.DefaultPolicy().WorkersPerMain {
		t.Errorf("released engine was updated: WorkersPerMain = %d", got)
	}
}
