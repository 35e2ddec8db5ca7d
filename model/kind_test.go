package model

import (
	"encoding/json"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"nexus", Nexus, true},
		{"VoidRay", VoidRay, true},
		{"CYBERNETICS_CORE", CyberneticsCore, true},
		{" photoncannon ", PhotonCannon, true},
		{"marine", Unknown, false},
		{"unknown", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKindJSON(t *testing.T) {
	var u Unit
	if err := json.Unmarshal([]byte(`{"id":4,"kind":"Stargate","ready":true}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Kind != Stargate {
		t.Errorf("expected stargate, got %v", u.Kind)
	}

	if err := json.Unmarshal([]byte(`{"id":5,"kind":"zealot"}`), &u); err != nil {
		t.Fatalf("unmarshal unknown kind: %v", err)
	}
	if u.Kind != Unknown {
		t.Errorf("expected unknown, got %v", u.Kind)
	}
}

func TestKindsExcludesUnknown(t *testing.T) {
	for _, k := range Kinds() {
		if k == Unknown {
			t.Fatal("Kinds() must not include Unknown")
		}
	}
	if len(Kinds()) != 10 {
		t.Errorf("expected 10 kinds, got %d", len(Kinds()))
	}
}

func TestIsStructure(t *testing.T) {
	if Probe.IsStructure() || VoidRay.IsStructure() {
		t.Error("trained units reported as structures")
	}
	if !Nexus.IsStructure() || !PhotonCannon.IsStructure() {
		t.Error("structures not reported as structures")
	}
}
