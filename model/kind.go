package model

import (
	"fmt"
	"strings"
)

// Kind is the closed set of unit and structure types the bot reasons about.
// Anything else the engine reports decodes to Unknown and is ignored by rules.
type Kind uint8

const (
	Unknown Kind = iota
	Nexus
	Probe
	Pylon
	Assimilator
	Gateway
	CyberneticsCore
	Stargate
	VoidRay
	Forge
	PhotonCannon
)

var kindNames = [...]string{
	Unknown:         "unknown",
	Nexus:           "nexus",
	Probe:           "probe",
	Pylon:           "pylon",
	Assimilator:     "assimilator",
	Gateway:         "gateway",
	CyberneticsCore: "cyberneticscore",
	Stargate:        "stargate",
	VoidRay:         "voidray",
	Forge:           "forge",
	PhotonCannon:    "photoncannon",
}

// Kinds lists every known kind, excluding Unknown.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := Nexus; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind is case-insensitive and tolerates engine spellings such as
// "CyberneticsCore" or "VOIDRAY". Unrecognised names return Unknown, false.
func ParseKind(s string) (Kind, bool) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for i, n := range kindNames {
		if i != int(Unknown) && n == norm {
			return Kind(i), true
		}
	}
	return Unknown, false
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	*k, _ = ParseKind(string(b))
	return nil
}

// IsStructure reports whether the kind is built rather than trained.
func (k Kind) IsStructure() bool {
	switch k {
	case Nexus, Pylon, Assimilator, Gateway, CyberneticsCore, Stargate, Forge, PhotonCannon:
		return true
	}
	return false
}
