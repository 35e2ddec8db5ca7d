package ipc

import "github.com/nstehr/splgeo/model"

// Command type constants — must stay in sync with the engine-side executor.
const (
	TypeTrain             = "train"
	TypeBuild             = "build"
	TypeBuildOn           = "build_on"
	TypeExpand            = "expand"
	TypeAttackUnit        = "attack_unit"
	TypeAttackPoint       = "attack_point"
	TypeDistributeWorkers = "distribute_workers"
)

// Command is a single order for the engine. Which fields are set depends on Type.
type Command struct {
	Type        string       `json:"type"`
	ActorID     int          `json:"actor_id,omitempty"`
	Item        model.Kind   `json:"item,omitempty"`
	TargetID    int          `json:"target_id,omitempty"`
	Target      *model.Point `json:"target,omitempty"`
	Near        *model.Point `json:"near,omitempty"`
	MaxDistance float64      `json:"max_distance,omitempty"`
}

// Train queues item at producer.
func Train(producerID int, item model.Kind) Command {
	return Command{Type: TypeTrain, ActorID: producerID, Item: item}
}

// Build asks the engine to place item near a location with a worker of its choosing.
func Build(item model.Kind, near model.Point) Command {
	return Command{Type: TypeBuild, Item: item, Near: &near}
}

// BuildWithin is Build with a bounded placement search.
func BuildWithin(item model.Kind, near model.Point, maxDistance float64) Command {
	c := Build(item, near)
	c.MaxDistance = maxDistance
	return c
}

// BuildOn orders a specific worker to build item on top of a resource node.
func BuildOn(workerID int, item model.Kind, nodeID int) Command {
	return Command{Type: TypeBuildOn, ActorID: workerID, Item: item, TargetID: nodeID}
}

// Expand lets the engine pick the next expansion location for a main structure.
func Expand() Command {
	return Command{Type: TypeExpand, Item: model.Nexus}
}

func AttackUnit(unitID, targetID int) Command {
	return Command{Type: TypeAttackUnit, ActorID: unitID, TargetID: targetID}
}

func AttackPoint(unitID int, target model.Point) Command {
	return Command{Type: TypeAttackPoint, ActorID: unitID, Target: &target}
}

// DistributeWorkers asks the engine to rebalance workers across resource sites.
func DistributeWorkers() Command {
	return Command{Type: TypeDistributeWorkers}
}
