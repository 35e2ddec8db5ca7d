package model

// WorldSnapshot is the per-tick view of the match sent by the engine.
// It is rebuilt every tick and never mutated by the bot.
type WorldSnapshot struct {
	Tick                int            `json:"tick"`
	Minerals            int            `json:"minerals"`
	Vespene             int            `json:"vespene"`
	SupplyUsed          int            `json:"supplyUsed"`
	SupplyCap           int            `json:"supplyCap"`
	Units               []Unit         `json:"units"`
	Pending             map[Kind]int   `json:"pending"`
	Costs               map[Kind]Cost  `json:"costs"`
	Geysers             []ResourceNode `json:"geysers"`
	EnemyUnits          []Enemy        `json:"enemyUnits"`
	EnemyStructures     []Enemy        `json:"enemyStructures"`
	EnemyStartLocations []Point        `json:"enemyStartLocations"`
	Expansions          []Point        `json:"expansions"`
}

// Unit is anything we own: workers, army and structures alike.
type Unit struct {
	ID        int     `json:"id"`
	Kind      Kind    `json:"kind"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Ready     bool    `json:"ready"`     // construction finished
	Idle      bool    `json:"idle"`      // no current order
	Gathering bool    `json:"gathering"` // mining; may be pulled to build
	Queued    int     `json:"queued"`    // items in a producer's training queue
}

func (u Unit) Pos() Point { return Point{X: u.X, Y: u.Y} }

// Cost is what the engine reports an item costs to train or build.
type Cost struct {
	Minerals int `json:"minerals"`
	Vespene  int `json:"vespene"`
	Supply   int `json:"supply"`
}

type ResourceNode struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func (r ResourceNode) Pos() Point { return Point{X: r.X, Y: r.Y} }

// Enemy keeps the engine's raw type name; opponents may field any race.
type Enemy struct {
	ID   int     `json:"id"`
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (e Enemy) Pos() Point { return Point{X: e.X, Y: e.Y} }

// SupplyLeft is the remaining supply headroom. It is never negative.
func (s WorldSnapshot) SupplyLeft() int {
	if left := s.SupplyCap - s.SupplyUsed; left > 0 {
		return left
	}
	return 0
}

// Owned returns all units of kind k, finished or not.
func (s WorldSnapshot) Owned(k Kind) []Unit {
	var out []Unit
	for _, u := range s.Units {
		if u.Kind == k {
			out = append(out, u)
		}
	}
	return out
}

// ReadyOwned returns finished units of kind k.
func (s WorldSnapshot) ReadyOwned(k Kind) []Unit {
	var out []Unit
	for _, u := range s.Units {
		if u.Kind == k && u.Ready {
			out = append(out, u)
		}
	}
	return out
}

// ReadyNoQueue returns finished producers of kind k with an empty queue.
func (s WorldSnapshot) ReadyNoQueue(k Kind) []Unit {
	var out []Unit
	for _, u := range s.Units {
		if u.Kind == k && u.Ready && u.Queued == 0 {
			out = append(out, u)
		}
	}
	return out
}

// IdleOwned returns units of kind k without an order.
func (s WorldSnapshot) IdleOwned(k Kind) []Unit {
	var out []Unit
	for _, u := range s.Units {
		if u.Kind == k && u.Idle {
			out = append(out, u)
		}
	}
	return out
}

func (s WorldSnapshot) Count(k Kind) int {
	n := 0
	for _, u := range s.Units {
		if u.Kind == k {
			n++
		}
	}
	return n
}

// CanAfford is inclusive: exactly enough resources is enough.
// An item the engine did not price is never affordable.
func (s WorldSnapshot) CanAfford(k Kind) bool {
	c, ok := s.Costs[k]
	if !ok {
		return false
	}
	if s.Minerals < c.Minerals || s.Vespene < c.Vespene {
		return false
	}
	return c.Supply <= 0 || s.SupplyLeft() >= c.Supply
}
