package ipc

// These constants must stay in sync with the engine-side bridge.
const (
	TypeHello     = "hello"
	TypeAck       = "ack"
	TypeGameState = "game_state"
	TypeCommands  = "commands"
)

// HelloMessage carries the match setup the engine was started with.
type HelloMessage struct {
	Player     string `json:"player"`
	Race       string `json:"race"`
	Map        string `json:"map"`
	Opponent   string `json:"opponent"`
	Difficulty string `json:"difficulty"`
	Realtime   bool   `json:"realtime"`
}

type AckMessage struct {
	Status string `json:"status"`
}

// CommandsMessage is the reply to a game state: every command for that tick, in order.
type CommandsMessage struct {
	Tick     int       `json:"tick"`
	Commands []Command `json:"commands"`
}
