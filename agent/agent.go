package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nstehr/splgeo/ipc"
	"github.com/nstehr/splgeo/model"
	"github.com/nstehr/splgeo/rules"
)

// Agent owns the decision-making for a single engine connection.
type Agent struct {
	Conn    *ipc.Connection
	Session string
	Match   ipc.HelloMessage
	Engine  *rules.Engine
}

func New(conn *ipc.Connection, engine *rules.Engine) *Agent {
	session := uuid.NewString()
	if conn != nil {
		conn.Session = session
	}
	return &Agent{Conn: conn, Session: session, Engine: engine}
}

// HandleHello records the match setup so logs can be tied to a game.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Match = hello
	slog.Info("match identified",
		"session", a.Session,
		"player", hello.Player,
		"race", hello.Race,
		"map", hello.Map,
		"opponent", hello.Opponent,
		"difficulty", hello.Difficulty,
		"realtime", hello.Realtime,
	)
	if !strings.EqualFold(hello.Race, "protoss") {
		slog.Warn("build order only knows protoss structures", "session", a.Session, "race", hello.Race)
	}

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleGameState runs the rule engine once and replies with the tick's commands.
func (a *Agent) HandleGameState(env ipc.Envelope) (*ipc.Envelope, error) {
	var ws model.WorldSnapshot
	if err := json.Unmarshal(env.Data, &ws); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	owned := make(map[string]int)
	for _, u := range ws.Units {
		owned[u.Kind.String()]++
	}
	slog.Debug("snapshot received",
		"session", a.Session,
		"tick", ws.Tick,
		"minerals", ws.Minerals,
		"vespene", ws.Vespene,
		"supply", fmt.Sprintf("%d/%d", ws.SupplyUsed, ws.SupplyCap),
		"owned", owned,
		"enemyUnits", len(ws.EnemyUnits),
		"enemyStructures", len(ws.EnemyStructures),
	)

	cmds := a.Engine.Evaluate(ws)
	if cmds == nil {
		cmds = []ipc.Command{}
	}

	reply, err := ipc.NewEnvelope(ipc.TypeCommands, ipc.CommandsMessage{Tick: ws.Tick, Commands: cmds})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
