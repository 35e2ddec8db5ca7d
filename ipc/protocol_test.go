package ipc

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstehr/splgeo/model"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	env, err := NewEnvelope(TypeAck, AckMessage{Status: "ok"})
	require.NoError(t, err)
	require.NoError(t, WriteEnvelope(&buf, env))

	got, err := ReadEnvelope(&buf)
	require.NoError(t, err)
	assert.Equal(t, TypeAck, got.Type)

	var ack AckMessage
	require.NoError(t, json.Unmarshal(got.Data, &ack))
	assert.Equal(t, "ok", ack.Status)
}

func TestReadEnvelopeRejectsBadLengths(t *testing.T) {
	for _, length := range []uint32{0, MaxFrameSize + 1} {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, length))
		_, err := ReadEnvelope(&buf)
		assert.ErrorContains(t, err, "invalid message length")
	}
}

func TestReadEnvelopeTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(50)))
	buf.WriteString(`{"type":"ack"}`)
	_, err := ReadEnvelope(&buf)
	assert.ErrorContains(t, err, "read payload")
}

func TestCommandWireShape(t *testing.T) {
	raw, err := json.Marshal(Train(7, model.Probe))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"train","actor_id":7,"item":"probe"}`, string(raw))

	raw, err = json.Marshal(BuildWithin(model.Nexus, model.Point{X: 10, Y: 20}, 10))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"build","item":"nexus","near":{"x":10,"y":20},"max_distance":10}`, string(raw))

	raw, err = json.Marshal(DistributeWorkers())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"distribute_workers"}`, string(raw))
}

func TestReadLoopDispatchesAndReplies(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	c := NewConnection(server, nil)
	c.RegisterHandler(TypeHello, func(env Envelope) (*Envelope, error) {
		ack, err := NewEnvelope(TypeAck, AckMessage{Status: "ok"})
		return &ack, err
	})
	done := make(chan struct{})
	go func() {
		c.ReadLoop()
		close(done)
	}()

	// Unhandled types are skipped without a reply.
	unknown, err := NewEnvelope("mystery", struct{}{})
	require.NoError(t, err)
	require.NoError(t, WriteEnvelope(client, unknown))

	hello, err := NewEnvelope(TypeHello, HelloMessage{Player: "p1", Race: "protoss"})
	require.NoError(t, err)
	require.NoError(t, WriteEnvelope(client, hello))

	resp, err := ReadEnvelope(client)
	require.NoError(t, err)
	assert.Equal(t, TypeAck, resp.Type)

	client.Close()
	<-done
}
