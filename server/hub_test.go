package server

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarfield/calculator"
	"sarfield/model"
)

func testConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.Domain.Nx, cfg.Domain.Ny, cfg.Domain.Nz = 9, 9, 9
	return cfg
}

func TestHubHandle(t *testing.T) {
	tcs := map[string]struct {
		in   model.Msg
		want string
	}{
		"config":  {model.Msg{Type: model.MsgConfig}, model.MsgConfigSet},
		"stop":    {model.Msg{Type: model.MsgStop}, model.MsgStopped},
		"unknown": {model.Msg{Type: "pause"}, model.MsgError},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			h := NewHub(nil, testConfig())
			h.handle(tc.in)
			require.Len(t, h.reply, 1)
			reply := <-h.reply
			assert.Equal(t, tc.want, reply.Type)
		})
	}

	h := NewHub(nil, testConfig())
	h.handle(model.Msg{Type: model.MsgConfig})
	reply := <-h.reply
	var cfg model.Config
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &cfg))
	assert.Equal(t, testConfig(), cfg)
}

func TestHubRenderError(t *testing.T) {
	cfg := testConfig()
	cfg.Domain.R = 0
	h := NewHub(nil, cfg)
	h.handle(model.Msg{Type: model.MsgRender})

	// 计算失败时只回复错误，不推送场景
	require.Len(t, h.reply, 1)
	reply := <-h.reply
	assert.Equal(t, model.MsgError, reply.Type)
	assert.Contains(t, reply.Content, "stage grid")
}

func dial(t *testing.T, cfg model.Config) *websocket.Conn {
	t.Helper()
	s := NewServer("", websocket.Upgrader{}, cfg)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg model.Msg) model.Msg {
	t.Helper()
	require.NoError(t, conn.WriteJSON(&msg))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	var reply model.Msg
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestServerRender(t *testing.T) {
	cfg := testConfig()
	conn := dial(t, cfg)

	reply := roundTrip(t, conn, model.Msg{Type: model.MsgRender})
	require.Equal(t, model.MsgScene, reply.Type, reply.Content)

	var payload ScenePayload
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &payload))
	assert.NotEmpty(t, payload.Session)
	assert.True(t, payload.Axes)
	assert.True(t, payload.Grid)
	require.Len(t, payload.Lines, len(cfg.Probes.Angles))
	assert.Equal(t, "#0000ff", payload.Lines[0].Style.Color)
	assert.Len(t, payload.Sections, 2)

	require.Len(t, payload.Samples, len(cfg.Probes.Angles))
	for n, sample := range payload.Samples {
		assert.Equal(t, cfg.Probes.Angles[n], sample.Angle)
		assert.Len(t, sample.Points, cfg.Domain.Nx)
		assert.Len(t, Decode(sample.Values), cfg.Domain.Nx)
	}
	for _, v := range Decode(payload.Samples[0].Values) {
		assert.False(t, math.IsNaN(v))
	}

	require.Len(t, payload.Volumes, 1)
	v := payload.Volumes[0]
	assert.Equal(t, Dims{Nx: 9, Ny: 9, Nz: 9}, v.Dims)
	assert.Equal(t, cfg.Render.ColorMap, v.Options.ColorMap)
	assert.Equal(t, 0.0, v.Bounds[0].X)
	assert.Equal(t, cfg.Domain.L, v.Bounds[1].X)

	scalars := Decode(v.Scalars[cfg.Render.Scalars])
	require.Len(t, scalars, cfg.Domain.Size())
	dims := calculator.Shape{Nx: 9, Ny: 9, Nz: 9}
	r2 := cfg.Domain.R * cfg.Domain.R
	require.Len(t, v.Y, len(scalars))
	for n, value := range scalars {
		y, z := v.Y[n], v.Z[n]
		assert.Equal(t, y*y+z*z <= r2, !math.IsNaN(value), "point %d", n)
	}
	// 中心点 x = L/2, y = z = 0
	assert.Equal(t, cfg.Field.T0+cfg.Field.A, scalars[dims.Nx*dims.Ny*4+dims.Nx*4+4])

	require.NotNil(t, payload.Summary)
	assert.Equal(t, cfg.Field.T0+cfg.Field.A, payload.Summary.Max)
}

func TestServerMessages(t *testing.T) {
	conn := dial(t, testConfig())

	tcs := []struct {
		in   string
		want string
	}{
		{model.MsgConfig, model.MsgConfigSet},
		{"pause", model.MsgError},
		{model.MsgStop, model.MsgStopped},
	}
	// 同一连接上的回复与请求顺序一致
	for _, tc := range tcs {
		reply := roundTrip(t, conn, model.Msg{Type: tc.in})
		assert.Equal(t, tc.want, reply.Type, tc.in)
	}
}

func TestServerRenderError(t *testing.T) {
	cfg := testConfig()
	cfg.Domain.Nx = 1
	conn := dial(t, cfg)

	reply := roundTrip(t, conn, model.Msg{Type: model.MsgRender})
	assert.Equal(t, model.MsgError, reply.Type)
	assert.Contains(t, reply.Content, "invalid resolution")
}
