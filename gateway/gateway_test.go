package gateway

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

type mockBackend struct{}

func (m *mockBackend) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	return true, nil
}

func (m *mockBackend) Detect(mat gocv.Mat) (iface.DetectionSet, error) {
	return iface.DetectionSet{
		{
			Box:   geometry.NewOrientedBox(32, 32, 10, 6, 0.3),
			Class: "plane",
			Conf:  0.91,
			Frame: iface.FrameTileLocal,
		},
	}, nil
}

func (m *mockBackend) Destroy() {}

func (m *mockBackend) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{
		ModelPath: "mock.onnx",
		Names:     iface.NamesConf{Data: []string{"plane"}},
		Conf:      0.5,
		Iou:       0.5,
		Kind:      iface.SingleStage,
	}
}

func (m *mockBackend) SetInputSize(size int) {}

func initMockWorkers(t *testing.T, srv *httptest.Server, count int) []string {
	t.Helper()
	body := strings.NewReader(`{
		"ModelPath": "mock.onnx",
		"Conf": 0.5,
		"Iou": 0.5,
		"TileSize": 64,
		"Overlap": 16,
		"MergeIou": 0.5,
		"ScoreThreshold": 0.1,
		"MaxConcurrent": 1,
		"Description": "test worker"
	}`)
	resp, err := http.Post(fmt.Sprintf("%s/api/workers/init/%d", srv.URL, count), "application/json", body)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var parsed struct {
		Data []string `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Len(t, parsed.Data, count)
	return parsed.Data
}

func TestGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orig := NewBackend
	NewBackend = func(param EngineParam) (iface.Backend, error) {
		return &mockBackend{}, nil
	}
	defer func() { NewBackend = orig }()

	srv := httptest.NewServer(Router())
	defer srv.Close()

	t.Run("Ping", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/ping")
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("InitAndCheck", func(t *testing.T) {
		ids := initMockWorkers(t, srv, 2)

		resp, err := http.Get(srv.URL + "/api/workers/check/" + ids[0])
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var parsed struct {
			Data struct {
				State       int    `json:"state"`
				Description string `json:"description"`
				TileSize    int    `json:"tileSize"`
				Overlap     int    `json:"overlap"`
			} `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.Equal(t, IDLE, parsed.Data.State)
		assert.Equal(t, "test worker", parsed.Data.Description)
		assert.Equal(t, 64, parsed.Data.TileSize)
		assert.Equal(t, 16, parsed.Data.Overlap)
	})

	t.Run("CheckUnknownWorker", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/workers/check/not-a-worker")
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InitInvalidCount", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/workers/init/0", "application/json", strings.NewReader(`{}`))
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("InitBadTiling", func(t *testing.T) {
		body := strings.NewReader(`{"ModelPath": "mock.onnx", "TileSize": 64, "Overlap": 64}`)
		resp, err := http.Post(srv.URL+"/api/workers/init/1", "application/json", body)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("AllocAndRelease", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/workers/alloc", "application/json", nil)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var parsed struct {
			SessionID string `json:"sessionID"`
			WorkerID  string `json:"workerID"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.NotEmpty(t, parsed.SessionID)
		assert.NotEmpty(t, parsed.WorkerID)

		rel, err := http.Post(srv.URL+"/api/workers/"+parsed.SessionID+"/release", "application/json", nil)
		assert.NoError(t, err)
		defer rel.Body.Close()
		assert.Equal(t, http.StatusOK, rel.StatusCode)

		// second release of the same session must 404
		rel2, err := http.Post(srv.URL+"/api/workers/"+parsed.SessionID+"/release", "application/json", nil)
		assert.NoError(t, err)
		defer rel2.Body.Close()
		assert.Equal(t, http.StatusNotFound, rel2.StatusCode)
	})

	t.Run("WebSocketSession", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/workers/alloc", "application/json", nil)
		assert.NoError(t, err)
		var parsed struct {
			SessionID string `json:"sessionID"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		resp.Body.Close()
		defer releaseInstance(parsed.SessionID)

		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + parsed.SessionID
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		assert.NoError(t, err)
		defer conn.Close()

		img := gocv.NewMatWithSize(64, 64, gocv.MatTypeCV8UC3)
		defer img.Close()
		buf, err := gocv.IMEncode(".jpg", img)
		assert.NoError(t, err)
		defer buf.Close()
		b64 := base64.StdEncoding.EncodeToString(buf.GetBytes())

		assert.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(b64)))
		assert.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		_, msg, err := conn.ReadMessage()
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(msg)), "\n")
		// header then one record per merged detection
		assert.Equal(t, "# tiles=1 failed=0", lines[0])
		assert.Len(t, lines, 2)
		fields := strings.Fields(lines[1])
		assert.Len(t, fields, 7)
		assert.Equal(t, "plane", fields[0])

		// garbage payload gets an error message, session stays alive
		assert.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not-base64!!!")))
		_, msg, err = conn.ReadMessage()
		assert.NoError(t, err)
		assert.Contains(t, string(msg), "invalid image")
	})

	t.Run("WebSocketUnknownSession", func(t *testing.T) {
		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/no-such-session"
		_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		assert.Error(t, err)
		if resp != nil {
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		}
	})
}
