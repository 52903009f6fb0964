// Package gateway is the HTTP/WebSocket surface: callers allocate a
// worker, open a session socket, stream base64 images in and get the
// merged detection records back.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"ObbTileServer/engine"
	iface "ObbTileServer/interface"
	"ObbTileServer/logger"
	"ObbTileServer/merger"
	"ObbTileServer/pipeline"
	"ObbTileServer/records"
	"ObbTileServer/tiler"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gocv.io/x/gocv"
)

const (
	IDLE = 0x1001
	BUSY = 0x1002
)

// EngineParam is the per-worker init payload.
type EngineParam struct {
	ModelPath      string
	Names          []string
	Conf           float32
	Iou            float32
	UseGPU         bool
	TileSize       int
	Overlap        int
	MergeIou       float32
	ScoreThreshold float32
	MaxConcurrent  int
	Description    string
}

type worker struct {
	mu          sync.Mutex
	State       int
	Description string
	Tiling      tiler.Config
	Merging     merger.Config
	Workers     int
	backend     iface.Backend
}

type instance struct {
	id          string
	worker      *worker
	lastActive  time.Time
	conn        *websocket.Conn
	closeOnce   sync.Once
	cancelTimer chan struct{}
	cancelOnce  sync.Once
}

// NewBackend builds a detector for one gateway worker. Swapped out in
// tests.
var NewBackend = func(param EngineParam) (iface.Backend, error) {
	d := &engine.Detector{}
	if !d.New() {
		return nil, fmt.Errorf("%w: %s", iface.ErrDetectorUnavailable, d.ErrorMessage)
	}
	names := iface.NamesConf{IsFile: false, Data: param.Names}
	ok, err := d.LoadModel(param.ModelPath, names, param.Conf, param.Iou, param.UseGPU)
	if err != nil || !ok {
		d.Destroy()
		if err == nil {
			err = errors.New("load model failed")
		}
		return nil, err
	}
	return d, nil
}

var (
	seqMu     sync.RWMutex
	workers   = map[string]*worker{}
	sessionMu sync.RWMutex
	sessions  = map[string]*instance{}
	upgrader  = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	idleTimeout = 1000 * time.Millisecond
)

func addWorker(param EngineParam) (string, error) {
	backend, err := NewBackend(param)
	if err != nil {
		return "", err
	}
	tiling := tiler.Config{TileSize: param.TileSize, Overlap: param.Overlap}
	if err := tiling.Validate(); err != nil {
		backend.Destroy()
		return "", err
	}
	merging := merger.Config{IoUThreshold: param.MergeIou, ScoreThreshold: param.ScoreThreshold}
	if err := merging.Validate(); err != nil {
		backend.Destroy()
		return "", err
	}
	w := &worker{
		State:       IDLE,
		Description: param.Description,
		Tiling:      tiling,
		Merging:     merging,
		Workers:     param.MaxConcurrent,
		backend:     backend,
	}
	id := uuid.New().String()
	seqMu.Lock()
	workers[id] = w
	seqMu.Unlock()
	if param.UseGPU {
		logger.S().Infow("warming up worker", "id", id)
		warmMat := gocv.NewMatWithSize(32, 32, gocv.MatTypeCV8UC3)
		for i := 0; i < 3; i++ {
			// 防止 Detect 内部 panic 导致服务崩溃，保护性调用
			func() {
				defer func() {
					if r := recover(); r != nil {
						logger.S().Warnw("panic during warmup detect", "err", r)
					}
				}()
				_, _ = w.backend.Detect(warmMat)
			}()
		}
		_ = warmMat.Close()
		logger.S().Infow("warm up finished", "id", id)
	}
	return id, nil
}

func allocInstance() (string, string, error) {
	seqMu.RLock()
	var chosenID string
	var chosen *worker
	for id, w := range workers {
		w.mu.Lock()
		if w.State == IDLE {
			w.State = BUSY
			chosenID = id
			chosen = w
			w.mu.Unlock()
			break
		}
		w.mu.Unlock()
	}
	seqMu.RUnlock()
	if chosen == nil {
		return "", "", errors.New("no available workers")
	}

	sessionID := uuid.New().String()
	inst := &instance{
		id:          sessionID,
		worker:      chosen,
		lastActive:  time.Now(),
		cancelTimer: make(chan struct{}),
	}

	sessionMu.Lock()
	sessions[sessionID] = inst
	sessionMu.Unlock()

	return sessionID, chosenID, nil
}

func releaseInstance(sessionID string) bool {
	sessionMu.Lock()
	inst, ok := sessions[sessionID]
	if ok {
		delete(sessions, sessionID)
	}
	sessionMu.Unlock()
	if !ok {
		return false
	}

	inst.closeOnce.Do(func() {
		if inst.conn != nil {
			_ = inst.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "1000 ms not active, released"))
			_ = inst.conn.Close()
		}
	})
	inst.cancelOnce.Do(func() {
		close(inst.cancelTimer)
	})
	inst.worker.mu.Lock()
	inst.worker.State = IDLE
	inst.worker.mu.Unlock()
	return true
}

func startIdleMonitor(inst *instance) {
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-inst.cancelTimer:
				return
			case <-ticker.C:
				if time.Since(inst.lastActive) > idleTimeout {
					_ = releaseInstance(inst.id)
					logger.S().Infow("idle session released", "session", inst.id)
					return
				}
			}
		}
	}()
}

// Base64ToMat 将 base64 字符串（可带 data:image/... 前缀）转为 gocv.Mat
func Base64ToMat(b64 string) (gocv.Mat, error) {
	if i := strings.Index(b64, ","); i != -1 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return gocv.NewMat(), err
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return gocv.NewMat(), err
	}
	if mat.Empty() {
		if err := mat.Close(); err != nil {
			return gocv.Mat{}, err
		}
		return gocv.NewMat(), errors.New("decoded image is empty or unsupported format")
	}
	return mat, nil
}

// Router builds the gin engine with all gateway routes.
func Router() *gin.Engine {
	r := gin.Default()
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.POST("/api/workers/init/:count", func(c *gin.Context) {
		countStr := c.Param("count")
		var count int
		_, err := fmt.Sscanf(countStr, "%d", &count)
		if err != nil || count <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count"})
			return
		}

		var initParam EngineParam
		if err := c.ShouldBindJSON(&initParam); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// 设置默认值（如果客户端未提供）
		if initParam.Conf == 0 {
			initParam.Conf = 0.5
		}
		if initParam.Iou == 0 {
			initParam.Iou = 0.5
		}
		if initParam.TileSize == 0 {
			initParam.TileSize = 1024
		}
		if initParam.Overlap == 0 {
			initParam.Overlap = 200
		}
		if initParam.MergeIou == 0 {
			initParam.MergeIou = merger.DefaultConfig().IoUThreshold
		}
		if initParam.Names == nil {
			initParam.Names = iface.DOTANames
		}

		logger.S().Infow("creating workers", "count", count, "model", initParam.ModelPath)
		ids := make([]string, 0, count)
		for i := 0; i < count; i++ {
			id, err := addWorker(initParam)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "created": ids})
				return
			}
			ids = append(ids, id)
		}

		c.JSON(http.StatusOK, gin.H{"data": ids})
	})
	r.GET("/api/workers/check/:id", func(c *gin.Context) {
		id := c.Param("id")
		seqMu.RLock()
		w, exists := workers[id]
		seqMu.RUnlock()
		if !exists {
			c.JSON(404, gin.H{"error": "Worker not found"})
			return
		}
		w.mu.Lock()
		state := w.State
		description := w.Description
		tiling := w.Tiling
		w.mu.Unlock()
		retData := map[string]any{
			"state":       state,
			"description": description,
			"tileSize":    tiling.TileSize,
			"overlap":     tiling.Overlap,
		}
		c.JSON(200, gin.H{"data": retData})
	})
	r.POST("/api/workers/alloc", func(c *gin.Context) {
		sessionID, workerID, err := allocInstance()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All workers are busy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionID": sessionID,
			"workerID":  workerID,
			"wsURL":     fmt.Sprintf("ws://%s/ws/%s", c.Request.Host, sessionID),
			"timeoutMs": idleTimeout.Milliseconds(),
		})
	})
	r.POST("/api/workers/:sessionID/release", func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		if !releaseInstance(sessionID) {
			c.JSON(404, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(200, gin.H{"data": "Session released"})
	})
	r.GET("/ws/:sessionID", func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		// 在升级前检查会话是否存在
		sessionMu.RLock()
		inst, exists := sessions[sessionID]
		sessionMu.RUnlock()
		if !exists {
			c.JSON(404, gin.H{"error": "Session not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// 升级失败，不要再写 JSON
			return
		}
		inst.conn = conn
		conn.SetReadLimit(64 * 1024 * 1024)

		startIdleMonitor(inst)
		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				releaseInstance(sessionID)
				logger.S().Infow("connection closed for session", "session", sessionID, "err", err)
				return
			}
			inst.lastActive = time.Now()
			switch mt {
			case websocket.TextMessage:
				// 文本消息：base64 图像
				mat, err := Base64ToMat(string(msg))
				if err != nil {
					_ = conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("invalid image: %v", err)))
					continue
				}
				w := inst.worker
				result, err := pipeline.Run(c.Request.Context(), mat, w.backend, w.Tiling, w.Merging,
					pipeline.Options{MaxConcurrentInferences: w.Workers})
				_ = mat.Close()
				if err != nil {
					_ = conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("inference error: %v", err)))
					continue
				}
				var buf bytes.Buffer
				fmt.Fprintf(&buf, "# tiles=%d failed=%d\n", result.Report.TilesTotal, result.Report.TilesFailed)
				if err := records.Write(&buf, result.Detections); err != nil {
					_ = conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("encode error: %v", err)))
					continue
				}
				_ = conn.WriteMessage(websocket.TextMessage, buf.Bytes())
			default:
				_ = conn.WriteMessage(websocket.TextMessage, []byte("unsupported message type"))
			}
		}
	})
	r.POST("/api/models/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File upload failed: " + err.Error()})
			return
		}

		modelPath := fmt.Sprintf("./models/%s", file.Filename)
		err = c.SaveUploadedFile(file, modelPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": modelPath})
	})
	return r
}

// Serve runs the gateway until ctx is cancelled.
func Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: Router(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
