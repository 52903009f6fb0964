package proto

import (
	"context"
	"testing"
	"time"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"
	"ObbTileServer/merger"
	"ObbTileServer/tiler"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

type MockBackend struct{}

func (m *MockBackend) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	return true, nil
}

func (m *MockBackend) Detect(mat gocv.Mat) (iface.DetectionSet, error) {
	// one plane per tile, always at the same local spot: the merger
	// collapses the overlap duplicates
	return iface.DetectionSet{
		{
			Box:   geometry.NewOrientedBox(50, 50, 40, 20, 0.5),
			Class: "plane",
			Conf:  0.99,
			Frame: iface.FrameTileLocal,
		},
	}, nil
}

func (m *MockBackend) Destroy() {}

func (m *MockBackend) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{
		ModelPath: "mock",
		Names:     iface.NamesConf{Data: []string{"plane"}},
		Conf:      0.99,
		Iou:       0.5,
		UseGPU:    false,
		Kind:      iface.SingleStage,
	}
}

func (m *MockBackend) SetInputSize(size int) {}

func TestMockEngine(t *testing.T) {
	backend := &MockBackend{}
	entry := &EngineEntry{
		Tiling:  tiler.Config{TileSize: 128, Overlap: 32},
		Merging: merger.Config{IoUThreshold: 0.5, ScoreThreshold: 0.1},
		Workers: 1,
	}
	DSequences = make(map[string]EngineEntry)
	mapMu.Lock()
	id := entry.add2Seq(backend, "mock_worker")
	mapMu.Unlock()

	server := StartGRPCServer(50051)
	defer server.GracefulStop()

	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to connect to gRPC server: %v", err)
	}
	defer conn.Close()

	client := NewDetectServiceClient(conn)
	JobQueue = make(chan JobPackage, 10)
	StartWorker(1)
	time.Sleep(500 * time.Millisecond)

	t.Run("Test Inference", func(t *testing.T) {
		MockImg := gocv.NewMatWithSize(224, 224, gocv.MatTypeCV8UC3)
		defer MockImg.Close()

		buf, err := gocv.IMEncode(".jpg", MockImg)
		if err != nil {
			t.Fatalf("Failed to encode image: %v", err)
		}
		defer buf.Close()

		req := &InferenceRequest{
			Id:      id,
			ImgData: buf.GetBytes(),
		}
		resp, err := client.Inference(context.Background(), req)
		if err != nil {
			t.Fatalf("Inference failed: %v", err)
		}
		assert.True(t, resp.Success)
		// 224x224 with 128px tiles, stride 96: offsets {0,96} per axis,
		// every tile reports the same local box, so at least the (0,0)
		// copy must survive
		assert.Equal(t, int32(4), resp.TilesTotal)
		assert.Equal(t, int32(0), resp.TilesFailed)
		assert.NotEmpty(t, resp.Results)
		for _, r := range resp.Results {
			assert.Equal(t, "plane", r.Name)
			assert.InDelta(t, 0.99, r.Confidence, 0.0001)
			assert.NotNil(t, r.Box)
			assert.InDelta(t, 0.5, r.Box.Angle, 0.0001)
			assert.Len(t, r.Corners, 4)
		}
	})

	t.Run("Test Inference bad image", func(t *testing.T) {
		resp, err := client.Inference(context.Background(), &InferenceRequest{
			Id:      id,
			ImgData: []byte("not an image"),
		})
		if err != nil {
			t.Fatalf("Inference failed: %v", err)
		}
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Results)
	})

	t.Run("Test Inference unknown engine", func(t *testing.T) {
		_, err := client.Inference(context.Background(), &InferenceRequest{
			Id:      "no-such-engine",
			ImgData: []byte{},
		})
		assert.Error(t, err)
	})

	t.Run("Test CheckEngine", func(t *testing.T) {
		resp, err := client.CheckEngine(context.Background(), &CheckEngineRequest{Id: id})
		if err != nil {
			t.Fatalf("CheckEngine failed: %v", err)
		}
		info := resp.EngineInfo
		assert.Equal(t, "mock", info.ModelPath)
		assert.InDelta(t, 0.99, info.Confidence, 0.0001)
		assert.Equal(t, []string{"plane"}, info.Names)
		assert.Equal(t, int32(128), info.TileSize)
		assert.Equal(t, int32(32), info.Overlap)
	})

	t.Run("Test CheckAllEngine", func(t *testing.T) {
		resp, err := client.CheckAllEngine(context.Background(), &emptypb.Empty{})
		if err != nil {
			t.Fatalf("CheckAllEngine failed: %v", err)
		}
		if assert.Len(t, resp.Engines, 1) {
			info := resp.Engines[0]
			assert.Equal(t, id, info.Id)
			assert.Equal(t, "mock", info.ModelPath)
		}
	})
}
