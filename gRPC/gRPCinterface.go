package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative detect.proto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"net"
	"os"
	"runtime"
	"sync"
	"time"

	"ObbTileServer/engine"
	iface "ObbTileServer/interface"
	"ObbTileServer/logger"
	"ObbTileServer/merger"
	"ObbTileServer/monitor"
	"ObbTileServer/pipeline"
	"ObbTileServer/tiler"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gocv.io/x/gocv"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// EngineEntry binds one backend to the tiling and merge parameters it was
// initialized with.
type EngineEntry struct {
	backend     iface.Backend
	Description string
	Tiling      tiler.Config
	Merging     merger.Config
	Workers     int
}

var (
	DSequences map[string]EngineEntry
	seqMu      sync.Mutex
	mapMu      sync.RWMutex
)

func (e *EngineEntry) add2Seq(backend iface.Backend, description string) string {
	e.backend = backend
	e.Description = description
	UUID := uuid.New().String()
	DSequences[UUID] = *e
	logger.Log().Info("Engine added", zap.String("ID", UUID), zap.String("description", description))
	return UUID
}

// BytesToMat decodes encoded image bytes (jpg/png/tiff) into a gocv.Mat.
func BytesToMat(data []byte) (gocv.Mat, error) {
	mat, _ := gocv.IMDecode(data, gocv.IMReadColor)
	if mat.Empty() {
		if err := mat.Close(); err != nil {
			return gocv.Mat{}, err
		}
		return gocv.NewMat(), errors.New("decoded image is empty or unsupported format")
	}
	return mat, nil
}

// JobPackage is one whole-image inference request queued for a worker.
type JobPackage struct {
	ctx    context.Context
	entry  EngineEntry
	image  []byte
	Result chan jobResult
}

type jobResult struct {
	Data pipeline.Result
	Err  error
}

var JobQueue chan JobPackage

var CloseChannel chan bool

func StartWorker(workerNum int) {
	for i := 0; i < workerNum; i++ {
		go runWorker(i)
	}
}

func runWorker(workerID int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log().Error(fmt.Sprintf("Worker %d panic: %v. Restarting in 1s...", workerID, r))
			time.Sleep(1 * time.Second)
			go runWorker(workerID)
		}
	}()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	logger.Log().Info(fmt.Sprintf("---Worker %d created", workerID))
	for job := range JobQueue {
		img, err := BytesToMat(job.image)
		if err != nil {
			job.Result <- jobResult{Err: fmt.Errorf("%w: %v", iface.ErrInference, err)}
			continue
		}
		result, err := pipeline.Run(job.ctx, img, job.entry.backend, job.entry.Tiling, job.entry.Merging,
			pipeline.Options{MaxConcurrentInferences: job.entry.Workers})
		if cerr := img.Close(); cerr != nil {
			logger.Log().Error(fmt.Sprintf("Worker %d: error closing image: %v", workerID, cerr))
		}
		monitor.ImagesProcessed.Inc()
		job.Result <- jobResult{Data: result, Err: err}
	}
}

type Server struct {
	UnimplementedDetectServiceServer
}

func (s *Server) InitEngine(ctx context.Context, req *InitEngineRequest) (*InitEngineResponse, error) {
	monitor.GRPCTotal.Inc()
	if req.Iou > 1.0 || req.Iou < 0.0 {
		return nil, fmt.Errorf("IoU must be between 0.0 and 1.0, got %f", req.Iou)
	}
	if req.Confidence > 1.0 || req.Confidence < 0.0 {
		return nil, fmt.Errorf("confidence must be between 0.0 and 1.0, got %f", req.Confidence)
	}
	if req.ModelPath == "" {
		return nil, fmt.Errorf("model path cannot be empty")
	}
	tiling := tiler.Config{TileSize: int(req.TileSize), Overlap: int(req.Overlap)}
	if err := tiling.Validate(); err != nil {
		return nil, err
	}
	merging := merger.Config{IoUThreshold: req.MergeIou, ScoreThreshold: req.ScoreThreshold}
	if merging.IoUThreshold == 0 {
		merging.IoUThreshold = merger.DefaultConfig().IoUThreshold
	}
	if err := merging.Validate(); err != nil {
		return nil, err
	}

	detector := &engine.Detector{}
	if !detector.New() {
		return nil, fmt.Errorf("%w: %s", iface.ErrDetectorUnavailable, detector.ErrorMessage)
	}
	names := iface.NamesConf{IsFile: false, Data: req.Names}
	seqMu.Lock()
	ok, err := detector.LoadModel(req.ModelPath, names, req.Confidence, req.Iou, req.UseGpu)
	seqMu.Unlock()
	if err != nil || !ok {
		return nil, fmt.Errorf("load model: %w", err)
	}

	entry := EngineEntry{
		Description: req.Description,
		Tiling:      tiling,
		Merging:     merging,
		Workers:     int(req.MaxConcurrent),
	}
	mapMu.Lock()
	Id := entry.add2Seq(detector, req.Description)
	mapMu.Unlock()
	logger.Log().Info("Initialized new engine",
		zap.String("ID", Id),
		zap.String("ModelPath", req.ModelPath),
		zap.Float32("Confidence", req.Confidence),
		zap.Float32("IoU", req.Iou),
		zap.Bool("UseGPU", req.UseGpu),
		zap.Int("TileSize", tiling.TileSize),
		zap.Int("Overlap", tiling.Overlap))
	return &InitEngineResponse{
		Success: true,
		Id:      Id,
		Message: "Successfully initialized engine",
	}, nil
}

func (s *Server) Inference(ctx context.Context, req *InferenceRequest) (*InferenceResponse, error) {
	monitor.GRPCTotal.Inc()
	UUID := req.Id
	mapMu.RLock()
	entry, exists := DSequences[UUID]
	mapMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("engine with ID %s not found", UUID)
	}
	inferResult := make(chan jobResult)
	defer close(inferResult)
	job := JobPackage{
		ctx:    ctx,
		entry:  entry,
		image:  req.ImgData,
		Result: inferResult,
	}
	JobQueue <- job
	results := <-inferResult
	if results.Err != nil {
		if errors.Is(results.Err, iface.ErrInference) {
			logger.Log().Error("image could not be processed", zap.Error(results.Err))
			return &InferenceResponse{
				Success: false,
				Results: make([]*SingleResult, 0),
			}, nil
		}
		// InvalidConfig / DetectorUnavailable / cancellation are
		// user-visible failures, never a silent empty result
		return nil, results.Err
	}

	singleResults := make([]*SingleResult, 0, len(results.Data.Detections))
	for _, det := range results.Data.Detections {
		corners := det.Box.Corners()
		resCorners := make([]*Position, 4)
		for i, c := range corners {
			resCorners[i] = &Position{X: int32(c[0]), Y: int32(c[1])}
		}
		singleResults = append(singleResults, &SingleResult{
			Name:       det.Class,
			Confidence: det.Conf,
			Box: &OBox{
				Cx:    det.Box.Cx,
				Cy:    det.Box.Cy,
				W:     det.Box.W,
				H:     det.Box.H,
				Angle: det.Box.Angle,
			},
			Corners: resCorners,
			Center:  &Position{X: int32(det.Box.Cx), Y: int32(det.Box.Cy)},
		})
	}
	return &InferenceResponse{
		Success:     true,
		Results:     singleResults,
		TilesTotal:  int32(results.Data.Report.TilesTotal),
		TilesFailed: int32(results.Data.Report.TilesFailed),
	}, nil
}

func (s *Server) DestroyEngine(ctx context.Context, req *DestroyEngineRequest) (*DestroyEngineResponse, error) {
	monitor.GRPCTotal.Inc()
	UUID := req.Id
	mapMu.Lock()
	entry, exists := DSequences[UUID]
	if !exists {
		mapMu.Unlock()
		logger.Log().Error("engine not found with ID", zap.String("ID", UUID))
		return nil, fmt.Errorf("engine with ID %s not found", UUID)
	}
	entry.backend.Destroy()
	delete(DSequences, UUID)
	mapMu.Unlock()
	logger.Log().Info("Destroyed engine", zap.String("ID", UUID))
	return &DestroyEngineResponse{
		Success: true,
		Message: "Engine destroyed successfully",
	}, nil
}

func engineInfo(id string, entry EngineEntry) (*EngineInfo, error) {
	cfg := entry.backend.CheckConfig()
	names := make([]string, 0)
	switch v := cfg.Names.Data.(type) {
	case []string:
		names = v
	case string:
		names = append(names, "From File")
	default:
		return nil, fmt.Errorf("unexpected type for names: %T", cfg.Names.Data)
	}
	return &EngineInfo{
		Id:             id,
		Description:    entry.Description,
		EngineType:     int32(cfg.Kind),
		ModelPath:      cfg.ModelPath,
		Names:          names,
		Confidence:     cfg.Conf,
		Iou:            cfg.Iou,
		UseGpu:         cfg.UseGPU,
		TileSize:       int32(entry.Tiling.TileSize),
		Overlap:        int32(entry.Tiling.Overlap),
		MergeIou:       entry.Merging.IoUThreshold,
		ScoreThreshold: entry.Merging.ScoreThreshold,
		MaxConcurrent:  int32(entry.Workers),
	}, nil
}

func (s *Server) CheckEngine(ctx context.Context, req *CheckEngineRequest) (*CheckEngineResponse, error) {
	monitor.GRPCTotal.Inc()
	UUID := req.Id
	mapMu.RLock()
	entry, exists := DSequences[UUID]
	mapMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("engine with ID %s not found", UUID)
	}
	info, err := engineInfo(UUID, entry)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}
	return &CheckEngineResponse{
		Success:    true,
		EngineInfo: info,
		Message:    "Engine status retrieved successfully",
	}, nil
}

func (s *Server) CheckAllEngine(ctx context.Context, req *emptypb.Empty) (*CheckAllEngineResponse, error) {
	monitor.GRPCTotal.Inc()
	mapMu.RLock()
	allSeq := maps.Clone(DSequences)
	mapMu.RUnlock()
	engineInfos := make([]*EngineInfo, 0, len(allSeq))
	for id, entry := range allSeq {
		info, err := engineInfo(id, entry)
		if err != nil {
			return nil, err
		}
		engineInfos = append(engineInfos, info)
	}
	return &CheckAllEngineResponse{
		Success: true,
		Engines: engineInfos,
		Message: "All engines status retrieved successfully",
	}, nil
}

func (s *Server) Shutdown(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error) {
	monitor.GRPCTotal.Inc()
	go func() {
		time.Sleep(2 * time.Second)
		mapMu.Lock()
		for id, entry := range DSequences {
			entry.backend.Destroy()
			delete(DSequences, id)
		}
		mapMu.Unlock()
		close(JobQueue)
		fmt.Println("Server shutting down in 1 second...")
		time.Sleep(1 * time.Second)
	}()
	CloseChannel <- true
	logger.Log().Warn("Shutting down in 1 second...")
	close(CloseChannel)
	return &emptypb.Empty{}, nil
}

func (s *Server) UploadModel(stream DetectService_UploadModelServer) error {
	monitor.GRPCTotal.Inc()
	var outFile *os.File
	var fileSize int
	var filePath string

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			if outFile != nil {
				outFile.Close()
			}
			return stream.SendAndClose(&UploadFileResponse{
				Success:  true,
				Message:  "File uploaded successfully",
				FilePath: filePath,
			})
		}
		if err != nil {
			return err
		}

		switch payload := req.Data.(type) {
		case *UploadFileRequest_FileInfo:
			saveDir := "models/"
			fileName := payload.FileInfo.Name
			if fileName == "" {
				return fmt.Errorf("file name cannot be empty")
			}
			filePath = saveDir + fileName
			outFile, err = os.Create(filePath)
			if err != nil {
				return err
			}
		case *UploadFileRequest_ChunkData:
			if outFile == nil {
				return fmt.Errorf("file not opened, please send file info first")
			}
			n, writeErr := outFile.Write(payload.ChunkData)
			if writeErr != nil {
				return fmt.Errorf("failed to write chunk data: %v", writeErr)
			}
			fileSize += n
		}
	}
}

func StartGRPCServer(addr int) *grpc.Server {
	CloseChannel = make(chan bool)
	port := fmt.Sprintf(":%d", addr)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		fmt.Printf("Failed to listen on port %s: %v\n", port, err)
	}
	s := grpc.NewServer()
	go func() {
		RegisterDetectServiceServer(s, &Server{})
		log.Printf("server listening on port %s\n", port)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()
	return s
}
