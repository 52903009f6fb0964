package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"runtime"
	"strings"
	"sync"

	adhoc "ObbTileServer/Adhoc"
	"ObbTileServer/engine"
	backend "ObbTileServer/gRPC"
	"ObbTileServer/gateway"
	"ObbTileServer/logger"
	"ObbTileServer/monitor"

	"gopkg.in/yaml.v3"
)

type configStruct struct {
	RPCPort        int      `yaml:"RPCPort"`
	HTTPPort       int      `yaml:"HTTPPort"`
	MonitorPort    int      `yaml:"MonitorPort"`
	WorkersNum     int      `yaml:"workersNum"`
	TileSize       int      `yaml:"tileSize"`
	Overlap        int      `yaml:"overlap"`
	IouThreshold   float32  `yaml:"iouThreshold"`
	ScoreThreshold float32  `yaml:"scoreThreshold"`
	Names          []string `yaml:"names"`
	InstanceClass  string   `yaml:"instanceClass"`
	UseRegServer   bool     `yaml:"UseRegServer"`
	RegServerPort  int      `yaml:"RegServerPort"`
	RegServerHost  string   `yaml:"RegServerHost"`
	BackendConfig  string   `yaml:"backendConfig"`
}

func GetOutboundIP() (string, error) {
	// routing-table trick: no packet is actually sent, we only need the
	// local endpoint the kernel would pick
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return localAddr.IP.String(), nil
}

func main() {
	ip, err := GetOutboundIP()
	if err != nil {
		fmt.Println("Failed to get outbound IP:", err)
		return
	}
	fmt.Println("Outbound IP:", ip)
	var wg sync.WaitGroup
	err = logger.InitProduction()
	if err != nil {
		return
	}
	fmt.Println(strings.Repeat("#", 64))
	CPUNum := runtime.NumCPU()
	runtime.GOMAXPROCS(CPUNum)
	fmt.Printf("CPU Cores: %d\n", CPUNum)
	configData, err := os.ReadFile("config.yaml")
	if err != nil {
		fmt.Println("Failed to read config file:", err)
		return
	}
	config := configStruct{}
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		fmt.Println("Failed to parse config file:", err)
		return
	}
	fmt.Println("   gRPC Port:", config.RPCPort)
	fmt.Println("   HTTP Port:", config.HTTPPort)
	fmt.Println("Monitor Port:", config.MonitorPort)
	fmt.Println("Configured Workers Num:", config.WorkersNum)
	fmt.Println("Tile Size:", config.TileSize, "Overlap:", config.Overlap)
	fmt.Println(strings.Repeat("#", 64))
	fmt.Println("")
	if config.WorkersNum <= 0 {
		config.WorkersNum = 1
		fmt.Println(strings.Repeat("!", 64))
		fmt.Println("Invalid workersNum in config, defaulting to 1")
		fmt.Println(strings.Repeat("!", 64))
	} else if config.WorkersNum > CPUNum {
		fmt.Println(strings.Repeat("!", 64))
		fmt.Println("Please noted that workersNum exceeds CPU cores, which may lead to performance degradation.")
		fmt.Println(strings.Repeat("!", 64))
	}
	fmt.Println("")
	fmt.Println(strings.Repeat("#", 64))
	fmt.Println("If you need GPU acceleration, please make sure that your GPU has enough memory to handle multiple workers.")
	fmt.Println("A 1024x1024 tile through a YOLOv8s OBB head needs roughly 0.5GB each.")
	fmt.Println(strings.Repeat("#", 64))
	fmt.Println("")

	if config.BackendConfig == "" {
		config.BackendConfig = "backend.yaml"
	}
	if err := engine.LoadEngine(config.BackendConfig); err != nil {
		fmt.Println("Failed to load inference backend:", err)
		logger.Log().Error(err.Error())
		return
	}

	var InstanceClass int
	switch config.InstanceClass {
	case "Dml":
		InstanceClass = adhoc.DmlInstance
	case "Cuda":
		InstanceClass = adhoc.CudaInstance
	case "Rocm":
		InstanceClass = adhoc.RocmInstance
	case "Cpu":
		InstanceClass = adhoc.CpuInstance
	default:
		fmt.Println("Invalid instanceClass in config, defaulting to Cpu")
		InstanceClass = adhoc.CpuInstance
	}
	adhoc.RegServerCfg = adhoc.RegServerConfig{}
	adhoc.RegServerCfg.SetAddress(config.RegServerHost, config.RegServerPort)
	backend.JobQueue = make(chan backend.JobPackage, config.WorkersNum)
	backend.StartWorker(config.WorkersNum)
	backend.DSequences = make(map[string]backend.EngineEntry)

	ctx, cancel := context.WithCancel(context.Background())
	wg.Add(1)
	if config.UseRegServer {
		node := adhoc.NodeInfo{
			IP:            ip,
			Port:          config.RPCPort,
			InstanceClass: InstanceClass,
			TileSize:      config.TileSize,
			DetectorKind:  engine.Kind().String(),
		}
		go adhoc.SendAliveMessage(node, ctx, &wg)
	} else {
		fmt.Println("UseRegServer is set to false, skipping registration")
		wg.Done()
	}

	fmt.Println("Starting gRPC Server")
	server := backend.StartGRPCServer(config.RPCPort)
	go monitor.StartMon(config.MonitorPort, ctx)
	if config.HTTPPort > 0 {
		go func() {
			if err := gateway.Serve(ctx, config.HTTPPort); err != nil {
				logger.Log().Error(fmt.Sprintf("gateway stopped: %v", err))
			}
		}()
	}
	<-backend.CloseChannel
	cancel()
	server.GracefulStop()
	fmt.Println("Done")
	wg.Wait()
	logger.Sync()
	fmt.Println("Safely exited")
}
