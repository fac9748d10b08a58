package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/napolitain/solver-craft/internal/httpapi"
	"github.com/napolitain/solver-craft/internal/loader"
	"github.com/napolitain/solver-craft/internal/logging"
	"github.com/napolitain/solver-craft/internal/models"
	"github.com/napolitain/solver-craft/internal/solver/craft"
)

var (
	port       = flag.Int("port", 8080, "The server port")
	configFile = flag.String("config", "", "Path to YAML setting file")
	logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat  = flag.String("log-format", "text", "Log format (text, json)")
	workers    = flag.Int("workers", 0, "Goroutines per CP layer (0 = GOMAXPROCS)")
)

func main() {
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Init(level, *logFormat)
	logger := logging.New("server")

	setting := models.DefaultSetting()
	if *configFile != "" {
		setting, err = loader.LoadSetting(*configFile)
		if err != nil {
			logger.Error("failed to load setting", slog.Any("error", err))
			os.Exit(1)
		}
	}

	values, policy := craft.BuildTable(setting, craft.WithWorkers(*workers))
	h := httpapi.Handler{Setting: setting, Values: values, Policy: policy}

	addr := fmt.Sprintf(":%d", *port)
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	logger.Info("crafter server listening", "addr", addr, "max_cp", setting.MaxCP, "max_durability", setting.MaxDurability)
	s.Spin()
}
