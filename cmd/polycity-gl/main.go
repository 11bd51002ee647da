package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"

	"polycity/internal/app"
	"polycity/internal/config"
	"polycity/internal/logging"
	"polycity/internal/window"
)

// defined flags
var (
	levelFlag   logging.LevelFlag
	configFlag  = flag.String("config", "", "YAML config file")
	logFileFlag = flag.Bool("logfile", true, "Write logs to the user log directory instead of stderr")
	widthFlag   = flag.Int("width", 1280, "Initial window width in pixels")
	heightFlag  = flag.Int("height", 720, "Initial window height in pixels")
)

func init() {
	levelFlag.Value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	_, closer, err := logging.Setup(levelFlag.Value, *logFileFlag, "polycity-gl.log")
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	cfg := config.Default()
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			log.Fatal(err)
		}
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	s := window.Open(*widthFlag, *heightFlag, cfg.Render.FPS)
	defer s.Close()
	window.Run(app.New(cfg, rng, s))
}
