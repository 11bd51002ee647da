package main

import (
	"flag"
	"log/slog"

	"polycity/internal/logging"
)

// defined flags
var (
	levelFlag    logging.LevelFlag
	configFlag   = flag.String("config", "", "YAML config file")
	logFileFlag  = flag.Bool("logfile", true, "Write logs to the user log directory instead of stderr")
	modeFlag     = flag.String("mode", "", "Render mode: solid or wire (overrides config)")
	fpsFlag      = flag.Int("fps", 0, "Frames per second (overrides config)")
	exportFlag   = flag.String("export", "", "Write the generated layout to comma separated .geojson, .csv, .kml or .wkt files and exit")
	snapshotFlag = flag.String("snapshot", "", "Print a single frame of COLSxROWS cells and exit")
)

func init() {
	levelFlag.Value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}
