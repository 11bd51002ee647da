package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"polycity/internal/app"
	"polycity/internal/config"
	"polycity/internal/geom"
	"polycity/internal/logging"
	"polycity/internal/render"
	"polycity/internal/tui"
)

func main() {
	flag.Parse()
	fn, closer, err := logging.Setup(levelFlag.Value, *logFileFlag, "polycity.log")
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()
	if fn != "" {
		slog.Info("Logging to file", "path", fn)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	switch {
	case *exportFlag != "":
		paths := strings.Split(*exportFlag, ",")
		a := app.New(cfg, rng, render.New(render.Solid))
		if err := geom.ExportAll(paths, geom.FootprintsOf(a.World)); err != nil {
			log.Fatal(err)
		}
		for _, p := range paths {
			info, err := os.Stat(p)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Layout written to %s (%s)\n", p, humanize.Bytes(uint64(info.Size())))
		}
	case *snapshotFlag != "":
		cols, rows, err := tui.ParseSize(*snapshotFlag)
		if err != nil {
			log.Fatal(err)
		}
		out, err := tui.Snapshot(cfg, rng, cols, rows)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
	default:
		m, err := tui.New(cfg, rng)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	}
}

// loadConfig reads the config file if one was given and applies the
// command line overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		c, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg = c
	}
	if *modeFlag != "" {
		cfg.Render.Mode = *modeFlag
	}
	if *fpsFlag != 0 {
		cfg.Render.FPS = *fpsFlag
	}
	return cfg, cfg.Validate()
}
