package main

import (
	"encoding/json"
	"flag"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/loov/hrtime"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/artazar/vkboot"
)

func init() {
	runtime.LockOSThread()
}

const configPath = "config.json"

type windowConfig struct {
	Title  string `json:"title"`
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
}

func defaultWindowConfig() windowConfig {
	return windowConfig{Title: "Vulkan Window", Width: 800, Height: 600}
}

// loadWindowConfig reads the optional window configuration next to the
// binary; an absent or malformed file falls back to the defaults.
func loadWindowConfig() windowConfig {
	cfg := defaultWindowConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.WithError(err).Warnf("ignoring malformed %s", configPath)
		return defaultWindowConfig()
	}
	return cfg
}

func run(debug bool) error {
	winCfg := loadWindowConfig()
	log.WithFields(log.Fields{
		"title":  winCfg.Title,
		"width":  winCfg.Width,
		"height": winCfg.Height,
	}).Debug("window configuration")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(winCfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winCfg.Width, winCfg.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	cfg := vkboot.DefaultConfig(winCfg.Title)
	cfg.Validation = debug
	cfg.VerboseDiagnostics = debug

	start := hrtime.Now()
	ctx, err := vkboot.Bootstrap(vkboot.NewSDLWindow(window), cfg)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	log.WithFields(log.Fields{
		"device": ctx.Profile.Name,
		"images": len(ctx.SwapchainImages),
	}).Infof("vulkan ready in %s", hrtime.Now()-start)

	// vector math demo
	cross := mgl32.Vec3{1, 0, 0}.Cross(mgl32.Vec3{0, 1, 0})
	log.Debugf("cross product: %v", cross)

appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			}
		}
	}

	log.Debug("shutting down")
	return nil
}

func main() {
	debug := flag.Bool("debug", true, "enable validation layers and verbose logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(*debug); err != nil {
		log.Fatalf("%+v", err)
	}
}
