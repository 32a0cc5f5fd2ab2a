package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/config"
	"ShapeBoard/internal/net"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/ui"
)

const (
	AppID           = "io.shapeboard.app"
	CustomURLScheme = "shapeboard://"
	discoverTimeout = 3 * time.Second
)

func main() {
	a := app.NewWithID(AppID)
	cfg := config.Load(a.Preferences())

	flag.BoolVar(&cfg.Demo, "demo", cfg.Demo, "start with the demo shapes")
	flag.BoolVar(&cfg.Share, "share", cfg.Share, "serve a read-only live view of the board")
	flag.BoolVar(&cfg.Advertise, "advertise", cfg.Advertise, "announce the live view over mDNS")
	flag.IntVar(&cfg.SharePort, "port", cfg.SharePort, "live view port")
	flag.Float64Var(&cfg.CanvasWidth, "width", cfg.CanvasWidth, "canvas width")
	flag.Float64Var(&cfg.CanvasHeight, "height", cfg.CanvasHeight, "canvas height")
	view := flag.Bool("view", false, "find a shared board on the local network and view it")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.Save(a.Preferences())

	args := flag.Args()
	switch {
	case len(args) > 0 && strings.HasPrefix(args[0], CustomURLScheme):
		address := strings.TrimSuffix(strings.TrimPrefix(args[0], CustomURLScheme), "/")
		runViewer(a, cfg, address)
	case *view:
		runViewer(a, cfg, "")
	default:
		runHost(a, cfg)
	}
}

func runHost(a fyne.App, cfg config.Config) {
	log.Println("Starting as HOST")
	doc := state.NewDocument()
	if cfg.Demo {
		doc = state.NewDemoDocument()
	}
	controller := board.NewController(doc, state.NewColorCycler())
	controller.SetSize(cfg.CanvasWidth, cfg.CanvasHeight)
	boardWidget := ui.NewBoardWidget(controller)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shareLink := ""
	if cfg.Share {
		shareLink = startSharing(ctx, cfg, boardWidget)
	}

	size := fyne.NewSize(float32(cfg.CanvasWidth), float32(cfg.CanvasHeight))
	ui.RunApp(a, boardWidget, shareLink, size)
}

// startSharing publishes every scene the board renders to live viewers and
// returns the link viewers open.
func startSharing(ctx context.Context, cfg config.Config, boardWidget *ui.BoardWidget) string {
	hub := net.NewHub()
	clock := state.NewFrameClock()
	publish := func(s board.Scene) {
		if err := hub.Publish(net.NewFrame(clock, s)); err != nil {
			log.Printf("[HOST] Publishing frame: %v", err)
		}
	}
	boardWidget.OnSceneChange = publish
	publish(boardWidget.Scene())

	go func() {
		if err := net.Serve(ctx, cfg.SharePort, hub); err != nil {
			log.Printf("[HOST] %v", err)
			boardWidget.SetStatus("Sharing stopped: " + err.Error())
		}
	}()

	if cfg.Advertise {
		server, err := net.Advertise(cfg.SharePort)
		if err != nil {
			log.Printf("[HOST] mDNS disabled: %v", err)
		} else {
			go func() {
				<-ctx.Done()
				server.Shutdown()
			}()
		}
	}

	link := CustomURLScheme + net.ShareAddress(cfg.SharePort)
	log.Printf("[HOST] Share link: %s (site %s)", link, clock.Site())
	return link
}

func runViewer(a fyne.App, cfg config.Config, address string) {
	log.Println("Starting as VIEWER")
	viewer := ui.NewViewerWidget()
	status := widget.NewLabel("Connecting...")
	setStatus := func(text string) {
		fyne.Do(func() { status.SetText(text) })
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		addr := address
		if addr == "" {
			setStatus("Looking for a shared board...")
			found, err := net.Discover(discoverTimeout)
			if err != nil {
				setStatus(fmt.Sprintf("No shared board found: %v", err))
				return
			}
			addr = found
		}
		setStatus("Watching " + addr)
		log.Printf("[VIEWER] Watching %s", addr)

		err := net.Watch(ctx, addr, func(f net.Frame) {
			scene := f.Scene()
			fyne.Do(func() { viewer.ShowScene(scene) })
		})
		if err != nil && ctx.Err() == nil {
			setStatus(fmt.Sprintf("Disconnected from host: %v", err))
			return
		}
		setStatus("Host closed the board")
	}()

	size := fyne.NewSize(float32(cfg.CanvasWidth), float32(cfg.CanvasHeight))
	ui.RunViewer(a, viewer, status, size)
}
