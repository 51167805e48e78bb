package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"os/signal"
	"time"
	"unsafe"

	"github.com/juju/errors"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/framebuffer"
	"github.com/BeatGlow/framebuffer/draw"
	"github.com/BeatGlow/framebuffer/fbdev"
	"github.com/BeatGlow/framebuffer/internal/config"
)

func main() {
	configFlag := flag.String("config", "/etc/framebuffer-test.hcl", "Configuration file")
	deviceFlag := flag.String("device", "", "Framebuffer device (overrides config)")
	holdFlag := flag.Int("hold", -1, "Seconds to show the test pattern, 0 runs until interrupted (overrides config)")
	blPinFlag := flag.String("bl", "", "Backlight GPIO pin (overrides config)")
	debugFlag := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configFlag, true)
	if err != nil {
		fatal(err)
	}
	if *deviceFlag != "" {
		cfg.Device = *deviceFlag
	}
	if *holdFlag >= 0 {
		cfg.HoldSec = *holdFlag
	}
	if *blPinFlag != "" {
		cfg.Backlight.Pin = *blPinFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		log.SetFlags(log.Ltime | log.Lshortfile | log.Lmicroseconds)
	}

	if err = run(cfg); err != nil {
		fatal(err)
	}
}

// run owns the device; every path out of it unmaps the framebuffer.
func run(cfg *config.Config) error {
	if _, err := host.Init(); err != nil {
		return errors.Trace(err)
	}

	dev, err := fbdev.Open(cfg.Device)
	if err != nil {
		return errors.Trace(err)
	}
	defer dev.Close()
	if layout, err := dev.Layout(); err == nil {
		fmt.Printf("using device: %s (%s)\n", dev, layout)
	} else {
		fmt.Printf("using device: %s (unknown layout: %v)\n", dev, err)
	}

	var (
		fbConfig = &framebuffer.Config{Tag: cfg.Tag}
		provider = framebuffer.NewProvider(dev, fbConfig)
		info     = provider.Info()
	)
	fmt.Printf("framebuffer: %s\n", info)
	if info.SizeInBytes == 0 {
		return errors.NotValidf("screen size %s", dev.ScreenSize())
	}
	if !info.ShiftsConsistent() {
		layout, _ := info.Layout()
		fmt.Printf("framebuffer: reported green shift %d, mask implies %d\n", info.GreenShift, layout.Green.Shift)
	}

	// The arena stands in for the host's memory region; the framebuffer starts one
	// page in.
	const pageSize = 4096
	arena := make([]byte, pageSize+info.SizeInBytes)
	drawPattern(info.Image(arena[pageSize:]), cfg, 0)

	mirror, err := dev.Mirror(arena, info)
	if err != nil {
		return errors.Trace(err)
	}
	targets := framebuffer.Targets{mirror}
	if cfg.Backlight.Pin != "" {
		pin := gpioreg.ByName(cfg.Backlight.Pin)
		if pin == nil {
			return errors.NotFoundf("backlight pin %s", cfg.Backlight.Pin)
		}
		targets = append(targets, framebuffer.Backlight{Pin: pin, ActiveLow: cfg.Backlight.ActiveLow})
	}

	bridge, err := framebuffer.Bind(targets, fbConfig)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Printf("using %s\n", bridge)

	var (
		base = uintptr(unsafe.Pointer(&arena[0]))
		data = uintptr(unsafe.Pointer(&arena[pageSize]))
	)
	bridge.Enable(data, base)
	defer bridge.Disable()

	var (
		ticker  = time.NewTicker(time.Second / time.Duration(cfg.FPS))
		signals = make(chan os.Signal, 1)
		timeout <-chan time.Time
		offset  int
	)
	defer ticker.Stop()
	signal.Notify(signals, os.Interrupt)
	if cfg.HoldSec > 0 {
		timeout = time.After(time.Duration(cfg.HoldSec) * time.Second)
	}

	fmt.Println("hit control-c to stop...")
	for {
		if err = mirror.Flush(); err != nil {
			return errors.Annotate(err, "flush")
		}
		select {
		case <-ticker.C:
			offset++
			drawPattern(info.Image(arena[pageSize:]), cfg, offset)
		case <-signals:
			return nil
		case <-timeout:
			return nil
		}
	}
}

func drawPattern(img draw.Image, cfg *config.Config, offset int) {
	r := img.Bounds()
	draw.Gradient(img, r.Inset(1), offset)
	draw.Frame(img, r, color.White)
	draw.Line(img, r.Min, r.Max.Sub(image.Pt(1, 1)), color.White)
	draw.Line(img, image.Pt(r.Min.X, r.Max.Y-1), image.Pt(r.Max.X-1, r.Min.Y), color.White)

	if !cfg.Pattern.Label {
		return
	}
	var (
		text = fmt.Sprintf("%dx%d", r.Dx(), r.Dy())
		size = cfg.Pattern.FontSize
	)
	w, err := draw.MeasureLabel(nil, size, text)
	if err != nil {
		log.Println("label:", err)
		return
	}
	pt := image.Pt(r.Min.X+(r.Dx()-w)/2, r.Min.Y+r.Dy()/2+int(size)/2)
	box := image.Rect(pt.X-2, pt.Y-int(size)-2, pt.X+w+2, pt.Y+int(size)/3+2)
	draw.Box(img, box.Intersect(r), color.Black)
	if _, err = draw.Label(img, pt, nil, size, color.White, text); err != nil {
		log.Println("label:", err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+errors.ErrorStack(err))
	os.Exit(1)
}
