package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/junsooki/tgaview/internal/config"
	"github.com/junsooki/tgaview/internal/decoder"
	"github.com/junsooki/tgaview/internal/display"
	"github.com/junsooki/tgaview/internal/logging"
	"github.com/junsooki/tgaview/internal/surface"
)

func main() {
	cfg := config.ParseViewerFlags()

	if err := logging.Setup(cfg.LogLevel); err != nil {
		logrus.Fatalf("logging: %v", err)
	}

	logrus.Infof("tgaview starting")
	logrus.Infof("  File:   %s", cfg.Path)
	logrus.Infof("  Window: %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	logrus.Infof("  Scale:  %d", cfg.Scale)
	logrus.Infof("  Flip:   %s", cfg.Flip)

	img, err := decoder.DecodeFile(cfg.Path)
	if err != nil {
		logrus.WithField("kind", decoder.KindOf(err)).Errorf("decode: %v", err)
		os.Exit(1)
	}
	logrus.WithFields(logrus.Fields{
		"width":  img.Width,
		"height": img.Height,
		"origin": img.Origin,
	}).Infoln("decoded image")

	title := cfg.Title
	if title == "" {
		title = filepath.Base(cfg.Path)
	}

	var disp display.Display = display.NewViewer(img, display.Options{
		Title:        title,
		WindowWidth:  cfg.WindowWidth,
		WindowHeight: cfg.WindowHeight,
		Scale:        cfg.Scale,
		Flip:         surface.ShouldFlip(cfg.Flip, img),
	})
	defer disp.Close()

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	if err := disp.Run(); err != nil {
		logrus.Errorf("display: %v", err)
		disp.Close()
		os.Exit(1)
	}
	logrus.Infoln("window closed")
}
