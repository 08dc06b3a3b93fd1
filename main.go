package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"wallshift/internal/autostart"
	"wallshift/internal/config"
	"wallshift/internal/lockscreen"
	"wallshift/internal/picker"
	"wallshift/internal/rotator"
	"wallshift/internal/tray"
	"wallshift/internal/wallpaper"
)

type options struct {
	Folder     string
	Interval   int
	Style      string
	Recurse    bool
	Once       bool
	BMP        bool
	LockScreen bool
	Tray       bool

	Install       bool
	Uninstall     bool
	InstallTask   bool
	UninstallTask bool
	TaskName      string
}

var opts options

func init() {
	flag.StringVar(&opts.Folder, "folder", "", "Image folder. Defaults to the first existing Wallpapers/Pictures folder.")
	flag.IntVar(&opts.Interval, "interval", config.DefaultIntervalMinutes, "Minutes between wallpaper changes (minimum 1).")
	flag.StringVar(&opts.Style, "style", "fill", "Scaling style: fill, fit, stretch, center, tile or span.")
	flag.BoolVar(&opts.Recurse, "recurse", true, "Scan the image folder recursively.")
	flag.BoolVar(&opts.Once, "once", false, "Change the wallpaper once and exit.")
	flag.BoolVar(&opts.BMP, "bmp", false, "Re-encode the image as BMP before applying (for older systems).")
	flag.BoolVar(&opts.LockScreen, "lockscreen", false, "Also set the lock screen image (needs elevation, best effort).")
	flag.BoolVar(&opts.Tray, "tray", false, "Run in the system tray with a settings menu.")
	flag.BoolVar(&opts.Install, "install", false, "Install the logon shortcut and exit.")
	flag.BoolVar(&opts.Uninstall, "uninstall", false, "Remove the logon shortcut and exit.")
	flag.BoolVar(&opts.InstallTask, "install-task", false, "Register a logon scheduled task and exit.")
	flag.BoolVar(&opts.UninstallTask, "uninstall-task", false, "Delete the logon scheduled task and exit.")
	flag.StringVar(&opts.TaskName, "task", autostart.DefaultTaskName, "Name of the scheduled task.")
}

func main() {
	flag.Parse()

	if opts.Interval < 1 {
		opts.Interval = 1
	}

	if opts.Install || opts.Uninstall || opts.InstallTask || opts.UninstallTask {
		runAutostartActions()
		return
	}

	style, err := wallpaper.ParseStyle(opts.Style)
	if err != nil {
		log.Fatalln(err)
	}

	if opts.Tray {
		runTray(style)
		return
	}

	folder, err := picker.ResolveFolder(opts.Folder)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("rotating wallpapers from %s every %dm", folder, opts.Interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &rotator.Rotator{
		Folder:   folder,
		Recurse:  opts.Recurse,
		Interval: time.Duration(opts.Interval) * time.Minute,
		Once:     opts.Once,
		Apply: func(path string) error {
			return applyWallpaper(path, style)
		},
	}
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalln(err)
	}
}

// runAutostartActions performs the requested install/uninstall steps and
// exits. The relaunch arguments always select tray mode so an autostarted
// instance is visible and controllable.
func runAutostartActions() {
	relaunchArgs := []string{"-tray"}

	if opts.Install {
		if err := autostart.InstallShortcut(relaunchArgs); err != nil {
			log.Fatalln(err)
		}
		log.Println("logon shortcut installed")
	}
	if opts.Uninstall {
		if err := autostart.UninstallShortcut(); err != nil {
			log.Fatalln(err)
		}
		log.Println("logon shortcut removed")
	}
	if opts.InstallTask {
		if err := autostart.InstallTask(opts.TaskName, relaunchArgs); err != nil {
			log.Fatalln(err)
		}
		log.Printf("scheduled task %s registered", opts.TaskName)
	}
	if opts.UninstallTask {
		if err := autostart.UninstallTask(opts.TaskName); err != nil {
			log.Fatalln(err)
		}
		log.Printf("scheduled task %s deleted", opts.TaskName)
	}
}

// runTray loads the persisted settings, folds in any flags given on this
// invocation, and hands control to the tray event loop. The style flag is
// stored in its parsed form so the persisted value always belongs to the
// enumerated set.
func runTray(style wallpaper.Style) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "folder":
			cfg.ImageFolder = opts.Folder
		case "interval":
			cfg.IntervalMinutes = opts.Interval
		case "style":
			cfg.Style = string(style)
		case "recurse":
			cfg.Recurse = opts.Recurse
		}
	})
	if err := cfg.Save(); err != nil {
		log.Printf("could not save config: %v", err)
	}

	tray.Run(cfg, func(path string, style wallpaper.Style) error {
		return applyWallpaper(path, style)
	})
}

// applyWallpaper is the one apply routine shared by every mode: optional
// BMP re-encode, the desktop apply, then the best-effort lock screen step.
func applyWallpaper(path string, style wallpaper.Style) error {
	if opts.BMP {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return err
		}
		dst := filepath.Join(cacheDir, "wallshift", "wallpaper.bmp")
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := wallpaper.EncodeBMP(path, dst); err != nil {
			return err
		}
		path = dst
	}

	if err := wallpaper.Set(path, style); err != nil {
		return err
	}

	if opts.LockScreen {
		if err := lockscreen.Set(path); err != nil {
			log.Printf("warning: lock screen not updated: %v", err)
		}
	}
	return nil
}
