//go:build windows

// Package tray runs the resident notification-area mode. A single app
// struct owns the configuration and the rotation ticker; every menu
// handler and timer tick runs on one goroutine, so settings are never
// mutated concurrently. Each mutation is saved to disk immediately and
// the ticker is recomputed from the new settings.
package tray

import (
	"fmt"
	"log"
	"time"

	"github.com/getlantern/systray"
	"github.com/go-toast/toast"
	"github.com/ncruces/zenity"

	"wallshift/internal/autostart"
	"wallshift/internal/config"
	"wallshift/internal/icon"
	"wallshift/internal/picker"
	"wallshift/internal/rotator"
	"wallshift/internal/wallpaper"
)

const appName = "WallShift"

var intervalChoices = []int{15, 30, 60, 120}

type app struct {
	cfg    *config.Config
	apply  func(path string, style wallpaper.Style) error
	ticker *time.Ticker
}

// Run blocks inside the systray event loop until the user exits.
func Run(cfg *config.Config, apply func(path string, style wallpaper.Style) error) {
	a := &app{cfg: cfg, apply: apply}
	systray.Run(a.onReady, func() {})
}

func (a *app) onReady() {
	if data, err := icon.Bytes(); err == nil {
		systray.SetIcon(data)
	} else {
		log.Printf("could not build tray icon: %v", err)
	}
	systray.SetTitle(appName)
	systray.SetTooltip("Random wallpaper rotator")

	mChange := systray.AddMenuItem("Change now", "Pick a new random wallpaper")
	mEnabled := systray.AddMenuItemCheckbox("Rotate on a schedule", "Pause or resume automatic changes", a.cfg.ScheduleEnabled)

	mInterval := systray.AddMenuItem("Interval", "How often the wallpaper changes")
	intervalClicks := make(chan int)
	intervalItems := make(map[int]*systray.MenuItem, len(intervalChoices))
	for _, minutes := range intervalChoices {
		item := mInterval.AddSubMenuItemCheckbox(
			fmt.Sprintf("%d minutes", minutes), "", minutes == a.cfg.IntervalMinutes)
		intervalItems[minutes] = item
		go forward(item.ClickedCh, intervalClicks, minutes)
	}

	mStyle := systray.AddMenuItem("Style", "Desktop scaling mode")
	styleClicks := make(chan wallpaper.Style)
	styleItems := make(map[wallpaper.Style]*systray.MenuItem, len(wallpaper.Styles))
	for _, style := range wallpaper.Styles {
		item := mStyle.AddSubMenuItemCheckbox(string(style), "", string(style) == a.cfg.Style)
		styleItems[style] = item
		go forward(item.ClickedCh, styleClicks, style)
	}

	mRecurse := systray.AddMenuItemCheckbox("Include subfolders", "Scan the folder recursively", a.cfg.Recurse)
	mFolder := systray.AddMenuItem("Choose folder…", "Select the wallpaper folder")
	systray.AddSeparator()
	mLogon := systray.AddMenuItemCheckbox("Run at logon", "Start with Windows", autostart.ShortcutInstalled())
	mQuit := systray.AddMenuItem("Exit", "Stop rotating and quit")

	a.ticker = time.NewTicker(a.cfg.Interval())

	go func() {
		for {
			// A nil channel blocks forever, which is how a paused
			// schedule drops out of the select.
			var tick <-chan time.Time
			if a.cfg.ScheduleEnabled {
				tick = a.ticker.C
			}

			select {
			case <-tick:
				if err := a.change(); err != nil {
					log.Printf("scheduled change failed: %v", err)
				}

			case <-mChange.ClickedCh:
				if err := a.change(); err != nil {
					a.showError(err)
				} else {
					notify("Wallpaper changed")
				}

			case <-mEnabled.ClickedCh:
				a.cfg.ScheduleEnabled = !a.cfg.ScheduleEnabled
				setChecked(mEnabled, a.cfg.ScheduleEnabled)
				a.settingsChanged()

			case minutes := <-intervalClicks:
				a.cfg.IntervalMinutes = minutes
				for m, item := range intervalItems {
					setChecked(item, m == minutes)
				}
				a.settingsChanged()

			case style := <-styleClicks:
				a.cfg.Style = string(style)
				for s, item := range styleItems {
					setChecked(item, s == style)
				}
				a.settingsChanged()

			case <-mRecurse.ClickedCh:
				a.cfg.Recurse = !a.cfg.Recurse
				setChecked(mRecurse, a.cfg.Recurse)
				a.settingsChanged()

			case <-mFolder.ClickedCh:
				a.chooseFolder(mFolder)

			case <-mLogon.ClickedCh:
				a.toggleLogon(mLogon)

			case <-mQuit.ClickedCh:
				a.ticker.Stop()
				systray.Quit()
				return
			}
		}
	}()
}

// change resolves the folder fresh on every run so a folder edit takes
// effect without a restart.
func (a *app) change() error {
	folder, err := picker.ResolveFolder(a.cfg.ImageFolder)
	if err != nil {
		return err
	}
	r := &rotator.Rotator{
		Folder:  folder,
		Recurse: a.cfg.Recurse,
		Apply: func(path string) error {
			return a.apply(path, wallpaper.Style(a.cfg.Style))
		},
	}
	return r.ChangeOnce()
}

// settingsChanged persists the configuration and recomputes the timer.
func (a *app) settingsChanged() {
	if err := a.cfg.Save(); err != nil {
		a.showError(fmt.Errorf("save settings: %w", err))
	}
	resetTicker(a.ticker, a.cfg.Interval())
}

func (a *app) chooseFolder(item *systray.MenuItem) {
	folder, err := zenity.SelectFile(zenity.Directory(), zenity.Title("Select wallpaper folder"))
	if err != nil {
		// Cancelled dialogs also land here; nothing to report.
		return
	}
	a.cfg.ImageFolder = folder
	a.settingsChanged()
	item.SetTooltip(folder)
}

func (a *app) toggleLogon(item *systray.MenuItem) {
	var err error
	if autostart.ShortcutInstalled() {
		err = autostart.UninstallShortcut()
	} else {
		err = autostart.InstallShortcut([]string{"-tray"})
	}
	if err != nil {
		a.showError(err)
	}
	setChecked(item, autostart.ShortcutInstalled())
}

func (a *app) showError(err error) {
	log.Printf("error: %v", err)
	if zerr := zenity.Error(err.Error(), zenity.Title(appName), zenity.ErrorIcon); zerr != nil {
		log.Printf("could not show error dialog: %v", zerr)
	}
}

func notify(message string) {
	n := toast.Notification{AppID: appName, Title: appName, Message: message}
	if err := n.Push(); err != nil {
		log.Printf("could not show notification: %v", err)
	}
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// forward relays clicks from a submenu item into the single handler loop,
// tagged with the item's value. Mutation stays on the loop goroutine.
func forward[T any](clicks <-chan struct{}, out chan<- T, value T) {
	for range clicks {
		out <- value
	}
}
