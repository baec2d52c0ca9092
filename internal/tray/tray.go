package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/strumkit/fretfinder/internal/config"
	"github.com/strumkit/fretfinder/internal/startup"
)

// Callbacks for tray menu actions
type Callbacks struct {
	OnOpen func()
	OnQuit func()
}

// Setup initializes the system tray using Fyne's built-in support
func Setup(app fyne.App, cfg *config.Config, callbacks Callbacks) {
	// Only desktop drivers have a tray
	desk, ok := app.(desktop.App)
	if !ok {
		return
	}

	openItem := fyne.NewMenuItem("Open FretFinder", func() {
		if callbacks.OnOpen != nil {
			callbacks.OnOpen()
		}
	})

	startupItem := fyne.NewMenuItem("Open at Startup", nil)
	if cfg.OpenAtStartup {
		startupItem.Checked = true
	}

	quitItem := fyne.NewMenuItem("Quit", func() {
		if callbacks.OnQuit != nil {
			callbacks.OnQuit()
		}
	})

	menu := fyne.NewMenu("FretFinder",
		openItem,
		fyne.NewMenuItemSeparator(),
		startupItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	// Set the action after menu is created so we can refresh it
	startupItem.Action = func() {
		if startupItem.Checked {
			startupItem.Checked = false
			cfg.OpenAtStartup = false
			_ = startup.Disable()
		} else {
			startupItem.Checked = true
			cfg.OpenAtStartup = true
			_ = startup.Enable()
		}
		_ = cfg.Save()
		menu.Refresh()
	}

	desk.SetSystemTrayMenu(menu)
}
