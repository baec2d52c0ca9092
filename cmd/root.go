package cmd

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strumkit/fretfinder/internal/audio"
	"github.com/strumkit/fretfinder/internal/config"
	"github.com/strumkit/fretfinder/internal/startup"
	"github.com/strumkit/fretfinder/internal/tray"
	"github.com/strumkit/fretfinder/internal/window"
)

var rootCmd = &cobra.Command{
	Use:   "fretfinder",
	Short: "Interactive fretboard chord finder",
	Long:  `FretFinder highlights the notes of a chord on a stringed-instrument fretboard and plays them over MIDI.`,
	Run: func(cmd *cobra.Command, args []string) {
		run()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	// The startup registration can change outside the app; the OS state wins
	cfg.OpenAtStartup = startup.IsEnabled()

	audioMgr := audio.NewManager(logger)
	defer audioMgr.Close()

	fyneApp := app.NewWithID("com.strumkit.fretfinder")

	mainWindow := window.NewMainWindow(fyneApp, cfg, audioMgr, logger, func() {
		// Called when config is saved
	})

	tray.Setup(fyneApp, cfg, tray.Callbacks{
		OnOpen: func() {
			mainWindow.Show()
		},
		OnQuit: func() {
			fyneApp.Quit()
		},
	})

	if !cfg.FirstLaunchCompleted {
		cfg.FirstLaunchCompleted = true
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		}
	}
	mainWindow.Show()

	// Blocks until the app quits
	fyneApp.Run()

	// Session end: every retained voice is released
	mainWindow.Shutdown()
	if err := cfg.Save(); err != nil {
		logger.Warn("failed to save config", zap.Error(err))
	}
}
