package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/board"
	"inkboard/internal/config"
)

// App hosts the board window.
type App struct {
	win    fyne.Window
	status *widget.Label
}

// NewApp lays out toolbar, surface and status bar around the engine.
func NewApp(title string, eng *board.Board, cfg config.Config) *App {
	a := app.New()
	win := a.NewWindow(title)
	win.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	status := widget.NewLabel("Ready")
	content := container.NewBorder(
		NewToolbar(eng, cfg),
		status,
		nil, nil,
		NewSurface(eng),
	)
	win.SetContent(content)

	return &App{win: win, status: status}
}

// SetStatus updates the status bar from any goroutine.
func (a *App) SetStatus(text string) {
	fyne.Do(func() {
		a.status.SetText(text)
	})
}

// Run shows the window and blocks until it closes.
func (a *App) Run() {
	a.win.ShowAndRun()
}
