package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/board"
)

// RunApp shows the editor window and blocks until it closes.
func RunApp(a fyne.App, b *BoardWidget, shareLink string, size fyne.Size) {
	myWindow := a.NewWindow("Shape Board")
	myWindow.Resize(size)

	toolbar := NewToolbar(b, myWindow)
	publish := b.OnSceneChange
	b.OnSceneChange = func(s board.Scene) {
		toolbar.Sync()
		if publish != nil {
			publish(s)
		}
	}

	status := []fyne.CanvasObject{b.StatusBar()}
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		status = append(status, widget.NewLabel("Share:"), link)
	}
	bottom := container.NewHBox(status...)

	myWindow.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			b.CancelGesture()
		}
	})

	content := container.NewBorder(toolbar.Object(), bottom, nil, nil, b)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

// RunViewer shows a read-only window for a shared board.
func RunViewer(a fyne.App, v *ViewerWidget, status *widget.Label, size fyne.Size) {
	myWindow := a.NewWindow("Shape Board (view only)")
	myWindow.Resize(size)
	myWindow.SetContent(container.NewBorder(nil, status, nil, nil, v))
	myWindow.ShowAndRun()
}
