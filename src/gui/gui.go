// Package gui is the fyne shell around the capture loop: the item list, the
// capture trigger, the status footer and the window hide/restore used while
// a capture is in flight. All state lives in the loop; the GUI only posts
// events and renders what the loop pushes back.
package gui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/danico-oss/hypergrab/src/items"
	"github.com/danico-oss/hypergrab/src/messages"
)

const (
	appTitle      = "Screen Capture Manager"
	initialStatus = "System ready. Load an Excel file to begin."
)

// UI owns the fyne window. Methods in the loop-facing interface
// (SetStatus, SetBusy, ShowItems, ShowPreview, Minimize) are safe to call
// from any goroutine.
type UI struct {
	app  fyne.App
	win  fyne.Window
	post func(messages.Event)

	mu    sync.Mutex
	items []items.Item

	list        *widget.List
	status      *widget.Label
	captureBtn  *widget.Button
	openLastBtn *widget.Button
	previewBox  *fyne.Container
}

// New builds the window. post delivers operator actions to the loop.
func New(post func(messages.Event)) *UI {
	u := &UI{post: post}
	u.app = app.New()
	u.win = u.app.NewWindow(appTitle)
	u.win.Resize(fyne.NewSize(550, 750))
	u.win.SetFixedSize(true)
	u.build()
	return u
}

func (u *UI) build() {
	importBtn := widget.NewButton("Import Excel", u.chooseWorkbook)
	openDirBtn := widget.NewButton("Open Directory", func() {
		u.post(messages.OpenSourceFolder{})
	})

	u.list = widget.NewList(
		func() int {
			u.mu.Lock()
			defer u.mu.Unlock()
			return len(u.items)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			u.mu.Lock()
			defer u.mu.Unlock()
			if id < 0 || id >= len(u.items) {
				return
			}
			it := u.items[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%-12s %s", it.Code, it.Description))
		},
	)
	u.list.OnSelected = func(id widget.ListItemID) {
		u.post(messages.ItemSelected{Index: int(id)})
	}

	u.captureBtn = widget.NewButton("EXECUTE CAPTURE (F12)", func() {
		u.post(messages.StartCapture{})
	})
	u.captureBtn.Importance = widget.HighImportance

	u.openLastBtn = widget.NewButton("Open last capture", func() {
		u.post(messages.OpenLastCapture{})
	})
	u.openLastBtn.Disable()

	u.previewBox = container.NewStack()
	u.status = widget.NewLabel(initialStatus)

	top := container.NewHBox(importBtn, openDirBtn)
	footer := container.NewVBox(
		u.previewBox,
		container.NewHBox(u.openLastBtn),
		u.captureBtn,
		container.NewHBox(widget.NewLabel("STATUS:"), u.status),
	)
	u.win.SetContent(container.NewBorder(top, footer, nil, nil, u.list))
}

// SetTriggerLabel names the configured hotkey on the capture button.
func (u *UI) SetTriggerLabel(hotkey string) {
	u.captureBtn.SetText(fmt.Sprintf("EXECUTE CAPTURE (%s)", hotkey))
}

func (u *UI) chooseWorkbook() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			u.post(messages.SheetLoadFailed{Err: err})
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		// Parse off the UI thread; workbooks can be large.
		go func() {
			loaded, err := items.Load(path)
			if err != nil {
				u.post(messages.SheetLoadFailed{Err: err})
				return
			}
			u.post(messages.SheetLoaded{Path: path, Items: loaded})
		}()
	}, u.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx"}))
	fd.Show()
}

// Run shows the window and blocks until it is closed. Must be called on the
// main goroutine.
func (u *UI) Run() {
	u.win.ShowAndRun()
}

// Minimize hides or restores the window so the capture shows the screen
// behind it, not the tool itself.
func (u *UI) Minimize(minimized bool) {
	fyne.Do(func() {
		if minimized {
			u.win.Hide()
		} else {
			u.win.Show()
			u.win.RequestFocus()
		}
	})
}

func (u *UI) SetStatus(text string) {
	fyne.Do(func() {
		u.status.SetText(text)
	})
}

func (u *UI) SetBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			u.captureBtn.Disable()
		} else {
			u.captureBtn.Enable()
		}
	})
}

func (u *UI) ShowItems(list []items.Item) {
	u.mu.Lock()
	u.items = list
	u.mu.Unlock()
	fyne.Do(func() {
		u.list.UnselectAll()
		u.list.Refresh()
	})
}

func (u *UI) ShowPreview(path string) {
	fyne.Do(func() {
		img := canvas.NewImageFromFile(path)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(160, 90))
		u.previewBox.Objects = []fyne.CanvasObject{img}
		u.previewBox.Refresh()
		u.openLastBtn.Enable()
	})
}
