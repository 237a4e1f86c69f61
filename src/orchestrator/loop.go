package orchestrator

import (
	"context"
	"log"
	"time"

	"github.com/danico-oss/hypergrab/src/capture"
	"github.com/danico-oss/hypergrab/src/items"
	"github.com/danico-oss/hypergrab/src/messages"
	"github.com/danico-oss/hypergrab/src/worker"
)

// WindowController hides and restores the application window. Minimize is
// fire-and-forget: the loop does not wait for the window manager before
// starting the settle timer.
type WindowController interface {
	Minimize(minimized bool)
}

// UI receives state pushed out of the loop. Implementations must be safe to
// call from the loop goroutine.
type UI interface {
	SetStatus(text string)
	SetBusy(busy bool)
	ShowItems(list []items.Item)
	ShowPreview(path string)
}

// Recorder appends finished capture attempts to an audit journal.
type Recorder interface {
	Record(code, path string, captureErr error) error
}

// Options configures a Loop. Zero values disable the optional collaborators.
type Options struct {
	SettleDelay time.Duration
	OutputDir   string // overrides the spreadsheet directory when set
	Journal     Recorder
	CopyPath    func(path string) error
	OpenPath    func(path string) error
}

// Loop owns the model and is the single place where transitions happen.
// Events arrive over channels; the settle timer and capture workers post
// their results back instead of touching state themselves.
type Loop struct {
	model   Model
	events  chan messages.Event
	results chan messages.CaptureFinished
	pool    *worker.Pool

	window  WindowController
	ui      UI
	journal Recorder

	copyPath  func(string) error
	openPath  func(string) error
	captureFn worker.CaptureFunc
	schedule  func(d time.Duration, fn func())
}

// NewLoop creates a loop with defaults from opts. Bind must be called before
// Run.
func NewLoop(opts Options) *Loop {
	l := &Loop{
		model:     NewModel(opts.SettleDelay),
		events:    make(chan messages.Event, 16),
		results:   make(chan messages.CaptureFinished, 1),
		pool:      worker.New(1),
		journal:   opts.Journal,
		copyPath:  opts.CopyPath,
		openPath:  opts.OpenPath,
		captureFn: capture.Execute,
		schedule:  func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
	l.model.DirOverride = opts.OutputDir
	return l
}

// Bind attaches the window controller and UI sink. Call once before Run.
func (l *Loop) Bind(window WindowController, ui UI) {
	l.window = window
	l.ui = ui
}

// Post delivers an event to the loop. It blocks if the queue is full, which
// only happens when the loop itself has stalled.
func (l *Loop) Post(ev messages.Event) {
	l.events <- ev
}

// Run processes events until ctx is cancelled. All state transitions happen
// on this goroutine.
func (l *Loop) Run(ctx context.Context) error {
	defer l.pool.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-l.events:
			l.dispatch(ev)
		case res := <-l.results:
			l.dispatch(res)
		}
	}
}

func (l *Loop) dispatch(ev messages.Event) {
	log.Printf("Loop: %s", ev.Type())
	effects := Update(&l.model, ev)
	for _, eff := range effects {
		l.apply(eff)
	}
	if l.ui != nil {
		l.ui.SetBusy(l.model.State == Waiting)
	}
}

func (l *Loop) apply(eff messages.Effect) {
	switch e := eff.(type) {
	case messages.MinimizeWindow:
		if l.window != nil {
			l.window.Minimize(true)
		}

	case messages.RestoreWindow:
		if l.window != nil {
			l.window.Minimize(false)
		}

	case messages.ScheduleDelay:
		l.schedule(e.After, func() {
			l.Post(messages.DelayElapsed{})
		})

	case messages.RunCapture:
		submitted := l.pool.Submit(e.Dir, e.Code, l.captureFn, func(path string, err error) {
			l.results <- messages.CaptureFinished{Path: path, Err: err}
		})
		if !submitted {
			// Unreachable while the Waiting guard holds: only one capture
			// is ever in flight. Logged rather than trusted.
			log.Printf("Loop: capture worker rejected job for %q", e.Code)
		}

	case messages.SetStatus:
		if l.ui != nil {
			l.ui.SetStatus(e.Text)
		}

	case messages.ShowItems:
		if l.ui != nil {
			l.ui.ShowItems(e.Items)
		}

	case messages.ShowPreview:
		if l.ui != nil {
			l.ui.ShowPreview(e.Path)
		}

	case messages.CopyPath:
		if l.copyPath != nil {
			if err := l.copyPath(e.Path); err != nil {
				log.Printf("Loop: clipboard write failed: %v", err)
			}
		}

	case messages.OpenPath:
		if l.openPath != nil {
			if err := l.openPath(e.Path); err != nil {
				log.Printf("Loop: failed to open %s: %v", e.Path, err)
			}
		}

	case messages.RecordCapture:
		if l.journal != nil {
			if err := l.journal.Record(e.Code, e.Path, e.Err); err != nil {
				log.Printf("Loop: journal write failed: %v", err)
			}
		}
	}
}
