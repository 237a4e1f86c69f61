package orchestrator

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/danico-oss/hypergrab/src/items"
	"github.com/danico-oss/hypergrab/src/messages"
)

// State of the capture state machine. Waiting holds exactly while a capture
// request is in flight; no second request is accepted until the in-flight
// one finishes.
type State int

const (
	Idle State = iota
	Waiting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Waiting:
		return "waiting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultSettleDelay is the pause between asking the window manager to hide
// the window and grabbing the screen. It is trusted, not measured, to be
// long enough for the hide to visually complete.
const DefaultSettleDelay = 1500 * time.Millisecond

// Request is one capture order: the identifier that names the file and the
// directory it lands in. Captured at start time so a selection change while
// waiting cannot redirect an in-flight capture.
type Request struct {
	Code string
	Dir  string
}

// Model is the full application state owned by the loop goroutine. Nothing
// outside that goroutine reads or writes it.
type Model struct {
	State         State
	Items         []items.Item
	SelectedIndex int
	SourcePath    string
	OutputDir     string
	DirOverride   string
	LastCapture   string
	Status        string
	SettleDelay   time.Duration

	pending *Request
}

// NewModel returns the initial model. A non-positive settle delay falls back
// to DefaultSettleDelay.
func NewModel(settle time.Duration) Model {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return Model{
		State:         Idle,
		SelectedIndex: -1,
		SettleDelay:   settle,
		Status:        "System ready. Load an Excel file to begin.",
	}
}

// SelectedCode returns the code of the currently selected item.
func (m *Model) SelectedCode() (string, bool) {
	if m.SelectedIndex < 0 || m.SelectedIndex >= len(m.Items) {
		return "", false
	}
	return m.Items[m.SelectedIndex].Code, true
}

// Update is the transition function: it mutates the model for one event and
// returns the effects the loop must carry out. Side effects never happen
// here.
func Update(m *Model, ev messages.Event) []messages.Effect {
	switch e := ev.(type) {
	case messages.HotkeyPressed:
		// The trigger key is equivalent to the capture button, including
		// the silent no-op when preconditions do not hold.
		return Update(m, messages.StartCapture{})

	case messages.StartCapture:
		code, ok := m.SelectedCode()
		if !ok || m.State != Idle || m.OutputDir == "" {
			return nil
		}
		m.State = Waiting
		m.pending = &Request{Code: code, Dir: m.OutputDir}
		m.Status = "Action: Minimizing and capturing..."
		return []messages.Effect{
			messages.SetStatus{Text: m.Status},
			messages.MinimizeWindow{},
			messages.ScheduleDelay{After: m.SettleDelay},
		}

	case messages.DelayElapsed:
		if m.State != Waiting || m.pending == nil {
			return nil
		}
		return []messages.Effect{
			messages.RunCapture{Dir: m.pending.Dir, Code: m.pending.Code},
		}

	case messages.CaptureFinished:
		if m.State != Waiting {
			return nil
		}
		m.State = Idle
		code := ""
		if m.pending != nil {
			code = m.pending.Code
		}
		m.pending = nil

		var effects []messages.Effect
		if e.Err != nil {
			m.Status = fmt.Sprintf("Error: %v", e.Err)
			effects = append(effects,
				messages.SetStatus{Text: m.Status},
				messages.RecordCapture{Code: code, Err: e.Err},
			)
		} else {
			m.LastCapture = e.Path
			m.Status = fmt.Sprintf("File saved: %s", filepath.Base(e.Path))
			effects = append(effects,
				messages.SetStatus{Text: m.Status},
				messages.ShowPreview{Path: e.Path},
				messages.CopyPath{Path: e.Path},
				messages.RecordCapture{Code: code, Path: e.Path},
			)
		}
		// Restore happens exactly once per start, success or failure.
		return append(effects, messages.RestoreWindow{})

	case messages.ItemSelected:
		if e.Index < 0 || e.Index >= len(m.Items) {
			return nil
		}
		m.SelectedIndex = e.Index
		return nil

	case messages.SheetLoaded:
		m.Items = e.Items
		m.SourcePath = e.Path
		m.SelectedIndex = -1
		if m.DirOverride != "" {
			m.OutputDir = m.DirOverride
		} else {
			m.OutputDir = filepath.Dir(e.Path)
		}
		m.Status = fmt.Sprintf("Loaded %d records.", len(e.Items))
		return []messages.Effect{
			messages.ShowItems{Items: e.Items},
			messages.SetStatus{Text: m.Status},
		}

	case messages.SheetLoadFailed:
		m.Status = fmt.Sprintf("Error: %v", e.Err)
		return []messages.Effect{messages.SetStatus{Text: m.Status}}

	case messages.OpenLastCapture:
		if m.LastCapture == "" {
			return nil
		}
		return []messages.Effect{messages.OpenPath{Path: m.LastCapture}}

	case messages.OpenSourceFolder:
		if m.OutputDir == "" {
			return nil
		}
		return []messages.Effect{messages.OpenPath{Path: m.OutputDir}}
	}

	return nil
}
