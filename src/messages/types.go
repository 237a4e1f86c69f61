package messages

import (
	"time"

	"github.com/danico-oss/hypergrab/src/items"
)

// Event is anything the orchestrator loop reacts to: UI input, the settle
// timer firing, or a worker reporting a finished capture.
type Event interface {
	Type() string
}

// EventType constants for logging and routing.
const (
	TypeHotkeyPressed    = "HotkeyPressed"
	TypeStartCapture     = "StartCapture"
	TypeDelayElapsed     = "DelayElapsed"
	TypeCaptureFinished  = "CaptureFinished"
	TypeItemSelected     = "ItemSelected"
	TypeSheetLoaded      = "SheetLoaded"
	TypeSheetLoadFailed  = "SheetLoadFailed"
	TypeOpenLastCapture  = "OpenLastCapture"
	TypeOpenSourceFolder = "OpenSourceFolder"
)

// HotkeyPressed - the global trigger key was pressed.
type HotkeyPressed struct{}

func (m HotkeyPressed) Type() string { return TypeHotkeyPressed }

// StartCapture - the operator asked for a capture (button or hotkey).
type StartCapture struct{}

func (m StartCapture) Type() string { return TypeStartCapture }

// DelayElapsed - the settle timer after minimize has fired.
type DelayElapsed struct{}

func (m DelayElapsed) Type() string { return TypeDelayElapsed }

// CaptureFinished - a worker finished the in-flight capture. Path is set on
// success, Err on failure; never both.
type CaptureFinished struct {
	Path string
	Err  error
}

func (m CaptureFinished) Type() string { return TypeCaptureFinished }

// ItemSelected - the operator picked a row in the item list.
type ItemSelected struct {
	Index int
}

func (m ItemSelected) Type() string { return TypeItemSelected }

// SheetLoaded - a spreadsheet was parsed into items.
type SheetLoaded struct {
	Path  string
	Items []items.Item
}

func (m SheetLoaded) Type() string { return TypeSheetLoaded }

// SheetLoadFailed - a spreadsheet could not be parsed.
type SheetLoadFailed struct {
	Err error
}

func (m SheetLoadFailed) Type() string { return TypeSheetLoadFailed }

// OpenLastCapture - open the most recent evidence file in the platform viewer.
type OpenLastCapture struct{}

func (m OpenLastCapture) Type() string { return TypeOpenLastCapture }

// OpenSourceFolder - open the evidence directory in the file manager.
type OpenSourceFolder struct{}

func (m OpenSourceFolder) Type() string { return TypeOpenSourceFolder }

// Effect is an instruction the state machine hands back to the loop instead
// of performing side effects itself. Keeping them as data keeps transitions
// testable without a real window or filesystem.
type Effect interface {
	Kind() string
}

// EffectKind constants.
const (
	KindMinimizeWindow = "MinimizeWindow"
	KindRestoreWindow  = "RestoreWindow"
	KindScheduleDelay  = "ScheduleDelay"
	KindRunCapture     = "RunCapture"
	KindSetStatus      = "SetStatus"
	KindShowItems      = "ShowItems"
	KindShowPreview    = "ShowPreview"
	KindCopyPath       = "CopyPath"
	KindOpenPath       = "OpenPath"
	KindRecordCapture  = "RecordCapture"
)

// MinimizeWindow - hide the application window before capturing.
type MinimizeWindow struct{}

func (e MinimizeWindow) Kind() string { return KindMinimizeWindow }

// RestoreWindow - bring the application window back after a capture.
type RestoreWindow struct{}

func (e RestoreWindow) Kind() string { return KindRestoreWindow }

// ScheduleDelay - arrange for DelayElapsed to be posted after the settle
// interval.
type ScheduleDelay struct {
	After time.Duration
}

func (e ScheduleDelay) Kind() string { return KindScheduleDelay }

// RunCapture - submit the pending request to the capture worker.
type RunCapture struct {
	Dir  string
	Code string
}

func (e RunCapture) Kind() string { return KindRunCapture }

// SetStatus - update the status footer text.
type SetStatus struct {
	Text string
}

func (e SetStatus) Kind() string { return KindSetStatus }

// ShowItems - replace the item list shown by the UI.
type ShowItems struct {
	Items []items.Item
}

func (e ShowItems) Kind() string { return KindShowItems }

// ShowPreview - show the saved evidence file as the last-capture preview.
type ShowPreview struct {
	Path string
}

func (e ShowPreview) Kind() string { return KindShowPreview }

// CopyPath - place the saved evidence path on the system clipboard.
type CopyPath struct {
	Path string
}

func (e CopyPath) Kind() string { return KindCopyPath }

// OpenPath - open a file or directory with the platform handler.
type OpenPath struct {
	Path string
}

func (e OpenPath) Kind() string { return KindOpenPath }

// RecordCapture - append the finished attempt to the capture journal.
type RecordCapture struct {
	Code string
	Path string
	Err  error
}

func (e RecordCapture) Kind() string { return KindRecordCapture }
