// Package resend drives the "resend reports by mail" interaction as a pure
// state machine. Reduce never performs I/O; callers decide what to do with the
// recorded requests.
package resend

import (
	"fmt"
	"sort"
	"time"

	"github.com/oklog/ulid"

	"github.com/songminj/logtrack/types"
	"github.com/songminj/logtrack/utils/typeutils"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level NoticeLevel
	Text  string
}

func (n Notice) Empty() bool {
	return n.Text == ""
}

// Request is a confirmed resend of Reports to Emails.
type Request struct {
	ID      ulid.ULID `json:"id"`
	Reports []string  `json:"reports"`
	Emails  []string  `json:"emails"`
	At      time.Time `json:"at"`
}

// State is everything the resend view needs between interactions.
type State struct {
	Candidates []string // report names, in display order
	Mode       bool     // selection checkboxes shown
	Selected   []int    // indexes into Candidates, ascending
	Dialog     bool     // confirmation dialog open
	Emails     string   // dialog text, comma separated
	LastEmails string   // prefill for the next dialog
	Notice     Notice
	Requests   []Request
}

// NewState lists the reports of ds as resend candidates.
func NewState(ds types.Dataset) State {
	candidates := make([]string, 0, ds.Len())
	for _, name := range ds.Column("report_name") {
		candidates = append(candidates, typeutils.Stringify(name))
	}
	return State{Candidates: candidates}
}

// SelectedReports returns the names of the selected candidates.
func (s State) SelectedReports() []string {
	names := make([]string, 0, len(s.Selected))
	for _, idx := range s.Selected {
		names = append(names, s.Candidates[idx])
	}
	return names
}

func (s State) IsSelected(idx int) bool {
	pos := sort.SearchInts(s.Selected, idx)
	return pos < len(s.Selected) && s.Selected[pos] == idx
}

type Msg interface {
	msg()
}

type (
	// ToggleMode shows or hides the selection checkboxes.
	ToggleMode struct{}
	// ToggleSelect flips the selection of one candidate.
	ToggleSelect struct{ Index int }
	// Submit opens the confirmation dialog for the current selection.
	Submit struct{}
	// SetEmails replaces the dialog's recipient text.
	SetEmails struct{ Text string }
	// Confirm records the request. ID and At are supplied by the caller, see NewConfirm.
	Confirm struct {
		ID ulid.ULID
		At time.Time
	}
	// Cancel closes the dialog without recording anything.
	Cancel struct{}
)

func (ToggleMode) msg()   {}
func (ToggleSelect) msg() {}
func (Submit) msg()       {}
func (SetEmails) msg()    {}
func (Confirm) msg()      {}
func (Cancel) msg()       {}

// NewConfirm stamps a confirmation with a fresh ULID taken at now.
func NewConfirm(now time.Time) Confirm {
	return Confirm{ID: ulid.MustNew(ulid.Timestamp(now), entropy()), At: now}
}

// Reduce returns the state that follows msg. s is never modified.
func Reduce(s State, msg Msg) State {
	next := s
	next.Notice = Notice{}

	switch m := msg.(type) {
	case ToggleMode:
		next.Mode = !s.Mode
		if !next.Mode {
			next.Selected = nil
			next.Dialog = false
		}

	case ToggleSelect:
		if !s.Mode {
			return s
		}
		if m.Index < 0 || m.Index >= len(s.Candidates) {
			next.Notice = Notice{Level: NoticeError, Text: fmt.Sprintf("no report at position %d", m.Index)}
			return next
		}
		next.Selected = toggle(s.Selected, m.Index)

	case Submit:
		if !s.Mode {
			return s
		}
		if len(s.Selected) == 0 {
			next.Notice = Notice{Level: NoticeWarning, Text: "select at least one report to resend"}
			return next
		}
		next.Dialog = true
		next.Emails = s.LastEmails

	case SetEmails:
		if !s.Dialog {
			return s
		}
		next.Emails = m.Text

	case Confirm:
		if !s.Dialog {
			return s
		}
		emails, err := ParseEmails(s.Emails)
		if err != nil {
			next.Notice = Notice{Level: NoticeError, Text: err.Error()}
			return next
		}

		request := Request{ID: m.ID, Reports: s.SelectedReports(), Emails: emails, At: m.At}
		next.Requests = append(append([]Request(nil), s.Requests...), request)
		next.LastEmails = s.Emails
		next.Dialog = false
		next.Mode = false
		next.Selected = nil
		next.Notice = Notice{
			Level: NoticeSuccess,
			Text:  fmt.Sprintf("resend requested: %d report(s) to %d recipient(s)", len(request.Reports), len(emails)),
		}

	case Cancel:
		if !s.Dialog {
			return s
		}
		next.Dialog = false
		next.Notice = Notice{Level: NoticeInfo, Text: "resend cancelled"}
	}

	return next
}

func toggle(selected []int, idx int) []int {
	out := make([]int, 0, len(selected)+1)
	found := false
	for _, cur := range selected {
		if cur == idx {
			found = true
			continue
		}
		out = append(out, cur)
	}
	if !found {
		out = append(out, idx)
		sort.Ints(out)
	}
	return out
}
