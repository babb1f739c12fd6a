// Package logger carries source spans and diagnostics between the pass
// composer, the type analyzer, and whatever host embeds them. It mirrors the
// shape of esbuild's internal/logger: a Loc/Range pair identifies a position
// in the original source, and a Log collects Msg values instead of writing
// directly to a terminal.
package logger

import (
	"fmt"
	"sort"
)

// Loc is the 0-based index of a position from the start of the file, in bytes.
type Loc struct {
	Start int32
}

// Range is a Loc plus a length, in bytes.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
	Debug
	Note
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Debug:
		return "debug"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// MsgID groups related diagnostics so a host can filter or silence a whole
// family of them without string-matching the message text.
type MsgID uint16

const (
	MsgID_None MsgID = iota
	MsgID_JS_Unimplemented
	MsgID_JS_UndefinedSymbol
	MsgID_JS_NoCallSignature
	MsgID_JS_WrongParams
	MsgID_Compose_StageTrace
	MsgID_Polyfill_ScriptUnsupported
)

type MsgData struct {
	Text string
	Loc  *Loc

	// JobID correlates this message with the compile.Job that produced it.
	// Empty when the message was produced outside of a job (e.g. in a test).
	JobID string

	// Seq is a per-job monotonic sequence number, used to keep interleaved
	// debug trace lines stably orderable by a host UI.
	Seq int
}

type Msg struct {
	Kind MsgKind
	ID   MsgID
	Data MsgData
}

// Log accumulates messages for one compile job. It intentionally has no
// notion of a terminal or a file system; presentation is a host concern.
type Log struct {
	msgs  *[]Msg
	jobID string
	seq   *int
}

// NewLog returns a fresh, empty Log.
func NewLog() Log {
	return Log{msgs: &[]Msg{}, seq: new(int)}
}

// ForJob returns a view of this Log that stamps every subsequent message
// with id and a per-job monotonic sequence number. The underlying message
// buffer is shared with the receiver.
func (log Log) ForJob(id string) Log {
	log.jobID = id
	return log
}

func (log Log) AddError(loc Loc, text string) {
	log.add(Msg{Kind: Error, Data: MsgData{Text: text, Loc: &loc}})
}

func (log Log) AddErrorID(id MsgID, loc Loc, text string) {
	log.add(Msg{Kind: Error, ID: id, Data: MsgData{Text: text, Loc: &loc}})
}

func (log Log) AddWarning(loc Loc, text string) {
	log.add(Msg{Kind: Warning, Data: MsgData{Text: text, Loc: &loc}})
}

// AddDebug is used by the pass composer's per-stage trace (see compose
// package) and carries no span since it isn't about a source location.
func (log Log) AddDebug(text string) {
	log.add(Msg{Kind: Debug, ID: MsgID_Compose_StageTrace, Data: MsgData{Text: text}})
}

func (log Log) add(msg Msg) {
	if log.msgs == nil {
		// The zero Log is a valid "discard" sink: compose accepts it when
		// the caller doesn't want a trace.
		return
	}
	msg.Data.JobID = log.jobID
	if log.seq != nil {
		msg.Data.Seq = *log.seq
		*log.seq++
	}
	*log.msgs = append(*log.msgs, msg)
}

// Done returns every message recorded so far, in insertion order.
func (log Log) Done() []Msg {
	if log.msgs == nil {
		return nil
	}
	return *log.msgs
}

func (log Log) HasErrors() bool {
	for _, msg := range log.Done() {
		if msg.Kind == Error {
			return true
		}
	}
	return false
}

// SortableMsgs lets a host impose a deterministic order (e.g. for golden
// test output) without the Log itself taking on that opinion.
type SortableMsgs []Msg

func (a SortableMsgs) Len() int      { return len(a) }
func (a SortableMsgs) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a SortableMsgs) Less(i, j int) bool {
	ai, aj := a[i], a[j]
	if ai.Data.Seq != aj.Data.Seq {
		return ai.Data.Seq < aj.Data.Seq
	}
	if ai.Kind != aj.Kind {
		return ai.Kind < aj.Kind
	}
	return ai.Data.Text < aj.Data.Text
}

// SortedDone is Done() with a stable, test-friendly order applied.
func (log Log) SortedDone() []Msg {
	msgs := append([]Msg(nil), log.Done()...)
	sort.Stable(SortableMsgs(msgs))
	return msgs
}

func (m Msg) String() string {
	loc := ""
	if m.Data.Loc != nil {
		loc = fmt.Sprintf("@%d", m.Data.Loc.Start)
	}
	return fmt.Sprintf("%s%s: %s", m.Kind.String(), loc, m.Data.Text)
}
