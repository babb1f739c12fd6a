package logger

import "testing"

func TestZeroLogDiscards(t *testing.T) {
	var log Log
	log.AddDebug("dropped")
	log.AddError(Loc{Start: 3}, "also dropped")
	if got := log.Done(); len(got) != 0 {
		t.Fatalf("zero Log must discard, got %d messages", len(got))
	}
	if log.HasErrors() {
		t.Fatalf("zero Log can't have errors")
	}
}

func TestForJobStampsMessages(t *testing.T) {
	log := NewLog().ForJob("job-1")
	log.AddDebug("a")
	log.AddDebug("b")

	msgs := log.Done()
	if len(msgs) != 2 {
		t.Fatalf("got %d messages", len(msgs))
	}
	for i, msg := range msgs {
		if msg.Data.JobID != "job-1" {
			t.Fatalf("message %d JobID = %q", i, msg.Data.JobID)
		}
		if msg.Data.Seq != i {
			t.Fatalf("message %d Seq = %d", i, msg.Data.Seq)
		}
	}
}

func TestForJobSharesBuffer(t *testing.T) {
	base := NewLog()
	scoped := base.ForJob("job-2")
	scoped.AddWarning(Loc{}, "shared")
	if len(base.Done()) != 1 {
		t.Fatalf("ForJob must share the underlying buffer")
	}
}

func TestHasErrors(t *testing.T) {
	log := NewLog()
	log.AddWarning(Loc{}, "w")
	if log.HasErrors() {
		t.Fatalf("warnings are not errors")
	}
	log.AddErrorID(MsgID_JS_Unimplemented, Loc{Start: 7}, "e")
	if !log.HasErrors() {
		t.Fatalf("expected an error")
	}
}
