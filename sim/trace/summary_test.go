package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil, 10)
	if summary.TotalEvents != 0 || summary.BusyTicks != 0 || summary.Utilization != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN the round robin trace P1 (burst 3), P2 (burst 2), quantum 2, runfor 7
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.Record(Arrived(0, "P1"))
	st.Record(Selected(0, "P1", 3))
	st.Record(Arrived(1, "P2"))
	st.Record(Selected(2, "P2", 2))
	st.Record(Finished(4, "P2"))
	st.Record(Selected(4, "P1", 1))
	st.Record(Finished(5, "P1"))
	st.Record(Idle(5))
	st.Record(Idle(6))

	// WHEN summarized
	summary := Summarize(st, 7)

	// THEN counts match
	if summary.TotalEvents != 9 {
		t.Errorf("expected 9 events, got %d", summary.TotalEvents)
	}
	if summary.Arrivals != 2 || summary.Selections != 3 || summary.Completions != 2 {
		t.Errorf("unexpected kind counts %+v", summary)
	}
	if summary.IdleTicks != 2 || summary.BusyTicks != 5 {
		t.Errorf("expected 2 idle / 5 busy ticks, got %d / %d", summary.IdleTicks, summary.BusyTicks)
	}
	// THEN only the switch from unfinished P1 to P2 counts as a context switch
	if summary.ContextSwitches != 1 {
		t.Errorf("expected 1 context switch, got %d", summary.ContextSwitches)
	}
	if summary.Utilization < 5.0/7-0.001 || summary.Utilization > 5.0/7+0.001 {
		t.Errorf("expected utilization ~%.4f, got %.4f", 5.0/7, summary.Utilization)
	}
}

func TestSummarize_ReselectionOfSameProcess_NotASwitch(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{})
	st.Record(Selected(0, "P1", 5))
	st.Record(Selected(2, "P1", 3))

	if got := Summarize(st, 4).ContextSwitches; got != 0 {
		t.Errorf("expected 0 context switches, got %d", got)
	}
}
