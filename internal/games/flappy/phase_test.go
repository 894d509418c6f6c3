package flappy

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		from     Phase
		trigger  Trigger
		to       Phase
		accepted bool
	}{
		{PhaseStart, TriggerPrimary, PhasePlaying, true},
		{PhaseStart, TriggerRestart, PhaseStart, false},
		{PhaseStart, TriggerCrash, PhaseStart, false},
		{PhasePlaying, TriggerPrimary, PhasePlaying, true},
		{PhasePlaying, TriggerRestart, PhasePlaying, false},
		{PhasePlaying, TriggerCrash, PhaseEnded, true},
		{PhaseEnded, TriggerPrimary, PhasePlaying, true},
		{PhaseEnded, TriggerRestart, PhasePlaying, true},
		{PhaseEnded, TriggerCrash, PhaseEnded, false},
	}

	for _, tc := range tests {
		to, ok := transition(tc.from, tc.trigger)
		if to != tc.to || ok != tc.accepted {
			t.Errorf("transition(%v, %d) = (%v, %v), expected (%v, %v)",
				tc.from, tc.trigger, to, ok, tc.to, tc.accepted)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseStart.String() != "Start" || PhasePlaying.String() != "Playing" || PhaseEnded.String() != "Ended" {
		t.Error("unexpected phase names")
	}
	if Phase(42).String() != "Unknown" {
		t.Error("unknown phase should be named Unknown")
	}
}
