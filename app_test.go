package appkit

import (
	"slices"
	"testing"
)

// recordingApp counts lifecycle callbacks and quits after quitAfter frames.
type recordingApp struct {
	inits     int
	frames    int
	cleanups  int
	quitAfter int
}

func (a *recordingApp) Init() State { a.inits++; return StateRunning }

func (a *recordingApp) Frame() State {
	a.frames++
	if a.quitAfter > 0 && a.frames >= a.quitAfter {
		return StateCleanup
	}
	return StateRunning
}

func (a *recordingApp) Cleanup() State { a.cleanups++; return StateDestroy }

func TestRunLifecycle(t *testing.T) {
	app := &recordingApp{quitAfter: 3}

	var states []State
	Run(app, WithOnState(func(s State) { states = append(states, s) }))

	if app.inits != 1 {
		t.Errorf("inits = %d, want 1", app.inits)
	}
	if app.frames != 3 {
		t.Errorf("frames = %d, want 3", app.frames)
	}
	if app.cleanups != 1 {
		t.Errorf("cleanups = %d, want 1", app.cleanups)
	}
	want := []State{StateInit, StateRunning, StateCleanup, StateDestroy}
	if !slices.Equal(states, want) {
		t.Errorf("transitions = %v, want %v", states, want)
	}
}

func TestRunMaxFrames(t *testing.T) {
	app := &recordingApp{}
	Run(app, WithMaxFrames(5))
	if app.frames != 5 {
		t.Errorf("frames = %d, want 5", app.frames)
	}
	if app.cleanups != 1 {
		t.Errorf("cleanups = %d, want 1", app.cleanups)
	}
}

// badInitApp returns an illegal transition from Init.
type badInitApp struct{ recordingApp }

func (a *badInitApp) Init() State { return StateDestroy }

func TestRunPanicsOnBadTransition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on illegal Init transition")
		}
	}()
	Run(&badInitApp{})
}

func TestRunNilApp(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil App")
		}
	}()
	Run(nil)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateConstruct, "Construct"},
		{StateInit, "Init"},
		{StateRunning, "Running"},
		{StateCleanup, "Cleanup"},
		{StateDestroy, "Destroy"},
		{StateInvalid, "Invalid"},
		{State(99), "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}
