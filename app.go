package appkit

import "log/slog"

// State identifies a phase of the application lifecycle. The runner
// moves an application through Construct, Init, Running (one Frame call
// per iteration), Cleanup and finally Destroy.
type State int

const (
	// StateConstruct is the initial state before Init has run.
	StateConstruct State = iota

	// StateInit is active while App.Init runs.
	StateInit

	// StateRunning is the per-frame state; App.Frame runs once per
	// iteration and returns the next state.
	StateRunning

	// StateCleanup is active while App.Cleanup runs.
	StateCleanup

	// StateDestroy terminates the runner.
	StateDestroy

	// StateInvalid marks an unusable state value.
	StateInvalid
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateConstruct:
		return "Construct"
	case StateInit:
		return "Init"
	case StateRunning:
		return "Running"
	case StateCleanup:
		return "Cleanup"
	case StateDestroy:
		return "Destroy"
	default:
		return "Invalid"
	}
}

// App is implemented by applications driven by Run. Each callback
// returns the state to transition to: Init normally returns
// StateRunning, Frame returns StateRunning to keep going or
// StateCleanup to shut down, and Cleanup returns StateDestroy.
type App interface {
	Init() State
	Frame() State
	Cleanup() State
}

// Option configures the Run loop.
type Option func(*runOptions)

type runOptions struct {
	maxFrames int
	onState   func(State)
}

// WithMaxFrames stops the application after n frames by forcing the
// transition to StateCleanup. Useful for tests and headless tools; a
// value <= 0 means unlimited.
func WithMaxFrames(n int) Option {
	return func(o *runOptions) {
		o.maxFrames = n
	}
}

// WithOnState installs a hook invoked on every state transition, after
// the new state is entered. Intended for instrumentation.
func WithOnState(fn func(State)) Option {
	return func(o *runOptions) {
		o.onState = fn
	}
}

// Run drives app through its lifecycle until StateDestroy and then
// returns. State-machine misuse — a callback returning a state the
// current phase cannot transition to — is a programmer error and
// panics.
func Run(app App, opts ...Option) {
	if app == nil {
		panic("appkit: Run with nil App")
	}
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	state := StateConstruct
	frames := 0
	enter := func(next State) {
		Logger().Debug("state transition", slog.String("from", state.String()), slog.String("to", next.String()))
		state = next
		if o.onState != nil {
			o.onState(state)
		}
	}

	enter(StateInit)
	switch next := app.Init(); next {
	case StateRunning:
		enter(StateRunning)
	case StateCleanup:
		enter(StateCleanup)
	default:
		panic("appkit: Init returned " + next.String())
	}

	for state == StateRunning {
		switch next := app.Frame(); next {
		case StateRunning:
			frames++
			if o.maxFrames > 0 && frames >= o.maxFrames {
				enter(StateCleanup)
			}
		case StateCleanup:
			enter(StateCleanup)
		default:
			panic("appkit: Frame returned " + next.String())
		}
	}

	if next := app.Cleanup(); next != StateDestroy {
		panic("appkit: Cleanup returned " + next.String())
	}
	enter(StateDestroy)
	Logger().Info("application destroyed", slog.Int("frames", frames))
}
