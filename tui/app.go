// Package tui is the interactive terminal front end: a cursor over the
// board, edge toggling, start/end selection and path search, drawn with
// tcell from the render package's canvas.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/session"
)

// App is the TUI state for one session. It is driven from a single
// goroutine: Run, or HandleKey followed by Draw in tests.
type App struct {
	screen tcell.Screen
	sess   *session.Session
	logger *slog.Logger

	cursor     gridgraph.Node
	start, end *gridgraph.Node
	path       []gridgraph.Node
	searched   bool
	stepper    *gridgraph.Stepper
	seed       int64
	message    string
}

// New returns an App drawing sess on screen. The screen must already be
// initialized. seed is the first seed used by the randomize key.
func New(screen tcell.Screen, sess *session.Session, seed int64, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		screen:  screen,
		sess:    sess,
		logger:  logger,
		seed:    seed,
		message: "arrows move · a/w/d/s wall · space start/end · f find · n step · r random · c clear · q quit",
	}
}

// Cursor returns the cell under the cursor.
func (a *App) Cursor() gridgraph.Node { return a.cursor }

// Path returns the last path found; nil if none is displayed.
func (a *App) Path() []gridgraph.Node { return a.path }

// Message returns the status message.
func (a *App) Message() string { return a.message }

// Run draws and processes events until the user quits, the screen is
// finalized, or ctx is done.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	a.Draw()
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventKey:
			if a.HandleKey(ctx, ev) {
				return nil
			}
		}
		a.Draw()
	}
}

// HandleKey applies one key press and reports whether the app should quit.
func (a *App) HandleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		a.move(-1, 0)
	case tcell.KeyRight:
		a.move(1, 0)
	case tcell.KeyUp:
		a.move(0, -1)
	case tcell.KeyDown:
		a.move(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'a':
			a.toggle(-1, 0)
		case 'w':
			a.toggle(0, -1)
		case 'd':
			a.toggle(1, 0)
		case 's':
			a.toggle(0, 1)
		case ' ':
			a.mark()
		case 'f':
			a.find(ctx)
		case 'n':
			a.step(ctx)
		case 'r':
			a.randomize()
		case 'c':
			a.sess.Clear()
			a.invalidate()
			a.message = "walls cleared"
		}
	}

	return false
}

func (a *App) move(dx, dy int) {
	next := gridgraph.Node{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	if a.sess.Graph().InBounds(next) {
		a.cursor = next
	}
}

// toggle flips the edge between the cursor and its neighbor at (dx, dy).
func (a *App) toggle(dx, dy int) {
	other := gridgraph.Node{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	blocked, err := a.sess.Toggle(a.cursor, other)
	if err != nil {
		a.message = "no edge there"
		return
	}
	a.invalidate()
	state := "opened"
	if blocked {
		state = "blocked"
	}
	a.message = fmt.Sprintf("edge %s %s", gridgraph.EdgeKey(a.cursor, other), state)
}

// mark sets start, then end; a third press starts a new selection.
func (a *App) mark() {
	c := a.cursor
	switch {
	case a.start == nil || a.end != nil:
		a.start, a.end = &c, nil
		a.message = "start " + c.String()
	default:
		a.end = &c
		a.message = "end " + c.String()
	}
	a.path, a.searched, a.stepper = nil, false, nil
}

func (a *App) find(ctx context.Context) {
	if a.start == nil || a.end == nil {
		a.message = "set start and end first"
		return
	}
	a.stepper = nil
	res, err := a.sess.FindPath(ctx, *a.start, *a.end)
	if err != nil {
		a.fail("find", err)
		return
	}
	a.path, a.searched = res.Path, true
	switch {
	case res.Found():
		a.message = fmt.Sprintf("path of %d steps in %s", len(res.Path)-1, res.Elapsed)
	case *a.start == *a.end:
		a.message = "start and end are the same cell"
	default:
		a.message = "no path"
	}
}

// step advances a step-by-step search, starting one if needed.
func (a *App) step(ctx context.Context) {
	if a.start == nil || a.end == nil {
		a.message = "set start and end first"
		return
	}
	if a.stepper == nil {
		st, err := a.sess.Graph().NewStepper(*a.start, *a.end, gridgraph.WithContext(ctx))
		if err != nil {
			a.fail("step", err)
			return
		}
		a.stepper, a.path, a.searched = st, nil, false
	}
	snap, err := a.stepper.Step()
	if err != nil {
		a.fail("step", err)
		return
	}
	if snap.Done {
		a.path, a.searched = snap.Path, true
		a.message = fmt.Sprintf("search done after %d steps, found=%t", snap.StepIndex, snap.Found)
		return
	}
	a.message = fmt.Sprintf("step %d: %s at %d, frontier %d",
		snap.StepIndex, snap.Current, snap.Distance, snap.FrontierLen)
}

func (a *App) randomize() {
	n, err := a.sess.Randomize(a.seed)
	if err != nil {
		a.fail("randomize", err)
		return
	}
	a.invalidate()
	a.message = fmt.Sprintf("seed %d: %d walls", a.seed, n)
	a.seed++
}

func (a *App) invalidate() {
	a.path, a.searched, a.stepper = nil, false, nil
}

func (a *App) fail(op string, err error) {
	a.logger.Error("tui_action_failed", slog.String("op", op), slog.Any("error", err))
	if errors.Is(err, context.Canceled) {
		a.message = op + ": cancelled"
		return
	}
	a.message = op + ": " + err.Error()
}
