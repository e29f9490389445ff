package home

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/home/layout"
)

// GameOverMessage is shown once happiness reaches zero.
const GameOverMessage = "Game Over."

// Level is one run through a home map. It owns every piece of simulation
// state and advances them in a fixed order each tick:
// movement, proximity, task advance, interaction, happiness.
type Level struct {
	cfg config.HomeConfig
	m   *layout.Map

	player    *Player
	objects   []*WorldObject
	obstacles []Obstacle
	floor     *Floor

	proximity *ProximityTracker
	tasks     *TaskSequencer
	session   *InteractionSession
	keypad    *Keypad
	happiness *HappinessModel
	camera    *Camera

	overlay Overlay
	popup   BadTask
	won     bool
	ticks   int
}

// NewLevel builds a level for map m. It fails if the config is invalid or a
// task needs an object the map does not have.
func NewLevel(cfg config.HomeConfig, m *layout.Map, clock core.Clock, rng *rand.Rand) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = core.NewSystemClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	sheet, err := newSpriteSheet(cfg.Sprites)
	if err != nil {
		return nil, fmt.Errorf("sprites: %w", err)
	}
	tasks, err := NewTaskSequencer(cfg.Tasks, m.ObjectNames())
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.ID, err)
	}

	l := &Level{
		cfg:       cfg,
		m:         m,
		floor:     NewFloor(m, cfg.Render.CellWidth, cfg.Render.CellHeight, sheet),
		proximity: NewProximityTracker(cfg.Interaction.Radius),
		tasks:     tasks,
		session:   NewInteractionSession(clock, cfg.Interaction.HoldDuration),
		keypad:    NewKeypad(cfg.Interaction.SecretCode, cfg.Interaction.CodeCapacity),
		happiness: NewHappinessModel(cfg.Happiness, cfg.BadTasks, rng),
		camera:    NewCamera(0, 0),
	}

	for _, w := range m.Walls {
		l.obstacles = append(l.obstacles, wall{rect: w})
	}
	for _, p := range m.Objects {
		o := NewWorldObject(p.Name, p.Rect, sheet.lookup(p.Name, "furniture"))
		l.objects = append(l.objects, o)
		l.obstacles = append(l.obstacles, o)
	}

	sprites := make(map[Facing]*Image, 4)
	for _, f := range []Facing{FacingDown, FacingUp, FacingLeft, FacingRight} {
		sprites[f] = sheet.lookup("player_"+string(f), "player_down").Inactive
	}
	l.player = NewPlayer(m.Spawn.X, m.Spawn.Y, cfg.Player.Size, cfg.Player.HitboxInset, sprites)
	l.player.SetSpeed(l.happiness.Speed(cfg.Player.BaseSpeed))

	// Objects next to the spawn point start highlighted
	l.proximity.Update(l.player.Bounds(), l.objects)
	return l, nil
}

// Step advances the level by one tick.
func (l *Level) Step(in core.InputFrame) core.StepResult {
	if l.happiness.GameOver() {
		return core.StepResult{State: l.State()}
	}
	l.ticks++
	var events []core.Event

	l.player.Steer(in)
	l.player.Move(l.obstacles)

	l.proximity.Update(l.player.Bounds(), l.objects)
	l.closeKeypadOutOfRange()

	if done, ok := l.tasks.Advance(&l.player.TaskDone); ok {
		events = append(events, core.Event{
			Kind:    core.EventTaskCompleted,
			Message: done.Label,
			Value:   l.tasks.Completed(),
		})
		if l.tasks.AllComplete() {
			l.won = true
			events = append(events, core.Event{
				Kind:    core.EventAllTasksDone,
				Message: fmt.Sprintf("%d tasks done", l.tasks.Total()),
				Value:   l.happiness.Score(),
			})
		}
	}

	events = append(events, l.handleInput(in)...)
	l.checkHold()
	events = append(events, l.updateHappiness()...)

	return core.StepResult{State: l.State(), Events: events}
}

// handleInput applies this tick's key edges.
func (l *Level) handleInput(in core.InputFrame) []core.Event {
	var events []core.Event

	if in.Has(core.ActionBack) {
		l.back()
	}

	if in.Has(core.ActionInteract) {
		l.session.BeginHold(!l.proximity.Empty())
	}
	if in.WasReleased(core.ActionInteract) {
		l.session.ReleaseHold()
	}

	if in.Has(core.ActionUse) {
		l.use()
	}

	if l.session.State() == SessionCodeEntry {
		for _, r := range in.Text {
			l.keypad.Press(r)
		}
		if in.Has(core.ActionErase) {
			l.keypad.Erase()
		}
		if in.Has(core.ActionConfirm) {
			attempt := l.keypad.Digits()
			if l.keypad.Submit() {
				l.player.TaskDone = true
				l.session.CloseCodeEntry()
			} else {
				events = append(events, core.Event{
					Kind:    core.EventCodeRejected,
					Message: fmt.Sprintf("wrong code %q", attempt),
				})
			}
		}
	}
	return events
}

// use opens the keypad when the current task needs a code and its object is
// in range; otherwise it opens the notes if they are in range.
func (l *Level) use() {
	task, ok := l.tasks.Current()
	if ok && task.NeedsCode() && l.proximity.ActiveNear(task.Object) {
		if l.session.OpenCodeEntry() {
			l.keypad.Clear()
		}
		return
	}
	notes := l.cfg.Notes.Object
	if notes == "" || l.overlay != OverlayNone || !l.proximity.ActiveNear(notes) {
		return
	}
	l.overlay = OverlayNotes
	if o := l.proximity.Find(notes); o != nil {
		o.MarkUsed()
	}
}

// closeKeypadOutOfRange shuts the keypad once the object of the current
// task is no longer in range, so a code can only be dialed at the phone.
func (l *Level) closeKeypadOutOfRange() {
	if l.session.State() != SessionCodeEntry {
		return
	}
	task, ok := l.tasks.Current()
	if ok && l.proximity.ActiveNear(task.Object) {
		return
	}
	l.session.CloseCodeEntry()
	l.keypad.Clear()
}

// back closes the topmost thing: a popup, then the keypad, then the notes.
func (l *Level) back() {
	switch {
	case l.overlay == OverlayPopup:
		l.overlay = OverlayNone
	case l.session.State() == SessionCodeEntry:
		l.session.CloseCodeEntry()
		l.keypad.Clear()
	case l.overlay == OverlayNotes:
		l.overlay = OverlayNone
	}
}

func (l *Level) checkHold() {
	task, ok := l.tasks.Current()
	required := ok && l.proximity.ActiveNear(task.Object)
	if l.session.CheckHold(task, ok, required) {
		l.player.TaskDone = true
	}
}

func (l *Level) updateHappiness() []core.Event {
	if l.won {
		return nil
	}
	bt, fired := l.happiness.Tick(l.session.Active(), l.overlay == OverlayPopup)
	if !fired {
		return nil
	}
	l.overlay = OverlayPopup
	l.popup = bt
	l.player.SetSpeed(l.happiness.Speed(l.cfg.Player.BaseSpeed))

	events := []core.Event{{
		Kind:    core.EventBadTask,
		Message: strings.Join(bt.Lines, " "),
		Value:   bt.Penalty,
	}}
	if l.happiness.GameOver() {
		l.overlay = OverlayNone
		events = append(events, core.Event{
			Kind:    core.EventGameOver,
			Message: GameOverMessage,
			Value:   l.tasks.Completed(),
		})
	}
	return events
}

// State returns the run summary.
func (l *Level) State() core.GameState {
	return core.GameState{
		Score:      l.happiness.Score(),
		TasksDone:  l.tasks.Completed(),
		TasksTotal: l.tasks.Total(),
		GameOver:   l.happiness.GameOver(),
		Won:        l.won,
	}
}

// Ticks returns how many ticks were simulated.
func (l *Level) Ticks() int { return l.ticks }

// Frame returns the draw list for a viewport of the given world size.
func (l *Level) Frame(viewW, viewH int) []DrawCommand {
	l.camera.Resize(viewW, viewH)
	entities := make([]Drawable, 0, len(l.objects)+1)
	entities = append(entities, l.player)
	for _, o := range l.objects {
		entities = append(entities, o)
	}
	return l.camera.Frame(l.player.Bounds(), l.floor, entities)
}
