package home

// TaskPrompt describes the task window shown while the player interacts
// with the object the current task needs.
type TaskPrompt struct {
	Label        string
	Instructions []string
	Progress     float64 // Hold fraction in [0, 1]
	CodeEntry    bool    // Keypad is open
	Code         string  // Keypad display, e.g. "6 9 _ _ _"
}

// NotesView is the content of the notes overlay.
type NotesView struct {
	Title string
	Lines []string
}

// Presentation is a read-only snapshot of everything the renderer shows
// besides the world itself.
type Presentation struct {
	Happiness  int
	MaxHappy   int
	Opacity    uint8
	TasksDone  int
	TasksTotal int
	Task       string // Current task label, empty once all are done
	Near       []string

	Prompt   *TaskPrompt
	Popup    []string
	Notes    *NotesView
	GameOver string
	Won      bool
}

// Presentation snapshots the level for rendering.
//
// The task prompt appears only while the current task is not yet flagged
// complete, its object is active nearby, and a hold or keypad session is on.
func (l *Level) Presentation() Presentation {
	p := Presentation{
		Happiness:  l.happiness.Score(),
		MaxHappy:   l.happiness.Max(),
		Opacity:    l.happiness.Opacity(),
		TasksDone:  l.tasks.Completed(),
		TasksTotal: l.tasks.Total(),
		Won:        l.won,
	}
	for _, o := range l.proximity.Near() {
		p.Near = append(p.Near, o.Name())
	}

	task, ok := l.tasks.Current()
	if ok {
		p.Task = task.Label
	}
	if ok && !l.player.TaskDone && l.session.Active() && l.proximity.ActiveNear(task.Object) {
		p.Prompt = &TaskPrompt{
			Label:        task.Label,
			Instructions: task.Instructions,
			Progress:     l.session.Progress(),
			CodeEntry:    l.session.State() == SessionCodeEntry,
		}
		if task.NeedsCode() {
			p.Prompt.Code = l.keypad.Display()
		}
	}

	switch l.overlay {
	case OverlayPopup:
		p.Popup = l.popup.Lines
	case OverlayNotes:
		p.Notes = &NotesView{Title: l.cfg.Notes.Title, Lines: l.cfg.Notes.Lines}
	}

	if l.happiness.GameOver() {
		p.GameOver = GameOverMessage
	}
	return p
}
