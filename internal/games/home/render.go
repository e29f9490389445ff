package home

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/homebound/internal/core"
)

type panelPlacement int

const (
	panelCenter panelPlacement = iota
	panelBottom
)

const helpLine = " WASD move  I hold  P phone/notes  Esc close  Q quit "

// renderPresentation draws the HUD and any overlay windows.
func renderPresentation(dst *core.Screen, p Presentation) {
	drawHUD(dst, p)

	if p.Prompt != nil {
		drawPanel(dst, p.Prompt.Label, promptLines(p.Prompt), core.ColorCyan, panelBottom)
	}
	if p.Notes != nil {
		drawPanel(dst, p.Notes.Title, append(append([]string(nil), p.Notes.Lines...), "", "Esc to close"), core.ColorYellow, panelCenter)
	}
	if p.Popup != nil {
		drawPanel(dst, "Oh no!", append(append([]string(nil), p.Popup...), "", "Esc to dismiss"), core.ColorRed, panelCenter)
	}
	switch {
	case p.GameOver != "":
		drawPanel(dst, p.GameOver, []string{
			fmt.Sprintf("Tasks done: %d/%d", p.TasksDone, p.TasksTotal),
			"Press R to restart",
		}, core.ColorBrightRed, panelCenter)
	case p.Won:
		drawPanel(dst, "All tasks done!", []string{
			fmt.Sprintf("Happiness left: %d", p.Happiness),
			"Press R to play again",
		}, core.ColorBrightGreen, panelCenter)
	}
}

func drawHUD(dst *core.Screen, p Presentation) {
	w := dst.Width()
	for x := 0; x < w; x++ {
		dst.Set(x, 0, ' ')
	}

	barW := 10
	filled := 0
	if p.MaxHappy > 0 {
		filled = core.Clamp(p.Happiness*barW/p.MaxHappy, 0, barW)
	}
	bar := strings.Repeat("♥", filled) + strings.Repeat("·", barW-filled)
	color := core.ColorBrightGreen
	switch {
	case p.Happiness*3 < p.MaxHappy:
		color = core.ColorBrightRed
	case p.Happiness*3 < p.MaxHappy*2:
		color = core.ColorYellow
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("Happiness %3d %s", p.Happiness, bar), color)

	task := p.Task
	if task == "" {
		task = "nothing left to do"
	}
	right := fmt.Sprintf("Task %d/%d: %s ", min(p.TasksDone+1, p.TasksTotal), p.TasksTotal, task)
	if p.Task == "" {
		right = fmt.Sprintf("Tasks %d/%d: %s ", p.TasksDone, p.TasksTotal, task)
	}
	dst.DrawTextColor(w-utf8.RuneCountInString(right), 0, right, core.ColorBrightWhite)

	bottom := helpLine
	if len(p.Near) > 0 {
		bottom = " Near: " + strings.Join(p.Near, ", ") + " "
	}
	dst.DrawTextColor(1, dst.Height()-1, bottom, core.ColorGray)
}

func promptLines(t *TaskPrompt) []string {
	lines := append([]string(nil), t.Instructions...)
	if t.Code != "" {
		lines = append(lines, "", "Number: "+t.Code)
		if !t.CodeEntry {
			lines = append(lines, "Press P to dial")
		}
		return lines
	}
	const barW = 20
	n := int(t.Progress * barW)
	lines = append(lines, "", "["+strings.Repeat("█", n)+strings.Repeat(" ", barW-n)+"]")
	return lines
}

// drawPanel draws a bordered window with a title row and body lines.
func drawPanel(dst *core.Screen, title string, lines []string, color core.Color, at panelPlacement) {
	inner := utf8.RuneCountInString(title)
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	boxW := min(inner+4, dst.Width())
	boxH := min(len(lines)+4, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	if at == panelBottom {
		boxY = dst.Height() - boxH - 1
	}

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, color)
	dst.DrawTextColor(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, color)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}
