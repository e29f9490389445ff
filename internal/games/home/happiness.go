package home

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
)

// BadTask is a bad habit that interrupts the player and costs happiness.
type BadTask struct {
	ID      int
	Lines   []string
	Penalty int
}

// HappinessModel owns the happiness score and the bad-task schedule.
//
// The popup counter advances one step per tick while neither a popup nor an
// interaction session is open. When it reaches the interval and no session
// is active, a bad task is picked uniformly from the catalog.
type HappinessModel struct {
	score      int
	max        int
	interval   int
	popupWait  int
	minOpacity int
	maxOpacity int
	catalog    []BadTask

	// pick returns an index in [0, n). Tests replace it for deterministic picks.
	pick func(n int) int
}

// NewHappinessModel creates the model. The catalog is sorted by id so that
// picks depend only on the random source.
func NewHappinessModel(cfg config.HappinessConfig, catalog []config.BadTaskConfig, rng *rand.Rand) *HappinessModel {
	h := &HappinessModel{
		score:      cfg.Initial,
		max:        cfg.Max,
		interval:   cfg.BadTaskInterval,
		minOpacity: cfg.MinOpacity,
		maxOpacity: cfg.MaxOpacity,
		pick:       rng.Intn,
	}
	for _, bt := range catalog {
		h.catalog = append(h.catalog, BadTask{
			ID:      bt.ID,
			Lines:   append([]string(nil), bt.Lines...),
			Penalty: bt.Penalty,
		})
	}
	slices.SortFunc(h.catalog, func(a, b BadTask) int { return a.ID - b.ID })
	return h
}

// Score returns the current happiness.
func (h *HappinessModel) Score() int { return h.score }

// Max returns the happiness ceiling.
func (h *HappinessModel) Max() int { return h.max }

// PopupWait returns the ticks accumulated toward the next bad task.
func (h *HappinessModel) PopupWait() int { return h.popupWait }

// GameOver reports whether happiness ran out.
func (h *HappinessModel) GameOver() bool { return h.score <= 0 }

// Tick advances the schedule by one frame. It returns the bad task that
// fired this tick, if any, after applying its penalty.
func (h *HappinessModel) Tick(sessionActive, popupOpen bool) (BadTask, bool) {
	if h.GameOver() || len(h.catalog) == 0 {
		return BadTask{}, false
	}
	if h.popupWait >= h.interval && !sessionActive {
		bt := h.catalog[h.pick(len(h.catalog))]
		h.score = max(0, h.score-bt.Penalty)
		h.popupWait = 0
		return bt, true
	}
	if !popupOpen && !sessionActive {
		h.popupWait++
	}
	return BadTask{}, false
}

// Speed returns the player speed for the current score.
func (h *HappinessModel) Speed(base float64) float64 {
	if h.max <= 0 {
		return 0
	}
	return float64(h.score) / float64(h.max) * base
}

// Opacity returns the vignette opacity for the current score.
func (h *HappinessModel) Opacity() uint8 {
	return Opacity(h.score, h.max, h.minOpacity, h.maxOpacity)
}

// Opacity maps happiness to an overlay opacity. The curve is quadratic, so
// the view darkens slowly at first and quickly as happiness nears zero.
func Opacity(score, maxScore, minOpacity, maxOpacity int) uint8 {
	if maxScore <= 0 {
		return uint8(core.Clamp(maxOpacity, 0, 255))
	}
	n := float64(score) / float64(maxScore)
	v := (1-n*n)*float64(maxOpacity-minOpacity) + float64(minOpacity)
	v = core.ClampF(v, float64(minOpacity), float64(maxOpacity))
	return uint8(core.Clamp(int(math.Round(v)), 0, 255))
}

// EdgeOpacity returns the opacity used at the outer ring of the vignette.
func EdgeOpacity(o uint8) uint8 {
	return uint8(min(int(o)*4, 255))
}
