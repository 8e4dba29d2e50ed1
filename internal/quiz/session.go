package quiz

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/winequiz/internal/grading"
	"github.com/abhisek/winequiz/internal/tasting"
)

// round is everything that belongs to the active wine. Switching wines
// replaces the whole round, so picks and reveals of the previous wine can
// never be observed against the new one.
type round struct {
	wine      tasting.WineProfile
	board     []CategoryView
	index     map[tasting.Category]int
	picks     map[tasting.Category]map[string]bool
	revealAll bool
	revealed  map[tasting.Category]bool
}

func newRound(w tasting.WineProfile, board []CategoryView) *round {
	idx := make(map[tasting.Category]int, len(board))
	for i, v := range board {
		idx[v.Category] = i
	}
	return &round{
		wine:     w,
		board:    board,
		index:    idx,
		picks:    make(map[tasting.Category]map[string]bool),
		revealed: make(map[tasting.Category]bool),
	}
}

// CategoryState is a category view combined with the learner's picks and
// reveal state.
type CategoryState struct {
	CategoryView

	// Picked lists the picked options in display order.
	Picked []string

	// Revealed is true once the category or the whole sheet was graded.
	Revealed bool

	// Result is the grading result; nil until Revealed.
	Result *grading.Result

	// ShowHint is true when the count hint should be displayed.
	ShowHint bool
}

// IsPicked reports whether label is currently picked.
func (c CategoryState) IsPicked(label string) bool {
	for _, p := range c.Picked {
		if p == label {
			return true
		}
	}
	return false
}

// Session is the state of one learner working through one wine at a time.
// It is driven from a single goroutine and needs no locking.
type Session struct {
	// ID identifies the session.
	ID string

	engine   *Engine
	rng      *rand.Rand
	mode     Mode
	showHint bool
	manualID string
	cur      *round
}

// NewSession creates a session and deals a random first wine.
func NewSession(engine *Engine, cfg Config) (*Session, error) {
	if engine == nil {
		return nil, errNoEngine
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Session{
		ID:       uuid.New().String(),
		engine:   engine,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		mode:     cfg.Mode,
		showHint: cfg.ShowCountHint,
	}
	s.RandomWine()
	if s.mode == ModeManual {
		s.manualID = s.cur.wine.ID
	}
	return s, nil
}

// Engine returns the engine the session runs on.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Wine returns the active wine.
func (s *Session) Wine() tasting.WineProfile {
	return s.cur.wine
}

// Mode returns the wine selection mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode changes the selection mode. Entering manual mode makes the
// active wine the manual choice.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	if m == ModeManual {
		s.manualID = s.cur.wine.ID
	}
}

// ShowCountHint reports whether count hints are enabled.
func (s *Session) ShowCountHint() bool {
	return s.showHint
}

// ToggleCountHint flips the count hint setting.
func (s *Session) ToggleCountHint() {
	s.showHint = !s.showHint
}

// SelectWine makes the wine with id active and records it as the manual
// choice. An unknown id is a no-op and returns false.
func (s *Session) SelectWine(id string) bool {
	w, ok := s.engine.ds.Lookup(id)
	if !ok {
		return false
	}
	s.manualID = id
	s.load(w)
	return true
}

// RandomWine makes a uniformly chosen wine active.
func (s *Session) RandomWine() {
	ds := s.engine.ds
	s.load(ds.At(s.rng.IntN(ds.Len())))
}

// Next deals the next wine: a random one in random mode, the manual choice
// again in manual mode.
func (s *Session) Next() {
	if s.mode == ModeManual {
		if s.manualID != "" {
			s.SelectWine(s.manualID)
		}
		return
	}
	s.RandomWine()
}

// Reset clears picks and reveals for the active wine.
func (s *Session) Reset() {
	s.cur = newRound(s.cur.wine, s.cur.board)
}

func (s *Session) load(w tasting.WineProfile) {
	s.cur = newRound(w, s.engine.Board(w))
}

// Toggle flips label in cat. It reports false, and changes nothing, when
// the category is not shown for this wine or label is not one of its
// options.
func (s *Session) Toggle(cat tasting.Category, label string) bool {
	v, ok := s.view(cat)
	if !ok || !v.HasOption(label) {
		return false
	}
	set := s.cur.picks[cat]
	if set == nil {
		set = make(map[string]bool)
		s.cur.picks[cat] = set
	}
	if set[label] {
		delete(set, label)
	} else {
		set[label] = true
	}
	return true
}

// RevealCategory marks one category as graded.
func (s *Session) RevealCategory(cat tasting.Category) {
	if _, ok := s.view(cat); ok {
		s.cur.revealed[cat] = true
	}
}

// RevealAll marks every category as graded.
func (s *Session) RevealAll() {
	s.cur.revealAll = true
}

// AllRevealed reports whether the whole sheet was graded at once or every
// category individually.
func (s *Session) AllRevealed() bool {
	if s.cur.revealAll {
		return true
	}
	for _, v := range s.cur.board {
		if !s.cur.revealed[v.Category] {
			return false
		}
	}
	return true
}

// Revealed reports whether cat is graded.
func (s *Session) Revealed(cat tasting.Category) bool {
	return s.cur.revealAll || s.cur.revealed[cat]
}

// Picked returns the picked options of cat in display order.
func (s *Session) Picked(cat tasting.Category) []string {
	v, ok := s.view(cat)
	if !ok {
		return nil
	}
	set := s.cur.picks[cat]
	var out []string
	for _, o := range v.Options {
		if set[o] {
			out = append(out, o)
		}
	}
	return out
}

// Board returns the visible categories of the active wine.
func (s *Session) Board() []CategoryView {
	out := make([]CategoryView, len(s.cur.board))
	copy(out, s.cur.board)
	return out
}

// State returns the state of one category.
func (s *Session) State(cat tasting.Category) (CategoryState, bool) {
	v, ok := s.view(cat)
	if !ok {
		return CategoryState{}, false
	}
	return s.state(v), true
}

// View returns the state of every visible category in display order.
func (s *Session) View() []CategoryState {
	out := make([]CategoryState, 0, len(s.cur.board))
	for _, v := range s.cur.board {
		out = append(out, s.state(v))
	}
	return out
}

// Summary aggregates the tallies of the revealed categories.
func (s *Session) Summary() grading.Summary {
	var sum grading.Summary
	for _, v := range s.cur.board {
		if !s.Revealed(v.Category) {
			continue
		}
		sum.Add(v.Grade(s.cur.picks[v.Category]).Tally)
	}
	return sum
}

func (s *Session) state(v CategoryView) CategoryState {
	st := CategoryState{
		CategoryView: v,
		Picked:       s.Picked(v.Category),
		Revealed:     s.Revealed(v.Category),
	}
	if st.Revealed {
		res := v.Grade(s.cur.picks[v.Category])
		st.Result = &res
	} else {
		st.ShowHint = s.showHint && v.Hint > 0
	}
	return st
}

func (s *Session) view(cat tasting.Category) (CategoryView, bool) {
	i, ok := s.cur.index[cat]
	if !ok {
		return CategoryView{}, false
	}
	return s.cur.board[i], true
}
