// Package quiz ties the dataset, option resolution and grading together
// into a single-wine tasting session.
package quiz

import (
	"github.com/abhisek/winequiz/internal/dataset"
	"github.com/abhisek/winequiz/internal/grading"
	"github.com/abhisek/winequiz/internal/tasting"
)

// CategoryView is one displayable category of a wine's tasting sheet.
type CategoryView struct {
	Category tasting.Category
	Section  tasting.Section

	// Options are the selectable labels in display order.
	Options []string

	// Detail is the answer key with the count rule applied.
	Detail tasting.AnswerDetail

	// Hint is the number of correct labels.
	Hint int
}

// Engine holds the read-only structures every session shares: the
// normalized dataset and the option resolver built from it.
type Engine struct {
	ds       *dataset.Dataset
	resolver *tasting.Resolver
}

// NewEngine builds an engine over ds. An empty dataset is rejected because
// no session could start.
func NewEngine(ds *dataset.Dataset, table tasting.FixedTable) (*Engine, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, dataset.ErrEmpty
	}
	return &Engine{
		ds:       ds,
		resolver: tasting.NewResolver(table, ds.Pool()),
	}, nil
}

// Dataset returns the engine's dataset.
func (e *Engine) Dataset() *dataset.Dataset {
	return e.ds
}

// Resolver returns the engine's option resolver.
func (e *Engine) Resolver() *tasting.Resolver {
	return e.resolver
}

// Board returns the visible categories for w in display order. Categories
// hidden for the wine color, and categories with neither options nor
// correct labels, are left out.
func (e *Engine) Board(w tasting.WineProfile) []CategoryView {
	var views []CategoryView
	for _, cat := range tasting.Order() {
		if tasting.HiddenForColor(cat, w.Color()) {
			continue
		}
		options := e.resolver.Resolve(cat, w.IsRed)
		detail, _ := w.Answer(cat)
		detail = tasting.ApplyCountRule(cat, detail)
		if len(options) == 0 && len(detail.Correct) == 0 {
			continue
		}
		views = append(views, CategoryView{
			Category: cat,
			Section:  tasting.SectionOf(cat),
			Options:  options,
			Detail:   detail,
			Hint:     grading.Hint(detail.Correct),
		})
	}
	return views
}

// Grade grades picked against one category view.
func (v CategoryView) Grade(picked map[string]bool) grading.Result {
	return grading.Grade(v.Options, v.Detail.Correct, v.Detail.AlsoAccept, picked)
}

// HasOption reports whether label is selectable in this category.
func (v CategoryView) HasOption(label string) bool {
	for _, o := range v.Options {
		if o == label {
			return true
		}
	}
	return false
}
