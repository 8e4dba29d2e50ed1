package tasting

// Dedup returns labels with duplicates removed, keeping the first
// occurrence. The result is always a new slice.
func Dedup(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// OptionPool holds, per category, every label seen as correct or
// acceptable anywhere in the dataset, in first-seen order.
type OptionPool struct {
	byCat map[Category][]string
}

// BuildPool scans the profiles in order and collects the dataset-wide
// options. For each answer, correct labels are collected before acceptable
// ones.
func BuildPool(profiles []WineProfile) OptionPool {
	p := OptionPool{byCat: make(map[Category][]string)}
	seen := make(map[Category]map[string]bool)
	add := func(cat Category, label string) {
		if seen[cat] == nil {
			seen[cat] = make(map[string]bool)
		}
		if seen[cat][label] {
			return
		}
		seen[cat][label] = true
		p.byCat[cat] = append(p.byCat[cat], label)
	}

	for _, w := range profiles {
		// Each category's list only depends on profile order, so map
		// iteration order does not matter here.
		for cat, d := range w.Answers {
			for _, l := range d.Correct {
				add(cat, l)
			}
			for _, l := range d.AlsoAccept {
				add(cat, l)
			}
		}
	}
	return p
}

// Options returns a copy of the pooled labels for cat.
func (p OptionPool) Options(cat Category) []string {
	return cloneStrings(p.byCat[cat])
}

// Len returns the number of categories with pooled labels.
func (p OptionPool) Len() int {
	return len(p.byCat)
}

// Resolver answers which options are selectable for a category and color.
// It holds only read-only structures built at startup.
type Resolver struct {
	table FixedTable
	pool  OptionPool
}

// NewResolver creates a resolver over a fixed table and a dataset pool.
func NewResolver(table FixedTable, pool OptionPool) *Resolver {
	return &Resolver{table: table, pool: pool}
}

// Resolve returns the ordered, distinct options for cat. A non-empty fixed
// list for the wine color wins; otherwise the dataset pool is used. An empty
// result means neither source knows the category.
func (r *Resolver) Resolve(cat Category, isRed bool) []string {
	if fixed := r.table.Lookup(cat, ColorOf(isRed)); len(fixed) > 0 {
		return Dedup(fixed)
	}
	return Dedup(r.pool.Options(cat))
}

// Table returns the fixed table used by the resolver.
func (r *Resolver) Table() FixedTable {
	return r.table
}
