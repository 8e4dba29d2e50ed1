package dataset

import (
	"fmt"
	"strings"

	"github.com/abhisek/winequiz/internal/tasting"
)

// Report collects everything normalization dropped or found suspicious.
type Report struct {
	Drops    []Drop
	Warnings []string
}

// Empty reports whether there is nothing to show.
func (r Report) Empty() bool {
	return len(r.Drops) == 0 && len(r.Warnings) == 0
}

// Dataset is the normalized, immutable reference dataset together with the
// option pool derived from it. Build it once at startup and pass it where
// it is needed.
type Dataset struct {
	version string
	wines   []tasting.WineProfile
	byID    map[string]int
	pool    tasting.OptionPool
	report  Report
}

// Build normalizes raw records and derives the option pool. version is the
// declared schemaVersion, or empty when the document did not declare one.
func Build(version string, raws []RawRecord) (*Dataset, error) {
	if err := checkSchemaVersion(version); err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, ErrEmpty
	}

	ds := &Dataset{
		version: version,
		wines:   make([]tasting.WineProfile, 0, len(raws)),
		byID:    make(map[string]int, len(raws)),
	}

	for i, raw := range raws {
		w, drops := Normalize(raw)
		if w.ID == "" {
			return nil, fmt.Errorf("record #%d: %w", i+1, ErrMissingID)
		}
		if _, dup := ds.byID[w.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, w.ID)
		}
		if usesMergedKeys(version) {
			if legacy := legacyKeysIn(raw); len(legacy) > 0 {
				ds.report.Warnings = append(ds.report.Warnings, fmt.Sprintf(
					"%s: legacy aroma keys %s in a %s dataset were merged",
					w.ID, strings.Join(legacy, ", "), version))
			}
		}
		ds.report.Drops = append(ds.report.Drops, drops...)
		ds.byID[w.ID] = len(ds.wines)
		ds.wines = append(ds.wines, w)
	}

	ds.pool = tasting.BuildPool(ds.wines)
	return ds, nil
}

// SchemaVersion returns the declared schema version, or "" if inferred.
func (d *Dataset) SchemaVersion() string {
	return d.version
}

// Len returns the number of wines.
func (d *Dataset) Len() int {
	return len(d.wines)
}

// Wines returns all wines in dataset order. Profiles are shared and must
// not be modified.
func (d *Dataset) Wines() []tasting.WineProfile {
	out := make([]tasting.WineProfile, len(d.wines))
	copy(out, d.wines)
	return out
}

// At returns the wine at index i in dataset order.
func (d *Dataset) At(i int) tasting.WineProfile {
	return d.wines[i]
}

// Lookup finds a wine by id.
func (d *Dataset) Lookup(id string) (tasting.WineProfile, bool) {
	i, ok := d.byID[id]
	if !ok {
		return tasting.WineProfile{}, false
	}
	return d.wines[i], true
}

// Whites returns the white wines in dataset order.
func (d *Dataset) Whites() []tasting.WineProfile {
	return d.filter(false)
}

// Reds returns the red wines in dataset order.
func (d *Dataset) Reds() []tasting.WineProfile {
	return d.filter(true)
}

func (d *Dataset) filter(red bool) []tasting.WineProfile {
	var out []tasting.WineProfile
	for _, w := range d.wines {
		if w.IsRed == red {
			out = append(out, w)
		}
	}
	return out
}

// Pool returns the dataset-wide option pool.
func (d *Dataset) Pool() tasting.OptionPool {
	return d.pool
}

// Report returns what normalization dropped or warned about.
func (d *Dataset) Report() Report {
	return Report{
		Drops:    append([]Drop(nil), d.report.Drops...),
		Warnings: append([]string(nil), d.report.Warnings...),
	}
}
