package catalog

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// VisibleLimit is how many packages a collapsed listing shows.
const VisibleLimit = 4

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrEmptyCatalog    = errors.New("catalog has no packages")
)

// Entry is a package as it is written in configuration or stored in the database.
type Entry struct {
	Price    string
	Duration string
	Tier     string
}

// Package is a validated catalog entry. ID is its 1-based position in the catalog.
type Package struct {
	ID       int
	Price    Price
	Duration string
	Tier     Tier
}

// Catalog is the immutable, validated package list.
type Catalog struct {
	packages []Package
	warnings []string
}

// New validates entries in order. Every bad entry is reported in the returned
// error; a tier or duration that only needed normalizing becomes a warning.
func New(entries []Entry, cur Currency) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{packages: make([]Package, 0, len(entries))}
	var errs error
	for i, e := range entries {
		p, warnings, err := parseEntry(i+1, e, cur)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		c.warnings = append(c.warnings, warnings...)
		c.packages = append(c.packages, p)
	}
	if errs != nil {
		return nil, errs
	}

	return c, nil
}

func parseEntry(id int, e Entry, cur Currency) (Package, []string, error) {
	var warnings []string

	price, priceErr := ParsePrice(e.Price, cur)
	tier, normalized, tierErr := ParseTier(e.Tier)
	duration := strings.TrimSpace(e.Duration)

	var durationErr error
	if duration == "" {
		durationErr = errors.New("duration is empty")
	}

	if err := multierr.Combine(priceErr, tierErr, durationErr); err != nil {
		return Package{}, nil, fmt.Errorf("package %d: %w", id, err)
	}

	if normalized {
		warnings = append(warnings, fmt.Sprintf("package %d: tier %q normalized to %q", id, e.Tier, tier))
	}
	if duration != e.Duration {
		warnings = append(warnings, fmt.Sprintf("package %d: duration %q trimmed", id, e.Duration))
	}
	if price.IsZero() {
		warnings = append(warnings, fmt.Sprintf("package %d: price is zero", id))
	}

	return Package{ID: id, Price: price, Duration: duration, Tier: tier}, warnings, nil
}

// Warnings lists the non-fatal problems found while loading.
func (c *Catalog) Warnings() []string {
	return c.warnings
}

func (c *Catalog) Len() int {
	return len(c.packages)
}

// All returns a copy of every package in catalog order.
func (c *Catalog) All() []Package {
	out := make([]Package, len(c.packages))
	copy(out, c.packages)
	return out
}

func (c *Catalog) Get(id int) (Package, error) {
	if id < 1 || id > len(c.packages) {
		return Package{}, fmt.Errorf("%w: %d", ErrPackageNotFound, id)
	}
	return c.packages[id-1], nil
}

// Filter returns the packages passing f, preserving catalog order.
func (c *Catalog) Filter(f Filter) []Package {
	out := make([]Package, 0, len(c.packages))
	for _, p := range c.packages {
		if f.Matches(p.Tier) {
			out = append(out, p)
		}
	}
	return out
}

// View is the listing shown for one filter and expansion setting.
type View struct {
	Filter     Filter
	Expanded   bool
	Expandable bool
	Total      int
	Packages   []Package
}

func (c *Catalog) View(f Filter, expanded bool) View {
	filtered := c.Filter(f)
	return View{
		Filter:     f,
		Expanded:   expanded,
		Expandable: Expandable(filtered),
		Total:      len(filtered),
		Packages:   Visible(filtered, expanded),
	}
}

// Visible caps a filtered list at VisibleLimit unless it is expanded.
func Visible(filtered []Package, expanded bool) []Package {
	if expanded || len(filtered) <= VisibleLimit {
		return filtered
	}
	return filtered[:VisibleLimit]
}

// Expandable reports whether the expand control should be offered at all.
func Expandable(filtered []Package) bool {
	return len(filtered) > VisibleLimit
}
