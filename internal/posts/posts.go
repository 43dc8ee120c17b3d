package posts

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// UnknownYear labels the group of items whose date could not be read. It is
// always the last group.
const UnknownYear = "unknown"

// DateAccessor reads the date of an item. It may return a time.Time, a
// *time.Time or a string; anything else counts as a missing date.
type DateAccessor[T any] func(item T) any

// Dated is implemented by records that expose their publication date.
type Dated interface {
	PublishedDate() any
}

type YearGroup[T any] struct {
	Year  string `json:"year"`
	Posts []T    `json:"posts"`
}

// PublishedAt is the default accessor.
func PublishedAt[T any](item T) any {
	if d, ok := any(item).(Dated); ok {
		return d.PublishedDate()
	}
	return nil
}

// ParseDate coerces an accessor value into a time.
func ParseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

type datedItem[T any] struct {
	item  T
	date  time.Time
	valid bool
}

func resolve[T any](items []T, accessor DateAccessor[T]) []datedItem[T] {
	if accessor == nil {
		accessor = PublishedAt[T]
	}
	out := make([]datedItem[T], len(items))
	for i, item := range items {
		date, ok := ParseDate(accessor(item))
		out[i] = datedItem[T]{item: item, date: date, valid: ok}
	}
	return out
}

// SortByDate returns a copy of items ordered newest first. Equal dates keep
// their input order; items without a readable date go last.
func SortByDate[T any](items []T, accessor DateAccessor[T]) []T {
	dated := resolve(items, accessor)

	slices.SortStableFunc(dated, func(a, b datedItem[T]) int {
		switch {
		case a.valid && !b.valid:
			return -1
		case !a.valid && b.valid:
			return 1
		case !a.valid && !b.valid:
			return 0
		}
		return b.date.Compare(a.date)
	})

	out := make([]T, len(dated))
	for i, d := range dated {
		out[i] = d.item
	}
	return out
}

// GroupByYear buckets items by the calendar year of their date, newest year
// first. Items keep their relative order inside a bucket.
func GroupByYear[T any](items []T, accessor DateAccessor[T]) []YearGroup[T] {
	buckets := make(map[int][]T)
	var years []int
	var unknown []T

	for _, d := range resolve(items, accessor) {
		if !d.valid {
			unknown = append(unknown, d.item)
			continue
		}
		year := d.date.Year()
		if _, ok := buckets[year]; !ok {
			years = append(years, year)
		}
		buckets[year] = append(buckets[year], d.item)
	}

	slices.SortFunc(years, func(a, b int) int { return b - a })

	groups := make([]YearGroup[T], 0, len(years)+1)
	for _, year := range years {
		groups = append(groups, YearGroup[T]{Year: fmt.Sprintf("%04d", year), Posts: buckets[year]})
	}
	if len(unknown) > 0 {
		groups = append(groups, YearGroup[T]{Year: UnknownYear, Posts: unknown})
	}
	return groups
}
