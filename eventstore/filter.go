package eventstore

import (
	"cmp"
	"slices"
	"time"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

/***** Filter *****/

// Filter describes a "dynamic event stream": the FilterItem(s) are combined with OR,
// the optional time window is combined with AND.
type Filter struct {
	items         []FilterItem
	occurredFrom  time.Time
	occurredUntil time.Time
}

func (f Filter) Items() []FilterItem {
	return f.items
}

// OccurredFrom returns the inclusive lower time boundary, zero if not set.
func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

// OccurredUntil returns the inclusive upper time boundary, zero if not set.
func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

/***** FilterItem *****/

type FilterItem struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (fi FilterItem) EventTypes() []FilterEventTypeString {
	return fi.eventTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

/***** FilterPredicate *****/

// FilterPredicate matches events whose top-level JSON payload has the given key with the given string value.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

/***** FilterBuilder *****/

// FilterBuilder builds a storage-agnostic event filter which engines translate into their query language.
// Only combinations that are useful for event-sourced decisions can be expressed:
//
//   - empty filter
//   - (eventType OR eventType...)
//   - (predicate OR predicate...) / (predicate AND predicate...)
//   - ((eventType OR eventType...) AND (predicate OR/AND predicate...))
//   - multiple of the above combined with OR
//   - any of the above restricted to an occurredAt window
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyEvent directly creates an empty Filter.
	MatchingAnyEvent() Filter

	// OccurredFrom restricts the Filter to events that occurred at or after from.
	OccurredFrom(from time.Time) FilterBuilderLackingOccurredUntil

	// OccurredUntil restricts the Filter to events that occurred at or before until.
	OccurredUntil(until time.Time) CompletedFilterBuilder
}

type EmptyFilterItemBuilder interface {
	// AnyEventTypeOf adds EventTypes to the current FilterItem, ANY of them must match.
	// Empty EventTypes are dropped, the rest is sorted and de-duplicated.
	AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterItemBuilderLackingPredicates

	// AnyPredicateOf adds FilterPredicate(s) to the current FilterItem, ANY of them must match.
	// Partial predicates (empty key or val) are dropped, the rest is sorted and de-duplicated.
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes

	// AllPredicatesOf adds FilterPredicate(s) to the current FilterItem, ALL of them must match.
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
}

type FilterItemBuilderLackingPredicates interface {
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	CompletedFilterItemBuilder
}

type FilterItemBuilderLackingEventTypes interface {
	AndAnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) CompletedFilterItemBuilder
	CompletedFilterItemBuilder
}

type CompletedFilterItemBuilder interface {
	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// OccurredFrom finalizes the current FilterItem and restricts the Filter to events at or after from.
	OccurredFrom(from time.Time) FilterBuilderLackingOccurredUntil

	// OccurredUntil finalizes the current FilterItem and restricts the Filter to events at or before until.
	OccurredUntil(until time.Time) CompletedFilterBuilder

	// Finalize returns the Filter.
	Finalize() Filter
}

type FilterBuilderLackingOccurredUntil interface {
	AndOccurredUntil(until time.Time) CompletedFilterBuilder
	CompletedFilterBuilder
}

type CompletedFilterBuilder interface {
	// Finalize returns the Filter.
	Finalize() Filter
}

// filterBuilder implements all builder interfaces; it is passed by value so that every step returns a copy.
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
	itemStarted       bool
}

// BuildEventFilter creates a FilterBuilder which must eventually be finalized with Finalize() or MatchingAnyEvent().
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}
	fb.itemStarted = true

	return fb
}

func (fb filterBuilder) MatchingAnyEvent() Filter {
	return fb.filter
}

func (fb filterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) FilterItemBuilderLackingPredicates {

	fb.currentFilterItem.eventTypes = fb.sanitizeEventTypes(
		append(slices.Clone(fb.currentFilterItem.eventTypes), append([]FilterEventTypeString{eventType}, eventTypes...)...),
	)

	return fb
}

func (fb filterBuilder) AndAnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) CompletedFilterItemBuilder {

	return fb.AnyEventTypeOf(eventType, eventTypes...)
}

func (fb filterBuilder) AnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentFilterItem.predicates = fb.sanitizePredicates(
		append(slices.Clone(fb.currentFilterItem.predicates), append([]FilterPredicate{predicate}, predicates...)...),
	)

	return fb
}

func (fb filterBuilder) AndAnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentFilterItem.allPredicatesMustMatch = true

	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AndAllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AllPredicatesOf(predicate, predicates...)
}

func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb = fb.closeCurrentItem()

	return fb.Matching()
}

func (fb filterBuilder) OccurredFrom(from time.Time) FilterBuilderLackingOccurredUntil {
	fb = fb.closeCurrentItem()
	fb.filter.occurredFrom = from

	return fb
}

func (fb filterBuilder) OccurredUntil(until time.Time) CompletedFilterBuilder {
	fb = fb.closeCurrentItem()
	fb.filter.occurredUntil = until

	return fb
}

func (fb filterBuilder) AndOccurredUntil(until time.Time) CompletedFilterBuilder {
	fb.filter.occurredUntil = until

	return fb
}

func (fb filterBuilder) Finalize() Filter {
	fb = fb.closeCurrentItem()

	return fb.filter
}

// closeCurrentItem moves a started FilterItem into the Filter, a time window alone yields one empty item.
func (fb filterBuilder) closeCurrentItem() filterBuilder {
	if fb.itemStarted || len(fb.filter.items) == 0 {
		fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)
	}

	fb.currentFilterItem = FilterItem{}
	fb.itemStarted = false

	return fb
}

func (fb filterBuilder) sanitizeEventTypes(eventTypes []FilterEventTypeString) []FilterEventTypeString {
	eventTypes = slices.DeleteFunc(eventTypes, func(e FilterEventTypeString) bool { return e == "" })
	slices.Sort(eventTypes)
	eventTypes = slices.Compact(eventTypes)

	return slices.Clip(eventTypes)
}

func (fb filterBuilder) sanitizePredicates(predicates []FilterPredicate) []FilterPredicate {
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool { return p.key == "" || p.val == "" })
	slices.SortFunc(predicates, func(a, b FilterPredicate) int {
		return cmp.Or(cmp.Compare(a.key, b.key), cmp.Compare(a.val, b.val))
	})
	predicates = slices.Compact(predicates)

	return slices.Clip(predicates)
}
