package espocrm

import (
	"fmt"
	"net/url"
	"strings"
)

// FilterOption is a list-query predicate operator. The constant value is the
// operator's canonical wire string, so the operator-to-string mapping is total
// and stable by construction. The set is closed: the server recognizes exactly
// these spellings, and a new operator must be added here before it can be used.
type FilterOption string

// Equality and comparison operators.
const (
	Equals              FilterOption = "equals"
	NotEquals           FilterOption = "notEquals"
	GreaterThan         FilterOption = "greaterThan"
	LessThan            FilterOption = "lessThan"
	GreaterThanOrEquals FilterOption = "greaterThanOrEquals"
	LessThanOrEquals    FilterOption = "lessThanOrEquals"
	Between             FilterOption = "between"
)

// Null and boolean checks.
const (
	IsNull    FilterOption = "isNull"
	IsNotNull FilterOption = "isNotNull"
	IsTrue    FilterOption = "isTrue"
	IsFalse   FilterOption = "isFalse"
)

// Link (relationship) predicates.
const (
	LinkedWith    FilterOption = "linkedWith"
	NotLinkedWith FilterOption = "notLinkedWith"
	IsLinked      FilterOption = "isLinked"
	IsNotLinked   FilterOption = "isNotLinked"
)

// Set membership.
const (
	In    FilterOption = "in"
	NotIn FilterOption = "notIn"
)

// String matching.
const (
	Contains    FilterOption = "contains"
	NotContains FilterOption = "notContains"
	StartsWith  FilterOption = "startsWith"
	EndsWith    FilterOption = "endsWith"
	Like        FilterOption = "like"
	NotLike     FilterOption = "notLike"
)

// Logical grouping.
const (
	Or  FilterOption = "or"
	And FilterOption = "and"
	Not FilterOption = "not"
)

// Date-range shortcuts.
const (
	Today                FilterOption = "today"
	Past                 FilterOption = "past"
	Future               FilterOption = "future"
	LastSevenDays        FilterOption = "lastSevenDays"
	CurrentMonth         FilterOption = "currentMonth"
	LastMonth            FilterOption = "lastMonth"
	NextMonth            FilterOption = "nextMonth"
	CurrentQuarter       FilterOption = "currentQuarter"
	LastQuarter          FilterOption = "lastQuarter"
	CurrentYear          FilterOption = "currentYear"
	LastYear             FilterOption = "lastYear"
	CurrentFiscalYear    FilterOption = "currentFiscalYear"
	LastFiscalYear       FilterOption = "lastFiscalYear"
	CurrentFiscalQuarter FilterOption = "currentFiscalQuarter"
	LastFiscalQuarter    FilterOption = "lastFiscalQuarter"
	LastXDays            FilterOption = "lastXDays"
	NextXDays            FilterOption = "nextXDays"
	OlderThanXDays       FilterOption = "olderThanXDays"
	AfterXDays           FilterOption = "afterXDays"
)

// Array predicates.
const (
	ArrayAnyOf      FilterOption = "arrayAnyOf"
	ArrayNoneOf     FilterOption = "arrayNoneOf"
	ArrayAllOf      FilterOption = "arrayAllOf"
	ArrayIsEmpty    FilterOption = "arrayIsEmpty"
	ArrayIsNotEmpty FilterOption = "arrayIsNotEmpty"
)

// String returns the operator's wire form.
func (f FilterOption) String() string {
	return string(f)
}

// Where is a single filter clause constraining a list query: an operator, the
// attribute it applies to, and a comparison value. Values are opaque wire
// strings; any type coercion to string is the caller's responsibility.
type Where struct {
	Type      FilterOption
	Attribute string
	Value     string
}

// EncodeWhere serializes filter clauses into the indexed where[...] query
// fragment the server expects:
//
//	&where[0][type]=equals&where[0][attribute]=name&where[0][value]=Alice
//
// Indices are assigned strictly by input position, with no gaps and no
// reordering. An empty or nil slice yields an empty string.
//
// Attribute and value text is inserted verbatim. The server parses the
// unescaped bracket syntax, so no percent-encoding is applied; callers whose
// values contain reserved URL characters must pre-encode them (see
// QueryEscape).
func EncodeWhere(clauses []Where) string {
	var builder strings.Builder

	for i, clause := range clauses {
		fmt.Fprintf(&builder, "&where[%d][type]=%s&where[%d][attribute]=%s&where[%d][value]=%s",
			i, clause.Type, i, clause.Attribute, i, clause.Value)
	}

	return builder.String()
}

// QueryEscape percent-encodes a filter attribute or value for callers whose
// text contains reserved URL characters. EncodeWhere never escapes on its own,
// so this is strictly opt-in.
func QueryEscape(s string) string {
	return url.QueryEscape(s)
}
