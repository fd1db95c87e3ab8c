package espocrm

import "fmt"

// SortOrder is the direction applied to list results.
type SortOrder string

const (
	// Ascending sorts list results in ascending order.
	Ascending SortOrder = "asc"

	// Descending sorts list results in descending order. This is the
	// default for list queries.
	Descending SortOrder = "desc"
)

// DefaultMaxSize is the default page size for list queries.
const DefaultMaxSize = 200

// ListParams holds pagination, ordering, and total-count options for list
// queries. Construct with NewListParams so the defaults apply, then chain the
// With* setters:
//
//	params := espocrm.NewListParams().WithMaxSize(50).WithOrder(espocrm.Ascending)
type ListParams struct {
	maxSize uint
	offset  uint
	order   SortOrder
	total   bool
}

// NewListParams creates list parameters with the server defaults: maxSize
// 200, offset 0, descending order, total count excluded.
func NewListParams() *ListParams {
	return &ListParams{
		maxSize: DefaultMaxSize,
		order:   Descending,
	}
}

// WithMaxSize sets the page size. No range validation is performed; the
// server is the final arbiter of acceptable values.
func (p *ListParams) WithMaxSize(maxSize uint) *ListParams {
	p.maxSize = maxSize

	return p
}

// WithOffset sets the list offset.
func (p *ListParams) WithOffset(offset uint) *ListParams {
	p.offset = offset

	return p
}

// WithOrder sets the sort order.
func (p *ListParams) WithOrder(order SortOrder) *ListParams {
	p.order = order

	return p
}

// WithTotal sets whether the response should include the total record count.
func (p *ListParams) WithTotal(total bool) *ListParams {
	p.total = total

	return p
}

// Encode renders the parameters as a query-string fragment. All four keys are
// always emitted, in fixed order:
//
//	?maxSize=200&offset=0&total=false&order=desc
//
// The fragment precedes any EncodeWhere fragment on list requests; the server
// parses the parameters positionally.
func (p *ListParams) Encode() string {
	return fmt.Sprintf("?maxSize=%d&offset=%d&total=%t&order=%s", p.maxSize, p.offset, p.total, p.order)
}
