package domain

import "strings"

// Dimension identifies which remote lookup a search uses.
type Dimension string

const (
	DimSIP Dimension = "sip"
	DimDDR Dimension = "ddr"
	DimLP  Dimension = "lp"
)

// Query is a resolved search target: exactly one dimension and its value.
type Query struct {
	Dimension Dimension
	Value     string
}

// BuildQuery selects the lookup dimension from the three search fields.
// Precedence is fixed: sip wins over ddr, ddr wins over lp; the losing fields
// are ignored even when populated. The remote store offers no multi-field
// intersection search, so callers must not assume one.
//
// All three blank returns ErrEmptyQuery; the caller must not issue a request.
func BuildQuery(sip, ddr, lp string) (Query, error) {
	candidates := []struct {
		dim   Dimension
		value string
	}{
		{DimSIP, sip},
		{DimDDR, ddr},
		{DimLP, lp},
	}
	for _, c := range candidates {
		if v := strings.TrimSpace(c.value); v != "" {
			return Query{Dimension: c.dim, Value: v}, nil
		}
	}
	return Query{}, ErrEmptyQuery
}
