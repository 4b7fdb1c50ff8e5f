package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/chikoci/Restaurant-Orders/reports"
)

const dateLayout = "2006-01-02"

// parseFilterState membaca query param request menjadi FilterState.
// Param yang tidak dikirim memakai nilai default (tanpa filter).
func parseFilterState(c *gin.Context) (reports.FilterState, error) {
	f := reports.DefaultFilterState()

	var start, end time.Time
	if raw := c.Query("start_date"); raw != "" {
		ts, err := time.Parse(dateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", raw)
		}
		start = ts
	}
	if raw := c.Query("end_date"); raw != "" {
		ts, err := time.Parse(dateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("invalid end_date %q, expected YYYY-MM-DD", raw)
		}
		end = ts
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return f, fmt.Errorf("end_date %s is before start_date %s", end.Format(dateLayout), start.Format(dateLayout))
	}
	f = f.WithDateRange(start, end)

	f = f.WithSearch(strings.TrimSpace(c.Query("q")))

	switch m := c.Query("member"); m {
	case "", string(reports.MemberAll):
		f = f.WithMember(reports.MemberAll)
	case string(reports.MemberOnly):
		f = f.WithMember(reports.MemberOnly)
	case string(reports.MemberRegular):
		f = f.WithMember(reports.MemberRegular)
	default:
		return f, fmt.Errorf("invalid member %q, expected all, member_only or regular", m)
	}

	var minPrice, maxPrice *decimal.Decimal
	if raw := c.Query("min_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return f, fmt.Errorf("invalid min_price %q", raw)
		}
		minPrice = &d
	}
	if raw := c.Query("max_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return f, fmt.Errorf("invalid max_price %q", raw)
		}
		maxPrice = &d
	}
	if minPrice != nil && maxPrice != nil && maxPrice.LessThan(*minPrice) {
		return f, fmt.Errorf("max_price %s is below min_price %s", maxPrice, minPrice)
	}
	f = f.WithPriceRange(minPrice, maxPrice)

	if id := c.Query("recipe_id"); id != "" {
		f = f.WithRecipe(id)
	}
	if raw := c.Query("columns"); raw != "" {
		cols := make([]string, 0)
		for _, col := range strings.Split(raw, ",") {
			if col = strings.TrimSpace(col); col != "" {
				cols = append(cols, col)
			}
		}
		f = f.WithColumns(cols)
	}

	return f, nil
}
