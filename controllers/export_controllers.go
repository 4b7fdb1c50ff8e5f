package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chikoci/Restaurant-Orders/database"
	"github.com/chikoci/Restaurant-Orders/reports"
	"github.com/chikoci/Restaurant-Orders/utils"
)

type ExportController struct {
	Store *database.Store
}

func NewExportController(store *database.Store) *ExportController {
	return &ExportController{Store: store}
}

// ExportFamily -> unduh satu report family sebagai CSV, mengikuti filter
// yang sama dengan tampilan tabelnya.
func (ec *ExportController) ExportFamily(c *gin.Context) {
	family := c.Param("family")
	if _, ok := reports.Schemas[family]; !ok {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown report family %q", family))
		return
	}

	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	t, err := ec.Store.Dataset(family)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	t = reports.FilterByDate(t, t.Schema.DateColumn, f.StartDate, f.EndDate)
	t = reports.FilterAnyText(t, f.Search)
	t = reports.FilterMenuAccess(t, "member_only", f.Member)
	t = reports.FilterPriceRange(t, "unit_price", f.MinPrice, f.MaxPrice)

	data, err := reports.ExportCSV(t, f.Columns)
	if err != nil {
		if errors.Is(err, reports.ErrUnknownColumn) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("CSV export: family=%s rows=%d", family, t.Len())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", family))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
