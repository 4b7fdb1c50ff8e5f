package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chikoci/Restaurant-Orders/database"
	"github.com/chikoci/Restaurant-Orders/reports"
	"github.com/chikoci/Restaurant-Orders/utils"
)

type ReportController struct {
	Store *database.Store
}

func NewReportController(store *database.Store) *ReportController {
	return &ReportController{Store: store}
}

// GetDashboard -> ringkasan lintas family untuk halaman utama
func (rc *ReportController) GetDashboard(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	datasets, err := rc.Store.Datasets()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildDashboard(
		datasets[reports.FamilyOrders],
		datasets[reports.FamilyOrderDetails],
		datasets[reports.FamilyMenu],
		datasets[reports.FamilyReservations],
		datasets[reports.FamilyCustomers],
		datasets[reports.FamilyTables],
		datasets[reports.FamilyReviews],
		f,
	)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard report", report)
}

// GetCustomerReport -> analitik pengeluaran customer
func (rc *ReportController) GetCustomerReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customers, err := rc.Store.Customers()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	orders, err := rc.Store.Orders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	details, err := rc.Store.OrderDetails()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildCustomerReport(customers, orders, details, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer report", report)
}

// GetCategoryReport -> penjualan per kategori
func (rc *ReportController) GetCategoryReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	categories, err := rc.Store.Categories()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildCategoryReport(categories, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category report", report)
}

// GetPaymentReport -> revenue per metode pembayaran
func (rc *ReportController) GetPaymentReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payments, err := rc.Store.PaymentMethods()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildPaymentReport(payments, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment method report", report)
}

// GetTableReport -> okupansi dan pemakaian meja
func (rc *ReportController) GetTableReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tables, err := rc.Store.Tables()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	usage, err := rc.Store.TableUsage()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildTableReport(tables, usage, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table report", report)
}

// GetMenuReport -> performa item menu
func (rc *ReportController) GetMenuReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu, err := rc.Store.Menu()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildMenuReport(menu, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu report", report)
}

// GetOrderReport -> status dan pola waktu order
func (rc *ReportController) GetOrderReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := rc.Store.Orders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildOrderReport(orders, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order report", report)
}

// GetOrderDetailReport -> analitik item terjual
func (rc *ReportController) GetOrderDetailReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	details, err := rc.Store.OrderDetails()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildOrderDetailReport(details, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail report", report)
}

// GetReservationReport -> pola reservasi dan jam check-in
func (rc *ReportController) GetReservationReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservations, err := rc.Store.Reservations()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildReservationReport(reservations, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation report", report)
}

// GetReviewReport -> distribusi rating dan trennya
func (rc *ReportController) GetReviewReport(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reviews, err := rc.Store.Reviews()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report, err := reports.BuildReviewReport(reviews, f)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review report", report)
}
