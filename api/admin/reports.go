package admin

import (
	"fmt"
	"homifyhub_server/handling"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleSalesReport streams the sales report PDF over delivered orders.
func (adm *AdminRoutesManager) HandleSalesReport(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseSalesReportOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid report period"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	report, contentType, err := adm.invoiceService.GenerateSalesReport(r.Context(), opts)
	if err != nil {
		handling.RespondError(err, adm.logger, w)
		return
	}

	w.Header().Set("Content-Type", contentType)
	if contentType == "application/pdf" {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sales-report-%s.pdf"`, time.Now().Format("2006-01-02")))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(report); err != nil {
		adm.logger.Warn("Failed to stream sales report", gecho.Field("error", err))
	}
}
