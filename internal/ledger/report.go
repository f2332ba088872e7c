package ledger

type ProductReportRow struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Initial     int    `json:"initial"`
	Production  int    `json:"production"`
	Shipment    int    `json:"shipment"`
	Returns     int    `json:"returns"`
	Final       int    `json:"final"`
}

// ReportTotals sums each counter across all products. Final is derived from
// the summed counters and equals the sum of the per-product finals.
type ReportTotals struct {
	Initial    int `json:"initial"`
	Production int `json:"production"`
	Shipment   int `json:"shipment"`
	Returns    int `json:"returns"`
	Final      int `json:"final"`
}

type DailyReport struct {
	Date       string             `json:"date"`
	PerProduct []ProductReportRow `json:"per_product"`
	Totals     ReportTotals       `json:"totals"`
}

// Summarize computes the daily report from a view. Pure computation, no I/O;
// rows keep the view's catalog order.
func Summarize(view DailyView) DailyReport {
	report := DailyReport{
		Date:       view.Date,
		PerProduct: make([]ProductReportRow, 0, len(view.Entries)),
	}

	for _, e := range view.Entries {
		report.PerProduct = append(report.PerProduct, ProductReportRow{
			ProductID:   e.ProductID,
			ProductName: e.ProductName,
			Initial:     e.Initial,
			Production:  e.Production,
			Shipment:    e.Shipment,
			Returns:     e.Returns,
			Final:       Final(e.Initial, e.Production, e.Shipment, e.Returns),
		})
		report.Totals.Initial += e.Initial
		report.Totals.Production += e.Production
		report.Totals.Shipment += e.Shipment
		report.Totals.Returns += e.Returns
	}

	report.Totals.Final = Final(
		report.Totals.Initial,
		report.Totals.Production,
		report.Totals.Shipment,
		report.Totals.Returns,
	)
	return report
}
