package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/HA2345567/buttonhaus/store"
)

// GET /orders/export (admin)
// Streams the full order history as an xlsx download.
func ExportOrdersToExcel(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := orders.All()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "UserID", "Customer", "Email", "Phone", "City",
			"Items", "Total", "Status", "TrackingNumber",
			"OrderDate", "EstimatedDelivery",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range all {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.CustomerInfo.Name)
			row.AddCell().SetValue(o.CustomerInfo.Email)
			row.AddCell().SetValue(o.CustomerInfo.Phone)
			row.AddCell().SetValue(o.CustomerInfo.City)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.Total.StringFixed(2))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TrackingNumber)
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.EstimatedDelivery.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
