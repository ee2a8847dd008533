package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// OrdersSheet is the worksheet holding exported orders.
const OrdersSheet = "Orders"

var ordersHeader = []any{"ID", "Date", "Status", "Total", "Address", "Items"}

// WriteOrders renders orders as an XLSX workbook into w, one row per order
// after a header row.
func WriteOrders(w io.Writer, orders []model.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OrdersSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, ordersHeader); err != nil {
		return err
	}

	for i, order := range orders {
		row := []any{
			order.ID,
			order.Date.Format(time.RFC3339),
			string(order.Status),
			order.Total,
			order.Address,
			string(order.Items),
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(OrdersSheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}
