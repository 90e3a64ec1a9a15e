package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const bookingsSheet = "Bookings"

var bookingColumns = []string{
	"Booking ID", "Hotel", "Location", "Guest", "Email",
	"Check-in", "Check-out", "Guests", "Total price", "Status", "Created at",
}

// BookingRow is one line of the bookings export.
type BookingRow struct {
	ID         string
	Hotel      string
	Location   string
	Guest      string
	Email      string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice float64
	Status     string
	CreatedAt  time.Time
}

// WriteBookings renders rows as a single-sheet XLSX workbook to w.
func WriteBookings(w io.Writer, rows []BookingRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, toAny(bookingColumns)); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(bookingColumns), 1)
		_ = f.SetCellStyle(bookingsSheet, "A1", endCell, style)
	}

	for i, r := range rows {
		values := []any{
			r.ID,
			r.Hotel,
			r.Location,
			r.Guest,
			r.Email,
			r.CheckIn.Format(time.DateOnly),
			r.CheckOut.Format(time.DateOnly),
			r.Guests,
			r.TotalPrice,
			r.Status,
			r.CreatedAt.Format(time.DateTime),
		}
		if err := writeRow(f, i+2, values); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(bookingsSheet, cell, val); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
