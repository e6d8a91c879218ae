package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"roteiro/database"
)

// GenerateTripSummaryPDF renders a printable summary of a trip: its
// destinations in order, each with its scheduled activities.
func GenerateTripSummaryPDF(trip *database.Trip, activities map[string][]database.Activity) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, trip.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sectionHeader := func(text string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 9, text, "", 1, "L", true, 0, "")
		pdf.Ln(2)
	}

	row := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, value, "", "L", false)
	}

	for i, dest := range trip.Destinations {
		place := dest.City
		if dest.Country != "" {
			place += ", " + dest.Country
		}
		sectionHeader(fmt.Sprintf("%d. %s", i+1, place))
		row("Dates", fmt.Sprintf("%s to %s", dest.StartDate, dest.EndDate))
		if dest.State != "" {
			row("Region", dest.State)
		}

		acts := activities[dest.ID]
		if len(acts) > 0 {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 7, "Activities", "", 1, "L", false, 0, "")
			for _, act := range acts {
				pdf.SetFont("Helvetica", "B", 10)
				pdf.CellFormat(0, 6, act.Title, "", 1, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 9)
				when := fmt.Sprintf("%s  %s - %s",
					act.StartDate.Format("2006-01-02"),
					act.StartDate.Format("15:04"),
					act.EndDate.Format("15:04"))
				pdf.CellFormat(0, 5, when, "", 1, "L", false, 0, "")
				if act.Cost > 0 {
					pdf.CellFormat(0, 5, fmt.Sprintf("Cost: R$ %.2f", act.Cost), "", 1, "L", false, 0, "")
				}
				if act.Description != "" {
					pdf.MultiCell(0, 5, act.Description, "", "L", false)
				}
				pdf.Ln(1)
			}
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
