package exporter

import (
	"fmt"
	"io"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/workload"
	"github.com/xuri/excelize/v2"
)

const (
	EstimateSheet = "Estimate"
	RatesSheet    = "Rates"
)

// WriteEstimate writes resp as an .xlsx workbook. The Estimate sheet lists
// every category with its weekly hours followed by the two totals and the
// uncounted discussion "other" figure; the
// Rates sheet holds both lookup tables.
func WriteEstimate(w io.Writer, resp *app.EstimateResponse) error {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", EstimateSheet); err != nil {
		return fmt.Errorf("naming estimate sheet: %w", err)
	}
	if err := writeEstimateSheet(wb, resp); err != nil {
		return err
	}
	if _, err := wb.NewSheet(RatesSheet); err != nil {
		return fmt.Errorf("adding rates sheet: %w", err)
	}
	if err := writeRatesSheet(wb, workload.ReadingRateTable(), workload.WritingRateTable()); err != nil {
		return err
	}

	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeEstimateSheet(wb *excelize.File, resp *app.EstimateResponse) error {
	header, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	rows := [][]any{
		{"Course", resp.Title},
		{"Class weeks", resp.ClassWeeks},
		{},
		{"Category", "Hours/week"},
	}
	headerRow := len(rows)
	for _, c := range resp.Breakdown.Categories() {
		rows = append(rows, []any{c.Name, workload.Round2(c.Hours)})
	}
	rows = append(rows,
		[]any{},
		[]any{"Total hours/week", resp.Result.TotalHoursPerWeek},
		[]any{"Sync hours/week", resp.Result.SyncHoursPerWeek},
		[]any{"Discussion other hours/week (not in total)", workload.Round2(resp.Breakdown.DiscussionOtherHours)},
		[]any{},
		[]any{"Reading pages/hour", workload.Round2(resp.Breakdown.PagesPerHour)},
		[]any{"Writing hours/page", workload.Round2(resp.Breakdown.HoursPerPage)},
		[]any{"Hours per exam", workload.Round2(resp.Breakdown.ExamHoursEach)},
	)

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(EstimateSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := wb.SetCellStyle(EstimateSheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("B%d", headerRow), header); err != nil {
		return err
	}
	return wb.SetColWidth(EstimateSheet, "A", "A", 40)
}

func writeRatesSheet(wb *excelize.File, tables ...workload.RateTable) error {
	row := 1
	for _, t := range tables {
		title := fmt.Sprintf("%s (%s)", t.Name, t.Unit)
		if err := wb.SetCellValue(RatesSheet, fmt.Sprintf("A%d", row), title); err != nil {
			return err
		}
		row++
		for oi, outer := range t.OuterLabels {
			head := []any{t.OuterAxis + ": " + outer}
			for _, l := range t.InnerLabels {
				head = append(head, l)
			}
			if err := wb.SetSheetRow(RatesSheet, fmt.Sprintf("A%d", row), &head); err != nil {
				return err
			}
			row++
			for mi, middle := range t.MiddleLabels {
				line := []any{middle}
				for _, v := range t.Values[oi][mi] {
					line = append(line, v)
				}
				if err := wb.SetSheetRow(RatesSheet, fmt.Sprintf("A%d", row), &line); err != nil {
					return err
				}
				row++
			}
		}
		row++
	}
	return wb.SetColWidth(RatesSheet, "A", "A", 36)
}
