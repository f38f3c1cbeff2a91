package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/domain"
	"github.com/alexanderramin/courseload/internal/workload"
)

// FormatEstimate renders an estimate as a headline box, the per-category
// breakdown and any input warnings.
func FormatEstimate(resp *app.EstimateResponse) string {
	var b strings.Builder

	total := resp.Result.TotalHoursPerWeek
	headline := fmt.Sprintf("%s  %s\n%s  %s\n%s",
		Bold("Total"), LoadStyle(total).Render(FormatHours(total)+" / week"),
		Bold("Sync "), StyleBlue.Render(FormatHours(resp.Result.SyncHoursPerWeek)+" / week"),
		LoadIndicator(total),
	)
	b.WriteString(RenderBox(domain.CoalesceStr(resp.Title, "Course workload"), headline))
	b.WriteString("\n\n")

	b.WriteString(Header(fmt.Sprintf("Breakdown (%d weeks)", resp.ClassWeeks)))
	b.WriteString("\n")
	rows := make([][]string, 0, 8)
	for _, c := range resp.Breakdown.Categories() {
		rows = append(rows, []string{c.Name, fmt.Sprintf("%.2f", workload.Round2(c.Hours))})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "HOURS/WEEK"}, rows, 1))

	bd := resp.Breakdown
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("reading %s pages/hour · writing %s hours/page · exams %s each",
		FormatRate(workload.Round2(bd.PagesPerHour)),
		FormatRate(workload.Round2(bd.HoursPerPage)),
		FormatHours(workload.Round2(bd.ExamHoursEach)),
	)))
	b.WriteString("\n")

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("! " + w))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatRateTables renders each table as one block per outer label.
func FormatRateTables(tables ...workload.RateTable) string {
	var b strings.Builder
	for ti, t := range tables {
		if ti > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(fmt.Sprintf("%s rates (%s)", t.Name, t.Unit)))
		b.WriteString("\n")
		for oi, outer := range t.OuterLabels {
			b.WriteString(StylePurple.Render(t.OuterAxis + ": " + outer))
			b.WriteString("\n")

			headers := append([]string{t.MiddleAxis}, t.InnerLabels...)
			right := make([]int, len(t.InnerLabels))
			for i := range right {
				right[i] = i + 1
			}
			rows := make([][]string, 0, len(t.MiddleLabels))
			for mi, middle := range t.MiddleLabels {
				row := []string{middle}
				for _, v := range t.Values[oi][mi] {
					row = append(row, FormatRate(v))
				}
				rows = append(rows, row)
			}
			b.WriteString(RenderTable(headers, rows, right...))
			b.WriteString("\n")
		}
	}
	return b.String()
}
