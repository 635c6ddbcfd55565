// Package output provides utilities for formatting and displaying schedule results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-planner/internal/planner"
	"github.com/iwvelando/mortgage-planner/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(data *planner.ScheduleData) {
	if data == nil {
		fmt.Printf("no schedule to display\n")
		return
	}

	fmt.Printf("--- Harmonogram spłaty ---\n")
	fmt.Printf("Rata miesięczna:     %s\n", format.Amount(data.Summary.MonthlyPayment))
	fmt.Printf("Odsetki łącznie:     %s\n", format.Amount(data.Summary.TotalInterest))
	if data.Summary.TotalOverpayments > 0 {
		fmt.Printf("Nadpłaty łącznie:    %s\n", format.Amount(data.Summary.TotalOverpayments))
		fmt.Printf("Oszczędność odsetek: %s\n", format.Amount(data.Summary.InterestSaved))
	}
	fmt.Printf("Całkowity koszt:     %s\n", format.Amount(data.Summary.TotalPaid))
	fmt.Printf("Okres spłaty:        %d/%d miesięcy\n\n",
		data.Summary.ActualTermMonths, data.Summary.OriginalTermMonths)

	fmt.Printf("Okres   | Data    | Kapitał       | Odsetki       | Nadpłata      | Saldo\n")
	fmt.Printf("_____   | ____    | _______       | _______       | ________      | _____\n")
	for _, row := range data.Rows {
		marker := " "
		if row.CustomOverpayment != nil {
			marker = "*"
		}
		fmt.Printf("%5d%s | %s | %13s | %13s | %13s | %13s\n",
			row.Month, marker, row.Date,
			format.Number(row.PrincipalPayment),
			format.Number(row.InterestPayment),
			format.Number(row.Overpayment),
			format.Number(row.RemainingBalance),
		)
	}
}

// CsvString renders the schedule in comma-separated value format.
func CsvString(data *planner.ScheduleData) string {
	if data == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(`"month","date","principal","interest","overpayment","totalPayment","remainingBalance"`)
	b.WriteString("\n")
	for _, row := range data.Rows {
		fmt.Fprintf(&b, `"%d","%s","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			row.Month, row.Date,
			row.PrincipalPayment, row.InterestPayment, row.Overpayment,
			row.TotalPayment, row.RemainingBalance)
		b.WriteString("\n")
	}
	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(data *planner.ScheduleData) {
	fmt.Print(CsvString(data))
}
