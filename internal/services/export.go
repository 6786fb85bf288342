package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fillme/fillme-backend/internal/types"
)

const exportSheetName = "Survey Responses"

// exportColumns fixes the spreadsheet column order. Rows follow the store's
// ascending id order, booleans render as Yes/No and multi-select answers as
// comma-joined text.
var exportColumns = []string{
	"ID",
	"Submitted At",
	"Name",
	"Email",
	"Age Group",
	"Household Type",
	"Awareness",
	"Platforms Used",
	"Other Platform Name",
	"Most Used Platform",
	"Usage Frequency",
	"Avg Order Value",
	"Time Saved",
	"Categories",
	"Purchase Freq Change",
	"Impulse Buying",
	"Price Sensitivity",
	"Price Comparison",
	"Local Shop Impact",
	"Imp Delivery",
	"Imp Convenience",
	"Imp Pricing",
	"Imp Availability",
	"Satisfaction",
	"Future Intent",
	"Qualitative",
}

// BuildExportTable flattens stored submissions into header + rows. Input is
// assumed valid; the projector does not re-validate.
func BuildExportTable(responses []*types.SurveyResponse) ([]string, [][]string) {
	header := make([]string, len(exportColumns))
	copy(header, exportColumns)

	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.SubmittedAt.Format(time.RFC3339),
			r.FullName,
			r.Email,
			r.AgeGroup,
			r.HouseholdType,
			yesNo(r.Awareness),
			strings.Join(r.PlatformsUsed, ", "),
			derefOrEmpty(r.OtherPlatformName),
			r.MostUsedPlatform,
			r.UsageFrequency,
			r.AverageOrderValue,
			r.TimeSaved,
			strings.Join(r.ProductCategories, ", "),
			r.PurchaseFrequencyChange,
			r.ImpulseBuying,
			strconv.Itoa(r.PriceSensitivity),
			r.PriceComparison,
			r.LocalShopsImpact,
			r.ImportanceDelivery,
			r.ImportanceConvenience,
			r.ImportancePricing,
			r.ImportanceAvailability,
			r.OverallSatisfaction,
			r.FutureUsageIntent,
			derefOrEmpty(r.QualitativeResponse),
		})
	}
	return header, rows
}

// WriteExcel serializes a projected table into xlsx workbook bytes.
func WriteExcel(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := setStringRow(f, 1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setStringRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setStringRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
