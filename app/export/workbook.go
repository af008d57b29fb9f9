package export

import (
	"fmt"
	"time"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/AmauryLAPEYRE/TimeTrack/app/timesheet"
	"github.com/xuri/excelize/v2"
)

// Cell colors shared with the UI legend.
const (
	colorHeaderBlue = "4472C4"
	colorTableBlue  = "2F5597"
	colorLightBlue  = "D9E1F2"
	colorPaleBlue   = "DDEBF7"
	colorLightGreen = "CCFFCC"
	colorPaleGreen  = "E2EFDA"
	colorAmber      = "FFC000"
	colorPaleAmber  = "FFF2CC"
	colorPink       = "FF99CC"
	colorPalePink   = "FCE4D6"
	colorAbsence    = "EAF2F8"
)

type styleSet struct {
	header   int // bold white on blue, bordered
	bordered int
	dayTotal int // bordered on light green
	cumul    int // red bold, bordered
	absence  int
	ot25     int
	ot50     int
	totals   int // bold on pale blue
}

func thinBorders() []excelize.Border {
	sides := []string{"top", "left", "bottom", "right"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Style: 1, Color: "000000"})
	}
	return borders
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      fill(colorHeaderBlue),
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.bordered, err = f.NewStyle(&excelize.Style{
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.dayTotal, err = f.NewStyle(&excelize.Style{
		Fill:      fill(colorLightGreen),
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.cumul, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FF0000"},
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.absence, err = f.NewStyle(&excelize.Style{
		Fill:      fill(colorAbsence),
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.ot25, err = f.NewStyle(&excelize.Style{
		Fill:      fill(colorPaleAmber),
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.ot50, err = f.NewStyle(&excelize.Style{
		Fill:      fill(colorPalePink),
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	if s.totals, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      fill(colorPaleBlue),
		Alignment: centered(),
		Border:    thinBorders(),
	}); err != nil {
		return s, err
	}
	return s, nil
}

// WriteWorkbook renders a week (or a whole month, one sheet per week
// plus a recap sheet) into an xlsx workbook. Cell layout follows the
// established statement template; the numeric content comes straight
// from the computed week results.
func WriteWorkbook(weeks []models.Week, cfg models.SalaryConfig, monthExport bool, monthName string) (*excelize.File, error) {
	if len(weeks) == 0 {
		return nil, fmt.Errorf("no weeks to export")
	}

	f := excelize.NewFile()
	styles, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	first := true
	addSheet := func(name string) error {
		if first {
			first = false
			return f.SetSheetName("Sheet1", name)
		}
		_, err := f.NewSheet(name)
		return err
	}

	if monthExport {
		if err := addSheet("Monthly Recap"); err != nil {
			return nil, err
		}
		if err := writeRecapSheet(f, styles, weeks, cfg); err != nil {
			return nil, err
		}
	}

	for _, week := range weeks {
		name := fmt.Sprintf("Week %d", week.Number)
		if len(week.Days) < 7 {
			name += fmt.Sprintf(" (%dd)", len(week.Days))
		}
		if err := addSheet(name); err != nil {
			return nil, err
		}
		if err := writeWeekSheet(f, styles, name, week, cfg); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeRecapSheet(f *excelize.File, styles styleSet, weeks []models.Week, cfg models.SalaryConfig) error {
	const sheet = "Monthly Recap"

	widths := []struct {
		col   string
		width float64
	}{{"A", 10}, {"B", 20}, {"C", 10}, {"D", 15}, {"E", 15}, {"F", 15}, {"G", 15}}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}

	if err := f.MergeCell(sheet, "A1", "G1"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "MONTHLY RECAP")
	f.SetCellStyle(sheet, "A1", "G1", styles.header)

	f.SetCellValue(sheet, "A3", "Employee:")
	f.SetCellValue(sheet, "B3", cfg.FirstName+" "+cfg.LastName)
	f.SetCellValue(sheet, "A4", "Company:")
	f.SetCellValue(sheet, "B4", cfg.Company)

	start, end := weeks[0].StartDate, weeks[len(weeks)-1].EndDate
	f.SetCellValue(sheet, "A6", "Period:")
	f.SetCellValue(sheet, "B6", start+" to "+end)

	headers := []string{"Week", "Period", "Days", "Total hours", "Misc hours", "OT 25%", "OT 50%"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 8)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A8", "G8", styles.header)

	row := 9
	totalDays := 0
	for _, week := range weeks {
		totalDays += len(week.Days)
		values := []any{
			fmt.Sprintf("W%d", week.Number),
			fmt.Sprintf("%s - %s", week.StartDate, week.EndDate),
			len(week.Days),
			timesheet.ToTimeString(week.Result.TotalWorkedHours),
			timesheet.ToTimeString(week.Result.MiscHours),
			timesheet.ToTimeString(week.Result.Overtime25Hours),
			timesheet.ToTimeString(week.Result.Overtime50Hours),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), styles.bordered)
		row++
	}

	month := timesheet.ComputeMonthResult(weeks)
	totals := []any{
		"TOTAL",
		"",
		totalDays,
		timesheet.ToTimeString(month.TotalWorkedHours),
		timesheet.ToTimeString(month.MiscHours),
		timesheet.ToTimeString(month.Overtime25Hours),
		timesheet.ToTimeString(month.Overtime50Hours),
	}
	for i, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), styles.totals)
}

func writeWeekSheet(f *excelize.File, styles styleSet, sheet string, week models.Week, cfg models.SalaryConfig) error {
	const hourColumnWidth = 10
	widths := []struct {
		col   string
		width float64
	}{
		{"A", 14}, {"B", 12}, {"C", hourColumnWidth}, {"D", hourColumnWidth},
		{"E", hourColumnWidth}, {"F", hourColumnWidth}, {"G", 12}, {"H", 12},
		{"I", hourColumnWidth}, {"J", hourColumnWidth},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}

	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Working hours statement")
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "FF0000"}})
	if err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	f.SetCellValue(sheet, "G1", "COMPANY")
	f.SetCellValue(sheet, "H1", cfg.Company)
	f.SetCellValue(sheet, "G2", "WEEK")
	f.SetCellValue(sheet, "H2", fmt.Sprintf("%d", week.Number))

	f.SetCellValue(sheet, "A4", "Calendar start date:")
	f.SetCellValue(sheet, "B4", week.StartDate)
	f.SetCellValue(sheet, "A5", "Calendar end date:")
	f.SetCellValue(sheet, "B5", week.EndDate)

	// Thresholds legend.
	if err := f.MergeCell(sheet, "G5", "I5"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "G5", "Hour thresholds")
	f.SetCellStyle(sheet, "G5", "I5", styles.header)
	f.SetCellValue(sheet, "G6", "Type")
	f.SetCellValue(sheet, "H6", "Range")
	f.SetCellValue(sheet, "I6", "Code")
	f.SetCellStyle(sheet, "G6", "I6", styles.totals)
	legend := [][3]string{
		{"Weekly (normal)", timesheet.FormatDisplayHours(cfg.WeeklyThreshold), "N"},
		{"OT at 25%", fmt.Sprintf("%s-%s", timesheet.FormatDisplayHours(cfg.WeeklyThreshold), timesheet.FormatDisplayHours(cfg.SecondOvertimeThreshold)), "OT 25%"},
		{"OT at 50%", ">" + timesheet.FormatDisplayHours(cfg.SecondOvertimeThreshold), "OT 50%"},
	}
	for i, entry := range legend {
		row := 7 + i
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), entry[0])
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), entry[1])
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), entry[2])
		f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("I%d", row), styles.bordered)
	}

	// Day table header.
	if err := f.MergeCell(sheet, "A10", "J10"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A10", "RECORDED WORKING HOURS")
	tableTitle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      fill(colorTableBlue),
		Alignment: centered(),
		Border:    thinBorders(),
	})
	if err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A10", "J10", tableTitle)

	merges := [][2]string{
		{"A11", "A12"}, {"B11", "B12"},
		{"C11", "D11"}, {"E11", "F11"}, {"G11", "H11"}, {"I11", "J11"},
	}
	for _, m := range merges {
		if err := f.MergeCell(sheet, m[0], m[1]); err != nil {
			return err
		}
	}
	f.SetCellValue(sheet, "A11", "Date")
	f.SetCellValue(sheet, "B11", "Day")
	f.SetCellValue(sheet, "C11", "Morning")
	f.SetCellValue(sheet, "E11", "Afternoon")
	f.SetCellValue(sheet, "G11", "Hours")
	f.SetCellValue(sheet, "I11", "Overtime")
	for col, label := range map[string]string{
		"C12": "In", "D12": "Out", "E12": "In", "F12": "Out",
		"G12": "Day", "H12": "Cumul", "I12": "OT 25%", "J12": "OT 50%",
	} {
		f.SetCellValue(sheet, col, label)
	}
	f.SetCellStyle(sheet, "A11", "J12", styles.header)

	// The week's overtime is spread across worked days by their share of
	// the week's hours, so each day row shows its proportional slice.
	workedTotal := 0.0
	for _, day := range week.Days {
		workedTotal += day.WorkedHours
	}
	ot25Factor, ot50Factor := 0.0, 0.0
	if workedTotal > 0 {
		ot25Factor = week.Result.Overtime25Hours / workedTotal
		ot50Factor = week.Result.Overtime50Hours / workedTotal
	}

	row := 13
	cumulative := 0.0
	for _, day := range week.Days {
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), styles.bordered)

		if date, err := time.Parse("2006-01-02", day.Date); err == nil {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), date.Format("02/01/2006"))
		} else {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), day.Date)
		}
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), day.Weekday.Label())

		if day.Absence {
			label := "abs"
			if t, ok := models.AbsenceTypeByID(day.AbsenceType); ok {
				label = t.Label
			}
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), label)
			f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), styles.absence)
		} else {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), day.Morning.Start)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), day.Morning.End)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), day.Afternoon.Start)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), day.Afternoon.End)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), timesheet.ToTimeString(day.WorkedHours))
			f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), styles.dayTotal)
		}

		cumulative += day.WorkedHours
		// Idle weekend rows keep the border but skip the cumulative.
		if day.Weekday.IsWorkingDay() || day.WorkedHours > 0 {
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), timesheet.ToTimeString(cumulative))
			f.SetCellStyle(sheet, fmt.Sprintf("H%d", row), fmt.Sprintf("H%d", row), styles.cumul)
		}

		if day.WorkedHours > 0 {
			if ot25 := day.WorkedHours * ot25Factor; ot25 > 0.01 {
				f.SetCellValue(sheet, fmt.Sprintf("I%d", row), timesheet.ToTimeString(ot25))
				f.SetCellStyle(sheet, fmt.Sprintf("I%d", row), fmt.Sprintf("I%d", row), styles.ot25)
			}
			if ot50 := day.WorkedHours * ot50Factor; ot50 > 0.01 {
				f.SetCellValue(sheet, fmt.Sprintf("J%d", row), timesheet.ToTimeString(ot50))
				f.SetCellStyle(sheet, fmt.Sprintf("J%d", row), fmt.Sprintf("J%d", row), styles.ot50)
			}
		}
		row++
	}

	// Totals line.
	row++
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), "TOTAL:")
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), timesheet.ToTimeString(week.Result.TotalWorkedHours))
	f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), styles.dayTotal)
	if week.Result.Overtime25Hours > 0 {
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), timesheet.ToTimeString(week.Result.Overtime25Hours))
		f.SetCellStyle(sheet, fmt.Sprintf("I%d", row), fmt.Sprintf("I%d", row), styles.ot25)
	}
	if week.Result.Overtime50Hours > 0 {
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), timesheet.ToTimeString(week.Result.Overtime50Hours))
		f.SetCellStyle(sheet, fmt.Sprintf("J%d", row), fmt.Sprintf("J%d", row), styles.ot50)
	}

	// Signatures.
	row += 3
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "EMPLOYEE SIGNATURE")
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), "MANAGER SIGNATURE")

	return writeWeekRecap(f, styles, sheet, row+3, week, cfg)
}

func writeWeekRecap(f *excelize.File, styles styleSet, sheet string, row int, week models.Week, cfg models.SalaryConfig) error {
	if err := f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row)); err != nil {
		return err
	}
	recapTitle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      fill(colorPaleGreen),
		Alignment: centered(),
	})
	if err != nil {
		return err
	}
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "WEEK RECAP")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), recapTitle)

	row += 2
	headers := []string{"Hour type", "Amount", "Premium", "Information", "Code"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), styles.totals)
	if err := f.SetColWidth(sheet, "D", "D", 25); err != nil {
		return err
	}

	result := week.Result
	normalHours := result.TotalWorkedHours
	if result.AdjustedThreshold < normalHours {
		normalHours = result.AdjustedThreshold
	}

	type recapLine struct {
		label, premium, info, code string
		amount                     float64
		always                     bool
	}
	lines := []recapLine{
		{"Normal hours", "0%", "Contractual hours", "N", normalHours, true},
		{"Misc hours", "0%", fmt.Sprintf("Between quota and %s", timesheet.FormatDisplayHours(cfg.WeeklyThreshold)), "M", result.MiscHours, false},
		{"Overtime 25%", "25%", fmt.Sprintf("From %s to %s", timesheet.FormatDisplayHours(cfg.WeeklyThreshold), timesheet.FormatDisplayHours(cfg.SecondOvertimeThreshold)), "OT 25%", result.Overtime25Hours, false},
		{"Overtime 50%", "50%", fmt.Sprintf("Beyond %s", timesheet.FormatDisplayHours(cfg.SecondOvertimeThreshold)), "OT 50%", result.Overtime50Hours, false},
	}
	for _, line := range lines {
		if !line.always && line.amount <= 0 {
			continue
		}
		row++
		values := []any{line.label, timesheet.ToTimeString(line.amount), line.premium, line.info, line.code}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), styles.bordered)
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), timesheet.ToTimeString(result.TotalWorkedHours))
	return f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), styles.totals)
}

// Filename builds the download name for an export.
func Filename(cfg models.SalaryConfig, monthExport bool, monthName string, weekNumber int) string {
	if monthExport {
		if monthName == "" {
			monthName = "month"
		}
		return fmt.Sprintf("hours_%s_%s_%s.xlsx", cfg.LastName, cfg.FirstName, monthName)
	}
	return fmt.Sprintf("hours_%s_%s_week%d.xlsx", cfg.LastName, cfg.FirstName, weekNumber)
}
