package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/xuri/excelize/v2"
)

// Service builds analytics workbook exports
type Service struct {
	analyticsRepo *repository.AnalyticsRepository
	publishedRepo *repository.PublishedContentRepository
	exportsDir    string
}

// NewExcelService creates a new Excel service instance
func NewExcelService(
	analyticsRepo *repository.AnalyticsRepository,
	publishedRepo *repository.PublishedContentRepository,
	exportsDir string) *Service {
	// Create exports directory if it doesn't exist
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		os.MkdirAll(exportsDir, 0755)
	}

	return &Service{
		analyticsRepo: analyticsRepo,
		publishedRepo: publishedRepo,
		exportsDir:    exportsDir,
	}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Success  bool
	Message  string
	Filename string
	FilePath string
}

// ExportAnalytics writes a user's analytics snapshots plus a summary
// sheet to an XLSX file and returns its location.
func (s *Service) ExportAnalytics(userID string) (*ExportResult, error) {
	records, err := s.analyticsRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load analytics: %w", err)
	}

	summary, err := s.analyticsRepo.Summarize(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize analytics: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("analytics_%s_%d.xlsx", userID, timestamp)
	filePath := filepath.Join(s.exportsDir, filename)

	f := excelize.NewFile()

	sheetName := "Analytics"
	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	columns := []string{
		"id", "published_content_id", "views", "likes", "shares",
		"comments", "engagement_rate", "click_through_rate", "recorded_at",
	}

	for i, col := range columns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"DDEBF7"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", columnToLetter(len(columns))+"1", headerStyle)
	}

	for i, col := range columns {
		colLetter := columnToLetter(i + 1)
		width := 15.0
		switch col {
		case "id", "published_content_id":
			width = 38.0
		case "recorded_at":
			width = 22.0
		}
		f.SetColWidth(sheetName, colLetter, colLetter, width)
	}

	if len(records) > 0 {
		for i, record := range records {
			rowNum := i + 2 // Start from row 2 (after headers)
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), record.ID)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), record.PublishedContentID)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), record.Views)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), record.Likes)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), record.Shares)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), record.Comments)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), record.EngagementRate)
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowNum), record.ClickThroughRate)
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowNum), record.RecordedAt.Format(time.RFC3339))
		}
	} else {
		f.SetCellValue(sheetName, "A2", "no analytics recorded yet")
	}

	// Summary sheet
	summarySheet := "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"total_views", summary.TotalViews},
		{"total_likes", summary.TotalLikes},
		{"total_shares", summary.TotalShares},
		{"total_comments", summary.TotalComments},
		{"avg_engagement_rate", summary.AvgEngagementRate},
		{"record_count", summary.RecordCount},
	}
	for i, row := range summaryRows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth(summarySheet, "A", "A", 24.0)

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported %d analytics records", len(records)),
		Filename: filename,
		FilePath: filePath,
	}, nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
