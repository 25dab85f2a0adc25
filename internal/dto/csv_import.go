package dto

import "github.com/SscSPs/fin_tracker_app/internal/core/domain"

// ImportReportResponse is returned by the CSV import endpoints. A 2xx status
// only means parsing succeeded; callers must inspect FailedRows.
type ImportReportResponse struct {
	Message        string             `json:"message"`
	TotalRows      int                `json:"totalRows"`
	SuccessfulRows int                `json:"successfulRows"`
	FailedRows     int                `json:"failedRows"`
	Failures       []domain.ImportRow `json:"failures,omitempty"`
}

// ToImportReportResponse converts a domain.ImportReport to its response DTO.
func ToImportReportResponse(message string, report *domain.ImportReport) ImportReportResponse {
	return ImportReportResponse{
		Message:        message,
		TotalRows:      report.TotalRows,
		SuccessfulRows: report.SuccessfulRows,
		FailedRows:     report.FailedRows,
		Failures:       report.Failures,
	}
}
