package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"asprakserver/database"
	"asprakserver/exporter"
)

// ExportHandler serves roster downloads.
type ExportHandler struct {
	db *database.AsprakDB
}

// NewExportHandler creates an export handler bound to the given database.
func NewExportHandler(db *database.AsprakDB) *ExportHandler {
	return &ExportHandler{db: db}
}

// HandleExportRoster streams the roster as a file
// @Summary Export the roster
// @Description Downloads the roster as .xlsx (default) or .csv. The same status and cohort filters as the listing endpoint apply.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "xlsx or csv" default(xlsx)
// @Param status query string false "active or expired"
// @Param angkatan query int false "exact cohort year"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Router /export/roster [get]
func (h *ExportHandler) HandleExportRoster(c *gin.Context) {
	filter := database.AsprakFilter{
		Status:   c.Query("status"),
		Angkatan: queryInt(c, "angkatan"),
	}
	aspraks, _, err := h.db.ListAspraks(filter)
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to load roster: "+err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")

	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "xlsx":
		f, err := exporter.BuildRosterWorkbook(aspraks)
		if err != nil {
			SendJSONError(c, http.StatusInternalServerError, "failed to build workbook: "+err.Error())
			return
		}
		defer f.Close()

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			SendJSONError(c, http.StatusInternalServerError, "failed to write workbook: "+err.Error())
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="aspraks_%s.xlsx"`, timestamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	case "csv":
		var buf bytes.Buffer
		if err := exporter.WriteRosterCSV(&buf, aspraks); err != nil {
			SendJSONError(c, http.StatusInternalServerError, "failed to write csv: "+err.Error())
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="aspraks_%s.csv"`, timestamp))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	default:
		SendJSONError(c, http.StatusBadRequest, "unsupported format "+format+", expected xlsx or csv")
	}
}
