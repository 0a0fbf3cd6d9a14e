package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"asprakserver/database"
	"asprakserver/importer"
)

// ImportHandler serves roster file uploads.
type ImportHandler struct {
	db                *database.AsprakDB
	activeWindowYears int
	maxUploadBytes    int64
	now               func() time.Time
}

// NewImportHandler creates an upload handler bound to the given database.
func NewImportHandler(db *database.AsprakDB, activeWindowYears int, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		db:                db,
		activeWindowYears: activeWindowYears,
		maxUploadBytes:    maxUploadBytes,
		now:               time.Now,
	}
}

// HandleImportRoster ingests a roster file
// @Summary Import a roster file
// @Description Accepts a CSV or Excel roster in the "file" form field. Rows with an explicit kode claim it first (conflict policy applies), the rest get generated codes. Row failures are isolated.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "roster file (.csv, .xlsx)"
// @Success 200 {object} importer.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse "file exceeds the upload limit"
// @Router /import/roster [post]
func (h *ImportHandler) HandleImportRoster(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			SendJSONError(c, http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
			return
		}
		SendJSONError(c, http.StatusBadRequest, "missing form field \"file\": "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "failed to open uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	var records []importer.RosterRecord
	switch ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext {
	case ".csv", ".txt":
		records, err = importer.ParseRosterCSV(file)
	case ".xlsx", ".xlsm":
		records, err = importer.ParseRosterExcel(file)
	default:
		SendJSONError(c, http.StatusBadRequest, "unsupported file type "+ext+", expected .csv or .xlsx")
		return
	}
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "failed to parse roster: "+err.Error())
		return
	}
	if len(records) == 0 {
		SendJSONError(c, http.StatusBadRequest, "roster contains no usable rows")
		return
	}

	ri := importer.NewRosterImporter(h.db, h.activeWindowYears)
	result, err := ri.ImportRoster(records, h.now().Year())
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "import failed: "+err.Error())
		return
	}

	SendJSONResponse(c, http.StatusOK, result)
}
