package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"asprakserver/codegen"
	"asprakserver/database"
)

// AsprakHandler serves the roster CRUD and code generation endpoints.
type AsprakHandler struct {
	db                *database.AsprakDB
	activeWindowYears int
	now               func() time.Time
}

// NewAsprakHandler creates a roster handler bound to the given database.
func NewAsprakHandler(db *database.AsprakDB, activeWindowYears int) *AsprakHandler {
	return &AsprakHandler{
		db:                db,
		activeWindowYears: activeWindowYears,
		now:               time.Now,
	}
}

// CreateAsprakRequest is the body of POST /api/aspraks.
type CreateAsprakRequest struct {
	NIM      string `json:"nim" binding:"required"`
	FullName string `json:"nama_lengkap" binding:"required"`
	Angkatan int    `json:"angkatan" binding:"required"`
	Code     string `json:"kode"`
}

// UpdateAsprakRequest is the body of PUT /api/aspraks/:id.
type UpdateAsprakRequest struct {
	FullName string `json:"nama_lengkap"`
	Angkatan int    `json:"angkatan"`
	Code     string `json:"kode"`
}

// ListAspraksResponse is the paginated roster listing.
type ListAspraksResponse struct {
	Aspraks []database.Asprak `json:"aspraks"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

// ConflictResponse is returned with status 409 when an active owner blocks
// a code assignment.
type ConflictResponse struct {
	Error      bool               `json:"error"`
	Message    string             `json:"message"`
	Assessment codegen.Assessment `json:"assessment"`
}

// HandleListAspraks lists roster rows
// @Summary List aspraks
// @Description Returns roster rows filtered by status, cohort year and search text
// @Tags aspraks
// @Produce json
// @Param status query string false "active or expired"
// @Param angkatan query int false "exact cohort year"
// @Param angkatan_from query int false "cohort year lower bound"
// @Param angkatan_to query int false "cohort year upper bound"
// @Param search query string false "substring match on name, NIM or code"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} ListAspraksResponse
// @Failure 500 {object} ErrorResponse
// @Router /aspraks [get]
func (h *AsprakHandler) HandleListAspraks(c *gin.Context) {
	filter := database.AsprakFilter{
		Status:       c.Query("status"),
		Angkatan:     queryInt(c, "angkatan"),
		AngkatanFrom: queryInt(c, "angkatan_from"),
		AngkatanTo:   queryInt(c, "angkatan_to"),
		Search:       c.Query("search"),
		Limit:        queryInt(c, "limit"),
		Offset:       queryInt(c, "offset"),
	}

	if filter.Status != "" && filter.Status != database.StatusActive && filter.Status != database.StatusExpired {
		SendJSONError(c, http.StatusBadRequest, "status must be active or expired")
		return
	}

	aspraks, total, err := h.db.ListAspraks(filter)
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to list aspraks: "+err.Error())
		return
	}
	if aspraks == nil {
		aspraks = []database.Asprak{}
	}

	SendJSONResponse(c, http.StatusOK, ListAspraksResponse{
		Aspraks: aspraks,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

// HandleGetAsprak fetches one roster row
// @Summary Get asprak by ID
// @Tags aspraks
// @Produce json
// @Param id path string true "asprak ID"
// @Success 200 {object} database.Asprak
// @Failure 404 {object} ErrorResponse
// @Router /aspraks/{id} [get]
func (h *AsprakHandler) HandleGetAsprak(c *gin.Context) {
	a, err := h.db.GetAsprakByID(c.Param("id"))
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to get asprak: "+err.Error())
		return
	}
	if a == nil {
		SendJSONError(c, http.StatusNotFound, "asprak not found")
		return
	}
	SendJSONResponse(c, http.StatusOK, a)
}

// HandleCreateAsprak creates a roster row, generating a code when none is
// supplied
// @Summary Create asprak
// @Description Creates a roster row. A missing kode is generated from the name; an explicit kode goes through conflict assessment and may recycle an inactive owner's code.
// @Tags aspraks
// @Accept json
// @Produce json
// @Param request body CreateAsprakRequest true "new asprak"
// @Success 201 {object} database.Asprak
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse "NIM already exists or code held by an active owner"
// @Failure 422 {object} ErrorResponse "no code could be derived from the name"
// @Router /aspraks [post]
func (h *AsprakHandler) HandleCreateAsprak(c *gin.Context) {
	var req CreateAsprakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Angkatan < 1900 || req.Angkatan > 2200 {
		SendJSONError(c, http.StatusBadRequest, "angkatan must be a 4-digit year")
		return
	}

	existing, err := h.db.GetAsprakByNIM(req.NIM)
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to check NIM: "+err.Error())
		return
	}
	if existing != nil {
		SendJSONError(c, http.StatusConflict, "an asprak with this NIM already exists")
		return
	}

	code, ruleLabel, ok := h.resolveCode(c, req.Code, req.FullName, req.NIM)
	if !ok {
		return
	}

	a := &database.Asprak{
		NIM:      req.NIM,
		FullName: strings.TrimSpace(req.FullName),
		Code:     code,
		CodeRule: ruleLabel,
		Angkatan: req.Angkatan,
	}
	if err := h.db.CreateAsprak(a); err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to create asprak: "+err.Error())
		return
	}
	SendJSONResponse(c, http.StatusCreated, a)
}

// HandleUpdateAsprak updates name, cohort year or code
// @Summary Update asprak
// @Description Updates mutable fields. A changed kode goes through the same conflict assessment as creation.
// @Tags aspraks
// @Accept json
// @Produce json
// @Param id path string true "asprak ID"
// @Param request body UpdateAsprakRequest true "fields to update"
// @Success 200 {object} database.Asprak
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Router /aspraks/{id} [put]
func (h *AsprakHandler) HandleUpdateAsprak(c *gin.Context) {
	a, err := h.db.GetAsprakByID(c.Param("id"))
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to get asprak: "+err.Error())
		return
	}
	if a == nil {
		SendJSONError(c, http.StatusNotFound, "asprak not found")
		return
	}

	var req UpdateAsprakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.FullName != "" {
		a.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Angkatan != 0 {
		if req.Angkatan < 1900 || req.Angkatan > 2200 {
			SendJSONError(c, http.StatusBadRequest, "angkatan must be a 4-digit year")
			return
		}
		a.Angkatan = req.Angkatan
	}

	if newCode := strings.ToUpper(strings.TrimSpace(req.Code)); newCode != "" && newCode != a.Code {
		code, ruleLabel, ok := h.resolveCode(c, newCode, a.FullName, a.NIM)
		if !ok {
			return
		}
		a.Code = code
		a.CodeRule = ruleLabel
	}

	if err := h.db.UpdateAsprak(a); err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to update asprak: "+err.Error())
		return
	}
	SendJSONResponse(c, http.StatusOK, a)
}

// HandleDeleteAsprak removes a roster row
// @Summary Delete asprak
// @Tags aspraks
// @Produce json
// @Param id path string true "asprak ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /aspraks/{id} [delete]
func (h *AsprakHandler) HandleDeleteAsprak(c *gin.Context) {
	id := c.Param("id")
	a, err := h.db.GetAsprakByID(id)
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to get asprak: "+err.Error())
		return
	}
	if a == nil {
		SendJSONError(c, http.StatusNotFound, "asprak not found")
		return
	}
	if err := h.db.DeleteAsprak(id); err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to delete asprak: "+err.Error())
		return
	}
	SendJSONResponse(c, http.StatusOK, gin.H{"success": true, "id": id})
}

// PreviewCodeRequest is the body of POST /api/aspraks/generate-code.
type PreviewCodeRequest struct {
	FullName string `json:"nama_lengkap" binding:"required"`
}

// PreviewCodeResponse carries a generated code and its provenance without
// persisting anything.
type PreviewCodeResponse struct {
	Code string `json:"code"`
	Rule string `json:"rule"`
}

// HandlePreviewCode generates a code without saving it
// @Summary Preview a generated code
// @Description Derives a code for the given name against the current active set. Nothing is persisted; the code is not reserved.
// @Tags aspraks
// @Accept json
// @Produce json
// @Param request body PreviewCodeRequest true "name to derive from"
// @Success 200 {object} PreviewCodeResponse
// @Failure 422 {object} ErrorResponse "name unusable or combinations exhausted"
// @Router /aspraks/generate-code [post]
func (h *AsprakHandler) HandlePreviewCode(c *gin.Context) {
	var req PreviewCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	used, err := h.db.GetActiveCodes()
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to load active codes: "+err.Error())
		return
	}

	result, err := codegen.Generate(req.FullName, used)
	if err != nil {
		SendJSONError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	SendJSONResponse(c, http.StatusOK, PreviewCodeResponse{
		Code: result.Code,
		Rule: result.Rule.Label(),
	})
}

// CheckCodeRequest is the body of POST /api/aspraks/check-code.
type CheckCodeRequest struct {
	Code string `json:"kode" binding:"required"`
	NIM  string `json:"nim"`
}

// HandleCheckCode runs the conflict assessment for a code
// @Summary Assess a code assignment
// @Description Reports whether the code is free, recyclable from an inactive owner, or blocked by an active one. Read-only.
// @Tags aspraks
// @Accept json
// @Produce json
// @Param request body CheckCodeRequest true "code and requesting NIM"
// @Success 200 {object} codegen.Assessment
// @Failure 400 {object} ErrorResponse
// @Router /aspraks/check-code [post]
func (h *AsprakHandler) HandleCheckCode(c *gin.Context) {
	var req CheckCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if !codegen.IsValidCode(code) {
		SendJSONError(c, http.StatusBadRequest, "kode must be exactly three uppercase letters")
		return
	}

	owner, err := h.db.GetAsprakByCode(code)
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to look up code: "+err.Error())
		return
	}

	assessment := codegen.AssessConflict(toOwner(owner), req.NIM, h.now().Year(), h.activeWindowYears)
	SendJSONResponse(c, http.StatusOK, assessment)
}

// HandleGenerationRules returns the standard rule tables
// @Summary List code generation rules
// @Description Returns the standard formula tables in evaluation order, grouped by word count.
// @Tags aspraks
// @Produce json
// @Success 200 {object} map[string][]codegen.RuleDescription
// @Router /generation-rules [get]
func (h *AsprakHandler) HandleGenerationRules(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, codegen.StandardRuleDescriptions())
}

// resolveCode settles the code for a create or update: an explicit code is
// validated and conflict-checked (recycling the previous owner when
// allowed), an empty one is generated. On failure it writes the error
// response and returns ok=false.
func (h *AsprakHandler) resolveCode(c *gin.Context, explicit, fullName, nim string) (code, ruleLabel string, ok bool) {
	if explicit = strings.ToUpper(strings.TrimSpace(explicit)); explicit != "" {
		if !codegen.IsValidCode(explicit) {
			SendJSONError(c, http.StatusBadRequest, "kode must be exactly three uppercase letters")
			return "", "", false
		}

		owner, err := h.db.GetAsprakByCode(explicit)
		if err != nil {
			SendJSONError(c, http.StatusInternalServerError, "failed to look up code: "+err.Error())
			return "", "", false
		}

		assessment := codegen.AssessConflict(toOwner(owner), nim, h.now().Year(), h.activeWindowYears)
		if assessment.HasConflict {
			c.JSON(http.StatusConflict, ConflictResponse{
				Error:      true,
				Message:    codegen.ConflictErrorMessage(explicit, assessment.ExistingOwner),
				Assessment: assessment,
			})
			return "", "", false
		}
		if assessment.CanRecycle && owner != nil {
			if err := h.db.ExpireAsprakCode(owner.ID, nim); err != nil {
				SendJSONError(c, http.StatusInternalServerError, "failed to recycle code: "+err.Error())
				return "", "", false
			}
		}
		return explicit, codegen.Rule{Kind: codegen.RuleProvided}.Label(), true
	}

	used, err := h.db.GetActiveCodes()
	if err != nil {
		SendJSONError(c, http.StatusInternalServerError, "failed to load active codes: "+err.Error())
		return "", "", false
	}

	result, err := codegen.Generate(fullName, used)
	if err != nil {
		if errors.Is(err, codegen.ErrNameInvalid) || errors.Is(err, codegen.ErrExhausted) {
			SendJSONError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			SendJSONError(c, http.StatusInternalServerError, "failed to generate code: "+err.Error())
		}
		return "", "", false
	}
	return result.Code, result.Rule.Label(), true
}

func toOwner(a *database.Asprak) *codegen.Owner {
	if a == nil {
		return nil
	}
	return &codegen.Owner{
		ID:       a.ID,
		NIM:      a.NIM,
		FullName: a.FullName,
		Code:     a.Code,
		Angkatan: a.Angkatan,
	}
}

func queryInt(c *gin.Context, key string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
