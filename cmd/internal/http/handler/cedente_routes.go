package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CedenteService interface {
	GetAllCedentes() ([]*contract.CedenteResponse, apierror.ErrorResponse)
	GetCedente(id int64) (*contract.CedenteResponse, apierror.ErrorResponse)
	CreateCedente(req *contract.CedenteRequest) (*contract.CedenteResponse, apierror.ErrorResponse)
	UpdateCedente(id int64, req *contract.CedenteRequest) (*contract.CedenteResponse, apierror.ErrorResponse)
	DeleteCedente(id int64) apierror.ErrorResponse
	Statistics() (*contract.StatisticsResponse, apierror.ErrorResponse)
}

type DocumentService interface {
	GetChecklist(cedenteID int64) (*contract.ChecklistResponse, apierror.ErrorResponse)
	SaveChecklist(cedenteID int64, req *contract.ChecklistRequest) (*contract.ChecklistResponse, apierror.ErrorResponse)
}

type ImportService interface {
	ImportSpreadsheet(r io.Reader) (*contract.ImportResult, error)
}

type DefaultCedenteRoute struct {
	CedenteService  CedenteService
	DocumentService DocumentService
	ImportService   ImportService
}

func NewCedenteDefault(cedenteService CedenteService, documentService DocumentService, importService ImportService) *DefaultCedenteRoute {
	return &DefaultCedenteRoute{
		CedenteService:  cedenteService,
		DocumentService: documentService,
		ImportService:   importService,
	}
}

func (h *DefaultCedenteRoute) GetCedentes(c echo.Context) error {
	cedentes, apierr := h.CedenteService.GetAllCedentes()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"cedentes": cedentes}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCedenteRoute) GetCedente(c echo.Context) error {
	id, cerr := pathID(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	cedente, apierr := h.CedenteService.GetCedente(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cedente)
}

func (h *DefaultCedenteRoute) CreateCedente(c echo.Context) error {
	var req contract.CedenteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	cedente, apierr := h.CedenteService.CreateCedente(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, cedente)
}

func (h *DefaultCedenteRoute) UpdateCedente(c echo.Context) error {
	id, cerr := pathID(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CedenteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	cedente, apierr := h.CedenteService.UpdateCedente(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cedente)
}

func (h *DefaultCedenteRoute) DeleteCedente(c echo.Context) error {
	id, cerr := pathID(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := h.CedenteService.DeleteCedente(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultCedenteRoute) GetChecklist(c echo.Context) error {
	id, cerr := pathID(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	checklist, apierr := h.DocumentService.GetChecklist(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, checklist)
}

func (h *DefaultCedenteRoute) SaveChecklist(c echo.Context) error {
	id, cerr := pathID(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ChecklistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	checklist, apierr := h.DocumentService.SaveChecklist(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, checklist)
}

func (h *DefaultCedenteRoute) GetStatistics(c echo.Context) error {
	stats, apierr := h.CedenteService.Statistics()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DefaultCedenteRoute) ImportCedentes(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingFileError)
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		return c.JSON(http.StatusBadRequest, apierror.InvalidFileTypeError)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}
	defer file.Close()

	result, err := h.ImportService.ImportSpreadsheet(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewSimple(http.StatusBadRequest, "Could not read the spreadsheet"))
	}
	return c.JSON(http.StatusOK, result)
}

func pathID(c echo.Context) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}
