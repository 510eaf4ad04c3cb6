package handler

import (
	"errors"
	"net/http"

	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/service"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type BackupManager interface {
	Create(reason string) (*contract.BackupResult, error)
	Restore(filename string) error
	List() ([]*contract.BackupEntry, error)
	Stats() (*contract.BackupStats, error)
}

type DefaultBackupRoute struct {
	Backups  BackupManager
	Validate *validator.Validate
}

func NewBackupDefault(backups BackupManager, validate *validator.Validate) *DefaultBackupRoute {
	return &DefaultBackupRoute{
		Backups:  backups,
		Validate: validate,
	}
}

func (h *DefaultBackupRoute) CreateBackup(c echo.Context) error {
	var req contract.CreateBackupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		apierr := apierror.FromValidationError(valerr)
		return c.JSON(apierr.Code(), apierr)
	}

	if req.Reason == "" {
		req.Reason = "manual"
	}

	result, err := h.Backups.Create(req.Reason)
	if err != nil {
		log.Errorf("backup create failed: %v", err)
		apierr := apierror.NewBackupFailedError("could not copy database file")
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *DefaultBackupRoute) ListBackups(c echo.Context) error {
	backups, err := h.Backups.List()
	if err != nil {
		log.Errorf("backup list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}

	resp := echo.Map{"backups": backups}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultBackupRoute) RestoreBackup(c echo.Context) error {
	var req contract.RestoreBackupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		apierr := apierror.FromValidationError(valerr)
		return c.JSON(apierr.Code(), apierr)
	}

	if err := h.Backups.Restore(req.Filename); err != nil {
		if errors.Is(err, service.ErrBackupNotFound) {
			return c.JSON(http.StatusNotFound, apierror.BackupNotFoundError)
		}

		log.Errorf("backup restore failed: %v", err)
		apierr := apierror.NewBackupFailedError("could not restore the selected backup")
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Backup restored, restart the service to reload the store"}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultBackupRoute) GetStats(c echo.Context) error {
	stats, err := h.Backups.Stats()
	if err != nil {
		log.Errorf("backup stats failed: %v", err)
		return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
	}
	return c.JSON(http.StatusOK, stats)
}
