package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/services"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/utils"
)

type CampusController struct {
	service services.CampusServiceInterface
	logger  *zap.Logger
}

func NewCampusController(service services.CampusServiceInterface, logger *zap.Logger) *CampusController {
	return &CampusController{service: service, logger: logger}
}

func (c *CampusController) GetCampuses(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	campuses, total, err := c.service.GetCampuses(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, campuses, "Campi listados com sucesso", http.StatusOK, total)
}

func (c *CampusController) FindCampus(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	campus, err := c.service.FindCampus(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, campus, "Campus encontrado", http.StatusOK)
}

func (c *CampusController) CreateCampus(ctx echo.Context) error {
	var payload dto.CreateCampusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	campus, err := c.service.CreateCampus(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, campus, "Campus criado com sucesso", http.StatusCreated)
}

func (c *CampusController) UpdateCampus(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateCampusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	campus, err := c.service.UpdateCampus(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, campus, "Campus atualizado com sucesso", http.StatusOK)
}

func (c *CampusController) DeleteCampus(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.DeleteCampus(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Campus excluído com sucesso", http.StatusOK)
}
