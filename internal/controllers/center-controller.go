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

type CenterController struct {
	service services.CenterServiceInterface
	logger  *zap.Logger
}

func NewCenterController(service services.CenterServiceInterface, logger *zap.Logger) *CenterController {
	return &CenterController{service: service, logger: logger}
}

func (c *CenterController) GetCenters(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	centers, total, err := c.service.GetCenters(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, centers, "Centros listados com sucesso", http.StatusOK, total)
}

func (c *CenterController) FindCenter(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	center, err := c.service.FindCenter(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, center, "Centro encontrado", http.StatusOK)
}

func (c *CenterController) CreateCenter(ctx echo.Context) error {
	var payload dto.CreateCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	center, err := c.service.CreateCenter(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, center, "Centro criado com sucesso", http.StatusCreated)
}

func (c *CenterController) UpdateCenter(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	center, err := c.service.UpdateCenter(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, center, "Centro atualizado com sucesso", http.StatusOK)
}

func (c *CenterController) DeleteCenter(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.DeleteCenter(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Centro excluído com sucesso", http.StatusOK)
}
