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

type BlockController struct {
	service services.BlockServiceInterface
	logger  *zap.Logger
}

func NewBlockController(service services.BlockServiceInterface, logger *zap.Logger) *BlockController {
	return &BlockController{service: service, logger: logger}
}

func (c *BlockController) GetBlocks(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	blocks, total, err := c.service.GetBlocks(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, blocks, "Blocos listados com sucesso", http.StatusOK, total)
}

func (c *BlockController) FindBlock(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	block, err := c.service.FindBlock(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, block, "Bloco encontrado", http.StatusOK)
}

func (c *BlockController) CreateBlock(ctx echo.Context) error {
	var payload dto.CreateBlockDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	block, err := c.service.CreateBlock(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, block, "Bloco criado com sucesso", http.StatusCreated)
}

func (c *BlockController) UpdateBlock(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateBlockDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	block, err := c.service.UpdateBlock(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, block, "Bloco atualizado com sucesso", http.StatusOK)
}

func (c *BlockController) DeleteBlock(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.DeleteBlock(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Bloco excluído com sucesso", http.StatusOK)
}
