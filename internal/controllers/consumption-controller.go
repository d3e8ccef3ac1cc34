package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facilities-system/internal/dto"
	"facilities-system/internal/services"
	apperrors "facilities-system/pkg/errors"
	"facilities-system/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ConsumptionController struct {
	service services.ConsumptionServiceInterface
	logger  *zap.Logger
}

func NewConsumptionController(service services.ConsumptionServiceInterface, logger *zap.Logger) *ConsumptionController {
	return &ConsumptionController{service: service, logger: logger}
}

func (c *ConsumptionController) GetResponsibleUnits(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	units, total, err := c.service.GetResponsibleUnits(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, units, "Unidades responsáveis listadas com sucesso", http.StatusOK, total)
}

func (c *ConsumptionController) FindResponsibleUnit(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	unit, err := c.service.FindResponsibleUnit(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, unit, "Unidade responsável encontrada", http.StatusOK)
}

func (c *ConsumptionController) CreateResponsibleUnit(ctx echo.Context) error {
	var payload dto.CreateResponsibleUnitDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	unit, err := c.service.CreateResponsibleUnit(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, unit, "Unidade responsável criada com sucesso", http.StatusCreated)
}

func (c *ConsumptionController) UpdateResponsibleUnit(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateResponsibleUnitDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	unit, err := c.service.UpdateResponsibleUnit(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, unit, "Unidade responsável atualizada com sucesso", http.StatusOK)
}

func (c *ConsumptionController) DeleteResponsibleUnit(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.DeleteResponsibleUnit(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Unidade responsável excluída com sucesso", http.StatusOK)
}

func (c *ConsumptionController) GetConsumerUnits(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	units, total, err := c.service.GetConsumerUnits(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, units, "Unidades consumidoras listadas com sucesso", http.StatusOK, total)
}

func (c *ConsumptionController) FindConsumerUnit(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	unit, err := c.service.FindConsumerUnit(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, unit, "Unidade consumidora encontrada", http.StatusOK)
}

func (c *ConsumptionController) CreateConsumerUnit(ctx echo.Context) error {
	var payload dto.CreateConsumerUnitDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	unit, err := c.service.CreateConsumerUnit(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, unit, "Unidade consumidora criada com sucesso", http.StatusCreated)
}

func (c *ConsumptionController) UpdateConsumerUnit(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateConsumerUnitDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	unit, err := c.service.UpdateConsumerUnit(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, unit, "Unidade consumidora atualizada com sucesso", http.StatusOK)
}

func (c *ConsumptionController) DeleteConsumerUnit(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.DeleteConsumerUnit(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Unidade consumidora excluída com sucesso", http.StatusOK)
}

func (c *ConsumptionController) GetEnergyBills(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	bills, total, err := c.service.GetEnergyBills(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, bills, "Contas de energia listadas com sucesso", http.StatusOK, total)
}

func (c *ConsumptionController) FindEnergyBill(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	bill, err := c.service.FindEnergyBill(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, bill, "Conta de energia encontrada", http.StatusOK)
}

func (c *ConsumptionController) CreateEnergyBill(ctx echo.Context) error {
	var payload dto.CreateEnergyBillDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	bill, err := c.service.CreateEnergyBill(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, bill, "Conta de energia criada com sucesso", http.StatusCreated)
}

func (c *ConsumptionController) UpdateEnergyBill(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEnergyBillDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Corpo da requisição inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	bill, err := c.service.UpdateEnergyBill(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, bill, "Conta de energia atualizada com sucesso", http.StatusOK)
}

func (c *ConsumptionController) DeleteEnergyBill(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.DeleteEnergyBill(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Conta de energia excluída com sucesso", http.StatusOK)
}

// ExportEnergyBills devolve a planilha do período como anexo.
// Parâmetros: from e to (obrigatórios, aaaa-mm-dd) e consumer_unit_id (opcional).
func (c *ConsumptionController) ExportEnergyBills(ctx echo.Context) error {
	from := ctx.QueryParam("from")
	to := ctx.QueryParam("to")
	if from == "" || to == "" {
		return utils.ErrorResponse(ctx,
			apperrors.NewInvalidInputError("parâmetros obrigatórios: from e to (aaaa-mm-dd)"), c.logger)
	}

	var consumerUnitID uint64
	if raw := ctx.QueryParam("consumer_unit_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewInvalidInputError("consumer_unit_id inválido: %q", raw), c.logger)
		}
		consumerUnitID = parsed
	}

	file, err := c.service.ExportEnergyBills(ctx.Request().Context(), consumerUnitID, from, to)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contas-energia.xlsx"`)
	ctx.Response().WriteHeader(http.StatusOK)
	return file.Write(ctx.Response().Writer)
}
