package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/dto"
)

// TransactionHandler maneja el registro y consulta de ventas.
type TransactionHandler struct {
	uc *checkout.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *checkout.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta stock de la tienda y persiste la venta con sus líneas en una sola transacción.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Venta con sus líneas"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MerchantID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "merchant_id e items son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        merchant_id  query  string  false  "Filtrar por tienda"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200          {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("merchant_id"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
