package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/stock"
	"github.com/jhoicas/storefront-api/internal/domain"
)

// WarehouseProductHandler rutas de asignación de productos a bodegas
// (la tabla pivote producto×bodega con stock).
type WarehouseProductHandler struct {
	uc *stock.WarehouseStockUseCase
}

// NewWarehouseProductHandler construye el handler.
func NewWarehouseProductHandler(uc *stock.WarehouseStockUseCase) *WarehouseProductHandler {
	return &WarehouseProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos asignados a una bodega
// @Tags         warehouse-products
// @Security     Bearer
// @Produce      json
// @Param        warehouse  path   string  true   "ID de la bodega"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {array}   dto.WarehouseStockResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/warehouses/{warehouse}/products [get]
func (h *WarehouseProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByWarehouse(c.UserContext(), c.Params("warehouse"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Attach godoc
// @Summary      Asignar producto a bodega
// @Description  Crea la fila pivote con stock inicial. Par ya asignado responde 409.
// @Tags         warehouse-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        warehouse  path  string  true  "ID de la bodega"
// @Param        body       body  dto.AttachWarehouseProductRequest  true  "Producto y stock inicial"
// @Success      201        {object}  dto.MessageResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/warehouses/{warehouse}/products [post]
func (h *WarehouseProductHandler) Attach(c *fiber.Ctx) error {
	var in dto.AttachWarehouseProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	if in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"})
	}
	out, err := h.uc.Attach(c.UserContext(), c.Params("warehouse"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "producto asignado a la bodega", Data: out})
}

// UpdateStock godoc
// @Summary      Actualizar stock de un producto en una bodega
// @Description  Sobreescribe el stock del par (bodega, producto). Si el producto no está asignado responde 400 nombrando el producto.
// @Tags         warehouse-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        warehouse  path  string  true  "ID de la bodega"
// @Param        product    path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateWarehouseStockRequest  true  "Stock nuevo"
// @Success      200        {object}  dto.MessageResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/warehouses/{warehouse}/products/{product} [put]
func (h *WarehouseProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateWarehouseStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"})
	}
	out, err := h.uc.UpdateStock(c.UserContext(), c.Params("warehouse"), c.Params("product"), in)
	if err != nil {
		// producto sin asignar a esta bodega: error de validación nombrando el producto
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "el producto " + c.Params("product") + " no está asignado a esta bodega",
			})
		}
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock actualizado", Data: out})
}

// Detach godoc
// @Summary      Retirar producto de una bodega
// @Description  Borra la fila pivote. Idempotente: retirar un producto no asignado también responde 200.
// @Tags         warehouse-products
// @Security     Bearer
// @Produce      json
// @Param        warehouse  path  string  true  "ID de la bodega"
// @Param        product    path  string  true  "ID del producto"
// @Success      200        {object}  dto.MessageResponse
// @Router       /api/warehouses/{warehouse}/products/{product} [delete]
func (h *WarehouseProductHandler) Detach(c *fiber.Ctx) error {
	if err := h.uc.Detach(c.UserContext(), c.Params("warehouse"), c.Params("product")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto retirado de la bodega"})
}
