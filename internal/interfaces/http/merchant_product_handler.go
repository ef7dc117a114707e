package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/stock"
)

// MerchantProductHandler rutas de asignación de productos a tiendas
// (la tabla pivote producto×tienda con stock y bodega surtidora).
type MerchantProductHandler struct {
	uc *stock.MerchantStockUseCase
}

// NewMerchantProductHandler construye el handler.
func NewMerchantProductHandler(uc *stock.MerchantStockUseCase) *MerchantProductHandler {
	return &MerchantProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos asignados a una tienda
// @Tags         merchant-products
// @Security     Bearer
// @Produce      json
// @Param        merchant  path   string  true   "ID de la tienda"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {array}   dto.MerchantStockResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/merchants/{merchant}/products [get]
func (h *MerchantProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByMerchant(c.UserContext(), c.Params("merchant"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Attach godoc
// @Summary      Asignar producto a tienda
// @Description  Crea la fila pivote con stock inicial y bodega surtidora. Par ya asignado responde 409.
// @Tags         merchant-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        merchant  path  string  true  "ID de la tienda"
// @Param        body      body  dto.AttachMerchantProductRequest  true  "Producto, stock inicial y bodega"
// @Success      201       {object}  dto.MessageResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/merchants/{merchant}/products [post]
func (h *MerchantProductHandler) Attach(c *fiber.Ctx) error {
	var in dto.AttachMerchantProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	if in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"})
	}
	out, err := h.uc.Attach(c.UserContext(), c.Params("merchant"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "producto asignado a la tienda", Data: out})
}

// UpdateStock godoc
// @Summary      Actualizar stock de un producto en una tienda
// @Description  Sobreescribe stock y bodega surtidora del par (tienda, producto). No es un incremento.
// @Tags         merchant-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        merchant  path  string  true  "ID de la tienda"
// @Param        product   path  string  true  "ID del producto"
// @Param        body      body  dto.UpdateMerchantStockRequest  true  "Stock nuevo y bodega"
// @Success      200       {object}  dto.MessageResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/merchants/{merchant}/products/{product} [put]
func (h *MerchantProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateMerchantStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WarehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id es requerido"})
	}
	if in.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"})
	}
	out, err := h.uc.UpdateStock(c.UserContext(), c.Params("merchant"), c.Params("product"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock actualizado", Data: out})
}

// Detach godoc
// @Summary      Retirar producto de una tienda
// @Description  Borra la fila pivote. Idempotente: retirar un producto no asignado también responde 200.
// @Tags         merchant-products
// @Security     Bearer
// @Produce      json
// @Param        merchant  path  string  true  "ID de la tienda"
// @Param        product   path  string  true  "ID del producto"
// @Success      200       {object}  dto.MessageResponse
// @Router       /api/merchants/{merchant}/products/{product} [delete]
func (h *MerchantProductHandler) Detach(c *fiber.Ctx) error {
	if err := h.uc.Detach(c.UserContext(), c.Params("merchant"), c.Params("product")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto retirado de la tienda"})
}
