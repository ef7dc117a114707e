package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
)

// MerchantHandler maneja las peticiones HTTP para Merchant (tiendas).
type MerchantHandler struct {
	uc *usecase.MerchantUseCase
}

// NewMerchantHandler construye el handler.
func NewMerchantHandler(uc *usecase.MerchantUseCase) *MerchantHandler {
	return &MerchantHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMerchantRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.MerchantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/merchants [post]
func (h *MerchantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMerchantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.KeeperID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y keeper_id son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tienda por ID
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.MerchantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/merchants/{id} [get]
func (h *MerchantHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tiendas
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MerchantListResponse
// @Router       /api/merchants [get]
func (h *MerchantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tienda
// @Tags         merchants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tienda"
// @Param        body  body  dto.UpdateMerchantRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MerchantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/merchants/{id} [put]
func (h *MerchantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMerchantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tienda (soft delete)
// @Tags         merchants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/merchants/{id} [delete]
func (h *MerchantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tienda eliminada"})
}
