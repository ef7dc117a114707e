package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// taxRate IVA aplicado sobre el subtotal de la venta.
var taxRate = decimal.NewFromFloat(0.11)

// UseCase registra ventas: descuenta stock de la tienda y persiste la venta
// con sus líneas en una sola transacción. Las filas de stock se bloquean con
// SELECT FOR UPDATE para que dos ventas concurrentes no sobrevendan.
type UseCase struct {
	txRunner        TxRunner
	merchantRepo    repository.MerchantRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	cache           Cache // opcional, nil = sin caché
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	txRunner TxRunner,
	merchantRepo repository.MerchantRepository,
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	cache Cache,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		merchantRepo:    merchantRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Create registra una venta. El precio de cada línea se captura del catálogo al
// momento de la venta; el stock de la tienda se descuenta línea por línea y si
// alguna no alcanza toda la venta se revierte con ErrInsufficientStock.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.MerchantID == "" || in.Name == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	merchant, err := uc.merchantRepo.GetByID(in.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrNotFound
	}

	// Precios del catálogo antes de abrir la transacción.
	items := make([]entity.TransactionItem, 0, len(in.Items))
	subTotal := decimal.Zero
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, entity.TransactionItem{
			ID:        uuid.NewString(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			SubTotal:  lineTotal,
		})
		subTotal = subTotal.Add(lineTotal)
	}

	taxTotal := subTotal.Mul(taxRate).Round(2)
	now := time.Now()
	sale := &entity.Transaction{
		ID:         uuid.NewString(),
		MerchantID: in.MerchantID,
		Name:       in.Name,
		Phone:      in.Phone,
		SubTotal:   subTotal,
		TaxTotal:   taxTotal,
		GrandTotal: subTotal.Add(taxTotal),
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range sale.Items {
		sale.Items[i].TransactionID = sale.ID
	}

	err = uc.txRunner.RunCheckout(ctx, func(msRepo repository.MerchantStockRepository, txRepo repository.TransactionRepository) error {
		for _, item := range sale.Items {
			row, err := msRepo.GetForUpdate(in.MerchantID, item.ProductID)
			if err != nil {
				return err
			}
			if row == nil || row.Stock < item.Quantity {
				return fmt.Errorf("producto %s: %w", item.ProductID, domain.ErrInsufficientStock)
			}
			if err := msRepo.UpdateStock(in.MerchantID, item.ProductID, row.Stock-item.Quantity, row.WarehouseID); err != nil {
				return err
			}
		}
		return txRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		for _, item := range sale.Items {
			_ = uc.cache.Invalidate(ctx, item.ProductID)
		}
	}
	return toTransactionResponse(sale, true), nil
}

// GetByID devuelve una venta con sus líneas.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	sale, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(sale, true), nil
}

// List devuelve ventas paginadas, opcionalmente filtradas por tienda.
func (uc *UseCase) List(ctx context.Context, merchantID string, limit, offset int) (*dto.TransactionListResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var (
		sales []*entity.Transaction
		err   error
	)
	if merchantID != "" {
		sales, err = uc.transactionRepo.ListByMerchant(merchantID, limit, offset)
	} else {
		sales, err = uc.transactionRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}

	out := &dto.TransactionListResponse{
		Items: make([]dto.TransactionResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, sale := range sales {
		out.Items = append(out.Items, *toTransactionResponse(sale, false))
	}
	return out, nil
}

func toTransactionResponse(t *entity.Transaction, withItems bool) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:         t.ID,
		MerchantID: t.MerchantID,
		Name:       t.Name,
		Phone:      t.Phone,
		SubTotal:   t.SubTotal,
		TaxTotal:   t.TaxTotal,
		GrandTotal: t.GrandTotal,
		CreatedAt:  t.CreatedAt,
	}
	if withItems {
		resp.Items = make([]dto.TransactionItemResponse, 0, len(t.Items))
		for _, item := range t.Items {
			resp.Items = append(resp.Items, dto.TransactionItemResponse{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				SubTotal:  item.SubTotal,
			})
		}
	}
	return resp
}
