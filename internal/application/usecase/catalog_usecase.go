package usecase

import (
	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
)

// CatalogUseCase consultas de catálogo: búsqueda de productos y comparación de
// ofertas por precio.
type CatalogUseCase struct {
	products repository.ProductRepository
	quotes   repository.PriceQuoteRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, quotes repository.PriceQuoteRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, quotes: quotes}
}

// Search devuelve los productos cuyo número o nombre contienen query.
func (uc *CatalogUseCase) Search(query string) (*dto.SearchResponse, error) {
	list, err := uc.products.Search(query)
	if err != nil {
		return nil, err
	}
	results := make([]dto.ProductResult, 0, len(list))
	for _, p := range list {
		results = append(results, toProductResult(p))
	}
	return &dto.SearchResponse{Results: results}, nil
}

// ComparePrices devuelve el producto y todas sus cotizaciones con el nombre del
// proveedor, ascendente por precio. Devuelve (nil, nil) si el producto no existe.
func (uc *CatalogUseCase) ComparePrices(productID string) (*dto.PriceComparisonResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	offers, err := uc.quotes.ListOffersByProduct(productID)
	if err != nil {
		return nil, err
	}

	out := &dto.PriceComparisonResponse{
		Product: toProductResult(product),
		Offers:  make([]dto.OfferResponse, 0, len(offers)),
	}
	for _, o := range offers {
		resp := dto.OfferResponse{
			Supplier:  o.SupplierName,
			Currency:  o.Currency,
			Available: o.Available,
			Updated:   o.Timestamp,
		}
		if o.Price.Valid {
			price := o.Price.Decimal
			resp.Price = &price
		}
		out.Offers = append(out.Offers, resp)
	}
	return out, nil
}

func toProductResult(p *entity.Product) dto.ProductResult {
	return dto.ProductResult{
		ID:       p.ID,
		Number:   p.ProductNumber,
		Name:     p.CanonicalName,
		Category: p.Category,
	}
}
