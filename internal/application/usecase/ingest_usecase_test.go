package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Precios-api/internal/application/usecase"
	"github.com/jhoicas/Precios-api/internal/domain/entity"
	"github.com/jhoicas/Precios-api/internal/domain/repository"
	"github.com/jhoicas/Precios-api/internal/infrastructure/parser"
	"github.com/jhoicas/Precios-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byNumber map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byNumber: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) CreateIfAbsent(p *entity.Product) error {
	if _, ok := r.byNumber[p.ProductNumber]; ok {
		return nil
	}
	cp := *p
	r.byNumber[p.ProductNumber] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.byNumber {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByNumber(number string) (*entity.Product, error) {
	if p, ok := r.byNumber[number]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Search(query string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byNumber {
		if strings.Contains(p.ProductNumber, query) || strings.Contains(p.CanonicalName, query) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeQuoteRepo struct {
	quotes []*entity.PriceQuote
}

func (r *fakeQuoteRepo) Create(q *entity.PriceQuote) error {
	cp := *q
	r.quotes = append(r.quotes, &cp)
	return nil
}

func (r *fakeQuoteRepo) ListOffersByProduct(productID string) ([]*entity.Offer, error) {
	var out []*entity.Offer
	for _, q := range r.quotes {
		if q.ProductID == productID {
			out = append(out, &entity.Offer{
				SupplierName: q.SupplierID,
				Price:        q.Price,
				Currency:     q.Currency,
				Available:    q.Available,
				Timestamp:    q.Timestamp,
			})
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente, sin transacción real.
type fakeTxRunner struct {
	products *fakeProductRepo
	quotes   *fakeQuoteRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	quoteRepo repository.PriceQuoteRepository,
) error) error {
	return fn(r.products, r.quotes)
}

func testLogger() *logger.Logger {
	return logger.New("production", "error")
}

func record(number, name string, pcs int, price string) parser.RawRecord {
	rec := parser.RawRecord{
		ProductNumber: number,
		ProductName:   name,
		AvailablePcs:  pcs,
		PriceOriginal: price,
		Currency:      "EUR",
	}
	if price != "" {
		rec.Price = decimal.NullDecimal{Decimal: decimal.RequireFromString(price), Valid: true}
	}
	return rec
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestIngest_LoteSimple(t *testing.T) {
	products := newFakeProductRepo()
	quotes := &fakeQuoteRepo{}
	uc := usecase.NewIngestUseCase(&fakeTxRunner{products: products, quotes: quotes}, testLogger())

	report := &parser.BatchReport{Records: []parser.RawRecord{
		record("A1", "iPhone 15", 5, "999.00"),
		record("B2", "Funda universal", 10, "9.90"),
	}}

	out, err := uc.Ingest(context.Background(), "sup-1", "text", report)
	require.NoError(t, err)
	assert.Equal(t, "Successfully added 2 price entries", out.Message)
	assert.Equal(t, 2, out.Added)
	assert.Equal(t, 0, out.Skipped)

	require.Len(t, quotes.quotes, 2)
	assert.Len(t, products.byNumber, 2)

	// La categoría se deriva del nombre al crear el producto
	p, err := products.GetByNumber("A1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Smartphone", p.Category)
	assert.Equal(t, "iPhone 15", p.CanonicalName)
	assert.False(t, p.CreatedAt.IsZero())
}

// El mismo número de producto en dos lotes crea un solo Product y una
// cotización por ingesta: identidad idempotente, historial no idempotente.
func TestIngest_MismoNumeroDosVeces(t *testing.T) {
	products := newFakeProductRepo()
	quotes := &fakeQuoteRepo{}
	uc := usecase.NewIngestUseCase(&fakeTxRunner{products: products, quotes: quotes}, testLogger())

	report := &parser.BatchReport{Records: []parser.RawRecord{
		record("A1", "iPad Mini", 5, "450.00"),
	}}

	_, err := uc.Ingest(context.Background(), "sup-1", "text", report)
	require.NoError(t, err)
	_, err = uc.Ingest(context.Background(), "sup-2", "text", report)
	require.NoError(t, err)

	assert.Len(t, products.byNumber, 1)
	assert.Len(t, quotes.quotes, 2)
}

func TestIngest_DescartesObservablesEnLaRespuesta(t *testing.T) {
	products := newFakeProductRepo()
	quotes := &fakeQuoteRepo{}
	uc := usecase.NewIngestUseCase(&fakeTxRunner{products: products, quotes: quotes}, testLogger())

	report := &parser.BatchReport{
		Records: []parser.RawRecord{record("A1", "Widget", 1, "5.00")},
		Skipped: []parser.SkippedRow{
			{Line: 2, Reason: "se esperaban 4 campos separados por tab, hay 2"},
			{Line: 5, Reason: "fila sin número ni nombre de producto"},
		},
	}

	out, err := uc.Ingest(context.Background(), "sup-1", "xlsx", report)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Added)
	assert.Equal(t, 2, out.Skipped)
	assert.Equal(t, "Successfully added 1 price entries", out.Message)
}

func TestIngest_PrecioNullSeGuardaIgual(t *testing.T) {
	products := newFakeProductRepo()
	quotes := &fakeQuoteRepo{}
	uc := usecase.NewIngestUseCase(&fakeTxRunner{products: products, quotes: quotes}, testLogger())

	report := &parser.BatchReport{Records: []parser.RawRecord{
		record("A1", "Widget", 3, ""),
	}}

	out, err := uc.Ingest(context.Background(), "sup-1", "text", report)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Added)
	require.Len(t, quotes.quotes, 1)
	assert.False(t, quotes.quotes[0].Price.Valid)
}
