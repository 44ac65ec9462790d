package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProduct    = errors.New("product reference is required")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeStock   = errors.New("stock cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyItemID     = errors.New("item id is required")
	ErrOverStock       = errors.New("quantity exceeds recorded stock")
)

// ItemSpec is a candidate line as supplied by the product catalog at add-time.
type ItemSpec struct {
	ID      string
	Product string
	Variant string
	Name    string
	Price   decimal.Decimal
	Stock   int
	SKU     string
	Image   string
}

type Item struct {
	id       string
	product  string
	variant  string
	name     string
	price    decimal.Decimal
	quantity int
	stock    int
	sku      string
	image    string
}

// NewItem builds a candidate at quantity 1. Stock 0 is a valid candidate; adding it is rejected later.
func NewItem(spec ItemSpec) (Item, error) {
	product := strings.TrimSpace(spec.Product)
	if product == "" {
		return Item{}, ErrEmptyProduct
	}
	if spec.Price.IsNegative() {
		return Item{}, ErrNegativePrice
	}
	if spec.Stock < 0 {
		return Item{}, ErrNegativeStock
	}

	variant := strings.TrimSpace(spec.Variant)
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		id = LineID(product, variant)
	}

	return Item{
		id:       id,
		product:  product,
		variant:  variant,
		name:     spec.Name,
		price:    spec.Price,
		quantity: 1,
		stock:    spec.Stock,
		sku:      spec.SKU,
		image:    spec.Image,
	}, nil
}

// LineID derives the line identifier used when the catalog does not supply one.
func LineID(product, variant string) string {
	if variant == "" {
		return product
	}
	return product + ":" + variant
}

func reconstructItem(s ItemState) (Item, error) {
	if strings.TrimSpace(s.ID) == "" {
		return Item{}, ErrEmptyItemID
	}
	if strings.TrimSpace(s.Product) == "" {
		return Item{}, ErrEmptyProduct
	}
	if s.Price.IsNegative() {
		return Item{}, ErrNegativePrice
	}
	if s.Stock < 0 {
		return Item{}, ErrNegativeStock
	}
	if s.Quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	if s.Quantity > s.Stock {
		return Item{}, ErrOverStock
	}
	return Item{
		id:       s.ID,
		product:  s.Product,
		variant:  s.Variant,
		name:     s.Name,
		price:    s.Price,
		quantity: s.Quantity,
		stock:    s.Stock,
		sku:      s.SKU,
		image:    s.Image,
	}, nil
}

func (i Item) ID() string             { return i.id }
func (i Item) Product() string        { return i.product }
func (i Item) Variant() string        { return i.variant }
func (i Item) Name() string           { return i.name }
func (i Item) Price() decimal.Decimal { return i.price }
func (i Item) Quantity() int          { return i.quantity }
func (i Item) Stock() int             { return i.stock }
func (i Item) SKU() string            { return i.sku }
func (i Item) Image() string          { return i.image }

func (i Item) LineTotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i Item) InStock() bool {
	return i.stock > 0
}

func (i Item) sameLine(other Item) bool {
	return i.product == other.product && i.variant == other.variant
}

func (i Item) state() ItemState {
	return ItemState{
		ID:       i.id,
		Product:  i.product,
		Variant:  i.variant,
		Quantity: i.quantity,
		Price:    i.price,
		Stock:    i.stock,
		SKU:      i.sku,
		Name:     i.name,
		Image:    i.image,
	}
}
