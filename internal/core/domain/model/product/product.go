// Package product contains the product aggregate for the perfume catalog:
// base product data, stock, volume variants, and images.
package product

import (
	"errors"
	"fmt"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is returned when a deduction would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductInactive is returned when mutating a soft-deleted product.
	ErrProductInactive = errors.New("product is inactive")
)

// Variant is a sellable variation of a product, typically a bottle volume.
type Variant struct {
	id         kernel.UUID
	label      string
	priceCents int64
	stock      int
}

// NewVariant creates a product variant. The label (e.g. "50ml") is required,
// price must be non-negative and stock cannot start negative.
func NewVariant(id kernel.UUID, label string, priceCents int64, stock int) (Variant, error) {
	if err := id.Validate(); err != nil {
		return Variant{}, err
	}
	if label == "" {
		return Variant{}, errs.NewValueIsRequiredError("variant label")
	}
	if priceCents < 0 {
		return Variant{}, errs.NewValueIsInvalidErrorWithCause(
			"variant price", fmt.Errorf("%d is negative", priceCents))
	}
	if stock < 0 {
		return Variant{}, errs.NewValueIsInvalidErrorWithCause(
			"variant stock", fmt.Errorf("%d is negative", stock))
	}

	return Variant{id: id, label: label, priceCents: priceCents, stock: stock}, nil
}

// ID returns the variant identifier.
func (v Variant) ID() kernel.UUID { return v.id }

// Label returns the variant label.
func (v Variant) Label() string { return v.label }

// PriceCents returns the variant price in cents.
func (v Variant) PriceCents() int64 { return v.priceCents }

// Stock returns the variant stock level.
func (v Variant) Stock() int { return v.stock }

// Image is a product image reference. Exactly one image per product should
// be primary; the aggregate enforces this when images are replaced.
type Image struct {
	url       string
	isPrimary bool
}

// NewImage creates an image reference.
func NewImage(url string, isPrimary bool) (Image, error) {
	if url == "" {
		return Image{}, errs.NewValueIsRequiredError("image url")
	}
	return Image{url: url, isPrimary: isPrimary}, nil
}

// URL returns the image URL.
func (i Image) URL() string { return i.url }

// IsPrimary reports whether the image is the product's primary image.
func (i Image) IsPrimary() bool { return i.isPrimary }

// Product is the aggregate root for a catalog item.
//
// Invariants:
//   - Must have a valid identifier, name and brand
//   - Price is non-negative, stock never goes negative
//   - At most one primary image
//   - Inactive (soft-deleted) products reject stock mutations
type Product struct {
	id          kernel.UUID
	name        string
	brand       string
	description string
	priceCents  int64
	stock       int
	variants    []Variant
	images      []Image
	active      bool

	isConstructed bool
}

// NewProduct creates a new active product with validation.
func NewProduct(id kernel.UUID, name, brand, description string, priceCents int64, stock int) (*Product, error) {
	p := &Product{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setBrand(brand),
		p.setPrice(priceCents),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name, brand, description string,
	priceCents int64,
	stock int,
	variants []Variant,
	images []Image,
	active bool,
) (*Product, error) {
	p, err := NewProduct(id, name, brand, description, priceCents, stock)
	if err != nil {
		return nil, err
	}

	p.active = active
	p.variants = make([]Variant, len(variants))
	copy(p.variants, variants)
	if err := p.ReplaceImages(images); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Brand returns the product brand.
func (p *Product) Brand() string { return p.brand }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// PriceCents returns the base price in cents.
func (p *Product) PriceCents() int64 { return p.priceCents }

// Stock returns the base stock level.
func (p *Product) Stock() int { return p.stock }

// IsActive reports whether the product is visible in the catalog.
func (p *Product) IsActive() bool { return p.active }

// Variants returns a copy of the product variants.
func (p *Product) Variants() []Variant {
	out := make([]Variant, len(p.variants))
	copy(out, p.variants)
	return out
}

// Images returns a copy of the product images.
func (p *Product) Images() []Image {
	out := make([]Image, len(p.images))
	copy(out, p.images)
	return out
}

// Update replaces the product's descriptive fields and price.
func (p *Product) Update(name, brand, description string, priceCents int64) error {
	if err := errors.Join(
		p.setName(name),
		p.setBrand(brand),
		p.setPrice(priceCents),
	); err != nil {
		return err
	}
	p.description = description
	return nil
}

// AdjustStock applies a relative stock change (positive for restock,
// negative for correction). The result must not be negative.
func (p *Product) AdjustStock(delta int) error {
	if !p.active {
		return ErrProductInactive
	}
	if p.stock+delta < 0 {
		return fmt.Errorf("%w: have %d, adjusting by %d", ErrInsufficientStock, p.stock, delta)
	}

	p.stock += delta
	return nil
}

// DeductStock removes quantity units, used when an order is delivered.
// Fails without mutation if the quantity exceeds the available stock.
func (p *Product) DeductStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return p.AdjustStock(-quantity)
}

// AddVariant appends a variant; labels must be unique per product.
func (p *Product) AddVariant(variant Variant) error {
	for _, existing := range p.variants {
		if existing.label == variant.label {
			return errs.NewValueIsInvalidErrorWithCause(
				"variant label", fmt.Errorf("variant %q already exists", variant.label))
		}
	}
	p.variants = append(p.variants, variant)
	return nil
}

// ReplaceImages swaps the image set, enforcing at most one primary image.
func (p *Product) ReplaceImages(images []Image) error {
	primaries := 0
	for _, img := range images {
		if img.isPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"images", fmt.Errorf("%d primary images, at most 1 allowed", primaries))
	}

	p.images = make([]Image, len(images))
	copy(p.images, images)
	return nil
}

// Deactivate soft-deletes the product.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate restores a soft-deleted product.
func (p *Product) Activate() {
	p.active = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setBrand(brand string) error {
	if brand == "" {
		return errs.NewValueIsRequiredError("product brand")
	}
	p.brand = brand
	return nil
}

func (p *Product) setPrice(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product price", fmt.Errorf("%d is negative", priceCents))
	}
	p.priceCents = priceCents
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
