// Package productrepo provides data transfer objects and mapping functions
// for product persistence, including variants and images.
package productrepo

import (
	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name        string       `gorm:"type:varchar(255);not null;index"`
	Brand       string       `gorm:"type:varchar(255);not null;index"`
	Description string       `gorm:"type:text"`
	PriceCents  int64        `gorm:"type:bigint;not null"`
	Stock       int          `gorm:"type:int;not null"`
	Active      bool         `gorm:"not null;default:true"`
	Variants    []VariantDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images      []ImageDTO   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO represents one product variant (volume, price, stock).
type VariantDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(64);not null"`
	PriceCents int64     `gorm:"type:bigint;not null"`
	Stock      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for variant entities.
func (VariantDTO) TableName() string {
	return "product_variants"
}

// ImageDTO represents one product image URL.
type ImageDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:text;not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
}

// TableName specifies the database table name for image entities.
func (ImageDTO) TableName() string {
	return "product_images"
}

// fromDomain converts a product domain aggregate to its database
// representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	productID := aggregate.ID().Bytes()

	variants := make([]VariantDTO, 0, len(aggregate.Variants()))
	for _, v := range aggregate.Variants() {
		variants = append(variants, VariantDTO{
			ID:         v.ID().Bytes(),
			ProductID:  productID,
			Label:      v.Label(),
			PriceCents: v.PriceCents(),
			Stock:      v.Stock(),
		})
	}

	images := make([]ImageDTO, 0, len(aggregate.Images()))
	for _, img := range aggregate.Images() {
		images = append(images, ImageDTO{
			ProductID: productID,
			URL:       img.URL(),
			IsPrimary: img.IsPrimary(),
		})
	}

	return ProductDTO{
		ID:          productID,
		Name:        aggregate.Name(),
		Brand:       aggregate.Brand(),
		Description: aggregate.Description(),
		PriceCents:  aggregate.PriceCents(),
		Stock:       aggregate.Stock(),
		Active:      aggregate.IsActive(),
		Variants:    variants,
		Images:      images,
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Requires the Variants and Images associations to be preloaded.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	variants := make([]product.Variant, 0, len(dto.Variants))
	for _, variantDto := range dto.Variants {
		variantID, vErr := kernel.UUIDFromBytes(variantDto.ID[:])
		if vErr != nil {
			return nil, vErr
		}
		variant, vErr := product.NewVariant(
			variantID, variantDto.Label, variantDto.PriceCents, variantDto.Stock)
		if vErr != nil {
			return nil, vErr
		}
		variants = append(variants, variant)
	}

	images := make([]product.Image, 0, len(dto.Images))
	for _, imageDto := range dto.Images {
		image, iErr := product.NewImage(imageDto.URL, imageDto.IsPrimary)
		if iErr != nil {
			return nil, iErr
		}
		images = append(images, image)
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Brand,
		dto.Description,
		dto.PriceCents,
		dto.Stock,
		variants,
		images,
		dto.Active,
	)
}
