package queries

import (
	"context"

	"shopadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the paginated admin product list with
// variant counts and the primary image URL.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product list queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the product list query.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	search := "%" + query.Search() + "%"

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.brand,
			p.price_cents,
			p.stock,
			p.active,
			(SELECT COUNT(*) FROM product_variants pv WHERE pv.product_id = p.id) AS variant_count,
			COALESCE((
				SELECT pi.url FROM product_images pi
				WHERE pi.product_id = p.id AND pi.is_primary
				LIMIT 1
			), '') AS primary_image
		FROM products p
		WHERE (p.name ILIKE ? OR p.brand ILIKE ?)
		  AND (NOT ? OR p.stock <= ?)
		ORDER BY p.name
		LIMIT ? OFFSET ?
	`, search, search, query.LowStockOnly(), lowStockThreshold,
		query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Brand,
			&resp.PriceCents,
			&resp.Stock,
			&resp.Active,
			&resp.VariantCount,
			&resp.PrimaryImage,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		resp.LowStock = resp.Stock <= lowStockThreshold

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
