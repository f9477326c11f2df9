package http

import (
	"net/http"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/application/usecases/queries"
	"shopadmin/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetProducts handles GET /api/v1/products - the paginated catalog list.
// Accepts ?search=, ?low_stock=true, ?limit= and ?offset=.
func (s *Server) GetProducts(ctx echo.Context) error {
	limit, offset := pagination(ctx)
	lowStockOnly := ctx.QueryParam("low_stock") == "true"

	query := queries.NewGetProductsQuery(
		ctx.QueryParam("search"), lowStockOnly, limit, offset)

	rows, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ProductListItem, len(rows))
	for i, row := range rows {
		response[i] = ProductListItem{
			ID:           row.ID.String(),
			Name:         row.Name,
			Brand:        row.Brand,
			PriceCents:   row.PriceCents,
			Stock:        row.Stock,
			LowStock:     row.LowStock,
			Active:       row.Active,
			VariantCount: row.VariantCount,
			PrimaryImage: row.PrimaryImage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewCreateProductCommand(
		request.Name, request.Brand, request.Description,
		request.PriceCents, request.Stock,
		variantSpecs(request.Variants), imageSpecs(request.Images),
		actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID, err := s.createProductHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var request UpdateProductRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewUpdateProductCommand(
		productID, request.Name, request.Brand, request.Description,
		request.PriceCents, imageSpecs(request.Images), actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdjustStock handles POST /api/v1/products/:id/stock with a signed delta.
func (s *Server) AdjustStock(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var request AdjustStockRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewAdjustStockCommand(productID, request.Delta, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.adjustStockHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetProductActive handles PUT /api/v1/products/:id/active.
func (s *Server) SetProductActive(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var request SetProductActiveRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewSetProductActiveCommand(productID, request.Active, actorFrom(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setProductActiveHandler.Handle(ctx.Request().Context(), command); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func variantSpecs(payloads []VariantPayload) []commands.VariantSpec {
	specs := make([]commands.VariantSpec, len(payloads))
	for i, p := range payloads {
		specs[i] = commands.VariantSpec{
			Label:      p.Label,
			PriceCents: p.PriceCents,
			Stock:      p.Stock,
		}
	}
	return specs
}

func imageSpecs(payloads []ImagePayload) []commands.ImageSpec {
	specs := make([]commands.ImageSpec, len(payloads))
	for i, p := range payloads {
		specs[i] = commands.ImageSpec{
			URL:       p.URL,
			IsPrimary: p.IsPrimary,
		}
	}
	return specs
}
