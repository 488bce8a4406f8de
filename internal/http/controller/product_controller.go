package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prodcat/product-api/internal/domain"
	"github.com/prodcat/product-api/internal/http/response"
	"github.com/prodcat/product-api/internal/repository"
	"github.com/prodcat/product-api/internal/usecase"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	createProduct  *usecase.CreateProduct
	getProduct     *usecase.GetProduct
	searchProducts *usecase.SearchProducts
	updateProduct  *usecase.UpdateProduct
	deleteProduct  *usecase.DeleteProduct
}

// NewProductController creates a new ProductController with the given use cases.
func NewProductController(
	create *usecase.CreateProduct,
	get *usecase.GetProduct,
	search *usecase.SearchProducts,
	update *usecase.UpdateProduct,
	del *usecase.DeleteProduct,
) *ProductController {
	return &ProductController{
		createProduct:  create,
		getProduct:     get,
		searchProducts: search,
		updateProduct:  update,
		deleteProduct:  del,
	}
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price *int64 `json:"price" binding:"required"`
}

// UpdateProductRequest represents the request body for a partial update.
type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

// SearchProductsRequest represents the query parameters for searching products.
type SearchProductsRequest struct {
	Name     string `form:"name"`
	MinPrice *int64 `form:"min_price"`
	MaxPrice *int64 `form:"max_price"`
	Skip     int    `form:"skip,default=0"`
	Limit    int    `form:"limit,default=100"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SearchProductsResponse represents the response body for a product search.
type SearchProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Skip       int               `json:"skip"`
	Limit      int               `json:"limit"`
}

// DeleteProductResponse represents the response body for a deletion.
type DeleteProductResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateProduct handles POST /api/v1/products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, http.StatusUnprocessableEntity, "Validation Error", err.Error())
		return
	}

	created, err := pc.createProduct.Execute(c.Request.Context(), req.Name, *req.Price)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(created))
}

// GetProduct handles GET /api/v1/products/:id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := pc.getProduct.Execute(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// SearchProducts handles GET /api/v1/products/search.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	var req SearchProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.WriteError(c, http.StatusUnprocessableEntity, "Validation Error", err.Error())
		return
	}

	filter := repository.SearchFilter{
		NameContains: req.Name,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		Skip:         req.Skip,
		Limit:        req.Limit,
	}
	products, err := pc.searchProducts.Execute(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := SearchProductsResponse{
		Products:   make([]ProductResponse, 0, len(products)),
		TotalCount: len(products),
		Skip:       req.Skip,
		Limit:      req.Limit,
	}
	for _, product := range products {
		resp.Products = append(resp.Products, toProductResponse(product))
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, http.StatusUnprocessableEntity, "Validation Error", err.Error())
		return
	}

	updated, err := pc.updateProduct.Execute(c.Request.Context(), id, req.Name, req.Price)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updated))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := pc.deleteProduct.Execute(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteProductResponse{
		Success: true,
		Message: "product deleted successfully",
	})
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, http.StatusUnprocessableEntity, "Validation Error",
			"product ID must be a positive integer, got "+c.Param("id"))
		return 0, false
	}
	return id, true
}

func toProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.Int64(),
		Name:      product.Name.String(),
		Price:     product.Price.Int64(),
		CreatedAt: product.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: product.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
