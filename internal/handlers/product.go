// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ateliermarket/storefront-backend/internal/services"
	"github.com/ateliermarket/storefront-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	search := c.Query("search")
	currency := c.Query("currency")

	products, err := h.productService.ListProducts(search, currency)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch products")
		utils.InternalErrorResponse(c, "Failed to fetch products")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id, c.Query("currency"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch product")
		utils.InternalErrorResponse(c, "Failed to fetch product")
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		respondWriteError(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		respondWriteError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		logrus.WithError(err).Error("Failed to delete product")
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}

	utils.MessageResponse(c, "Product deleted successfully")
}

// GET /api/products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("query")
	currency := c.Query("currency")

	results, err := h.productService.SearchProducts(query, currency)
	if err != nil {
		logrus.WithError(err).Error("Failed to search products")
		utils.InternalErrorResponse(c, "Failed to search products")
		return
	}

	utils.SuccessResponse(c, results)
}

type relatedProductsRequest struct {
	RelatedProducts []uuid.UUID `json:"related_products"`
}

// PUT /api/products/:id/related
func (h *ProductHandler) UpdateRelatedProducts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req relatedProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.SetRelatedProducts(id, req.RelatedProducts)
	if err != nil {
		respondWriteError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

type reorderRequest struct {
	Products []services.FeaturedAssignment `json:"products"`
}

// PUT /api/products/reorder
func (h *ProductHandler) ReorderFeatured(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if err := h.productService.ReorderFeatured(req.Products); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		logrus.WithError(err).Error("Failed to reorder featured products")
		utils.InternalErrorResponse(c, "Failed to reorder featured products")
		return
	}

	utils.MessageResponse(c, "Featured products reordered successfully")
}

// POST /api/products/upload-images
func (h *ProductHandler) UploadProductImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid upload request", err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded", nil)
		return
	}

	options := h.storageService.ProductImageOptions()
	uploaded := make([]*services.UploadResult, 0, len(files))

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			utils.BadRequestResponse(c, "Failed to read uploaded file", nil)
			return
		}

		if err := h.storageService.ValidateImage(file); err != nil {
			file.Close()
			utils.BadRequestResponse(c, "Invalid image file: "+fileHeader.Filename, nil)
			return
		}

		result, err := h.storageService.UploadFile(file, fileHeader, options)
		file.Close()
		if err != nil {
			logrus.WithError(err).Error("Failed to upload product image")
			utils.InternalErrorResponse(c, "Failed to upload image")
			return
		}

		uploaded = append(uploaded, result)
	}

	utils.SuccessResponse(c, gin.H{"images": uploaded})
}
