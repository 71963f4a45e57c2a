package httpserver

import (
	"net/http"

	"orderdesk/internal/domain"
	productrepo "orderdesk/internal/repository/product"
	"github.com/gin-gonic/gin"
)

func registerProductRoutes(router *gin.Engine, repo productrepo.Repository) {
	router.POST("/products", createProductHandler(repo))
	router.GET("/products", listProductsHandler(repo))
	router.GET("/products/:id", getProductHandler(repo))
	router.PATCH("/products/:id", updateProductHandler(repo))
	router.DELETE("/products/:id", removeProductHandler(repo))
}

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Published   *bool  `json:"published"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	VariantSKU  string `json:"variantSku"`
	ImageSrc    string `json:"imageSrc"`
}

func createProductHandler(repo productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		published := true
		if req.Published != nil {
			published = *req.Published
		}
		created, err := repo.Insert(c.Request.Context(), domain.Product{
			Name:        req.Name,
			Published:   published,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			VariantSKU:  req.VariantSKU,
			ImageSrc:    req.ImageSrc,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listProductsHandler(repo productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := filterFromQuery(c, "name", "published", "variantSku")
		products, err := repo.Find(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(repo productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func updateProductHandler(repo productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fields := fieldsFromBody(body, "name", "published", "description", "priceCents", "variantSku", "imageSrc")
		updated, err := repo.Update(c.Request.Context(), id, fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func removeProductHandler(repo productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := repo.Remove(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
