package httpserver

import (
	"net/http"

	"orderdesk/internal/domain"
	customerrepo "orderdesk/internal/repository/customer"
	"github.com/gin-gonic/gin"
)

func registerCustomerRoutes(router *gin.Engine, repo customerrepo.Repository) {
	router.POST("/customers", createCustomerHandler(repo))
	router.GET("/customers", listCustomersHandler(repo))
	router.GET("/customers/:id", getCustomerHandler(repo))
	router.PATCH("/customers/:id", updateCustomerHandler(repo))
	router.DELETE("/customers/:id", removeCustomerHandler(repo))
}

type customerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
}

func createCustomerHandler(repo customerrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := repo.Insert(c.Request.Context(), domain.Customer{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listCustomersHandler(repo customerrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := filterFromQuery(c, "firstName", "lastName", "email", "phone")
		customers, err := repo.Find(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		if customers == nil {
			customers = []domain.Customer{}
		}
		c.JSON(http.StatusOK, customers)
	}
}

func getCustomerHandler(repo customerrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		cust, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

func updateCustomerHandler(repo customerrepo.Repository) gin.HandlerFunc {
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
		fields := fieldsFromBody(body, "firstName", "lastName", "email", "phone")
		updated, err := repo.Update(c.Request.Context(), id, fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func removeCustomerHandler(repo customerrepo.Repository) gin.HandlerFunc {
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
