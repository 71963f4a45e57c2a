package httpserver

import (
	"net/http"

	"orderdesk/internal/domain"
	addressrepo "orderdesk/internal/repository/address"
	"github.com/gin-gonic/gin"
)

func registerAddressRoutes(router *gin.Engine, repo addressrepo.Repository, registrar AddressRegistrar) {
	router.POST("/addresses", registerAddressHandler(registrar))
	router.GET("/addresses", listAddressesHandler(repo))
	router.GET("/addresses/:id", getAddressHandler(repo))
	router.PATCH("/addresses/:id", updateAddressHandler(repo))
	router.DELETE("/addresses/:id", removeAddressHandler(repo))
}

type addressRequest struct {
	Country     string `json:"country" binding:"required"`
	State       string `json:"state"`
	City        string `json:"city" binding:"required"`
	Street      string `json:"street" binding:"required"`
	AddressType string `json:"addressType"`
	PostalCode  string `json:"postalCode"`
	CustomerID  int64  `json:"customerId" binding:"required"`
}

// registerAddressHandler resolves duplicates by value: posting fields equal to
// an existing row returns that row instead of creating another one.
func registerAddressHandler(registrar AddressRegistrar) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		addr, err := registrar.Register(c.Request.Context(), domain.Address{
			Country:     req.Country,
			State:       req.State,
			City:        req.City,
			Street:      req.Street,
			AddressType: req.AddressType,
			PostalCode:  req.PostalCode,
			CustomerID:  req.CustomerID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, addr)
	}
}

func listAddressesHandler(repo addressrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := filterFromQuery(c, "country", "state", "city", "street", "addressType", "postalCode", "customerId")
		addresses, err := repo.Find(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		if addresses == nil {
			addresses = []domain.Address{}
		}
		c.JSON(http.StatusOK, addresses)
	}
}

func getAddressHandler(repo addressrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		addr, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, addr)
	}
}

func updateAddressHandler(repo addressrepo.Repository) gin.HandlerFunc {
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
		fields := fieldsFromBody(body, "country", "state", "city", "street", "addressType", "postalCode", "customerId")
		updated, err := repo.Update(c.Request.Context(), id, fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func removeAddressHandler(repo addressrepo.Repository) gin.HandlerFunc {
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
