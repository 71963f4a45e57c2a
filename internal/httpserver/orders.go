package httpserver

import (
	"net/http"

	"orderdesk/internal/domain"
	ordersvc "orderdesk/internal/service/order"
	"github.com/gin-gonic/gin"
)

func registerOrderRoutes(router *gin.Engine, repo OrderReader, svc OrderService) {
	router.POST("/orders", receiveOrderHandler(svc))
	router.GET("/orders", listOrdersHandler(repo))
	router.GET("/orders/:id", getOrderHandler(repo))
	router.PATCH("/orders/:id", updateOrderHandler(repo))
	router.DELETE("/orders/:id", removeOrderHandler(repo))
	router.POST("/orders/:id/items", addItemsHandler(svc))
	router.DELETE("/order-items/:id", removeItemHandler(svc))
}

func receiveOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.ReceiveInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := svc.ReceiveOrder(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listOrdersHandler(repo OrderReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := filterFromQuery(c, "customerId", "addressId", "deliveredStatus")
		orders, err := repo.Find(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(repo OrderReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ord, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		items, err := repo.FindItems(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		agg := domain.OrderWithItems{Order: *ord, Items: make(map[int64]domain.OrderItem, len(items))}
		for _, item := range items {
			agg.Items[item.ItemID] = item
		}
		c.JSON(http.StatusOK, agg)
	}
}

func updateOrderHandler(repo OrderReader) gin.HandlerFunc {
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
		fields := fieldsFromBody(body, "customerId", "addressId", "deliveredStatus", "createdAt")
		updated, err := repo.Update(c.Request.Context(), id, fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func removeOrderHandler(repo OrderReader) gin.HandlerFunc {
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

type addItemsRequest struct {
	ProductID int64         `json:"productId"`
	Quantity  int           `json:"quantity"`
	Products  map[int64]int `json:"products"`
}

// addItemsHandler accepts either a single {productId, quantity} pair or a
// products map for batch creation sharing one timestamp.
func addItemsHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := idParam(c)
		if !ok {
			return
		}
		var req addItemsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Products) > 0 {
			items, err := svc.AddItems(c.Request.Context(), orderID, req.Products)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusCreated, items)
			return
		}
		if req.ProductID == 0 || req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId and positive quantity required"})
			return
		}
		item, err := svc.AddItem(c.Request.Context(), orderID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func removeItemHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := svc.RemoveItem(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
