package httpserver

import (
	"context"
	"log"
	"strings"

	"orderdesk/internal/domain"
	addressrepo "orderdesk/internal/repository/address"
	customerrepo "orderdesk/internal/repository/customer"
	productrepo "orderdesk/internal/repository/product"
	ordersvc "orderdesk/internal/service/order"
	usersvc "orderdesk/internal/service/user"
	"orderdesk/internal/sqlgen"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderService is the order-intake surface the HTTP layer depends on.
type OrderService interface {
	ReceiveOrder(ctx context.Context, in ordersvc.ReceiveInput) (*domain.OrderWithItems, error)
	AddItem(ctx context.Context, orderID, productID int64, quantity int) (*domain.OrderItem, error)
	AddItems(ctx context.Context, orderID int64, products map[int64]int) (map[int64]domain.OrderItem, error)
	RemoveItem(ctx context.Context, id int64) error
}

// AddressRegistrar resolves or creates shipping addresses by value.
type AddressRegistrar interface {
	Register(ctx context.Context, candidate domain.Address) (*domain.Address, error)
}

// UserService handles account registration and login checks.
type UserService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// OrderReader exposes the plain CRUD surface of the order repository.
type OrderReader interface {
	Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Order, error)
	Remove(ctx context.Context, id int64) error
	FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	CustomerRepo customerrepo.Repository
	AddressRepo  addressrepo.Repository
	ProductRepo  productrepo.Repository
	OrderRepo    OrderReader
	AddressSvc   AddressRegistrar
	OrderSvc     OrderService
	UserSvc      UserService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	registerCustomerRoutes(router, deps.CustomerRepo)
	registerAddressRoutes(router, deps.AddressRepo, deps.AddressSvc)
	registerProductRoutes(router, deps.ProductRepo)
	registerOrderRoutes(router, deps.OrderRepo, deps.OrderSvc)
	registerAuthRoutes(router, deps.UserSvc)

	return router
}

func corsConfig(origins string) cors.Config {
	cfg := cors.DefaultConfig()
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	return cfg
}
