package order

import (
	"context"
	"sync"
	"time"

	"orderdesk/internal/domain"
)

// Service runs the order intake workflow: resolve a customer and a shipping
// address, create the order row, then create one line item per product. The
// steps are separate storage operations with no enclosing transaction; a line
// item failing mid-way leaves the order and its completed siblings in place.
type Service struct {
	orders    orderRepo
	customers customerRepo
	addresses addressRegistrar
}

type orderRepo interface {
	Insert(ctx context.Context, customerID, addressID int64, createdAt time.Time, status string) (*domain.Order, error)
	InsertItem(ctx context.Context, orderID, productID int64, quantity int, createdAt time.Time) (*domain.OrderItem, error)
	RemoveItem(ctx context.Context, id int64) error
}

type customerRepo interface {
	Insert(ctx context.Context, c domain.Customer) (*domain.Customer, error)
}

type addressRegistrar interface {
	Register(ctx context.Context, candidate domain.Address) (*domain.Address, error)
}

func New(orders orderRepo, customers customerRepo, addresses addressRegistrar) *Service {
	return &Service{orders: orders, customers: customers, addresses: addresses}
}

// CustomerInfo carries the inline customer and address fields of the second
// intake shape.
type CustomerInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	AddressType string `json:"addressType"`
	PostalCode  string `json:"postalCode"`
}

// ReceiveInput is the order intake payload. Products maps product id to
// quantity.
type ReceiveInput struct {
	CustomerID   *int64        `json:"customerId"`
	AddressID    *int64        `json:"addressId"`
	CustomerInfo *CustomerInfo `json:"customerInfo"`
	Products     map[int64]int `json:"products"`
}

// ReceiveOrder dispatches the payload to one of the two intake paths.
// A payload carrying both customerId and addressId takes the known-customer
// path even when customerInfo is also present. Anything matching neither
// shape fails with domain.ErrMalformedRequest before any write.
func (s *Service) ReceiveOrder(ctx context.Context, in ReceiveInput) (*domain.OrderWithItems, error) {
	createdAt := time.Now().UTC()

	switch {
	case in.CustomerID != nil && in.AddressID != nil:
		return s.create(ctx, *in.CustomerID, *in.AddressID, in.Products, createdAt)
	case in.CustomerInfo != nil && in.Products != nil:
		return s.createWithCustomer(ctx, *in.CustomerInfo, in.Products, createdAt)
	default:
		return nil, domain.ErrMalformedRequest
	}
}

// AddItem appends one line item to an existing order.
func (s *Service) AddItem(ctx context.Context, orderID, productID int64, quantity int) (*domain.OrderItem, error) {
	return s.orders.InsertItem(ctx, orderID, productID, quantity, time.Now().UTC())
}

// AddItems appends one line item per product, all stamped with a single
// timestamp captured here.
func (s *Service) AddItems(ctx context.Context, orderID int64, products map[int64]int) (map[int64]domain.OrderItem, error) {
	return s.insertItems(ctx, orderID, products, time.Now().UTC())
}

// RemoveItem deletes one line item by id.
func (s *Service) RemoveItem(ctx context.Context, id int64) error {
	return s.orders.RemoveItem(ctx, id)
}

func (s *Service) create(ctx context.Context, customerID, addressID int64, products map[int64]int, createdAt time.Time) (*domain.OrderWithItems, error) {
	ord, err := s.orders.Insert(ctx, customerID, addressID, createdAt, domain.StatusNotDelivered)
	if err != nil {
		return nil, err
	}
	items, err := s.insertItems(ctx, ord.ID, products, createdAt)
	if err != nil {
		// No backout: the order and any items that made it stay committed.
		return nil, err
	}
	return &domain.OrderWithItems{Order: *ord, Items: items}, nil
}

func (s *Service) createWithCustomer(ctx context.Context, info CustomerInfo, products map[int64]int, createdAt time.Time) (*domain.OrderWithItems, error) {
	cust, err := s.customers.Insert(ctx, domain.Customer{
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Email:     info.Email,
		Phone:     info.Phone,
	})
	if err != nil {
		return nil, err
	}

	addr, err := s.addresses.Register(ctx, domain.Address{
		Country:     info.Country,
		State:       info.State,
		City:        info.City,
		Street:      info.Street,
		AddressType: info.AddressType,
		PostalCode:  info.PostalCode,
		CustomerID:  cust.ID,
	})
	if err != nil {
		return nil, err
	}

	return s.create(ctx, cust.ID, addr.ID, products, createdAt)
}

// insertItems creates the line items as independent child operations, one
// goroutine per product. Failures do not cancel siblings; the first error is
// returned after all have finished.
func (s *Service) insertItems(ctx context.Context, orderID int64, products map[int64]int, createdAt time.Time) (map[int64]domain.OrderItem, error) {
	items := make(map[int64]domain.OrderItem, len(products))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for productID, quantity := range products {
		wg.Add(1)
		go func(productID int64, quantity int) {
			defer wg.Done()
			item, err := s.orders.InsertItem(ctx, orderID, productID, quantity, createdAt)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			items[item.ItemID] = *item
		}(productID, quantity)
	}
	wg.Wait()

	if firstErr != nil {
		return items, firstErr
	}
	return items, nil
}
