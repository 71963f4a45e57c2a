package sqlgen

import (
	"errors"
	"reflect"
	"testing"

	"orderdesk/internal/domain"
)

func TestMapper_Column(t *testing.T) {
	m := Mapper{"firstName": "first_name"}
	if got := m.Column("firstName"); got != "first_name" {
		t.Fatalf("expected mapped column, got %q", got)
	}
	if got := m.Column("email"); got != "email" {
		t.Fatalf("expected identity fallback, got %q", got)
	}
	if got := Mapper(nil).Column("anything"); got != "anything" {
		t.Fatalf("nil mapper should fall back to identity, got %q", got)
	}
}

func TestBuildSet_OrderAndPlaceholders(t *testing.T) {
	fields := Fields{{Name: "a", Value: 1}, {Name: "b", Value: 2}}
	clause, args, err := BuildSet(fields, Mapper{"a": "col_a"})
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	if clause != "col_a = $1, b = $2" {
		t.Fatalf("unexpected clause %q", clause)
	}
	if !reflect.DeepEqual(args, []any{1, 2}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildSet_Empty(t *testing.T) {
	_, _, err := BuildSet(nil, Mapper{})
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestBuildSet_TrailingIDPosition(t *testing.T) {
	fields := Fields{
		{Name: "deliveredStatus", Value: "delivered"},
		{Name: "addressId", Value: 4},
		{Name: "customerId", Value: 9},
	}
	m := Mapper{"deliveredStatus": "delivered_status", "addressId": "address_id", "customerId": "customer_id"}
	clause, args, err := BuildSet(fields, m)
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	want := "delivered_status = $1, address_id = $2, customer_id = $3"
	if clause != want {
		t.Fatalf("clause = %q, want %q", clause, want)
	}
	// The id appended by an UPDATE caller must land at field count + 1.
	if next := len(args) + 1; next != 4 {
		t.Fatalf("next placeholder = %d, want 4", next)
	}
}

func TestBuildFilter(t *testing.T) {
	clause, args := BuildFilter(Fields{
		{Name: "customerId", Value: int64(3)},
		{Name: "deliveredStatus", Value: "notDelivered"},
	}, Mapper{"customerId": "customer_id", "deliveredStatus": "delivered_status"})
	if clause != "customer_id = $1 AND delivered_status = $2" {
		t.Fatalf("unexpected clause %q", clause)
	}
	if !reflect.DeepEqual(args, []any{int64(3), "notDelivered"}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildFilter_EmptyIsFullScan(t *testing.T) {
	clause, args := BuildFilter(nil, Mapper{})
	if clause != "" || args != nil {
		t.Fatalf("expected empty filter, got %q %v", clause, args)
	}
}

func TestFields_Set(t *testing.T) {
	f := Fields{}.Set("a", 1).Set("b", 2).Set("a", 3)
	if len(f) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(f))
	}
	if f[0].Name != "a" || f[0].Value != 3 {
		t.Fatalf("replace should keep position, got %+v", f[0])
	}
	if !f.Has("b") || f.Has("c") {
		t.Fatalf("Has misreported membership")
	}
}
