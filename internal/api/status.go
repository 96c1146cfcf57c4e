package api

import "fmt"

// OrderStatus is the lifecycle state of an order. The intended workflow
// is pending → in-progress → ready → completed, but the client does not
// enforce the ordering: the server is the authority on which
// transitions are legal.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in-progress"
	StatusReady      OrderStatus = "ready"
	StatusCompleted  OrderStatus = "completed"
)

func (os OrderStatus) String() string {
	return string(os)
}

// OrderStatuses lists every status the client knows about, in workflow
// order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusInProgress, StatusReady, StatusCompleted}
}

// ParseOrderStatus accepts any member of the known status set and
// rejects everything else.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}
