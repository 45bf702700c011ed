package enum

// ── Order lifecycle ──

const (
	OrderStatusPending   = "PENDING"
	OrderStatusAccepted  = "ACCEPTED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

const (
	PaymentMethodCash   = "CASH"
	PaymentMethodOnline = "ONLINE"
)

// ── Portion variants ──

const (
	VariantFull = "Full"
	VariantHalf = "Half"
)

// IsValidOrderStatus reports whether s is a member of the order status set.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsValidVariant reports whether v is a known portion variant.
func IsValidVariant(v string) bool {
	return v == VariantFull || v == VariantHalf
}

// IsTerminal reports whether s is a terminal order status. Orders in a
// non-terminal status count as active.
func IsTerminal(s string) bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// allowedTransitions is the intended lifecycle graph: the forward chain
// PENDING → ACCEPTED → PREPARING → READY → COMPLETED, with CANCELLED
// reachable from any non-terminal status. The order store itself accepts
// any status value; this table only drives which actions clients offer.
var allowedTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusCancelled},
}

// IsValidTransition reports whether moving from one status to the next
// follows the intended lifecycle graph.
func IsValidTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses an order may move to next under the
// intended graph. Terminal and unknown statuses have none.
func NextStatuses(from string) []string {
	return allowedTransitions[from]
}
