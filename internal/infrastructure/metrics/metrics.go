package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds all order-flow metrics.
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec
	OrderStatusTotal         prometheus.CounterVec

	AddressAllocationsTotal       prometheus.CounterVec
	AddressAllocationFailedTotal  prometheus.CounterVec
	AddressAllocationDuration     prometheus.HistogramVec

	ThrottledRequestsTotal prometheus.Counter

	OrderErrorsTotal prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total orders created",
			},
			[]string{"asset", "network", "fiat"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total crypto amount of created orders",
			},
			[]string{"asset", "network"},
		),

		OrderStatusTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_status_transitions_total",
				Help: "Status transitions applied to orders",
			},
			[]string{"status", "actor"},
		),

		AddressAllocationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deposit_address_allocations_total",
				Help: "Deposit addresses handed out, by source",
			},
			[]string{"network", "source"},
		),

		AddressAllocationFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deposit_address_allocation_failed_total",
				Help: "Failed deposit address allocations, by reason",
			},
			[]string{"network", "reason"},
		),

		AddressAllocationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "deposit_address_allocation_duration_seconds",
				Help:    "Time spent allocating a deposit address",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
			},
			[]string{"network"},
		),

		ThrottledRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "order_requests_throttled_total",
				Help: "Order creation requests rejected by the per-IP throttle",
			},
		),

		OrderErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_errors_total",
				Help: "Errors during order operations",
			},
			[]string{"operation", "error_type"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(asset, network, fiat string, amountCrypto float64) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(asset, network, fiat).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(asset, network).Add(amountCrypto)
}

func (m *OrderMetrics) RecordStatusTransition(status, actor string) {
	if m == nil {
		return
	}
	m.OrderStatusTotal.WithLabelValues(status, actor).Inc()
}

func (m *OrderMetrics) RecordAllocation(network, source string) {
	if m == nil {
		return
	}
	m.AddressAllocationsTotal.WithLabelValues(network, source).Inc()
}

func (m *OrderMetrics) RecordAllocationFailed(network, reason string) {
	if m == nil {
		return
	}
	m.AddressAllocationFailedTotal.WithLabelValues(network, reason).Inc()
}

func (m *OrderMetrics) RecordAllocationDuration(network string, seconds float64) {
	if m == nil {
		return
	}
	m.AddressAllocationDuration.WithLabelValues(network).Observe(seconds)
}

func (m *OrderMetrics) RecordThrottled() {
	if m == nil {
		return
	}
	m.ThrottledRequestsTotal.Inc()
}

func (m *OrderMetrics) RecordError(operation, errorType string) {
	if m == nil {
		return
	}
	m.OrderErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
