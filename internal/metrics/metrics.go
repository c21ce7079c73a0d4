package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of agricultural products created",
	})

	// ProductsDeleted is a Prometheus counter for tracking the total number of products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "The total number of agricultural products deleted",
	})

	// HarvestsCreated is a Prometheus counter for tracking the total number of harvests created.
	HarvestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "harvests_created_total",
		Help: "The total number of harvest records created",
	})

	// HarvestsDeleted is a Prometheus counter for tracking the total number of harvests deleted.
	HarvestsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "harvests_deleted_total",
		Help: "The total number of harvest records deleted",
	})
)
