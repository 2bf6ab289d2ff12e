/*
Package observability exposes Prometheus metrics for record generation.

Metrics implements record.Observer, so it can be handed to a generator and
to the types it creates:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	f := factory.NewFactory(factory.WithObserver(m))

RegistryGauge reports how many names a registry holds.
*/
package observability
