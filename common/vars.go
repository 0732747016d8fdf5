package common

// Version is overridden at build time via -ldflags.
var Version = "dev"

const PackageName = "github.com/ruteri/fee-recipient-registry"

// MetricsNamespace prefixes every exported Prometheus metric.
const MetricsNamespace = "fee_recipient_registry"
