package constants

import "time"

// Requeue and worker defaults used by the TradeSecret controller.
const (
	// DefaultRequeueTime is the textual default of the requeue flag.
	DefaultRequeueTime = "5m"
	// RequeueStandard is the fixed cadence applied after every pass,
	// successful or not.
	RequeueStandard = 5 * time.Minute

	DefaultMaxConcurrentReconciles = 2

	// DefaultGracefulShutdownTimeout bounds how long in-flight passes may run
	// after the manager is asked to stop.
	DefaultGracefulShutdownTimeout = 30 * time.Second
)
