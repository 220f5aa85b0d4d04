package constants

// Environment variable keys read by the controller binary.
const (
	// EnvRequeueTime overrides the default of --requeue-time.
	EnvRequeueTime = "TS_REQUEUE_TIME"
)
