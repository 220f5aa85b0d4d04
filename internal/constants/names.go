package constants

// Controller and process identity.
const (
	ControllerNameTradeSecret = "tradesecret"
	LeaderElectionID          = "trade-secrets-controller-leader.secrets.ohnozombi.es"
	MetricsNamespace          = "trade_secrets"

	// FieldOwner is the server-side apply field manager for objects this
	// binary installs.
	FieldOwner = "trade-secrets"
)
