package constants

// EventReasonSecretUpdated is recorded on a TradeSecret when its destination
// Secret was patched. Warning events use the error taxonomy's reason strings.
const EventReasonSecretUpdated = "SecretUpdated"
