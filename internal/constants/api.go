package constants

// TradeSecret API identity. The CRD name is "<plural>.<group>".
const (
	APIGroup        = "secrets.ohnozombi.es"
	APIVersion      = "v1alpha1"
	KindTradeSecret = "TradeSecret"
	ListKind        = "TradeSecretList"
	PluralName      = "tradesecrets"
	SingularName    = "tradesecret"
	ShortName       = "trades"
	CRDName         = PluralName + "." + APIGroup
)
