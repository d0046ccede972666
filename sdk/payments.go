package sdk

// PaymentLedger is the value-transfer ledger the money side of the system
// runs through. Transfer moves amount out of the calling identity's account
// (env.Caller) into to's account; the caller is assumed to have been funded
// beforehand. Implementations must be all-or-nothing per call.
type PaymentLedger interface {
	Transfer(env Env, to Address, amount uint64) error
}
