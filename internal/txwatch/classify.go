package txwatch

// IsRelevant reports whether tx touches the watch list, either through its
// sender or through its recipient. Contract creations are only matched by
// sender.
func IsRelevant(tx RawTransaction, watch AddressSet) bool {
	if watch.Contains(tx.From) {
		return true
	}

	return !tx.IsContractCreation() && watch.Contains(tx.To)
}

// Classify returns the direction of a relevant transaction.
//
// Both sides watched is a self transfer, a watched recipient alone is
// inbound and anything else is outbound, including contract creations.
func Classify(tx RawTransaction, watch AddressSet) Direction {
	fromWatched := watch.Contains(tx.From)
	toWatched := !tx.IsContractCreation() && watch.Contains(tx.To)

	switch {
	case fromWatched && toWatched:
		return SelfTransfer
	case toWatched:
		return Inbound
	default:
		return Outbound
	}
}
