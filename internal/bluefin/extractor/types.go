package extractor

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics counts transactions that reached event extraction.
type Metrics interface {
	IncTotalTransactions()
}
