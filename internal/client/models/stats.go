package models

// FraudStats is an aggregate snapshot derived from the current claim set.
type FraudStats struct {
	TotalClaims    int
	VerifiedClaims int
	// PotentialFrauds counts verified claims whose decrypted value exceeds
	// the configured threshold. A placeholder heuristic, not a fraud model.
	PotentialFrauds int
	// TotalAmount sums the public amount hints of all claims, verified or
	// not. A documented approximation: unverified claims contribute their
	// unproven hint.
	TotalAmount uint64
	// AvgProcessingTimeHours is the mean age of all claims in hours.
	// Zero when the claim set is empty.
	AvgProcessingTimeHours float64
}
