package services

import (
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
)

// ComputeFraudStats derives aggregate metrics from a claim snapshot. It is a
// total function: any snapshot, including an empty one, yields a valid result.
//
// TotalAmount sums the public hints of all claims, verified or not, so the
// figure is an approximation until every claim is verified. PotentialFrauds
// counts verified claims whose decrypted value strictly exceeds threshold.
func ComputeFraudStats(snapshot []models.Claim, threshold uint64, now time.Time) models.FraudStats {
	stats := models.FraudStats{TotalClaims: len(snapshot)}
	if len(snapshot) == 0 {
		return stats
	}

	var totalHours float64
	for _, c := range snapshot {
		stats.TotalAmount += c.PublicAmountHint
		if c.IsVerified {
			stats.VerifiedClaims++
			if c.DecryptedValue > threshold {
				stats.PotentialFrauds++
			}
		}
		totalHours += now.Sub(time.Unix(c.Timestamp, 0)).Hours()
	}

	stats.AvgProcessingTimeHours = totalHours / float64(len(snapshot))
	return stats
}
