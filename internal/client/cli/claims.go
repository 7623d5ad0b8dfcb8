package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
)

func (a *App) create(ctx context.Context) {
	policyNumber, err := getSimpleText(a.reader, "Policy number", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	provider, err := getSimpleText(a.reader, "Provider", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	claimDate, err := getSimpleText(a.reader, "Claim date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}
	amount, err := GetUint(a.reader, "Amount", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	claim, err := a.coordinator.CreateClaim(ctx, models.ClaimInput{
		PolicyNumber: policyNumber,
		Provider:     provider,
		ClaimDate:    claimDate,
		Amount:       amount,
	})
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Claim %s submitted (unverified)\n", claim.ID)
}

func (a *App) verify(ctx context.Context, id string) {
	value, err := a.coordinator.DecryptAndVerify(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("Claim %s verified, amount: %d\n", id, value)
}

func (a *App) list(ctx context.Context) {
	snapshot := a.coordinator.Claims()
	if len(snapshot) == 0 {
		fmt.Println("No claims")
		return
	}
	for _, c := range snapshot {
		fmt.Println(formatClaimLine(c))
	}
}

func (a *App) show(id string) {
	claim, err := a.coordinator.Claim(id)
	if err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("ID:        %s\n", claim.ID)
	fmt.Printf("Policy:    %s\n", claim.PolicyNumber)
	fmt.Printf("Provider:  %s\n", claim.Provider)
	fmt.Printf("Date:      %s\n", claim.ClaimDate)
	fmt.Printf("Creator:   %s\n", claim.Creator)
	if claim.IsVerified {
		fmt.Printf("Amount:    %d (verified)\n", claim.DecryptedValue)
	} else {
		fmt.Printf("Amount:    %d (unverified hint)\n", claim.PublicAmountHint)
	}
}

func (a *App) stats(ctx context.Context) {
	s := a.coordinator.Stats()
	fmt.Printf("Total claims:        %d\n", s.TotalClaims)
	fmt.Printf("Verified claims:     %d\n", s.VerifiedClaims)
	fmt.Printf("Potential frauds:    %d\n", s.PotentialFrauds)
	fmt.Printf("Total amount:        %d\n", s.TotalAmount)
	fmt.Printf("Avg processing (h):  %.1f\n", s.AvgProcessingTimeHours)
}

func (a *App) refresh(ctx context.Context) {
	if err := a.coordinator.RefreshClaims(ctx); err != nil {
		log.Println(err.Error())
		return
	}
	fmt.Printf("%d claims\n", len(a.coordinator.Claims()))
}

func formatClaimLine(c models.Claim) string {
	state := "unverified"
	amount := c.PublicAmountHint
	if c.IsVerified {
		state = "verified"
		amount = c.DecryptedValue
	}
	return fmt.Sprintf("%s | %s | %s | %d | %s", c.ID, c.PolicyNumber, c.Provider, amount, state)
}
