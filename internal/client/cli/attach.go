package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/camertanev/FraudDetect-Z/internal/netx"
)

// attach uploads a supporting document for a claim: the ledger issues a
// presigned URL and the CLI PUTs the file body straight to object storage.
func (a *App) attach(ctx context.Context, claimID, filePath string) {
	payload, err := os.ReadFile(filePath)
	if err != nil {
		log.Println(err.Error())
		return
	}

	key, url, err := a.ledger.GetAttachmentUploadURL(ctx, claimID, filepath.Base(filePath))
	if err != nil {
		log.Println(err.Error())
		return
	}

	if err := netx.UploadToPresignedURL(ctx, url, payload); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Uploaded as %s\n", key)
}
