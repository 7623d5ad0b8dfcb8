package grpc

import (
	"context"
	"errors"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	pb "github.com/camertanev/FraudDetect-Z/internal/proto"
	"github.com/camertanev/FraudDetect-Z/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey  ctxKey = "userID"
	addressKey ctxKey = "address"
)

// protectedMethods lists the RPCs that require a valid access token.
// Registration, salt retrieval, login, token refresh and the availability
// probe stay open.
var protectedMethods = map[string]bool{
	pb.ClaimLedgerService_SubmitClaim_FullMethodName:            true,
	pb.ClaimLedgerService_ListClaimIds_FullMethodName:           true,
	pb.ClaimLedgerService_GetClaim_FullMethodName:               true,
	pb.ClaimLedgerService_GetEncryptedHandle_FullMethodName:     true,
	pb.ClaimLedgerService_SubmitVerification_FullMethodName:     true,
	pb.ClaimLedgerService_GetAttachmentUploadUrl_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := auth.ParseToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				// The exact message matters: clients match it to trigger
				// a token refresh.
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, addressKey, claims.Address)

	}

	return handler(ctx, req)
}

// callerAddress returns the ledger address the interceptor extracted from
// the access token.
func callerAddress(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(addressKey).(string)
	if !ok || address == "" {
		return "", false
	}
	return address, true
}
