package grpc

import (
	"context"
	"errors"

	"github.com/camertanev/FraudDetect-Z/internal/common"
	pb "github.com/camertanev/FraudDetect-Z/internal/proto"
	"github.com/camertanev/FraudDetect-Z/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError encodes the service sentinel errors as gRPC statuses. The
// messages for protocol conditions carry the sentinel text verbatim because
// clients match on it.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, common.ErrNotFound.Error())
	case errors.Is(err, common.ErrAlreadyVerified):
		return status.Error(codes.FailedPrecondition, common.ErrAlreadyVerified.Error())
	case errors.Is(err, common.ErrProofRejected):
		return status.Error(codes.InvalidArgument, common.ErrProofRejected.Error())
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username, "address", user.Address)
	return &pb.RegisterResponse{UserId: user.ID, Address: user.Address}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	salt, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Address:      tokens.Address,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func claimToPB(c *models.Claim) *pb.Claim {
	return &pb.Claim{
		Id:                    c.ID,
		PolicyNumber:          c.PolicyNumber,
		Provider:              c.Provider,
		ClaimDate:             c.ClaimDate,
		PublicAmountHint:      c.PublicAmountHint,
		EncryptedAmountHandle: c.Handle,
		IsVerified:            c.IsVerified,
		DecryptedValue:        c.DecryptedValue,
		Creator:               c.Creator,
		Timestamp:             c.CreatedAt.Unix(),
	}
}

func (s *GRPCServer) ListClaimIds(ctx context.Context, req *pb.ListClaimIdsRequest) (*pb.ListClaimIdsResponse, error) {

	ids, err := s.claims.ListIDs(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.ListClaimIdsResponse{Ids: ids}, nil
}

func (s *GRPCServer) GetClaim(ctx context.Context, req *pb.GetClaimRequest) (*pb.GetClaimResponse, error) {

	claim, err := s.claims.Get(ctx, req.Id)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetClaimResponse{Claim: claimToPB(claim)}, nil
}

func (s *GRPCServer) SubmitClaim(ctx context.Context, req *pb.SubmitClaimRequest) (*pb.SubmitClaimResponse, error) {

	creator, ok := callerAddress(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing caller address")
	}

	claim := &models.Claim{
		ID:               req.Id,
		PolicyNumber:     req.PolicyNumber,
		Provider:         req.Provider,
		ClaimDate:        req.ClaimDate,
		PublicAmountHint: req.PublicAmountHint,
		Handle:           req.Ciphertext,
	}

	id, timestamp, err := s.claims.Submit(ctx, creator, claim, req.InputProof)
	if err != nil {
		s.logger.Error(ctx, "claim submission failed", "id", req.Id, "error", err.Error())
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "claim submitted", "id", id, "creator", creator)
	return &pb.SubmitClaimResponse{Id: id, Timestamp: timestamp}, nil
}

func (s *GRPCServer) GetEncryptedHandle(ctx context.Context, req *pb.GetEncryptedHandleRequest) (*pb.GetEncryptedHandleResponse, error) {

	handle, err := s.claims.GetHandle(ctx, req.Id)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetEncryptedHandleResponse{Handle: handle}, nil
}

func (s *GRPCServer) SubmitVerification(ctx context.Context, req *pb.SubmitVerificationRequest) (*pb.SubmitVerificationResponse, error) {

	value, err := s.claims.SubmitVerification(ctx, req.Id, req.DecryptedValue, req.Proof)
	if err != nil {
		if !errors.Is(err, common.ErrAlreadyVerified) {
			s.logger.Error(ctx, "verification failed", "id", req.Id, "error", err.Error())
		}
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "claim verified", "id", req.Id)
	return &pb.SubmitVerificationResponse{DecryptedValue: value}, nil
}

func (s *GRPCServer) GetAttachmentUploadUrl(ctx context.Context, req *pb.GetAttachmentUploadUrlRequest) (*pb.GetAttachmentUploadUrlResponse, error) {

	key, url, err := s.attachments.GetPresignedPutURL(ctx, req.ClaimId, req.FileName)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.GetAttachmentUploadUrlResponse{Key: key, Url: url}, nil
}
