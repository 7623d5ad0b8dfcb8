package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
	"github.com/camertanev/FraudDetect-Z/internal/common"
	pb "github.com/camertanev/FraudDetect-Z/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.ClaimLedgerServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token to every call and
// transparently refreshes an expired token pair once before retrying.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		// Tokens refreshed, retrying with the new access token.
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) init() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewClaimLedgerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, username string, salt []byte, verifier []byte) error {

	req := &pb.RegisterRequest{Username: username, Salt: salt, Verifier: verifier}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, username string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, username string, verifier []byte) (string, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, VerifierCandidate: verifier})
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return resp.Address, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return common.ErrLedgerUnreachable
	}

	return nil
}

func (s *GRPCClient) ListClaimIDs(ctx context.Context) ([]string, error) {

	resp, err := s.client.ListClaimIds(ctx, &pb.ListClaimIdsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Ids, nil
}

func claimFromPB(c *pb.Claim) *models.Claim {
	return &models.Claim{
		ID:                    c.Id,
		PolicyNumber:          c.PolicyNumber,
		Provider:              c.Provider,
		ClaimDate:             c.ClaimDate,
		PublicAmountHint:      c.PublicAmountHint,
		EncryptedAmountHandle: c.EncryptedAmountHandle,
		IsVerified:            c.IsVerified,
		DecryptedValue:        c.DecryptedValue,
		Creator:               c.Creator,
		Timestamp:             c.Timestamp,
	}
}

func (s *GRPCClient) GetClaim(ctx context.Context, id string) (*models.Claim, error) {

	resp, err := s.client.GetClaim(ctx, &pb.GetClaimRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Claim == nil {
		return nil, common.ErrNotFound
	}
	return claimFromPB(resp.Claim), nil
}

func (s *GRPCClient) SubmitClaim(ctx context.Context, sub *models.Submission) (string, int64, error) {

	req := &pb.SubmitClaimRequest{
		Id:               sub.ID,
		PolicyNumber:     sub.PolicyNumber,
		Provider:         sub.Provider,
		ClaimDate:        sub.ClaimDate,
		PublicAmountHint: sub.PublicAmountHint,
		Ciphertext:       sub.Ciphertext,
		InputProof:       sub.InputProof,
	}

	resp, err := s.client.SubmitClaim(ctx, req)
	if err != nil {
		return "", 0, s.mapError(err)
	}

	return resp.Id, resp.Timestamp, nil
}

func (s *GRPCClient) GetEncryptedHandle(ctx context.Context, id string) ([]byte, error) {

	resp, err := s.client.GetEncryptedHandle(ctx, &pb.GetEncryptedHandleRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Handle, nil
}

func (s *GRPCClient) SubmitVerification(ctx context.Context, id string, decryptedValue uint64, proof []byte) (uint64, error) {

	req := &pb.SubmitVerificationRequest{Id: id, DecryptedValue: decryptedValue, Proof: proof}

	resp, err := s.client.SubmitVerification(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.DecryptedValue, nil
}

func (s *GRPCClient) GetAttachmentUploadURL(ctx context.Context, claimID, fileName string) (string, string, error) {

	resp, err := s.client.GetAttachmentUploadUrl(ctx, &pb.GetAttachmentUploadUrlRequest{ClaimId: claimID, FileName: fileName})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

// mapError converts a gRPC status into one of the shared sentinel errors.
// The dev ledger encodes protocol conditions (already verified, rejected
// proof, concurrent verification) as dedicated status codes; everything the
// client cannot classify becomes a wrapped transaction failure.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", common.ErrTransactionFailed, err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrUnauthenticated
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrLedgerUnreachable
	case codes.NotFound:
		return common.ErrNotFound
	case codes.FailedPrecondition:
		if strings.Contains(st.Message(), common.ErrAlreadyVerified.Error()) {
			return common.ErrAlreadyVerified
		}
		return fmt.Errorf("%w: %s", common.ErrTransactionFailed, st.Message())
	case codes.InvalidArgument:
		if strings.Contains(st.Message(), common.ErrProofRejected.Error()) {
			return common.ErrProofRejected
		}
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.Aborted:
		return common.ErrVerificationInProgress
	default:
		return fmt.Errorf("%w: %s", common.ErrTransactionFailed, st.Message())
	}
}
