// Package grpc exposes the claim ledger over gRPC. The handler translates
// between the wire messages and the application services, and encodes the
// ledger's protocol conditions as dedicated status codes that clients map
// back onto the shared sentinel errors.
package grpc

import (
	"context"
	"net"

	"github.com/camertanev/FraudDetect-Z/internal/logging"
	pb "github.com/camertanev/FraudDetect-Z/internal/proto"
	"github.com/camertanev/FraudDetect-Z/internal/server/models"
	"github.com/camertanev/FraudDetect-Z/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type claimSvc interface {
	Submit(ctx context.Context, creator string, claim *models.Claim, inputProof []byte) (string, int64, error)
	ListIDs(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*models.Claim, error)
	GetHandle(ctx context.Context, id string) ([]byte, error)
	SubmitVerification(ctx context.Context, id string, decryptedValue uint64, proof []byte) (uint64, error)
}

type attachmentSvc interface {
	GetPresignedPutURL(ctx context.Context, claimID, fileName string) (string, string, error)
}

type GRPCServer struct {
	pb.UnimplementedClaimLedgerServiceServer
	address     string
	users       userSvc
	claims      claimSvc
	attachments attachmentSvc
	logger      logging.Logger
	jwtSecret   []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, cs claimSvc, as attachmentSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		claims:      cs,
		attachments: as,
		jwtSecret:   []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterClaimLedgerServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
