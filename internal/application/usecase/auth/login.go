package auth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/admin"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/auth"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type LoginUseCase struct {
	adminRepo admin.Repository
	jwtSvc    *auth.JWTService
	logger    logger.Logger
}

func NewLoginUseCase(repo admin.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: repo,
		jwtSvc:    jwtSvc,
		logger:    log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	Role        string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	u, err := uc.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		err := apperror.NewUnauthorized("incorrect password", nil)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("admin_id", u.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("admin_id", u.ID.String()))
	return &LoginOutput{AccessToken: token, Role: u.Role}, nil
}
