package commands

import (
	"context"

	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/infra"
	"chargeway/internal/pkg/errs"
	"chargeway/internal/pkg/jwt"
	"chargeway/internal/upstream"
	"chargeway/internal/usecase/queries"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// LoginResult carries the gateway-minted token. The upstream bearer token is
// embedded in its claims so later requests can be forwarded on the caller's
// behalf without storing anything server-side.
type LoginResult struct {
	AccessToken string
	Profile     *queries.ProfileView
}

type AuthGateway interface {
	Login(ctx context.Context, req upstream.LoginRequest) (string, error)
	Register(ctx context.Context, req upstream.RegisterRequest) (string, error)
	MyProfile(ctx context.Context, token string) (*upstream.Profile, error)
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	gateway    AuthGateway
	jwtService *jwt.Service
}

func NewAuthCommands(gateway AuthGateway, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		gateway:    gateway,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	upstreamToken, err := a.gateway.Login(ctx, upstream.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthorized) || infra.IsKind(err, infra.KindBadRequest) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.mint(ctx, upstreamToken)
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	upstreamToken, err := a.gateway.Register(ctx, upstream.RegisterRequest{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Region:    req.Region,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.mint(ctx, upstreamToken)
}

// mint fetches the caller's profile with the upstream token and wraps both
// identity and token into one gateway JWT.
func (a *authCommandsImpl) mint(ctx context.Context, upstreamToken string) (*LoginResult, error) {
	profile, err := a.gateway.MyProfile(ctx, upstreamToken)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(profile.Client.ID, profile.Client.Email, upstreamToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: accessToken,
		Profile: &queries.ProfileView{
			ClientID:     profile.Client.ID,
			Firstname:    profile.Client.Firstname,
			Lastname:     profile.Client.Lastname,
			Username:     profile.Client.Username,
			Email:        profile.Client.Email,
			Region:       profile.Client.Region,
			VehicleCount: profile.VehicleCount,
		},
	}, nil
}
