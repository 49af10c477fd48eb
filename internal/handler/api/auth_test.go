//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"chargeway/internal/handler/api"
	reqdto "chargeway/internal/handler/dto/request"
	resdto "chargeway/internal/handler/dto/response"
	"chargeway/internal/pkg/config"
	"chargeway/internal/usecase/commands"
	"chargeway/internal/usecase/queries"
	"chargeway/tests/common/httptest"
	commandsmock "chargeway/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := reqdto.LoginRequest{Username: "driver", Password: "secret-pass"}
	profile := &queries.ProfileView{
		ClientID:     42,
		Firstname:    "Amine",
		Lastname:     "Ben Salah",
		Username:     "driver",
		Email:        "driver@example.com",
		Region:       "Tunis",
		VehicleCount: 1,
	}

	s.Run("success: returns 200 OK and sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{AccessToken: "gateway-jwt", Profile: profile}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("gateway-jwt", response.AccessToken)
		s.Require().NotNil(response.Client)
		s.Equal(profile.Email, response.Client.Email)

		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("gateway-jwt", cookie.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing username", body: map[string]any{"password": "secret-pass"}},
			{name: "missing password", body: map[string]any{"username": "driver"}},
			{name: "password below 8 chars", body: map[string]any{"username": "driver", "password": "seven77"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid username or password",
			},
			{
				name:           "platform unreachable",
				commandsError:  errors.New("connection refused"),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Authentication service unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := reqdto.RegisterRequest{
		Firstname: "Amine",
		Lastname:  "Ben Salah",
		Username:  "driver",
		Password:  "secret-pass",
		Email:     "driver@example.com",
		Region:    "Tunis",
	}

	s.Run("success: returns 201 Created with the new profile", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(&commands.LoginResult{
				AccessToken: "gateway-jwt",
				Profile:     &queries.ProfileView{ClientID: 42, Email: reqBody.Email},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("gateway-jwt", response.AccessToken)
	})

	s.Run("error: 400 Bad Request when the platform rejects", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, errors.New("username taken")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Registration failed")
	})

	s.Run("error: 400 Bad Request on malformed email", func() {
		body := map[string]any{
			"firstname": "Amine", "lastname": "Ben Salah", "username": "driver",
			"password": "secret-pass", "email": "not-an-email", "region": "Tunis",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})
}
