//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	"staybook/internal/handler/dto/request"
	"staybook/internal/pkg/errs"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockUsers *queriesmock.MockUserQueries
	handler   *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockUsers)

	s.router.POST("/tools/get_user_profile", s.handler.GetUserProfile)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestGetUserProfile() {
	s.Run("found", func() {
		s.mockUsers.EXPECT().GetUser(gomock.Any(), "USER0001").Return(builder.NewUserBuilder().Build(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/get_user_profile",
			request.GetUserProfileRequest{UserID: "USER0001"})

		var got user.User
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("USER0001", got.ID)
		s.Contains(got.PaymentMethods, "card_1_0")
	})

	s.Run("unknown user maps to 404", func() {
		s.mockUsers.EXPECT().
			GetUser(gomock.Any(), "USER0404").
			Return(nil, errs.Mark(errs.New("nope"), errs.ErrUserNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/get_user_profile",
			request.GetUserProfileRequest{UserID: "USER0404"})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})

	s.Run("missing user_id fails binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/get_user_profile", map[string]any{})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
