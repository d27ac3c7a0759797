//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/review"
	"staybook/internal/handler/api"
	"staybook/internal/handler/dto/request"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/tests/common/httptest"
	"staybook/tests/common/testutil"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/tools/add_review", s.handler.AddReview)
	s.router.POST("/tools/get_property_reviews", s.handler.GetPropertyReviews)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func addReviewRequest(rating int) request.AddReviewRequest {
	return request.AddReviewRequest{
		BookingID: "BOOK0001",
		Rating:    &rating,
		Comment:   "Lovely stay",
	}
}

func (s *ReviewHandlerTestSuite) TestAddReview() {
	s.Run("success returns 201", func() {
		rv := &review.Review{ID: "REV0001", BookingID: "BOOK0001", Rating: 5, Comment: "Lovely stay"}
		s.mockCommands.EXPECT().
			AddReview(gomock.Any(), commands.AddReviewParams{BookingID: "BOOK0001", Rating: 5, Comment: "Lovely stay"}).
			Return(rv, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/add_review", addReviewRequest(5))

		var got review.Review
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal("REV0001", got.ID)
	})

	s.Run("zero rating reaches the domain and maps to 422", func() {
		s.mockCommands.EXPECT().
			AddReview(gomock.Any(), commands.AddReviewParams{BookingID: "BOOK0001", Rating: 0, Comment: "Lovely stay"}).
			Return(nil, errs.Mark(errs.New("out of range"), errs.ErrInvalidRating))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/add_review", addReviewRequest(0))
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Rating must be between 1 and 5")
	})

	s.Run("missing rating fails binding", func() {
		body := testutil.DtoMap(s.T(), addReviewRequest(5), testutil.Field("rating", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/add_review", body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("non-completed booking maps to 409", func() {
		s.mockCommands.EXPECT().
			AddReview(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("still confirmed"), errs.ErrBookingNotCompleted))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/add_review", addReviewRequest(4))
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "completed bookings")
	})
}

func (s *ReviewHandlerTestSuite) TestGetPropertyReviews() {
	list := []*review.Review{
		{ID: "REV0002", PropertyID: "PROP0001", Rating: 5, ReviewDate: "2026-06-20"},
		{ID: "REV0001", PropertyID: "PROP0001", Rating: 4, ReviewDate: "2026-06-10"},
	}
	s.mockQueries.EXPECT().ListPropertyReviews(gomock.Any(), "PROP0001").Return(list, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/get_property_reviews",
		request.GetPropertyReviewsRequest{PropertyID: "PROP0001"})

	var got struct {
		Reviews []review.Review `json:"reviews"`
		Count   int             `json:"count"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Equal(2, got.Count)
	s.Equal("REV0002", got.Reviews[0].ID)
}
