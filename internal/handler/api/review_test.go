//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"storefront-engine/internal/domain/review"
	"storefront-engine/internal/handler/api"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/pkg/errs"
	"storefront-engine/tests/common/builder"
	"storefront-engine/tests/common/httptest"
	"storefront-engine/tests/common/testutil"
	usecasemock "storefront-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockReview *usecasemock.MockReviewUseCase
	handler    *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReview = usecasemock.NewMockReviewUseCase(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockReview)

	s.router.POST("/api/products/:id/reviews", s.handler.Create)
	s.router.GET("/api/products/:id/reviews", s.handler.ListByProduct)
	s.router.GET("/api/products/:id/rating", s.handler.ProductRating)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/api/products/1/reviews"
	b := builder.NewReviewBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnReview, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockReview.EXPECT().AddReview(1, "Grace Hopper", 5, "Excellent espresso!").Return(returnReview, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnReview.ID(), body.ID)
		s.Equal(5, body.Rating)
	})

	s.Run("success: blank name posts as Anonymous", func() {
		s.mockReview.EXPECT().AddReview(1, "Anonymous", 5, gomock.Any()).Return(returnReview, nil)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("userName", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusCreated},
	}

	missing := []testCaseReview{
		{name: "missing field: userName (required)", mutate: testutil.Field("userName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (optional)", mutate: testutil.Field("comment", nil), expectCode: http.StatusCreated},
	}

	for _, group := range [][]testCaseReview{bound, missing} {
		for _, tc := range group {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockReview.EXPECT().AddReview(1, gomock.Any(), gomock.Any(), gomock.Any()).
						Return(returnReview, nil).Times(1)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	}

	s.Run("error: 422 when the engine rejects the review", func() {
		s.mockReview.EXPECT().AddReview(1, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(review.ErrInvalidProductID, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 400 on a bad product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/products/x/reviews", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestListByProduct / TestProductRating
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByProduct() {
	good, err := builder.NewReviewBuilder().BuildDomain()
	s.Require().NoError(err)
	poor, err := builder.NewReviewBuilder().AsPoorRating().BuildDomain()
	s.Require().NoError(err)

	s.Run("success: lists reviews in engine order", func() {
		s.mockReview.EXPECT().ProductReviews(1).Return([]*review.Review{poor, good})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/1/reviews", nil)

		var body []resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(poor.ID(), body[0].ID)
		s.Equal(good.ID(), body[1].ID)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockReview.EXPECT().ProductReviews(2).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/2/reviews", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *ReviewHandlerTestSuite) TestProductRating() {
	s.mockReview.EXPECT().RatingSummary(1).Return(review.Summary{
		ProductID: 1,
		Count:     2,
		Average:   4.5,
		Histogram: [review.MaxRating]int{0, 0, 0, 1, 1},
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/1/rating", nil)

	httptest.AssertJSONBody(s.T(), rec, resdto.RatingResponse{
		ProductID: 1,
		Count:     2,
		Average:   4.5,
		Histogram: map[string]int{"1": 0, "2": 0, "3": 0, "4": 1, "5": 1},
	})
}
