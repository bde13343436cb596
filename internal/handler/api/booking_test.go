//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	sharer := middleware.NewSharerMiddleware().RequireSharer()
	s.router.POST("/bookings", sharer, s.handler.Create)
	s.router.GET("/bookings", sharer, s.handler.ListOwn)
	s.router.GET("/bookings/owner", sharer, s.handler.ListForOwner)
	s.router.GET("/bookings/:id", sharer, s.handler.Get)
	s.router.PATCH("/bookings/:id", sharer, s.handler.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	returnView := bb.BuildView()
	sharer := bb.BookerID.String()

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), bb.BookerID, gomock.Any()).
			Return(bb.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bb.BookerID, bb.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sharer)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bb.ID, response.ID)
		s.Equal("WAITING", response.Status)
		s.Equal(bb.ItemID, response.Item.ID)
		s.Equal(bb.BookerID, response.Booker.ID)
	})

	s.Run("error: 400 Bad Request when sharer header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing "+middleware.HeaderSharerUserID)
	})

	s.Run("error: 400 Bad Request when sharer header is not a UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid "+middleware.HeaderSharerUserID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil)},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil)},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, sharer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
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
				name:           "own item is hidden as not found",
				commandsError:  commands.ErrOwnItemBooking,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "item not found",
				commandsError:  commands.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "item unavailable",
				commandsError:  commands.ErrItemUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "",
			},
			{
				name:           "slot in the past",
				commandsError:  booking.ErrTimeSlotInPast,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), bb.BookerID, gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sharer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	bb := builder.NewBookingBuilder()
	sharer := bb.OwnerID.String()
	url := "/bookings/" + bb.ID.String()

	s.Run("success: approval reloads the booking", func() {
		approvedView := bb.Clone().
			With(func(b *builder.BookingBuilder) { b.Status = booking.StatusApproved }).
			BuildView()

		s.mockCommands.EXPECT().Decide(gomock.Any(), bb.OwnerID, bb.ID, true).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bb.OwnerID, bb.ID).
			Return(approvedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, sharer)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("APPROVED", response.Status)
	})

	s.Run("success: rejection passes approved=false through", func() {
		rejectedView := bb.Clone().
			With(func(b *builder.BookingBuilder) { b.Status = booking.StatusRejected }).
			BuildView()

		s.mockCommands.EXPECT().Decide(gomock.Any(), bb.OwnerID, bb.ID, false).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bb.OwnerID, bb.ID).
			Return(rejectedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, sharer)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("REJECTED", response.Status)
	})

	s.Run("error: 400 Bad Request without approved parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid approved parameter")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid?approved=true", nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking hidden from non-owner",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "already approved",
				commandsError:  booking.ErrAlreadyApproved,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), bb.OwnerID, bb.ID, true).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, sharer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bb := builder.NewBookingBuilder()
	sharer := bb.BookerID.String()
	url := "/bookings/" + bb.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bb.BookerID, bb.ID).
			Return(bb.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, sharer)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bb.ID, response.ID)
		s.Equal(bb.ItemName, response.Item.Name)
		s.Equal(bb.BookerName, response.Booker.Name)
	})

	s.Run("error: 404 Not Found for invisible booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bb.BookerID, bb.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})
}

// ================================================================================
// TestListOwn / TestListForOwner
// ================================================================================

func (s *BookingHandlerTestSuite) TestListOwn() {
	bb := builder.NewBookingBuilder()
	sharer := bb.BookerID.String()

	views := []queries.BookingView{*bb.BuildView()}

	s.Run("success: defaults to state ALL with default paging", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), bb.BookerID, "ALL", 0, 10).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, sharer)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(bb.ID, response[0].ID)
	})

	s.Run("success: state and paging pass through raw", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), bb.BookerID, "waiting", 5, 2).
			Return([]queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=waiting&from=5&size=2", nil, sharer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request echoing the unknown state", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), bb.BookerID, "SOMETIMES", 0, 10).
			Return(nil, booking.ErrUnknownState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=SOMETIMES", nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: SOMETIMES")
	})

	s.Run("error: 400 Bad Request for negative paging", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid paging parameters")
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), bb.BookerID, "ALL", 0, 10).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *BookingHandlerTestSuite) TestListForOwner() {
	bb := builder.NewBookingBuilder()
	sharer := bb.OwnerID.String()

	s.Run("success: owner listing with empty result", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), bb.OwnerID, "ALL", 0, 10).
			Return([]queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, sharer)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request echoing the unknown state", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), bb.OwnerID, "soon", 0, 10).
			Return(nil, booking.ErrUnknownState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=soon", nil, sharer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: soon")
	})
}
