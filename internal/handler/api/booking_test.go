//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/handler/api"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/httptest"
	"slotbook/tests/common/testutil"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

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

	// Mock admin middleware for testing
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/calendar", s.handler.AddToCalendar)
	s.router.GET("/admin/bookings", adminMiddleware, s.handler.ListGroupedBySlot)
	s.router.GET("/admin/bookings/export", adminMiddleware, s.handler.ExportCSV)
	s.router.DELETE("/admin/bookings/:id", adminMiddleware, s.handler.Cancel)
	s.router.POST("/admin/bookings/:id/calendar", adminMiddleware, s.handler.ResyncCalendar)
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
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created for valid request", func() {
		created := builder.NewBookingBuilder().BuildDomain()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body["id"])
		s.Equal("not_added", body["calendar_status"])
		s.Equal(created.CreatedAt().Format(time.RFC3339), body["created_at"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing slot_id", mutate: testutil.Field("slot_id", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "nope")},
			{name: "missing coach_name", mutate: testutil.Field("coach_name", nil)},
			{name: "missing genre", mutate: testutil.Field("genre", nil)},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 101))},
			{name: "malformed prework URL", mutate: testutil.Field("prework_url", "not a url")},
		} {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: business rejections map to HTTP statuses", func() {
		for _, tc := range []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "slot not found", err: errs.ErrSlotNotFound, expectCode: http.StatusNotFound, expectMsg: "not found"},
			{name: "slot full", err: errs.ErrSlotFull, expectCode: http.StatusConflict, expectMsg: "fully booked"},
			{name: "slot closed", err: errs.ErrSlotClosed, expectCode: http.StatusConflict, expectMsg: "closed"},
			{name: "duplicate email", err: errs.ErrDuplicateBooking, expectCode: http.StatusConflict, expectMsg: "already has a booking"},
			{name: "domain rejection", err: errs.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity, expectMsg: ""},
			{name: "storage failure", err: errs.New("tx aborted"), expectCode: http.StatusInternalServerError, expectMsg: ""},
		} {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 with the slot attached", func() {
		slotView := builder.NewSlotBuilder().BuildView()
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SlotID = slotView.ID
		}).BuildView()
		view.Slot = slotView

		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
		slotBody, ok := body["slot"].(map[string]any)
		s.Require().True(ok)
		s.Equal(slotView.ID.String(), slotBody["id"])
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when booking does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestCalendarSync
// ================================================================================

func (s *BookingHandlerTestSuite) TestAddToCalendar() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/calendar"

	s.Run("success: returns the sync outcome", func() {
		eventID := "evt_123"
		s.mockCommands.EXPECT().AddToCalendar(gomock.Any(), id).
			Return(&commands.SyncResult{Status: booking.CalendarCreated, EventID: &eventID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("created", body["calendar_status"])
		s.Equal(eventID, body["calendar_event_id"])
	})

	s.Run("failed sync still returns 200 with the classification", func() {
		s.mockCommands.EXPECT().AddToCalendar(gomock.Any(), id).
			Return(&commands.SyncResult{
				Status:      booking.CalendarFailed,
				ErrorType:   booking.SyncErrPermission,
				ErrorDetail: "calendar not shared with the service account",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("failed", body["calendar_status"])
		s.Equal("permission", body["error_type"])
	})

	s.Run("error: 409 when the integration is disabled", func() {
		s.mockCommands.EXPECT().AddToCalendar(gomock.Any(), id).
			Return(nil, errs.ErrCalendarDisabled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not configured")
	})

	s.Run("error: 404 when booking does not exist", func() {
		s.mockCommands.EXPECT().AddToCalendar(gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *BookingHandlerTestSuite) TestResyncCalendar() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String() + "/calendar"

	s.Run("success: forces a fresh attempt", func() {
		eventID := "evt_456"
		s.mockCommands.EXPECT().ResyncCalendar(gomock.Any(), id).
			Return(&commands.SyncResult{Status: booking.CalendarCreated, EventID: &eventID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("created", body["calendar_status"])
	})

	s.Run("error: 401 without admin token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when booking does not exist", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestListGroupedBySlot
// ================================================================================

func (s *BookingHandlerTestSuite) TestListGroupedBySlot() {
	s.Run("success: groups bookings under their slot", func() {
		slotView := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.BookedCount = 1
		}).BuildView()
		bookingView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SlotID = slotView.ID
		}).BuildView()

		s.mockQueries.EXPECT().ListGroupedBySlot(gomock.Any()).
			Return([]*queries.SlotBookingsView{
				{Slot: *slotView, Bookings: []*queries.BookingView{bookingView}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "admin-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		bookings, ok := body[0]["bookings"].([]any)
		s.Require().True(ok)
		s.Len(bookings, 1)
	})

	s.Run("error: 401 without admin token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestExportCSV
// ================================================================================

func (s *BookingHandlerTestSuite) TestExportCSV() {
	url := "/admin/bookings/export"

	s.Run("success: returns the file as an attachment", func() {
		s.mockQueries.EXPECT().ExportCSV(gomock.Any(), gomock.Nil()).
			Return(&queries.ExportFile{
				Filename: "all_bookings_2026-09-20.csv",
				Content:  []byte("\xEF\xBB\xBFbooking_id\n"),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "admin-token")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "text/csv; charset=utf-8",
			"Content-Disposition": `attachment; filename="all_bookings_2026-09-20.csv"`,
		})
		s.True(strings.HasPrefix(rec.Body.String(), "\xEF\xBB\xBF"))
	})

	s.Run("success: forwards the slot filter", func() {
		slotID := uuid.New()
		s.mockQueries.EXPECT().ExportCSV(gomock.Any(), &slotID).
			Return(&queries.ExportFile{Filename: "bookings.csv", Content: []byte{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?slot_id="+slotID.String(), nil, "admin-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed slot filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?slot_id=nope", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
