package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"msme-carbon/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

type observedIDs struct {
	echoContext   string
	correlationID interface{}
	header        string
}

// serve runs RequestID around a handler that records where the trace ID ended up
func (s *RequestIDTestSuite) serve(incoming string) observedIDs {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen observedIDs
	handler := RequestID()(func(c echo.Context) error {
		seen.echoContext = GetTraceID(c)
		seen.correlationID = c.Request().Context().Value(services.CorrelationIDKey)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))

	seen.header = rec.Header().Get(TraceIDHeader)
	return seen
}

func (s *RequestIDTestSuite) TestGeneratesUUIDWhenAbsent() {
	seen := s.serve("")

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, seen.echoContext)
	s.Equal(seen.echoContext, seen.header)
	s.Equal(seen.echoContext, seen.correlationID)
}

func (s *RequestIDTestSuite) TestKeepsCallerTraceID() {
	seen := s.serve("sms-batch-7f3a")

	s.Equal("sms-batch-7f3a", seen.echoContext)
	s.Equal("sms-batch-7f3a", seen.header)
	s.Equal("sms-batch-7f3a", seen.correlationID)
}

func (s *RequestIDTestSuite) TestReplacesUnusableTraceID() {
	for name, incoming := range map[string]string{
		"too long":       strings.Repeat("a", maxTraceIDLength+1),
		"contains space": "batch 7",
		"control char":   "batch\x017",
	} {
		s.Run(name, func() {
			seen := s.serve(incoming)
			s.NotEqual(incoming, seen.echoContext)
			s.Len(seen.echoContext, 36)
			s.Equal(seen.echoContext, seen.header)
		})
	}
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyWithoutMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
