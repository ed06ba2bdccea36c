package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"gamereviews/internal/domain"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		table      string
		err        error
		wantErrors float64
	}{
		{
			name:       "successful select",
			operation:  "select",
			table:      "reviews_ok",
			wantErrors: 0,
		},
		{
			name:       "driver failure is counted",
			operation:  "update",
			table:      "reviews_fail",
			err:        errors.New("database is locked"),
			wantErrors: 1,
		},
		{
			name:       "not found is not counted",
			operation:  "select",
			table:      "reviews_missing",
			err:        domain.ErrReviewNotFound,
			wantErrors: 0,
		},
		{
			name:       "wrapped domain error is not counted",
			operation:  "delete",
			table:      "comments_missing",
			err:        fmt.Errorf("delete comment: %w", domain.ErrCommentNotFound),
			wantErrors: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDBQuery(tt.operation, tt.table, 5*time.Millisecond, tt.err)

			got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table))
			if got != tt.wantErrors {
				t.Errorf("errors counter = %v, want %v", got, tt.wantErrors)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/test-endpoint", "200"))

	RecordAPIRequest("GET", "/api/test-endpoint", "200", 20*time.Millisecond)
	RecordAPIRequest("GET", "/api/test-endpoint", "200", 30*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/test-endpoint", "200"))
	if after-before != 2 {
		t.Errorf("requests counter increased by %v, want 2", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+2 {
		t.Errorf("active requests = %v, want %v", got, before+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordEvent(t *testing.T) {
	before := testutil.ToFloat64(EventsPublished.WithLabelValues("comment_created"))
	RecordEvent("comment_created")
	if got := testutil.ToFloat64(EventsPublished.WithLabelValues("comment_created")); got != before+1 {
		t.Errorf("events counter = %v, want %v", got, before+1)
	}
}
