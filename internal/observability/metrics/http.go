package metrics

import (
	"net/http"
	"strconv"
	"time"

	obserrors "github.com/nextgen-academy/academy-api/internal/observability/errors"
	"github.com/nextgen-academy/academy-api/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// RequestMetric captures one served HTTP request for metric emission.
type RequestMetric struct {
	Route    string
	Method   string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitHTTPRequest emits standardised request count and latency metrics.
func EmitHTTPRequest(sink statsd.Sink, in RequestMetric) {
	if sink == nil {
		return
	}

	route := in.Route
	if route == "" {
		route = "unmatched"
	}
	result := ResultSuccess
	if in.Status >= 500 {
		result = ResultError
	}

	tags := map[string]string{
		"route":  route,
		"method": in.Method,
		"status": strconv.Itoa(in.Status),
		"result": result,
	}
	if in.Err != nil && result == ResultError {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("http.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("http.request.duration", in.Duration, CloneTags(tags))
	}
}

// Middleware records count and latency for every request passing through.
// The route tag uses the ServeMux pattern matched downstream, so wrap the
// mux itself rather than individual handlers.
func Middleware(sink statsd.Sink) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if sink == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			EmitHTTPRequest(sink, RequestMetric{
				Route:    r.Pattern,
				Method:   r.Method,
				Status:   rec.status,
				Duration: time.Since(start),
			})
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
