package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the attendance-code flow. Result labels on submissions
// mirror the domain error taxonomy so dashboards can distinguish
// expired codes from duplicates without log scraping.
var (
	CodesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_attendance_codes_issued_total",
		Help: "Number of attendance codes issued by lecturers.",
	})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rollcall_attendance_submissions_total",
		Help: "Number of attendance submissions by outcome.",
	}, []string{"result"})
)

// Submission result label values
const (
	ResultOK        = "ok"
	ResultInvalid   = "invalid_code"
	ResultExpired   = "expired"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
)
