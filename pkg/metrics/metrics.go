package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// VerificationChecks counts phone verification lookups by outcome.
	VerificationChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkvero",
		Name:      "verification_checks_total",
		Help:      "Phone verification checks, labelled by result (verified/not_verified).",
	}, []string{"result"})

	// ReportsSubmitted counts fraud reports by assessed risk level.
	ReportsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkvero",
		Name:      "reports_submitted_total",
		Help:      "Fraud reports submitted, labelled by risk level (LOW/MEDIUM/HIGH).",
	}, []string{"risk_level"})

	// UsersRegistered counts successful registrations by role.
	UsersRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkvero",
		Name:      "users_registered_total",
		Help:      "Successful user registrations, labelled by role.",
	}, []string{"role"})

	// PhoneNumbersRegistered counts phone numbers added to the registry.
	PhoneNumbersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "checkvero",
		Name:      "phone_numbers_registered_total",
		Help:      "Phone numbers registered in the verification registry.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
