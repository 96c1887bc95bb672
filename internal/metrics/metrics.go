// Package metrics defines the Prometheus metrics exposed by the flow catalog,
// covering mail delivery and decorator bulk mutations.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	MailSendSuccess = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "waltz_mail_send_success_total",
		Help: "Total number of successful mail sends",
	}, []string{"host"})
	MailSendFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "waltz_mail_send_failure_total",
		Help: "Total number of failed mail sends",
	}, []string{"host"})

	DecoratorRatingsUpdated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "waltz_decorator_ratings_updated_total",
		Help: "Total number of decorator rows whose rating was rewritten by a bulk update",
	})
	DecoratorsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "waltz_decorators_deleted_total",
		Help: "Total number of decorator rows deleted through flow-scoped removals",
	})
)

func init() {
	prometheus.MustRegister(MailSendSuccess)
	prometheus.MustRegister(MailSendFailure)
	prometheus.MustRegister(DecoratorRatingsUpdated)
	prometheus.MustRegister(DecoratorsDeleted)
}
