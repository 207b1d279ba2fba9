package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	snapshotLoadCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vytal_dashboard",
		Subsystem: "profile",
		Name:      "snapshot_loads_total",
		Help:      "Profile loads partitioned by whether the snapshot or the default template was used.",
	}, []string{"source"})
	actionLoggedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vytal_dashboard",
		Subsystem: "ledger",
		Name:      "actions_logged_total",
		Help:      "Action status toggles that changed state, partitioned by new status.",
	}, []string{"status"})
	chatRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vytal_dashboard",
		Subsystem: "assistant",
		Name:      "chat_requests_total",
		Help:      "Assistant messages answered, partitioned by classified topic.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(snapshotLoadCounter, actionLoggedCounter, chatRequestCounter)
}

// RecordSnapshotLoad counts a profile load by source (snapshot or default).
func RecordSnapshotLoad(source string) {
	snapshotLoadCounter.WithLabelValues(source).Inc()
}

// RecordActionLogged counts a state-changing action toggle.
func RecordActionLogged(status string) {
	actionLoggedCounter.WithLabelValues(status).Inc()
}

// RecordChatRequest counts an answered assistant message.
func RecordChatRequest(topic string) {
	chatRequestCounter.WithLabelValues(topic).Inc()
}
