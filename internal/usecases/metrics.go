package usecases

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pitchesInitiatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitci_pitches_initiated_total",
		Help: "Number of draft pitches created.",
	})

	pitchesSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitci_pitches_submitted_total",
		Help: "Number of pitches submitted for review.",
	})

	pitchReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitci_pitch_reviews_total",
		Help: "Number of admin pitch review decisions.",
	}, []string{"decision"})

	meetingsScheduledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitci_meetings_scheduled_total",
		Help: "Number of meeting schedules proposed.",
	})

	meetingReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitci_meeting_reviews_total",
		Help: "Number of admin meeting review decisions.",
	}, []string{"decision"})

	awardVotesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitci_award_votes_total",
		Help: "Number of votes cast for award nominees.",
	})

	alertsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitci_alerts_created_total",
		Help: "Number of in-app alerts written.",
	})
)
