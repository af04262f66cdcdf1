package metrics

import (
	"context"
	"strconv"
	"time"

	"bingo_backend/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	GamesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bingo_games_created_total",
			Help: "Games created by the game authority",
		},
	)
	NumbersDrawn = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bingo_numbers_drawn_total",
			Help: "Numbers drawn across all games",
		},
	)
	PlayersRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_players_registered_total",
			Help: "Player registrations by card forward outcome",
		},
		[]string{"forward"},
	)
	Marks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_marks_total",
			Help: "Mark requests by result",
		},
		[]string{"service", "result"},
	)
	BingoChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_bingo_checks_total",
			Help: "Bingo checks by verdict",
		},
		[]string{"service", "result"},
	)
	CardsRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bingo_cards_registered_total",
			Help: "Cards stored by the validation authority",
		},
	)
	MarksReconciled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bingo_marks_reconciled_total",
			Help: "Marks added by bingo reconciliation instead of explicit mark calls",
		},
	)
	ValidationCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_validation_calls_total",
			Help: "Calls from the game authority to the validation authority",
		},
		[]string{"op", "result"},
	)
	ValidationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bingo_validation_call_duration_seconds",
			Help:    "Latency of calls to the validation authority",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(
		GamesCreated,
		NumbersDrawn,
		PlayersRegistered,
		Marks,
		BingoChecks,
		CardsRegistered,
		MarksReconciled,
		ValidationCalls,
		ValidationLatency,
	)
}

// Observer turns service events into Prometheus samples. It satisfies both
// service.GameObserver and service.ValidationObserver.
type Observer struct{}

func (Observer) GameCreated(context.Context, domain.GameSnapshot) {
	GamesCreated.Inc()
}

func (Observer) PlayerRegistered(_ context.Context, _, _ string, forwarded bool) {
	PlayersRegistered.WithLabelValues(outcome(forwarded)).Inc()
}

func (Observer) NumberDrawn(context.Context, string, int, int) {
	NumbersDrawn.Inc()
}

func (Observer) MarkChecked(_ context.Context, _, _ string, _ int, ok bool) {
	Marks.WithLabelValues("game", strconv.FormatBool(ok)).Inc()
}

func (Observer) BingoChecked(_ context.Context, _, _ string, bingo bool) {
	BingoChecks.WithLabelValues("game", strconv.FormatBool(bingo)).Inc()
}

func (Observer) CardRegistered(context.Context, string, int) {
	CardsRegistered.Inc()
}

func (Observer) NumberValidated(_ context.Context, _ string, _ int, ok bool) {
	Marks.WithLabelValues("validation", strconv.FormatBool(ok)).Inc()
}

func (Observer) BingoValidated(_ context.Context, _ string, reconciled int, bingo bool) {
	MarksReconciled.Add(float64(reconciled))
	BingoChecks.WithLabelValues("validation", strconv.FormatBool(bingo)).Inc()
}

// ObserveValidationCall matches validation.CallHook.
func ObserveValidationCall(op string, elapsed time.Duration, err error) {
	ValidationCalls.WithLabelValues(op, outcome(err == nil)).Inc()
	ValidationLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
