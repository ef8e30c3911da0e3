package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/internal/service/statistics"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

const dateLayout = "2006-01-02"

type statisticsService interface {
	GetStatistics(ctx context.Context, input statistics.GetStatisticsInput) (domain.AggregatedStatistics, error)
	HabitChanges(ctx context.Context, input statistics.HabitChangesInput) ([]domain.HabitChange, error)
}

// StatisticsHandler serves per-user audit statistics.
type StatisticsHandler struct {
	svc statisticsService
	log *slog.Logger
}

func NewStatisticsHandler(svc statisticsService, logger *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{svc: svc, log: logger.With("handler", "statistics")}
}

type statisticsRequest struct {
	Action    string `json:"action"`
	Target    string `json:"target"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type statisticsResponse struct {
	AverageInfluence float64          `json:"averageInfluence"`
	Stats            []bucketResponse `json:"stats"`
}

type bucketResponse struct {
	Date                   string `json:"date"`
	FuturesGenerated       int    `json:"futuresGenerated"`
	HabitsCreated          int    `json:"habitsCreated"`
	HabitsInfluenceChanged int    `json:"habitsInfluenceChanged"`
}

type habitChangeResponse struct {
	CreatedAt   time.Time `json:"createdAt"`
	Action      string    `json:"action"`
	HabitTitle  string    `json:"habitTitle"`
	HabitImpact *int      `json:"habitImpact"`
}

// Query handles POST /api/audit/statistics. The range is the half-open
// [startTime, endTime) with RFC 3339 bounds.
func (h *StatisticsHandler) Query(w http.ResponseWriter, r *http.Request) {
	subject, ok := ctxutil.SubjectFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req statisticsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var errs []domain.FieldError
	input := statistics.GetStatisticsInput{ExternalID: subject}
	input.Action = parseActionFilter(req.Action, "action", &errs)
	input.Target = parseTargetFilter(req.Target, "target", &errs)
	input.StartTime = parseRFC3339(req.StartTime, "startTime", &errs)
	input.EndTime = parseRFC3339(req.EndTime, "endTime", &errs)
	if len(errs) > 0 {
		writeServiceError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	h.respondStatistics(w, r, input)
}

// QueryByDate handles GET /api/audit/statistics and
// GET /api/audit/statistics/{action}/{target}. Bounds may be dates or
// RFC 3339 timestamps. The end bound is extended by one day, so an end date
// is inclusive and an end timestamp keeps its time of day.
func (h *StatisticsHandler) QueryByDate(w http.ResponseWriter, r *http.Request) {
	subject, ok := ctxutil.SubjectFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()

	var errs []domain.FieldError
	input := statistics.GetStatisticsInput{ExternalID: subject, InclusiveEnd: true}
	input.Action = parseActionFilter(chi.URLParam(r, "action"), "action", &errs)
	input.Target = parseTargetFilter(chi.URLParam(r, "target"), "target", &errs)
	input.StartTime = parseDateOrTime(q.Get("startTime"), "startTime", &errs)
	input.EndTime = parseDateOrTime(q.Get("endTime"), "endTime", &errs)
	if len(errs) > 0 {
		writeServiceError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	h.respondStatistics(w, r, input)
}

func (h *StatisticsHandler) respondStatistics(w http.ResponseWriter, r *http.Request, input statistics.GetStatisticsInput) {
	result, err := h.svc.GetStatistics(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := statisticsResponse{
		AverageInfluence: result.AverageInfluence,
		Stats:            make([]bucketResponse, 0, len(result.Stats)),
	}
	for _, b := range result.Stats {
		resp.Stats = append(resp.Stats, bucketResponse{
			Date:                   b.Date.Format(dateLayout),
			FuturesGenerated:       b.FuturesGenerated,
			HabitsCreated:          b.HabitsCreated,
			HabitsInfluenceChanged: b.HabitsInfluenceChanged,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// HabitChanges handles GET /api/audit/habit-changes?since=.
func (h *StatisticsHandler) HabitChanges(w http.ResponseWriter, r *http.Request) {
	subject, ok := ctxutil.SubjectFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	input := statistics.HabitChangesInput{ExternalID: subject}
	if raw := r.URL.Query().Get("since"); raw != "" {
		var errs []domain.FieldError
		input.Since = parseDateOrTime(raw, "since", &errs)
		if len(errs) > 0 {
			writeServiceError(w, r, h.log, domain.NewValidationErrors(errs))
			return
		}
	}

	changes, err := h.svc.HabitChanges(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := make([]habitChangeResponse, 0, len(changes))
	for _, c := range changes {
		resp = append(resp, habitChangeResponse{
			CreatedAt:   c.CreatedAt,
			Action:      c.Action.String(),
			HabitTitle:  c.HabitTitle,
			HabitImpact: c.HabitImpact,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseActionFilter returns nil for an empty value or "any".
func parseActionFilter(raw, field string, errs *[]domain.FieldError) *domain.AuditAction {
	if raw == "" || strings.EqualFold(raw, "any") {
		return nil
	}
	a, ok := domain.ParseAuditAction(raw)
	if !ok {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "unknown action " + raw})
		return nil
	}
	return &a
}

// parseTargetFilter returns nil for an empty value or "any".
func parseTargetFilter(raw, field string, errs *[]domain.FieldError) *domain.AuditTarget {
	if raw == "" || strings.EqualFold(raw, "any") {
		return nil
	}
	t, ok := domain.ParseAuditTarget(raw)
	if !ok {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "unknown target " + raw})
		return nil
	}
	return &t
}

func parseRFC3339(raw, field string, errs *[]domain.FieldError) time.Time {
	if raw == "" {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "required"})
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be an RFC 3339 timestamp"})
		return time.Time{}
	}
	return t
}

func parseDateOrTime(raw, field string, errs *[]domain.FieldError) time.Time {
	if raw == "" {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "required"})
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"})
		return time.Time{}
	}
	return t
}
