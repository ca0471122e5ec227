// Package chat answers free-text parking questions using the recommendation core
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/campusparking/lotfinder/internal/facility"
	"github.com/campusparking/lotfinder/internal/metrics"
	"github.com/campusparking/lotfinder/internal/recommend"
)

var ErrEmptyMessage = errors.New("message is empty")

const clarifyText = "Which building or place on campus are you heading to? " +
	"For example: \"near the library\" or \"close to the SAC\"."

// LotFact is one ranked lot reduced to what a reply needs
type LotFact struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DistanceMeters int     `json:"distance_meters"`
	WalkingMinutes int     `json:"walking_minutes"`
	Available      int     `json:"available"`
	Capacity       int     `json:"capacity"`
	HourlyRate     float64 `json:"hourly_rate"`
}

// Facts is the structured content a Phraser turns into prose
type Facts struct {
	Message  string    `json:"message"`
	Location string    `json:"location"`
	Lots     []LotFact `json:"lots"`
}

// Reply is the helper's answer to one message
type Reply struct {
	Resolved       bool                      `json:"resolved"`
	Text           string                    `json:"text"`
	Facts          *Facts                    `json:"facts,omitempty"`
	Recommendation *recommend.Recommendation `json:"recommendation,omitempty"`
}

// Helper is the conversational caller of the recommendation core
type Helper struct {
	recommender *recommend.Recommender
	source      facility.Source
	phraser     Phraser
	limit       int
	logger      *slog.Logger
}

// NewHelper wires a helper. A nil phraser uses TemplatePhraser; limit <= 0
// uses recommend.DefaultLimit.
func NewHelper(rec *recommend.Recommender, source facility.Source, phraser Phraser, limit int, logger *slog.Logger) *Helper {
	if phraser == nil {
		phraser = TemplatePhraser{}
	}
	if limit <= 0 {
		limit = recommend.DefaultLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Helper{
		recommender: rec,
		source:      source,
		phraser:     phraser,
		limit:       limit,
		logger:      logger,
	}
}

// Reply answers a message with the closest lots to the place it names
func (h *Helper) Reply(ctx context.Context, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	facilities, err := h.source.List(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing facilities: %w", err)
	}

	rec, ok := h.recommender.Recommend(message, facilities, h.limit)
	if !ok {
		metrics.RecommendationsTotal.WithLabelValues("chat", "unresolved").Inc()
		h.logger.Debug("chat_unresolved", "message", message)
		return Reply{Resolved: false, Text: clarifyText}, nil
	}
	metrics.RecommendationsTotal.WithLabelValues("chat", "resolved").Inc()
	metrics.FacilitiesSkippedTotal.Add(float64(rec.Skipped))

	facts := factsFor(message, rec)
	text, err := h.phraser.Phrase(ctx, facts)
	if err != nil {
		h.logger.Warn("chat_phrase_error", "err", err)
		text = templateText(facts)
	}

	return Reply{
		Resolved:       true,
		Text:           text,
		Facts:          &facts,
		Recommendation: &rec,
	}, nil
}

func factsFor(message string, rec recommend.Recommendation) Facts {
	lots := make([]LotFact, 0, len(rec.Ranked))
	for _, r := range rec.Ranked {
		lots = append(lots, LotFact{
			ID:             r.Facility.ID,
			Name:           r.Facility.Name,
			DistanceMeters: int(math.Round(r.DistanceMeters)),
			WalkingMinutes: r.WalkingMinutes,
			Available:      r.Facility.Available,
			Capacity:       r.Facility.Capacity,
			HourlyRate:     r.Facility.HourlyRate,
		})
	}
	return Facts{
		Message:  message,
		Location: rec.Location.DisplayName,
		Lots:     lots,
	}
}
