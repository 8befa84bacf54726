package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bayanlink/service-fares/internal/domain/fare"
	"github.com/bayanlink/service-fares/internal/events"
	"github.com/bayanlink/service-fares/internal/routing"
)

// EstimateFareRequest holds the inputs for one fare calculation.
type EstimateFareRequest struct {
	Category         fare.VehicleCategory
	PassengerCount   int
	DiscountEligible bool
	Origin           fare.GeoPoint
	Destination      fare.GeoPoint
}

// RouteResolver resolves trip endpoints into a normalized route result.
type RouteResolver interface {
	Resolve(ctx context.Context, origin, destination fare.GeoPoint) (fare.RouteResult, error)
}

// QuotePublisher publishes fare events. May be left nil to disable publishing.
type QuotePublisher interface {
	PublishEvent(ctx context.Context, topic string, event events.CloudEvent) error
}

// FareService orchestrates a fare calculation: input validation, route
// resolution, the fare schedule engine, and final formatting. Every call is
// independent; there is no shared mutable state between calculations.
type FareService struct {
	resolver  RouteResolver
	publisher QuotePublisher
	logger    *zap.Logger
}

// NewFareService creates a new FareService.
func NewFareService(resolver RouteResolver, publisher QuotePublisher, logger *zap.Logger) *FareService {
	return &FareService{
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
	}
}

// EstimateFare computes a fare quote for the given trip. Resolver errors
// propagate unchanged; no quote is ever returned alongside an error.
func (s *FareService) EstimateFare(ctx context.Context, req EstimateFareRequest) (*fare.FareQuote, error) {
	if req.Category == "" {
		return nil, fare.ErrMissingCategory
	}

	// Defensive clamp; the schedule engine does not re-clamp.
	passengers := fare.ClampPassengerCount(req.PassengerCount)

	route, err := s.resolver.Resolve(ctx, req.Origin, req.Destination)
	if err != nil {
		s.logger.Warn("route resolution failed",
			zap.String("category", req.Category.String()),
			zap.Error(err),
		)
		return nil, err
	}

	// Personal vehicles get directions, not a fare; skip the tiered logic.
	if req.Category == fare.PersonalVehicle {
		quote := &fare.FareQuote{
			Fare:         "0.00",
			DistanceKm:   route.DistanceKm,
			DurationText: route.DurationText,
		}
		s.publishFareQuoted(ctx, req, route, quote, false)
		return quote, nil
	}

	amount, err := fare.ComputeFare(
		req.Category,
		route.DistanceKmValue,
		passengers,
		req.DiscountEligible,
		req.Origin.Label,
		req.Destination.Label,
	)
	if err != nil {
		s.logger.Error("fare schedule rejected category",
			zap.String("category", req.Category.String()),
			zap.Error(err),
		)
		return nil, err
	}

	quote := &fare.FareQuote{
		Fare:         formatFare(req.Category, amount),
		DistanceKm:   route.DistanceKm,
		DurationText: route.DurationText,
	}

	s.logger.Info("fare quoted",
		zap.String("category", req.Category.String()),
		zap.String("fare", quote.Fare),
		zap.String("distance_km", quote.DistanceKm),
	)

	s.publishFareQuoted(ctx, req, route, quote, discountApplied(req))
	return quote, nil
}

// NavigationLink builds a turn-by-turn navigation deep link for the trip.
func (s *FareService) NavigationLink(origin, destination fare.GeoPoint) (string, error) {
	return routing.BuildNavigationURL(origin, destination)
}

// formatFare applies the final output step: a ceiling then two decimals,
// except for the tricycle variants whose nearest-5 rounding already happened
// inside the schedule engine and must not be ceiled again.
func formatFare(category fare.VehicleCategory, amount float64) string {
	if !category.IsTricycle() {
		amount = math.Ceil(amount)
	}
	return fmt.Sprintf("%.2f", amount)
}

// discountApplied reports whether the 20% reduction actually took effect,
// accounting for the bus in-town override.
func discountApplied(req EstimateFareRequest) bool {
	if !req.DiscountEligible {
		return false
	}
	switch req.Category {
	case fare.Jeep:
		return true
	case fare.Bus:
		return !fare.IsInTownDestination(req.Destination.Label)
	default:
		return false
	}
}

func (s *FareService) publishFareQuoted(
	ctx context.Context,
	req EstimateFareRequest,
	route fare.RouteResult,
	quote *fare.FareQuote,
	discounted bool,
) {
	if s.publisher == nil {
		return
	}

	evt := events.FareQuotedEvent{
		QuoteID:          uuid.New(),
		Category:         req.Category.String(),
		OriginLabel:      req.Origin.Label,
		DestinationLabel: req.Destination.Label,
		DistanceKm:       route.DistanceKm,
		DurationText:     route.DurationText,
		Fare:             quote.Fare,
		PassengerCount:   fare.ClampPassengerCount(req.PassengerCount),
		DiscountApplied:  discounted,
		OccurredAt:       time.Now().UTC(),
	}

	cloudEvent, err := events.NewCloudEvent("service-fares", events.FareQuoted, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", events.FareQuoted),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, events.TopicFareEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", events.TopicFareEvents),
			zap.String("event_type", events.FareQuoted),
			zap.Error(err),
		)
	}
}
