package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/voxlink/relay/internal/core/domain"
	"github.com/voxlink/relay/internal/core/port"
)

// Router resolves the destination of a signaling message to a live endpoint
// or a push token and forwards accordingly. Only the initiating offer gets a
// push fallback or an error back to the origin; answer, ice-candidate and
// end-call drop silently when the destination cannot be reached, since only
// initial call setup can wake a sleeping peer.
type Router struct {
	registry *Registry
	gateway  port.SignalGateway
	notifier port.PushNotifier
}

func NewRouter(registry *Registry, gateway port.SignalGateway, notifier port.PushNotifier) *Router {
	return &Router{
		registry: registry,
		gateway:  gateway,
		notifier: notifier,
	}
}

// Route handles one signaling message from the endpoint identified by
// origin. Every failure is terminal for this single message; nothing is
// retried and nothing takes down the connection.
func (r *Router) Route(ctx context.Context, origin string, sig domain.Signal) {
	rec, err := r.registry.Lookup(ctx, sig.To)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			if sig.Kind == domain.SignalOffer {
				r.sendError(ctx, origin, fmt.Sprintf("User %s not found", sig.To))
			}
			return
		}
		log.Error().Err(err).Str("to", sig.To).Str("kind", string(sig.Kind)).Msg("Presence lookup failed")
		return
	}

	if rec.Reachable() {
		// A stale online record whose endpoint already vanished makes this a
		// silent no-op at the transport layer, not a routing error.
		if err := r.gateway.SendToEndpoint(ctx, rec.EndpointID, outboundEvent(sig)); err != nil {
			log.Error().Err(err).Str("endpoint_id", rec.EndpointID).Msg("Relay delivery failed")
		}
		return
	}

	if sig.Kind != domain.SignalOffer {
		return
	}

	if rec.PushToken != "" {
		r.wakeup(sig.From, rec.PushToken)
		return
	}

	r.sendError(ctx, origin, fmt.Sprintf("User %s is unreachable", sig.To))
}

// wakeup fires the push notification in the background. Call setup never
// blocks on notification delivery, and a send failure is logged, not
// surfaced to the caller.
func (r *Router) wakeup(callerID, token string) {
	callID := domain.NewCallID()
	go func() {
		data := map[string]string{
			"type":     "incoming_call",
			"callerId": callerID,
			"callUUID": callID,
		}
		if err := r.notifier.Send(context.Background(), token, data); err != nil {
			log.Error().Err(err).Str("caller_id", callerID).Str("call_id", callID).Msg("Push wakeup failed")
			return
		}
		log.Info().Str("caller_id", callerID).Str("call_id", callID).Msg("Push wakeup sent")
	}()
}

func (r *Router) sendError(ctx context.Context, origin, msg string) {
	evt := domain.Event{Name: domain.EventError, Data: msg}
	if err := r.gateway.SendToEndpoint(ctx, origin, evt); err != nil {
		log.Error().Err(err).Str("endpoint_id", origin).Msg("Error delivery failed")
	}
}

// outboundEvent maps an incoming signal to the event its recipient sees.
// Only the offer carries the origin user id; for the other kinds the callee
// already knows the reverse path.
func outboundEvent(sig domain.Signal) domain.Event {
	switch sig.Kind {
	case domain.SignalOffer:
		return domain.Event{Name: domain.EventOffer, Data: domain.OfferPayload{Offer: sig.Payload, From: sig.From}}
	case domain.SignalAnswer:
		return domain.Event{Name: domain.EventAnswer, Data: domain.AnswerPayload{Answer: sig.Payload}}
	case domain.SignalCandidate:
		return domain.Event{Name: domain.EventCandidate, Data: domain.CandidatePayload{Candidate: sig.Payload}}
	default:
		return domain.Event{Name: domain.EventEndCall}
	}
}
