package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voxlink/relay/internal/core/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// TODO: restrict origins once the client deployment settles
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSClient adapts one websocket connection to port.Client.
type WSClient struct {
	id   string
	conn *websocket.Conn
}

func (c *WSClient) ID() string {
	return c.id
}

func (c *WSClient) Send(evt domain.Event) error {
	return c.conn.WriteJSON(evt)
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// envelope is the incoming wire frame: an event name plus an opaque data
// object decoded per event.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type registerDTO struct {
	UserID    string `json:"userId"`
	PushToken string `json:"pushToken"`
}

type offerDTO struct {
	Offer json.RawMessage `json:"offer"`
	From  string          `json:"from"`
	To    string          `json:"to"`
}

type answerDTO struct {
	Answer json.RawMessage `json:"answer"`
	From   string          `json:"from"`
	To     string          `json:"to"`
}

type candidateDTO struct {
	Candidate json.RawMessage `json:"candidate"`
	To        string          `json:"to"`
}

type endCallDTO struct {
	To string `json:"to"`
}

type keywordsDTO struct {
	Input string `json:"input"`
}

// ServeWS owns one endpoint's lifetime: upgrade, hub registration, the read
// loop, and the presence-offline transition on teardown. A failure while
// handling one message is isolated to that message and never tears down the
// connection or affects other endpoints.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	endpointID := domain.NewEndpointID()
	client := &WSClient{
		id:   endpointID,
		conn: conn,
	}

	l := log.With().Str("endpoint_id", endpointID).Logger()
	l.Info().Msg("New endpoint connected")

	h.Hub.Register(client)

	// The one piece of per-connection state: the user id bound by a completed
	// register, read back at disconnect. Never reassigned to another user
	// from outside this goroutine.
	boundUserID := ""

	defer func() {
		l.Info().Msg("Endpoint disconnected")
		h.Hub.Unregister(client)
		if boundUserID != "" {
			// The request context may already be tearing down with the
			// connection; the offline write must still go through.
			h.Registry.MarkOffline(context.Background(), boundUserID)
		}
		conn.Close()
	}()

	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			break
		}

		h.dispatch(r.Context(), l, endpointID, &boundUserID, env)
	}
}

func (h *Handler) dispatch(ctx context.Context, l zerolog.Logger, endpointID string, boundUserID *string, env envelope) {
	switch env.Event {
	case domain.EventRegister:
		var dto registerDTO
		if err := json.Unmarshal(env.Data, &dto); err != nil || dto.UserID == "" {
			h.sendError(ctx, endpointID, "invalid register payload")
			return
		}
		if err := h.Registry.Register(ctx, dto.UserID, endpointID, dto.PushToken); err != nil {
			// Logged and swallowed inside the registry; the endpoint stays
			// usable but is not bound until a register completes.
			return
		}
		*boundUserID = dto.UserID

	case domain.EventOffer:
		var dto offerDTO
		if err := json.Unmarshal(env.Data, &dto); err != nil {
			h.sendError(ctx, endpointID, "invalid offer payload")
			return
		}
		h.Router.Route(ctx, endpointID, domain.Signal{
			Kind:    domain.SignalOffer,
			From:    dto.From,
			To:      dto.To,
			Payload: dto.Offer,
		})

	case domain.EventAnswer:
		var dto answerDTO
		if err := json.Unmarshal(env.Data, &dto); err != nil {
			h.sendError(ctx, endpointID, "invalid answer payload")
			return
		}
		h.Router.Route(ctx, endpointID, domain.Signal{
			Kind:    domain.SignalAnswer,
			From:    dto.From,
			To:      dto.To,
			Payload: dto.Answer,
		})

	case domain.EventCandidate:
		var dto candidateDTO
		if err := json.Unmarshal(env.Data, &dto); err != nil {
			h.sendError(ctx, endpointID, "invalid ice-candidate payload")
			return
		}
		h.Router.Route(ctx, endpointID, domain.Signal{
			Kind:    domain.SignalCandidate,
			To:      dto.To,
			Payload: dto.Candidate,
		})

	case domain.EventEndCall:
		var dto endCallDTO
		if err := json.Unmarshal(env.Data, &dto); err != nil {
			h.sendError(ctx, endpointID, "invalid end-call payload")
			return
		}
		h.Router.Route(ctx, endpointID, domain.Signal{
			Kind: domain.SignalEndCall,
			To:   dto.To,
		})

	case domain.EventKeywords:
		var dto keywordsDTO
		if err := json.Unmarshal(env.Data, &dto); err != nil {
			h.sendError(ctx, endpointID, "invalid keywords payload")
			return
		}
		result, err := h.Keywords.Process(ctx, endpointID, dto.Input)
		if err != nil {
			h.sendError(ctx, endpointID, err.Error())
			return
		}
		evt := domain.Event{Name: domain.EventKeywordsResult, Data: result}
		if err := h.Hub.SendToEndpoint(ctx, endpointID, evt); err != nil {
			l.Error().Err(err).Msg("Failed to send keywords result")
		}

	default:
		l.Warn().Str("event", env.Event).Msg("Unknown event")
		h.sendError(ctx, endpointID, "unknown event: "+env.Event)
	}
}

func (h *Handler) sendError(ctx context.Context, endpointID, msg string) {
	evt := domain.Event{Name: domain.EventError, Data: msg}
	if err := h.Hub.SendToEndpoint(ctx, endpointID, evt); err != nil {
		log.Error().Err(err).Str("endpoint_id", endpointID).Msg("Failed to send error event")
	}
}
