package domain

import "encoding/json"

type SignalKind string

const (
	SignalOffer     SignalKind = "offer"
	SignalAnswer    SignalKind = "answer"
	SignalCandidate SignalKind = "ice-candidate"
	SignalEndCall   SignalKind = "end-call"
)

// Signal is one call-establishment message headed for the user named in To.
// Payload carries the opaque session description or network candidate
// verbatim; the relay never parses it.
type Signal struct {
	Kind    SignalKind
	From    string
	To      string
	Payload json.RawMessage
}

// Outbound payload shapes, mirrored by the clients.

type OfferPayload struct {
	Offer json.RawMessage `json:"offer"`
	From  string          `json:"from"`
}

type AnswerPayload struct {
	Answer json.RawMessage `json:"answer"`
}

type CandidatePayload struct {
	Candidate json.RawMessage `json:"candidate"`
}
