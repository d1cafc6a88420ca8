package domain

// Wire event names, incoming and outgoing.
const (
	EventRegister       = "register"
	EventOffer          = "offer"
	EventAnswer         = "answer"
	EventCandidate      = "ice-candidate"
	EventEndCall        = "end-call"
	EventError          = "error"
	EventKeywords       = "keywords"
	EventKeywordsResult = "keywords-result"
	EventMessage        = "message"
)

// Event is one outbound envelope headed for a connected endpoint.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data,omitempty"`
}

// KeywordResult reports a keyword scan back to the endpoint that asked.
type KeywordResult struct {
	Input         string   `json:"input"`
	FoundKeywords []string `json:"foundKeywords"`
	HasKeywords   bool     `json:"hasKeywords"`
}
