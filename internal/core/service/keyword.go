package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/voxlink/relay/internal/core/domain"
	"github.com/voxlink/relay/internal/core/port"
)

var ErrEmptyInput = errors.New("keywords input is empty")

// KeywordFilter scans free text against a fixed word list. It has no
// relation to call signaling and never touches presence or routing.
type KeywordFilter struct {
	words   []string
	gateway port.SignalGateway
}

func NewKeywordFilter(words []string, gateway port.SignalGateway) *KeywordFilter {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			normalized = append(normalized, w)
		}
	}
	return &KeywordFilter{words: normalized, gateway: gateway}
}

// Scan returns the configured words found in input, in word-list order.
func (f *KeywordFilter) Scan(input string) []string {
	found := []string{}
	lower := strings.ToLower(input)
	for _, w := range f.words {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	return found
}

// Process scans input from the endpoint identified by origin and, on any
// match, broadcasts a notice to every other connected endpoint. Empty input
// is an error and produces no broadcast.
func (f *KeywordFilter) Process(ctx context.Context, origin, input string) (domain.KeywordResult, error) {
	if strings.TrimSpace(input) == "" {
		return domain.KeywordResult{}, ErrEmptyInput
	}

	found := f.Scan(input)
	result := domain.KeywordResult{
		Input:         input,
		FoundKeywords: found,
		HasKeywords:   len(found) > 0,
	}

	if result.HasKeywords {
		notice := fmt.Sprintf("Flagged keywords detected: %s", strings.Join(found, ", "))
		evt := domain.Event{Name: domain.EventMessage, Data: notice}
		if err := f.gateway.BroadcastExcept(ctx, origin, evt); err != nil {
			log.Error().Err(err).Msg("Keyword notice broadcast failed")
		}
	}

	return result, nil
}
