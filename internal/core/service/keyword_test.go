package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/voxlink/relay/internal/core/domain"
)

var testWords = []string{"sales", "loan", "sell", "sale", "finance", "buy", "offer"}

func TestKeywordScanMatchOrder(t *testing.T) {
	f := NewKeywordFilter(testWords, &fakeGateway{})

	got := f.Scan("Special loan offer today")
	want := []string{"loan", "offer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %v, want %v (word-list order)", got, want)
	}
}

func TestKeywordProcessMatchBroadcasts(t *testing.T) {
	gw := &fakeGateway{}
	f := NewKeywordFilter(testWords, gw)

	result, err := f.Process(context.Background(), "ep-sender", "Special loan offer today")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !result.HasKeywords {
		t.Error("hasKeywords = false, want true")
	}
	if want := []string{"loan", "offer"}; !reflect.DeepEqual(result.FoundKeywords, want) {
		t.Errorf("foundKeywords = %v, want %v", result.FoundKeywords, want)
	}
	if result.Input != "Special loan offer today" {
		t.Errorf("input = %q, want echoed back", result.Input)
	}

	if len(gw.broadcasts) != 1 {
		t.Fatalf("broadcasts = %d, want exactly 1", len(gw.broadcasts))
	}
	b := gw.broadcasts[0]
	if b.endpointID != "ep-sender" {
		t.Errorf("broadcast excludes %q, want ep-sender", b.endpointID)
	}
	if b.evt.Name != domain.EventMessage {
		t.Errorf("broadcast event = %q, want message", b.evt.Name)
	}
	notice, _ := b.evt.Data.(string)
	if !strings.Contains(notice, "loan") || !strings.Contains(notice, "offer") {
		t.Errorf("notice = %q, want it to name the matched words", notice)
	}
}

func TestKeywordProcessNoMatch(t *testing.T) {
	gw := &fakeGateway{}
	f := NewKeywordFilter(testWords, gw)

	result, err := f.Process(context.Background(), "ep-sender", "hello world")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.HasKeywords {
		t.Error("hasKeywords = true, want false")
	}
	if len(result.FoundKeywords) != 0 {
		t.Errorf("foundKeywords = %v, want empty", result.FoundKeywords)
	}
	if result.FoundKeywords == nil {
		t.Error("foundKeywords is nil, want empty slice (marshals to [])")
	}
	if len(gw.broadcasts) != 0 {
		t.Errorf("broadcasts = %d, want 0", len(gw.broadcasts))
	}
}

func TestKeywordProcessEmptyInput(t *testing.T) {
	gw := &fakeGateway{}
	f := NewKeywordFilter(testWords, gw)

	for _, input := range []string{"", "   "} {
		if _, err := f.Process(context.Background(), "ep-sender", input); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Process(%q) = %v, want ErrEmptyInput", input, err)
		}
	}
	if len(gw.broadcasts) != 0 {
		t.Errorf("broadcasts = %d, want 0", len(gw.broadcasts))
	}
}

func TestKeywordScanCaseInsensitive(t *testing.T) {
	f := NewKeywordFilter(testWords, &fakeGateway{})

	got := f.Scan("FINANCE and Buy")
	want := []string{"finance", "buy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}
