package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
	"github.com/alirezasoltanian/youtube-api-server/internal/provider"
)

type stubCaptionProvider struct {
	name     string
	events   []model.CaptionEvent
	err      error
	gotLangs []string
	calls    int
}

func (s *stubCaptionProvider) Name() string { return s.name }

func (s *stubCaptionProvider) FetchCaptions(_ context.Context, _ string, languages []string) ([]model.CaptionEvent, error) {
	s.calls++
	s.gotLangs = languages
	return s.events, s.err
}

type stubLister struct {
	langs *model.LanguageList
	err   error
}

func (s *stubLister) ListLanguages(context.Context, string) (*model.LanguageList, error) {
	return s.langs, s.err
}

const testURL = "https://youtu.be/abc123"

func TestGetTranscript_PrimaryProvider(t *testing.T) {
	primary := &stubCaptionProvider{name: "primary", events: []model.CaptionEvent{
		{Start: 0, Text: "hello"},
		{Start: 2, Text: "world"},
	}}
	fallback := &stubCaptionProvider{name: "fallback"}

	svc := newStubCaptionService(primary, fallback)

	got, err := svc.GetTranscript(context.Background(), testURL, nil)
	if err != nil {
		t.Fatalf("GetTranscript() error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("GetTranscript() = %q, want \"hello world\"", got)
	}
	if fallback.calls != 0 {
		t.Error("fallback should not be consulted when primary has captions")
	}
}

func TestGetTranscript_FallbackChain(t *testing.T) {
	primary := &stubCaptionProvider{name: "primary"}
	fallback := &stubCaptionProvider{name: "fallback", events: []model.CaptionEvent{
		{Start: 1, Text: "auto generated"},
	}}

	svc := newStubCaptionService(primary, fallback)

	got, err := svc.GetTranscript(context.Background(), testURL, nil)
	if err != nil {
		t.Fatalf("GetTranscript() error: %v", err)
	}
	if got != "auto generated" {
		t.Errorf("GetTranscript() = %q, want fallback captions", got)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Errorf("calls = (%d, %d), want primary then fallback", primary.calls, fallback.calls)
	}
}

func TestGetTranscript_NoCaptionsIsSoft(t *testing.T) {
	svc := newStubCaptionService(&stubCaptionProvider{}, &stubCaptionProvider{})

	got, err := svc.GetTranscript(context.Background(), testURL, nil)
	if err != nil {
		t.Fatalf("GetTranscript() error: %v", err)
	}
	if got != "No captions found for video" {
		t.Errorf("GetTranscript() = %q, want the soft no-captions message", got)
	}
}

func TestGetTranscript_ProviderFailure(t *testing.T) {
	svc := newStubCaptionService(&stubCaptionProvider{err: errors.New("boom")})

	_, err := svc.GetTranscript(context.Background(), testURL, nil)
	if err == nil {
		t.Fatal("expected error for provider failure")
	}
	if errors.Is(err, ErrInvalidURL) {
		t.Error("provider failure must not be reported as invalid input")
	}
}

func TestGetTimestamps_DefaultLanguage(t *testing.T) {
	primary := &stubCaptionProvider{events: []model.CaptionEvent{{Start: 65, Text: "hi"}}}
	svc := newStubCaptionService(primary)

	lines, err := svc.GetTimestamps(context.Background(), testURL, nil)
	if err != nil {
		t.Fatalf("GetTimestamps() error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"1:05 - hi"}) {
		t.Errorf("GetTimestamps() = %v, want [1:05 - hi]", lines)
	}
	if !reflect.DeepEqual(primary.gotLangs, []string{"en"}) {
		t.Errorf("languages = %v, want default [en]", primary.gotLangs)
	}
}

func TestGetTimestamps_ExplicitLanguagesRespected(t *testing.T) {
	primary := &stubCaptionProvider{events: []model.CaptionEvent{{Start: 0, Text: "hallo"}}}
	svc := newStubCaptionService(primary)

	if _, err := svc.GetTimestamps(context.Background(), testURL, []string{"de", "en"}); err != nil {
		t.Fatalf("GetTimestamps() error: %v", err)
	}
	if !reflect.DeepEqual(primary.gotLangs, []string{"de", "en"}) {
		t.Errorf("languages = %v, want [de en] in order", primary.gotLangs)
	}
}

func TestCaptionService_InvalidURL(t *testing.T) {
	svc := newStubCaptionService(&stubCaptionProvider{})

	if _, err := svc.GetTranscript(context.Background(), "https://example.com/watch?v=x", nil); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("GetTranscript error = %v, want ErrInvalidURL", err)
	}
	if _, err := svc.GetTimestamps(context.Background(), "", nil); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("GetTimestamps error = %v, want ErrInvalidURL", err)
	}
	if _, err := svc.ListLanguages(context.Background(), "not a url"); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("ListLanguages error = %v, want ErrInvalidURL", err)
	}
}

func TestListLanguages(t *testing.T) {
	want := &model.LanguageList{Manual: []string{"en"}, Automatic: []string{"es"}}
	svc := NewCaptionService(nil, &stubLister{langs: want}, []string{"en"})

	got, err := svc.ListLanguages(context.Background(), testURL)
	if err != nil {
		t.Fatalf("ListLanguages() error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListLanguages() = %+v, want %+v", got, want)
	}
}

func newStubCaptionService(providers ...*stubCaptionProvider) *CaptionService {
	chain := make([]provider.CaptionProvider, len(providers))
	for i, p := range providers {
		chain[i] = p
	}
	return NewCaptionService(chain, &stubLister{langs: &model.LanguageList{}}, []string{"en"})
}
