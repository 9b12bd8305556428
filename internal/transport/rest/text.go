package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
	"github.com/heartmarshall/kanjilens-backend/internal/service/text"
)

type textService interface {
	Annotate(ctx context.Context, input text.AnnotateInput) (*domain.Annotation, error)
	LookupKanji(ctx context.Context, kanji string) (*domain.KanjiInfo, error)
}

// TextHandler serves annotation and kanji lookup.
type TextHandler struct {
	svc      textService
	log      *slog.Logger
	maxBytes int64
}

// NewTextHandler creates a TextHandler.
func NewTextHandler(svc textService, logger *slog.Logger, maxBodyBytes int64) *TextHandler {
	return &TextHandler{svc: svc, log: logger.With("handler", "text"), maxBytes: maxBodyBytes}
}

type annotateRequest struct {
	Text      string `json:"text"`
	Translate *bool  `json:"translate,omitempty"`
}

type annotateResponse struct {
	Text             string          `json:"text"`
	Tokens           []tokenResponse `json:"tokens"`
	Kanji            []kanjiResponse `json:"kanji"`
	HTML             string          `json:"html"`
	Translation      string          `json:"translation,omitempty"`
	TranslationError string          `json:"translationError,omitempty"`
}

type tokenResponse struct {
	Surface      string            `json:"surface"`
	Reading      string            `json:"reading,omitempty"`
	BaseForm     string            `json:"baseForm,omitempty"`
	PartOfSpeech string            `json:"partOfSpeech,omitempty"`
	Segments     []segmentResponse `json:"segments"`
}

type segmentResponse struct {
	Text    string `json:"text"`
	Reading string `json:"reading,omitempty"`
}

type kanjiResponse struct {
	Kanji        string   `json:"kanji"`
	Meanings     []string `json:"meanings"`
	OnReadings   []string `json:"onReadings"`
	KunReadings  []string `json:"kunReadings"`
	NameReadings []string `json:"nameReadings"`
	Grade        *int     `json:"grade"`
	JLPT         *int     `json:"jlpt"`
	StrokeCount  int      `json:"strokeCount"`
	Unicode      string   `json:"unicode,omitempty"`
	HeisigEN     string   `json:"heisigEn,omitempty"`
}

// Annotate handles POST /api/annotate. Translation is on unless the request
// sets "translate": false.
func (h *TextHandler) Annotate(w http.ResponseWriter, r *http.Request) {
	var req annotateRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	translate := req.Translate == nil || *req.Translate
	result, err := h.svc.Annotate(r.Context(), text.AnnotateInput{Text: req.Text, Translate: translate})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnnotateResponse(result))
}

// Kanji handles GET /api/kanji/{kanji}.
func (h *TextHandler) Kanji(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.LookupKanji(r.Context(), r.PathValue("kanji"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toKanjiResponse(*info))
}

func toAnnotateResponse(a *domain.Annotation) annotateResponse {
	resp := annotateResponse{
		Text:             a.Text,
		Tokens:           make([]tokenResponse, 0, len(a.Tokens)),
		Kanji:            make([]kanjiResponse, 0, len(a.Kanji)),
		HTML:             a.HTML,
		Translation:      a.Translation,
		TranslationError: a.TranslationError,
	}
	for _, t := range a.Tokens {
		tr := tokenResponse{
			Surface:      t.Surface,
			Reading:      t.Reading,
			BaseForm:     t.BaseForm,
			PartOfSpeech: t.PartOfSpeech,
			Segments:     make([]segmentResponse, 0, len(t.Segments)),
		}
		for _, s := range t.Segments {
			tr.Segments = append(tr.Segments, segmentResponse{Text: s.Text, Reading: s.Reading})
		}
		resp.Tokens = append(resp.Tokens, tr)
	}
	for _, k := range a.Kanji {
		resp.Kanji = append(resp.Kanji, toKanjiResponse(k))
	}
	return resp
}

func toKanjiResponse(k domain.KanjiInfo) kanjiResponse {
	return kanjiResponse{
		Kanji:        k.Kanji,
		Meanings:     nonNil(k.Meanings),
		OnReadings:   nonNil(k.OnReadings),
		KunReadings:  nonNil(k.KunReadings),
		NameReadings: nonNil(k.NameReadings),
		Grade:        k.Grade,
		JLPT:         k.JLPT,
		StrokeCount:  k.StrokeCount,
		Unicode:      k.Unicode,
		HeisigEN:     k.HeisigEN,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
