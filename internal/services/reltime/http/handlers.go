// Package http exposes the relative time formatter over HTTP
package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"reltime/internal/core/reltime"
	perr "reltime/internal/platform/errors"
	pnet "reltime/internal/platform/net"
	phttp "reltime/internal/platform/net/http"
)

// Deps are the handler dependencies
type Deps struct {
	// Translator returns a translator bound to a negotiated locale
	Translator func(locale string) reltime.Translator
	// Differ defaults to the calendar differ
	Differ reltime.Differ
	// Now defaults to time.Now
	Now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the formatter routes
func Register(r phttp.Router, d Deps) {
	if d.Translator == nil {
		panic("reltime http: Translator is required")
	}
	if d.Differ == nil {
		d.Differ = reltime.Calendar{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	phttp.GetQuery(r, "/diff", h.diff)
	phttp.GetQuery(r, "/message", h.message)
	phttp.GetJSON(r, "/empty", h.empty)
}

//
// DTOs
//

// DiffQuery selects the two instants to compare
type DiffQuery struct {
	From  string `query:"from"  validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	To    string `query:"to"    validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Empty string `query:"empty" validate:"omitempty,boolean"`
}

// DiffResponse is the rendered difference between from and to
type DiffResponse struct {
	Text   string       `json:"text"   example:"2 years ago and 3 days"`
	Parts  []string     `json:"parts"`
	Invert bool         `json:"invert" example:"true"`
	Diff   reltime.Diff `json:"diff"`
	From   string       `json:"from"   example:"2024-03-10T12:00:00Z"`
	To     string       `json:"to"     example:"2026-03-13T12:00:00Z"`
}

// MessageQuery names a single fragment
type MessageQuery struct {
	Count  string `query:"count"  validate:"required,numeric"`
	Unit   string `query:"unit"   validate:"required"`
	Invert string `query:"invert" validate:"omitempty,boolean"`
}

// TextResponse carries one rendered string
type TextResponse struct {
	Text string `json:"text" example:"il y a 2 jours"`
}

func (h *handlers) formatter(r *http.Request) *reltime.Formatter {
	tr := h.deps.Translator(pnet.Locale(r.Context()))
	return reltime.NewFormatter(tr, reltime.WithDiffer(h.deps.Differ))
}

// diff renders GET /diff; `to` defaults to the clock
//
// @Summary Relative time between two instants
// @Tags Reltime
// @Produce json
// @Param from query string true "RFC3339 start" example(2024-03-10T12:00:00Z)
// @Param to query string false "RFC3339 end, defaults to now"
// @Param empty query bool false "render the empty phrase when there is no difference"
// @Param locale query string false "locale override, e.g. fr"
// @Param Accept-Language header string false "locale preference"
// @Success 200 {object} DiffResponse "ok"
// @Router /diff [get]
func (h *handlers) diff(r *http.Request, q DiffQuery) (any, error) {
	from, _ := time.Parse(time.RFC3339, q.From)
	to := h.deps.Now()
	if q.To != "" {
		to, _ = time.Parse(time.RFC3339, q.To)
	}

	f := h.formatter(r)
	d := h.deps.Differ.Diff(to, from)
	parts := f.FormatParts(d)
	text := strings.Join(parts, " ")
	if wantEmpty, _ := strconv.ParseBool(q.Empty); text == "" && wantEmpty {
		text = f.EmptyDiffMessage()
	}
	if parts == nil {
		parts = []string{}
	}

	return DiffResponse{
		Text:   text,
		Parts:  parts,
		Invert: d.Invert,
		Diff:   d,
		From:   from.Format(time.RFC3339),
		To:     to.Format(time.RFC3339),
	}, nil
}

// @Summary Single direction-bearing fragment
// @Tags Reltime
// @Produce json
// @Param count query int true "non-zero count"
// @Param unit query string true "year, month, day, hour, minute or second"
// @Param invert query bool false "past (ago) instead of future (in)"
// @Param locale query string false "locale override, e.g. fr"
// @Success 200 {object} TextResponse "ok"
// @Router /message [get]
func (h *handlers) message(r *http.Request, q MessageQuery) (any, error) {
	count, err := strconv.Atoi(q.Count)
	if err != nil {
		// numeric also admits decimals and values past int range
		return nil, perr.WithField(perr.Validationf("count must be an integer"), "count")
	}
	invert, _ := strconv.ParseBool(q.Invert)

	text, err := h.formatter(r).DiffMessage(count, invert, q.Unit)
	if err != nil {
		return nil, err
	}
	return TextResponse{Text: text}, nil
}

// @Summary Phrase for no difference
// @Tags Reltime
// @Produce json
// @Param locale query string false "locale override, e.g. fr"
// @Success 200 {object} TextResponse "ok"
// @Router /empty [get]
func (h *handlers) empty(r *http.Request) (any, error) {
	return TextResponse{Text: h.formatter(r).EmptyDiffMessage()}, nil
}
