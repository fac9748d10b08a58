package httpapi

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/napolitain/solver-craft/internal/display"
	"github.com/napolitain/solver-craft/internal/models"
	"github.com/napolitain/solver-craft/internal/repl"
	"github.com/napolitain/solver-craft/internal/solver/craft"
)

// ErrInvalidRequest is returned when a query lacks cp or durability
var ErrInvalidRequest = errors.New("cp and durability query parameters are required")

// Handler serves queries against a finished value and policy table
type Handler struct {
	Setting models.Setting
	Values  *craft.Table[uint32]
	Policy  *craft.Table[craft.Action]
}

// RegisterRoutes mounts the query API and health check on s
func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/trace", h.trace)
	api.GET("/value", h.value)
	api.GET("/setting", h.setting)

	s.GET("/healthz", h.healthz)
}

type buffBody struct {
	InnerQuiet   uint8 `json:"inner_quiet"`
	Manipulation uint8 `json:"manipulation"`
	Innovation   uint8 `json:"innovation"`
	GreatStrides uint8 `json:"great_strides"`
	WasteNot     uint8 `json:"waste_not"`
	BasicTouch   uint8 `json:"basic_touch"`
	Observe      uint8 `json:"observe"`
}

type stateBody struct {
	CP         int      `json:"cp"`
	Durability int      `json:"durability"`
	Buff       buffBody `json:"buff"`
}

type stepBody struct {
	State  stateBody `json:"state"`
	Action string    `json:"action"`
	Label  string    `json:"label"`
	Reward uint32    `json:"reward"`
	Total  uint32    `json:"total"`
}

type traceResponse struct {
	Start stateBody  `json:"start"`
	Steps []stepBody `json:"steps"`
	Final stateBody  `json:"final"`
	Total uint32     `json:"total"`
}

type valueResponse struct {
	State   stateBody `json:"state"`
	Quality uint32    `json:"quality"`
	Action  string    `json:"action"`
}

func toStateBody(s craft.State) stateBody {
	b := s.Buff
	return stateBody{
		CP:         s.CP,
		Durability: s.Durability,
		Buff: buffBody{
			InnerQuiet:   b.InnerQuiet,
			Manipulation: b.Manipulation,
			Innovation:   b.Innovation,
			GreatStrides: b.GreatStrides,
			WasteNot:     b.WasteNot,
			BasicTouch:   b.BasicTouch,
			Observe:      b.Observe,
		},
	}
}

func parseStart(ctx *app.RequestContext) (craft.State, error) {
	cp, durability := string(ctx.Query("cp")), string(ctx.Query("durability"))
	if cp == "" || durability == "" {
		return craft.State{}, ErrInvalidRequest
	}
	return repl.ParseQuery(cp, durability)
}

func (h Handler) trace(c context.Context, ctx *app.RequestContext) {
	start, err := parseStart(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	lang, err := display.ParseLang(string(ctx.Query("lang")))
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_lang", err.Error())
		return
	}

	trace, err := craft.Replay(h.Setting, h.Policy, start)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp := traceResponse{
		Start: toStateBody(trace.Start),
		Steps: make([]stepBody, 0, len(trace.Steps)),
		Final: toStateBody(trace.Final),
		Total: trace.Total,
	}
	for _, st := range trace.Steps {
		resp.Steps = append(resp.Steps, stepBody{
			State:  toStateBody(st.State),
			Action: st.Action.String(),
			Label:  display.ActionLabel(st.Action, lang),
			Reward: st.Reward,
			Total:  st.Total,
		})
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) value(c context.Context, ctx *app.RequestContext) {
	start, err := parseStart(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !h.Values.Contains(start) {
		writeErrorBody(ctx, consts.StatusNotFound, "out_of_bounds", craft.ErrOutOfBounds.Error())
		return
	}

	ctx.JSON(consts.StatusOK, valueResponse{
		State:   toStateBody(start),
		Quality: h.Values.Get(start),
		Action:  h.Policy.Get(start).String(),
	})
}

func (h Handler) setting(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Setting)
}

func (h Handler) healthz(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, repl.ErrBadCP):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_cp", err.Error())
	case errors.Is(err, repl.ErrBadDurability):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_durability", err.Error())
	case errors.Is(err, craft.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusNotFound, "out_of_bounds", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
