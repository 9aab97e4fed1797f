package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// PortalHandler serves the client self-service view: the signed-in client's
// own case, score movement, dispute progress and message history.
type PortalHandler struct {
	clients ports.ClientService
	scores  ports.ScoreService
	items   ports.NegativeItemService
	comms   ports.CommunicationService
}

func NewPortalHandler(
	clients ports.ClientService,
	scores ports.ScoreService,
	items ports.NegativeItemService,
	comms ports.CommunicationService,
) *PortalHandler {
	return &PortalHandler{clients: clients, scores: scores, items: items, comms: comms}
}

type portalView struct {
	Client         *domain.Client          `json:"client"`
	ScoreDelta     domain.ScoreDelta       `json:"score_delta"`
	ScoreDisplay   string                  `json:"score_display"`
	Progress       domain.ItemProgress     `json:"progress"`
	NegativeItems  []*domain.NegativeItem  `json:"negative_items"`
	Communications []*domain.Communication `json:"communications"`
}

// Portal returns the signed-in client's own case view.
//
// @Summary      Client portal
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /portal [get]
func (h *PortalHandler) Portal(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	clientResult := h.clients.GetByUserID(ctx, cl.UserID)
	if clientResult.Data == nil {
		return domain.ErrClientNotFound
	}
	clientID := clientResult.Data.ID

	delta := h.scores.Delta(ctx, clientID)
	progress := h.items.Progress(ctx, clientID)
	items := h.items.ListByClient(ctx, clientID)
	comms := h.comms.ListByClient(ctx, clientID)

	view := portalView{
		Client:         clientResult.Data,
		ScoreDelta:     delta.Data,
		ScoreDisplay:   delta.Data.Display(),
		Progress:       progress.Data,
		NegativeItems:  items.Data,
		Communications: comms.Data,
	}

	result := domain.Remote(view)
	if clientResult.FromFallback() || delta.FromFallback() ||
		progress.FromFallback() || items.FromFallback() || comms.FromFallback() {
		result.Source = domain.SourceFallback
	}
	return resultJSON(c, http.StatusOK, result)
}
