package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
	"github.com/creditfix/credit-repair-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client cases and their nested
// score and negative-item collections.
type ClientHandler struct {
	clients ports.ClientService
	scores  ports.ScoreService
	items   ports.NegativeItemService
}

func NewClientHandler(clients ports.ClientService, scores ports.ScoreService, items ports.NegativeItemService) *ClientHandler {
	return &ClientHandler{clients: clients, scores: scores, items: items}
}

// --- Request types ---

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type personalInfoRequest struct {
	Phone    string         `json:"phone"`
	Address  addressRequest `json:"address"`
	SSNLast4 string         `json:"ssn_last4" validate:"omitempty,len=4"`
	DOB      string         `json:"dob"`
}

type createClientRequest struct {
	UserID               string              `json:"user_id" validate:"required"`
	CaseNumber           string              `json:"case_number"`
	AssignedSpecialistID string              `json:"assigned_specialist_id"`
	StartDate            string              `json:"start_date"`
	PackageType          string              `json:"package_type" validate:"required"`
	MonthlyFee           float64             `json:"monthly_fee" validate:"gte=0"`
	ContractSigned       bool                `json:"contract_signed"`
	ContractSignedDate   string              `json:"contract_signed_date"`
	PersonalInfo         personalInfoRequest `json:"personal_info"`
}

type updateClientRequest struct {
	Status               *string              `json:"status" validate:"omitempty,oneof=pending active completed suspended"`
	AssignedSpecialistID *string              `json:"assigned_specialist_id"`
	PackageType          *string              `json:"package_type"`
	MonthlyFee           *float64             `json:"monthly_fee" validate:"omitempty,gte=0"`
	ContractSigned       *bool                `json:"contract_signed"`
	ContractSignedDate   *string              `json:"contract_signed_date"`
	PersonalInfo         *personalInfoRequest `json:"personal_info"`
}

type addScoreRequest struct {
	Equifax    int    `json:"equifax" validate:"gte=300,lte=850"`
	Experian   int    `json:"experian" validate:"gte=300,lte=850"`
	TransUnion int    `json:"transunion" validate:"gte=300,lte=850"`
	ScoreDate  string `json:"score_date"`
}

type createItemRequest struct {
	Type          string  `json:"type" validate:"required"`
	Creditor      string  `json:"creditor" validate:"required"`
	Account       string  `json:"account"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Bureau        string  `json:"bureau" validate:"required,oneof=Equifax Experian TransUnion"`
	DisputeReason string  `json:"dispute_reason"`
	DateReported  string  `json:"date_reported"`
}

type updateItemRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending in_progress removed verified"`
	DisputeReason *string `json:"dispute_reason"`
	DateRemoved   *string `json:"date_removed"`
	LastDisputed  *string `json:"last_disputed"`
}

func personalInfoOf(req personalInfoRequest) domain.PersonalInfo {
	return domain.PersonalInfo{
		Phone: req.Phone,
		Address: domain.AddressInfo{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		},
		SSNLast4: req.SSNLast4,
		DOB:      req.DOB,
	}
}

// List returns the caseload, optionally filtered.
//
// @Summary      List client cases
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        status         query  string  false  "Filter by case status"
// @Param        specialist_id  query  string  false  "Filter by assigned specialist"
// @Param        search         query  string  false  "Partial match on case number or name"
// @Success      200  {object}  map[string]any
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	filter := ports.ClientFilter{
		Status:       domain.CaseStatus(c.QueryParam("status")),
		SpecialistID: c.QueryParam("specialist_id"),
		Search:       c.QueryParam("search"),
	}
	if filter.Status != "" && !domain.ValidCaseStatus(filter.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
	}

	result := h.clients.List(c.Request().Context(), filter)
	return resultJSON(c, http.StatusOK, result)
}

// Get returns one client case by id.
//
// @Summary      Get a client case
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "Client id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /clients/{clientId} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	result := h.clients.GetByID(c.Request().Context(), c.Param("clientId"))
	if result.Data == nil {
		return domain.ErrClientNotFound
	}
	return resultJSON(c, http.StatusOK, result)
}

// Create onboards a new client case.
//
// @Summary      Create a client case
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "New client case"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.clients.Create(c.Request().Context(), ports.CreateClientInput{
		UserID:               req.UserID,
		CaseNumber:           req.CaseNumber,
		AssignedSpecialistID: req.AssignedSpecialistID,
		StartDate:            req.StartDate,
		PackageType:          req.PackageType,
		MonthlyFee:           req.MonthlyFee,
		ContractSigned:       req.ContractSigned,
		ContractSignedDate:   req.ContractSignedDate,
		PersonalInfo:         personalInfoOf(req.PersonalInfo),
	})
	if err != nil {
		return err
	}
	return resultJSON(c, http.StatusCreated, result)
}

// Update applies a partial update to a client case.
//
// @Summary      Update a client case
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string               true  "Client id"
// @Param        body      body      updateClientRequest  true  "Fields to change"
// @Success      200       {object}  map[string]any
// @Failure      404       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /clients/{clientId} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updates := ports.ClientUpdates{
		AssignedSpecialistID: req.AssignedSpecialistID,
		PackageType:          req.PackageType,
		MonthlyFee:           req.MonthlyFee,
		ContractSigned:       req.ContractSigned,
		ContractSignedDate:   req.ContractSignedDate,
	}
	if req.Status != nil {
		status := domain.CaseStatus(*req.Status)
		updates.Status = &status
	}
	if req.PersonalInfo != nil {
		info := personalInfoOf(*req.PersonalInfo)
		updates.PersonalInfo = &info
	}

	result, err := h.clients.Update(c.Request().Context(), c.Param("clientId"), updates)
	if err != nil {
		return err
	}
	if result.Data == nil {
		return domain.ErrClientNotFound
	}
	return resultJSON(c, http.StatusOK, result)
}

// Scores returns the score history for a client.
//
// @Summary      Score history
// @Tags         scores
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "Client id"
// @Success      200  {object}  map[string]any
// @Router       /clients/{clientId}/scores [get]
func (h *ClientHandler) Scores(c echo.Context) error {
	result := h.scores.History(c.Request().Context(), c.Param("clientId"))
	return resultJSON(c, http.StatusOK, result)
}

// AddScore records a new bureau snapshot for a client.
//
// @Summary      Add a score snapshot
// @Tags         scores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string           true  "Client id"
// @Param        body      body      addScoreRequest  true  "Bureau scores"
// @Success      201       {object}  map[string]any
// @Failure      400       {object}  map[string]string
// @Router       /clients/{clientId}/scores [post]
func (h *ClientHandler) AddScore(c echo.Context) error {
	var req addScoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.scores.Add(c.Request().Context(), ports.AddScoreInput{
		ClientID:   c.Param("clientId"),
		Equifax:    req.Equifax,
		Experian:   req.Experian,
		TransUnion: req.TransUnion,
		ScoreDate:  req.ScoreDate,
	})
	if err != nil {
		return err
	}
	return resultJSON(c, http.StatusCreated, result)
}

// Items returns a client's negative items.
//
// @Summary      List negative items
// @Tags         negative-items
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "Client id"
// @Success      200  {object}  map[string]any
// @Router       /clients/{clientId}/negative-items [get]
func (h *ClientHandler) Items(c echo.Context) error {
	result := h.items.ListByClient(c.Request().Context(), c.Param("clientId"))
	return resultJSON(c, http.StatusOK, result)
}

// CreateItem records a new disputed entry for a client.
//
// @Summary      Create a negative item
// @Tags         negative-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string             true  "Client id"
// @Param        body      body      createItemRequest  true  "Disputed entry"
// @Success      201       {object}  map[string]any
// @Failure      400       {object}  map[string]string
// @Router       /clients/{clientId}/negative-items [post]
func (h *ClientHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.items.Create(c.Request().Context(), ports.CreateItemInput{
		ClientID:      c.Param("clientId"),
		Type:          req.Type,
		Creditor:      req.Creditor,
		Account:       req.Account,
		Amount:        req.Amount,
		Bureau:        req.Bureau,
		DisputeReason: req.DisputeReason,
		DateReported:  req.DateReported,
	})
	if err != nil {
		return err
	}
	return resultJSON(c, http.StatusCreated, result)
}

// UpdateItem applies a partial update to a negative item, validating the
// status transition.
//
// @Summary      Update a negative item
// @Tags         negative-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        itemId  path      string             true  "Negative item id"
// @Param        body    body      updateItemRequest  true  "Fields to change"
// @Success      200     {object}  map[string]any
// @Failure      404     {object}  map[string]string
// @Failure      422     {object}  map[string]string
// @Router       /negative-items/{itemId} [patch]
func (h *ClientHandler) UpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updates := ports.ItemUpdates{
		DisputeReason: req.DisputeReason,
		DateRemoved:   req.DateRemoved,
		LastDisputed:  req.LastDisputed,
	}
	if req.Status != nil {
		status := domain.ItemStatus(*req.Status)
		updates.Status = &status
	}

	result, err := h.items.Update(c.Request().Context(), c.Param("itemId"), updates)
	if err != nil {
		return err
	}
	if result.Data == nil {
		return domain.ErrItemNotFound
	}
	return resultJSON(c, http.StatusOK, result)
}
