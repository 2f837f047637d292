package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crisiscenter/tracker/internal/core/ports"
)

// ClientHandler exposes the transition engine to operator consoles.
type ClientHandler struct {
	engine ports.Engine
	// warn receives validation warnings raised while a request-scoped
	// prompter is active.
	warn ports.Prompter
}

func NewClientHandler(engine ports.Engine, warn ports.Prompter) *ClientHandler {
	return &ClientHandler{engine: engine, warn: warn}
}

// Create handles POST /v1/clients.
//
// @Summary      Admit a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Name and gender"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.engine.AddClient(c.Request().Context(), req.Name, req.Gender)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/v1/clients/"+client.ID)
	return c.JSON(http.StatusCreated, toClientResponse(*client))
}

// List handles GET /v1/clients.
//
// @Summary      List tracked clients
// @Tags         clients
// @Produce      json
// @Success      200  {object}  listClientsResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients := h.engine.Clients()
	resp := listClientsResponse{Data: make([]clientResponse, 0, len(clients)), Total: len(clients)}
	for _, cl := range clients {
		resp.Data = append(resp.Data, toClientResponse(cl))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get one client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := clientIDParam(c)
	if err != nil {
		return err
	}
	client, err := h.engine.Client(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(*client))
}

// Update handles PUT /v1/clients/:id. The body replaces every editable
// field.
//
// @Summary      Replace a client's details
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Client id"
// @Param        body  body      updateClientRequest  true  "Client details"
// @Success      200   {object}  clientResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := clientIDParam(c)
	if err != nil {
		return err
	}
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.engine.UpdateClientInfo(c.Request().Context(), id, toInfoInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(*client))
}

// Move handles POST /v1/clients/:id/move.
//
// @Summary      Move a client to another location
// @Description  Unknown locations resolve to Group Room. A move to Away needs return_time; without it the departure is cancelled. A return from Away records screening_completed.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Client id"
// @Param        body  body      moveClientRequest  true  "Target location and prompt answers"
// @Success      200   {object}  moveClientResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/clients/{id}/move [post]
func (h *ClientHandler) Move(c echo.Context) error {
	id, err := clientIDParam(c)
	if err != nil {
		return err
	}
	var req moveClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := ports.WithPrompter(c.Request().Context(), requestPrompter{
		returnTime: req.ReturnTime,
		screened:   req.ScreeningCompleted,
		fallback:   h.warn,
	})
	res, err := h.engine.MoveClient(ctx, id, req.Location)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, moveClientResponse{
		Client:    toClientResponse(res.Client),
		NoOp:      res.NoOp,
		Cancelled: res.Cancelled,
	})
}

// Discharge handles DELETE /v1/clients/:id. The discharge checklist must be
// fully confirmed in the body.
//
// @Summary      Discharge a client
// @Tags         clients
// @Accept       json
// @Param        id    path  string            true  "Client id"
// @Param        body  body  dischargeRequest  true  "Discharge checklist"
// @Success      204
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Discharge(c echo.Context) error {
	id, err := clientIDParam(c)
	if err != nil {
		return err
	}
	var req dischargeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !req.PropertyReturned || !req.CaseManagerSpokenTo || !req.MedicalSpokenTo {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "discharge checklist incomplete")
	}

	if err := h.engine.DischargeClient(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AvailableBeds handles GET /v1/beds.
//
// @Summary      List free beds
// @Tags         beds
// @Produce      json
// @Param        exclude  query     string  false  "Bed to treat as free, usually the edited client's own"
// @Success      200      {object}  bedsResponse
// @Router       /v1/beds [get]
func (h *ClientHandler) AvailableBeds(c echo.Context) error {
	return c.JSON(http.StatusOK, bedsResponse{Available: h.engine.AvailableBeds(c.QueryParam("exclude"))})
}

// Locations handles GET /v1/locations.
//
// @Summary      Clients grouped by location
// @Tags         clients
// @Produce      json
// @Success      200  {object}  locationsResponse
// @Router       /v1/locations [get]
func (h *ClientHandler) Locations(c echo.Context) error {
	return c.JSON(http.StatusOK, toLocationsResponse(h.engine.Clients()))
}
