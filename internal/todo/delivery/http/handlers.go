package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-service/pkg/response"
)

// Create godoc
// @Summary     Create a new todo
// @Description Creates a new todo with the provided title.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     201  {object} todoResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTodoResp(output.Todo))
}

// List godoc
// @Summary     List todos
// @Description Returns every stored todo. Order is unspecified.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Complete godoc
// @Summary     Complete a todo
// @Description Marks the todo with the given ID as completed.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} todoResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already completed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}
