package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pesisir-api/internal/domain/usecase/forum"
	"pesisir-api/pkg/msg"
	"pesisir-api/pkg/util/numberutils"
)

type ForumController struct {
	api     *echo.Group
	useCase forum.UseCase
}

func NewForumController(api *echo.Group, useCase forum.UseCase) *ForumController {
	return &ForumController{api: api, useCase: useCase}
}

// InitForumRoutes initializes discussion board routes
func (controller *ForumController) InitForumRoutes() {
	controller.api.GET("/forum/threads", controller.ListThreads)
	controller.api.GET("/forum/threads/:id", controller.GetThread)
	controller.api.POST("/forum/threads", controller.CreateThread)
	controller.api.POST("/forum/threads/:id/replies", controller.AddReply)
}

type createThreadRequest struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

type addReplyRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ListThreads godoc
// @Summary List discussion threads
// @Tags forum
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.Thread] "Threads, newest first"
// @Router /forum/threads [get]
func (controller *ForumController) ListThreads(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	return c.JSON(http.StatusOK, controller.useCase.ListThreads(page, size))
}

// GetThread godoc
// @Summary Get a discussion thread with its replies
// @Tags forum
// @Produce json
// @Param id path string true "Thread ID"
// @Success 200 {object} entity.Thread "Thread"
// @Failure 404 {object} model.ErrorResponse "Thread not found"
// @Router /forum/threads/{id} [get]
func (controller *ForumController) GetThread(c echo.Context) error {
	thread, err := controller.useCase.GetThread(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": msg.GetMessage("forum.error.thread-not-found"),
		})
	}

	return c.JSON(http.StatusOK, thread)
}

// CreateThread godoc
// @Summary Open a new discussion thread
// @Tags forum
// @Accept json
// @Produce json
// @Param request body controller.createThreadRequest true "Thread data"
// @Success 201 {object} entity.Thread "Created thread"
// @Failure 400 {object} model.ErrorResponse "Missing fields"
// @Router /forum/threads [post]
func (controller *ForumController) CreateThread(c echo.Context) error {
	request := new(createThreadRequest)
	if err := c.Bind(request); err != nil || request.Title == "" || request.Author == "" || request.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("forum.error.missing-fields"),
		})
	}

	thread, err := controller.useCase.CreateThread(request.Title, request.Author, request.Content, request.Tags)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msg.GetMessage("auth.error.server"),
		})
	}

	return c.JSON(http.StatusCreated, thread)
}

// AddReply godoc
// @Summary Reply to a discussion thread
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Thread ID"
// @Param request body controller.addReplyRequest true "Reply data"
// @Success 201 {object} entity.Reply "Created reply"
// @Failure 400 {object} model.ErrorResponse "Empty reply"
// @Failure 404 {object} model.ErrorResponse "Thread not found"
// @Router /forum/threads/{id}/replies [post]
func (controller *ForumController) AddReply(c echo.Context) error {
	request := new(addReplyRequest)
	if err := c.Bind(request); err != nil || request.Author == "" || request.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("forum.error.empty-reply"),
		})
	}

	reply, err := controller.useCase.AddReply(c.Param("id"), request.Author, request.Content)
	if err != nil {
		if errors.Is(err, forum.ErrThreadNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": msg.GetMessage("forum.error.thread-not-found"),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": msg.GetMessage("auth.error.server"),
		})
	}

	return c.JSON(http.StatusCreated, reply)
}
