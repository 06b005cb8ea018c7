package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/adapter/http/helper"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/apperr"
	"taskhub/internal/core/model/request"
	"taskhub/internal/core/model/response"
	"taskhub/internal/core/port"
	"taskhub/internal/core/util"
)

type TaskHandler struct {
	tasks port.TaskService
}

func NewTaskHandler(tasks port.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(c *gin.Context) {
	req, err := util.ParamsToMap[request.CreateTaskRequest](c)
	if err != nil {
		helper.Error(c, apperr.Validation("invalid request body", nil))
		return
	}

	if err := validation.Check(&req); err != nil {
		helper.Error(c, err)
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), &req)
	if err != nil {
		helper.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.TaskEnvelope{
		Success: true,
		Task:    response.NewTaskResponse(task),
	})
}

func (h *TaskHandler) List(c *gin.Context) {
	query, err := util.QueryToMap[request.ListTasksQuery](c)
	if err != nil {
		helper.Error(c, apperr.Validation("invalid query parameters", nil))
		return
	}

	if err := validation.Check(&query); err != nil {
		helper.Error(c, err)
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), &query)
	if err != nil {
		helper.Error(c, err)
		return
	}

	list := make([]response.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		list = append(list, response.NewTaskResponse(task))
	}

	c.JSON(http.StatusOK, response.TaskListResponse{
		Success: true,
		Count:   len(list),
		Tasks:   list,
	})
}

func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.tasks.GetByUUID(c.Request.Context(), c.Param("id"))
	if err != nil {
		helper.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TaskEnvelope{
		Success: true,
		Task:    response.NewTaskResponse(task),
	})
}

// Update applies only the fields present in the payload.
func (h *TaskHandler) Update(c *gin.Context) {
	req, err := util.ParamsToMap[request.UpdateTaskRequest](c)
	if err != nil {
		helper.Error(c, apperr.Validation("invalid request body", nil))
		return
	}

	if err := validation.Check(&req); err != nil {
		helper.Error(c, err)
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		helper.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TaskEnvelope{
		Success: true,
		Task:    response.NewTaskResponse(task),
	})
}

func (h *TaskHandler) Complete(c *gin.Context) {
	task, err := h.tasks.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		helper.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TaskEnvelope{
		Success: true,
		Task:    response.NewTaskResponse(task),
	})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.DeleteByUUID(c.Request.Context(), c.Param("id")); err != nil {
		helper.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}
