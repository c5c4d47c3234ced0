package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/server/auth"
	"github.com/dmitrijs2005/permalist/internal/server/models"
)

type taskRequest struct {
	Title string `json:"title"`
	Time  string `json:"time"`
}

type taskResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Time   string `json:"time"`
	UserID string `json:"user_id"`
}

func toTaskResponse(t *models.Task) taskResponse {
	return taskResponse{ID: t.ID, Title: t.Title, Time: t.Time, UserID: t.UserID}
}

// principal extracts the verified caller set by the request gate. Protected
// handlers are never reachable without it.
func principal(c *gin.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(c.Request.Context())
	if !ok {
		return auth.Principal{}, common.ErrorUnauthorized
	}
	return p, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", common.ErrorValidation)
	}
	return id, nil
}

func (s *Server) listTasks(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}

	tasks, err := s.tasks.List(c.Request.Context(), p.UserID, c.Query("time"))
	if err != nil {
		writeError(c, err)
		return
	}

	result := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, toTaskResponse(&tasks[i]))
	}

	c.JSON(http.StatusOK, gin.H{"tasks": result})
}

func (s *Server) createTask(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), p.UserID, req.Title, req.Time)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": toTaskResponse(task)})
}

func (s *Server) updateTask(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}

	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), p.UserID, id, req.Title, req.Time)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}

func (s *Server) deleteTask(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}

	id, err := parseID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	task, err := s.tasks.Delete(c.Request.Context(), p.UserID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}
