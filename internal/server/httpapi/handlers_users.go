package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/permalist/internal/common"
)

type credentialsRequest struct {
	UserID     string  `json:"user_id"`
	Password   string  `json:"password"`
	FamilyCode *string `json:"family_code"`
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	token, err := s.users.Register(c.Request.Context(), req.UserID, req.Password, req.FamilyCode)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
