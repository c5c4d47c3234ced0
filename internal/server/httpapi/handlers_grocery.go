package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/permalist/internal/common"
	"github.com/dmitrijs2005/permalist/internal/server/models"
)

type groceryItemRequest struct {
	Title string `json:"title"`
}

type groceryItemResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	FamilyCode *string `json:"family_code"`
	UserID     string  `json:"user_id"`
}

func toGroceryItemResponse(item *models.GroceryItem) groceryItemResponse {
	resp := groceryItemResponse{ID: item.ID, Title: item.Title, UserID: item.UserID}
	if item.FamilyCode.Valid {
		code := item.FamilyCode.String
		resp.FamilyCode = &code
	}
	return resp
}

func (s *Server) listGrocery(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}

	items, err := s.grocery.List(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	result := make([]groceryItemResponse, 0, len(items))
	for i := range items {
		result = append(result, toGroceryItemResponse(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{"grocery_list": result})
}

func (s *Server) addGroceryItem(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req groceryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrorValidation)
		return
	}

	item, err := s.grocery.Add(c.Request.Context(), p.UserID, req.Title)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": toGroceryItemResponse(item)})
}

func (s *Server) deleteGroceryItem(c *gin.Context) {
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

	item, err := s.grocery.Delete(c.Request.Context(), p.UserID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": toGroceryItemResponse(item)})
}
