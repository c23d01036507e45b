package api

import (
	"strconv"

	"movie-dialogue-api/backend/internal/models"
	"movie-dialogue-api/backend/internal/service"
	apperrors "movie-dialogue-api/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NameListParams are the query parameters of the character and movie listings
type NameListParams struct {
	Name   string `form:"name"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=250"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
	Sort   string `form:"sort"`
}

// An empty sort selects the listing's default order.
func (p NameListParams) query() service.ListQuery {
	return service.ListQuery{Filter: p.Name, Sort: p.Sort, Limit: p.Limit, Offset: p.Offset}
}

// TextListParams are the query parameters of the line listing
type TextListParams struct {
	Text   string `form:"text"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=250"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
	Sort   string `form:"sort"`
}

func (p TextListParams) query() service.ListQuery {
	return service.ListQuery{Filter: p.Text, Sort: p.Sort, Limit: p.Limit, Offset: p.Offset}
}

// AddConversationRequest is the body of the conversation write. Ids are pointers so
// that required checks presence: 0 is a valid character id.
type AddConversationRequest struct {
	Character1ID *int                  `json:"character_1_id" binding:"required"`
	Character2ID *int                  `json:"character_2_id" binding:"required"`
	Lines        []AddConversationLine `json:"lines" binding:"required,dive"`
}

type AddConversationLine struct {
	CharacterID *int   `json:"character_id" binding:"required"`
	LineText    string `json:"line_text"`
}

// model converts a bound request; call it only after binding succeeded
func (r AddConversationRequest) model() models.NewConversation {
	lines := make([]models.NewConversationLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = models.NewConversationLine{CharacterID: *l.CharacterID, LineText: l.LineText}
	}
	return models.NewConversation{
		Character1ID: *r.Character1ID,
		Character2ID: *r.Character2ID,
		Lines:        lines,
	}
}

// pathID parses an integer path parameter
func pathID(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.BadRequestWithDetails(apperrors.CodeInvalidID,
			"Path parameter "+name+" must be an integer", map[string]any{name: raw})
	}
	return id, nil
}

func bindList(c *gin.Context, params any) error {
	if err := c.ShouldBindQuery(params); err != nil {
		return bindingError(apperrors.CodeInvalidParameter, "Invalid query parameters", err)
	}
	return nil
}
