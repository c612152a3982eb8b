package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"vendlink/internal/apperr"
	"vendlink/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError writes the taxonomy error as {"detail": ...}. Anything
// outside the taxonomy becomes an opaque 500 and is attached to the gin
// context so the request logger picks it up.
func respondError(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		c.JSON(e.Status, gin.H{"detail": e.Detail})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid id %q", c.Param("id"))
	}
	return uint(id), nil
}

// intQuery parses an integer query parameter, falling back to def when the
// value is missing or malformed.
func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

// UserOut is the public user payload: no password hash, no capability flags.
type UserOut struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserOut(u models.User) UserOut {
	return UserOut{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// ProductOut is the product payload used by list and detail responses.
type ProductOut struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Description string    `json:"description"`
	IsAvailable bool      `json:"is_available"`
	Votes       int       `json:"votes"`
	UserID      uint      `json:"user_id"`
	Owner       UserOut   `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
}

func newProductOut(p models.Product) ProductOut {
	return ProductOut{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		IsAvailable: p.IsAvailable,
		Votes:       p.VoteCount,
		UserID:      p.UserID,
		Owner:       newUserOut(p.User),
		CreatedAt:   p.CreatedAt,
	}
}

func newProductOuts(products []models.Product) []ProductOut {
	out := make([]ProductOut, len(products))
	for i, p := range products {
		out[i] = newProductOut(p)
	}
	return out
}
