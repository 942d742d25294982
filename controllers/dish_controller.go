package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danielessuu/backend-sd3/pkg/resp"
	"github.com/danielessuu/backend-sd3/repository"
)

type DishController struct {
	Repo *repository.DishRepository
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{Repo: repository.NewDishRepository(db)}
}

type dishOut struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

// GET /dishes
func (dc *DishController) List(c *gin.Context) {
	dishes, err := dc.Repo.ListDishes()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]dishOut, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, dishOut{
			ID:          d.ID,
			Name:        d.Name,
			Category:    d.Category,
			Description: d.Description,
			Price:       d.Price.StringFixed(2),
			ImageURL:    d.ImageURL,
		})
	}
	c.JSON(http.StatusOK, out)
}
