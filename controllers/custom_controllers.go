package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chikoci/Restaurant-Orders/database"
	"github.com/chikoci/Restaurant-Orders/reports"
	"github.com/chikoci/Restaurant-Orders/utils"
)

type CustomViewController struct {
	Store *database.Store
}

func NewCustomViewController(store *database.Store) *CustomViewController {
	return &CustomViewController{Store: store}
}

// ListRecipes -> katalog resep join yang tersedia
func (cc *CustomViewController) ListRecipes(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Available join recipes", reports.Recipes())
}

// BuildView -> jalankan resep join lalu filter dan proyeksikan kolom
func (cc *CustomViewController) BuildView(c *gin.Context) {
	f, err := parseFilterState(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if f.RecipeID == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("recipe_id is required"))
		return
	}

	datasets, err := cc.Store.Datasets()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	view, err := reports.BuildCustomView(datasets, f)
	if err != nil {
		if errors.Is(err, reports.ErrUnknownRecipe) || errors.Is(err, reports.ErrUnknownColumn) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Custom view", view)
}
