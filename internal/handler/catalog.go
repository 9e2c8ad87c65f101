package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Catalog interface {
	Search(query string) []entities.Category
	LineItems(productIDs []int) ([]entities.LineItem, error)
}

type CatalogHandler struct {
	catalog Catalog
}

func NewCatalogHandler(catalog Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/products", h.Search)
}

// Search возвращает меню, отфильтрованное по названию блюда.
// @Summary      Меню
// @Tags         catalog
// @Produce      json
// @Param        q    query     string  false  "Часть названия, без учёта регистра"
// @Success      200  {array}   Category
// @Router       /products [get]
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, CategoriesEntityToJSON(h.catalog.Search(r.URL.Query().Get("q"))), http.StatusOK)
}
