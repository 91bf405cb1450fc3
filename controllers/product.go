package controllers

import (
	"encoding/json"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"eggshop/models"
	"eggshop/storage"
	"eggshop/validation"
)

// ProductController handles catalog requests
type ProductController struct {
	Store    *storage.Store
	Validate *validatorv10.Validate
}

// NewProductController creates a new ProductController
func NewProductController(store *storage.Store, v *validatorv10.Validate) *ProductController {
	return &ProductController{Store: store, Validate: v}
}

// GetProducts retrieves the customer-facing catalog. Inactive products
// are hidden, not deleted.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	products := pc.Store.GetProducts()
	active := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			active = append(active, p)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(active)
}

// AllProducts retrieves the full catalog, inactive products included
// (Admin only).
func (pc *ProductController) AllProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pc.Store.GetProducts())
}

// SaveProduct handles creating or updating a product (Admin only). A
// missing id means a new product; an existing id replaces the stored
// record at its position.
func (pc *ProductController) SaveProduct(w http.ResponseWriter, r *http.Request) {
	var req validation.ProductRequest
	if err := validation.BindAndValidate(w, r, &req, pc.Validate); err != nil {
		return
	}

	id := req.ID
	if pathID := mux.Vars(r)["id"]; pathID != "" {
		id = pathID
	}
	created := false
	if id == "" {
		id = uuid.NewString()
		created = true
	}

	product := models.Product{
		ID:                 id,
		Name:               req.Name,
		Type:               models.ProductType(req.Type),
		Description:        req.Description,
		QuantityPerPackage: req.QuantityPerPackage,
		Price:              req.Price,
		ImageURL:           req.ImageURL,
		Active:             req.Active,
		IsPromo:            req.IsPromo,
	}

	if err := pc.Store.SaveProduct(product); err != nil {
		http.Error(w, "Error saving product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(product)
}

// DeleteProduct handles deleting a product (Admin only). Deleting an
// unknown id succeeds silently.
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := pc.Store.DeleteProduct(id); err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Product removed"})
}
