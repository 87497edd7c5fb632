package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

func (s *Server) registerTaxonomyRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAisles",
		Method:      http.MethodGet,
		Path:        "/api/v1/aisles",
		Summary:     "List aisles",
		Description: "Returns the static aisle catalog in code order",
		Tags:        []string{"Taxonomy"},
	}, s.handleListAisles)

	huma.Register(s.api, huma.Operation{
		OperationID: "listShelves",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelves",
		Summary:     "List shelves",
		Description: "Returns the shelf catalog in canonical shelf-code order",
		Tags:        []string{"Taxonomy"},
	}, s.handleListShelves)
}

// === DTOs ===

// AisleResult is one aisle of the taxonomy.
type AisleResult struct {
	Code        string `json:"code" doc:"3-digit aisle code"`
	Label       string `json:"label" doc:"Display label"`
	Description string `json:"description,omitempty" doc:"What belongs in this aisle"`
}

// AislesOutput wraps the aisle list for Huma.
type AislesOutput struct {
	Body struct {
		Aisles []AisleResult `json:"aisles"`
	}
}

// ShelfResult is one shelf of the catalog.
type ShelfResult struct {
	ID         string    `json:"id" doc:"Shelf ID"`
	Code       string    `json:"code" doc:"Shelf code (DDD.DD)"`
	Label      string    `json:"label" doc:"Display label"`
	AisleCode  string    `json:"aisle_code" doc:"Owning aisle code"`
	IsOfficial bool      `json:"is_official" doc:"True for the fixed official shelves (suffix 00-09)"`
	CreatedAt  time.Time `json:"created_at"`
}

// ShelvesOutput wraps the shelf list for Huma.
type ShelvesOutput struct {
	Body struct {
		Shelves []ShelfResult `json:"shelves"`
	}
}

func shelfResult(shelf *domain.Shelf) ShelfResult {
	return ShelfResult{
		ID:         shelf.ID,
		Code:       shelf.Code,
		Label:      shelf.Label,
		AisleCode:  shelf.AisleCode,
		IsOfficial: shelf.IsOfficial,
		CreatedAt:  shelf.CreatedAt,
	}
}

// === Handlers ===

func (s *Server) handleListAisles(_ context.Context, _ *struct{}) (*AislesOutput, error) {
	aisles := s.services.Library.Aisles()

	resp := &AislesOutput{}
	resp.Body.Aisles = make([]AisleResult, 0, len(aisles))
	for _, aisle := range aisles {
		resp.Body.Aisles = append(resp.Body.Aisles, AisleResult{
			Code:        aisle.Code,
			Label:       aisle.Label,
			Description: aisle.Description,
		})
	}
	return resp, nil
}

func (s *Server) handleListShelves(ctx context.Context, _ *struct{}) (*ShelvesOutput, error) {
	shelves, err := s.services.Library.Shelves(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ShelvesOutput{}
	resp.Body.Shelves = make([]ShelfResult, 0, len(shelves))
	for _, shelf := range shelves {
		resp.Body.Shelves = append(resp.Body.Shelves, shelfResult(shelf))
	}
	return resp, nil
}
