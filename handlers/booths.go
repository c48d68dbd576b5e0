// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/kultura-quest/booths"
	"github.com/danielhkuo/kultura-quest/middleware"
	"github.com/danielhkuo/kultura-quest/models"
)

type BoothHandler struct {
	reg *booths.Registry
}

func NewBoothHandler(reg *booths.Registry) *BoothHandler {
	return &BoothHandler{reg: reg}
}

// ListBooths handles GET /api/booths
func (h *BoothHandler) ListBooths(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.BoothsResponse{
		Booths: h.reg.ListPublic(),
	})
}
