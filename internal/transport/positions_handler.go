// Package transport exposes the REST and gRPC surfaces of the query API.
package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ManagedPositions groups the active positions of one managed address.
type ManagedPositions struct {
	Address   string                 `json:"address"`
	Positions []model.ActivePosition `json:"positions"`
}

// PositionsHandler serves active positions over REST.
type PositionsHandler struct {
	repo    PositionsRepository
	signers SignerStore
	logger  *zap.Logger
}

// NewPositionsHandler returns a PositionsHandler instance.
func NewPositionsHandler(repo PositionsRepository, signers SignerStore, logger *zap.Logger) *PositionsHandler {
	return &PositionsHandler{repo: repo, signers: signers, logger: logger}
}

// Register adds the position routes to mux.
func (h *PositionsHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/positions/{sender}", h.ActivePositions); err != nil {
		return fmt.Errorf("register active positions route: %w", err)
	}
	if err := mux.HandlePath(http.MethodGet, "/v1/managed-positions", h.ManagedPositions); err != nil {
		return fmt.Errorf("register managed positions route: %w", err)
	}
	return nil
}

// ActivePositions writes the active positions of the sender path parameter.
func (h *PositionsHandler) ActivePositions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	sender, err := model.ParseAddress(params["sender"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	positions, err := h.repo.ActivePositionsBySender(r.Context(), sender.String())
	if err != nil {
		h.logger.Error("query active positions failed", zap.Stringer("sender", sender), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, positions)
}

// ManagedPositions writes the active positions of every address held in the signer store.
func (h *PositionsHandler) ManagedPositions(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	addresses := h.signers.GetAllAddresses()
	out := make([]ManagedPositions, 0, len(addresses))
	for _, addr := range addresses {
		positions, err := h.repo.ActivePositionsBySender(r.Context(), addr.String())
		if err != nil {
			h.logger.Error("query managed positions failed", zap.Stringer("sender", addr), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		out = append(out, ManagedPositions{Address: addr.String(), Positions: positions})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
