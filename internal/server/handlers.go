package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/pricing"
)

var validate = validator.New()

func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

type declarePackageRequest struct {
	Description        string `json:"description" validate:"required,max=500"`
	WeightGrams        int    `json:"weight_grams" validate:"required,gt=0"`
	PurchasePriceCents int64  `json:"purchase_price_cents" validate:"gte=0"`
	DeclaredValueCents int64  `json:"declared_value_cents" validate:"gte=0"`
	LengthCm           int    `json:"length_cm" validate:"gte=0"`
	WidthCm            int    `json:"width_cm" validate:"gte=0"`
	HeightCm           int    `json:"height_cm" validate:"gte=0"`
	Store              string `json:"store" validate:"max=200"`
	OrderNumber        string `json:"order_number" validate:"max=100"`
	InboundCarrier     string `json:"inbound_carrier" validate:"max=100"`
	InboundTracking    string `json:"inbound_tracking" validate:"max=100"`
}

func (s *Server) handleDeclarePackage(w http.ResponseWriter, r *http.Request) {
	var req declarePackageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pkg, err := s.service.DeclarePackage(r.Context(), consolidation.DeclarePackageParams{
		OwnerID:            identityFrom(r.Context()).Username,
		Description:        req.Description,
		WeightGrams:        req.WeightGrams,
		PurchasePriceCents: req.PurchasePriceCents,
		DeclaredValueCents: req.DeclaredValueCents,
		LengthCm:           req.LengthCm,
		WidthCm:            req.WidthCm,
		HeightCm:           req.HeightCm,
		Store:              req.Store,
		OrderNumber:        req.OrderNumber,
		InboundCarrier:     req.InboundCarrier,
		InboundTracking:    req.InboundTracking,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, pkg)
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "invalid value for 'limit' parameter")
			return
		}
	}

	pkgs, err := s.service.ListPackages(r.Context(),
		identityFrom(r.Context()).Username, r.URL.Query().Get("status"), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pkgs)
}

func (s *Server) handleGetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := s.service.GetPackage(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	id := identityFrom(r.Context())
	if pkg.OwnerID != id.Username && !id.IsAdmin {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	respondJSON(w, http.StatusOK, pkg)
}

type confirmArrivalRequest struct {
	ConfirmedWeightGrams int `json:"confirmed_weight_grams" validate:"required,gt=0"`
}

func (s *Server) handleConfirmArrival(w http.ResponseWriter, r *http.Request) {
	var req confirmArrivalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pkg, err := s.service.ConfirmPackageArrival(r.Context(), mux.Vars(r)["id"], req.ConfirmedWeightGrams)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pkg)
}

type createGroupRequest struct {
	Name              string `json:"name" validate:"max=200"`
	Notes             string `json:"notes" validate:"max=1000"`
	DeliveryAddressID string `json:"delivery_address_id" validate:"max=100"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	group, err := s.service.CreateGroup(r.Context(), consolidation.CreateGroupParams{
		OwnerID:           identityFrom(r.Context()).Username,
		Name:              req.Name,
		Notes:             req.Notes,
		DeliveryAddressID: req.DeliveryAddressID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, group)
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "invalid value for 'limit' parameter")
			return
		}
	}

	groups, err := s.service.ListGroups(r.Context(), identityFrom(r.Context()).Username, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, groups)
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	group, err := s.service.GetGroup(r.Context(), id.Username, id.IsAdmin, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, group)
}

func (s *Server) handleGroupHistory(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	groupID := mux.Vars(r)["id"]

	// Membership check doubles as the ownership gate.
	if _, err := s.service.GetGroup(r.Context(), id.Username, id.IsAdmin, groupID); err != nil {
		respondServiceError(w, err)
		return
	}

	history, err := s.service.GetGroupHistory(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

type addPackageRequest struct {
	PackageID string `json:"package_id" validate:"required"`
}

func (s *Server) handleAddPackage(w http.ResponseWriter, r *http.Request) {
	var req addPackageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err := s.service.AddPackage(r.Context(), identityFrom(r.Context()).Username, mux.Vars(r)["id"], req.PackageID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "package added to group"})
}

func (s *Server) handleRemovePackage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := s.service.RemovePackage(r.Context(), identityFrom(r.Context()).Username, vars["id"], vars["packageID"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "package removed from group"})
}

type quoteRequest struct {
	BoxSize     string   `json:"box_size" validate:"required"`
	Type        string   `json:"consolidation_type" validate:"required,oneof=SIMPLE REPACK"`
	Protections []string `json:"extra_protection" validate:"dive,max=50"`
	CarrierCode string   `json:"carrier_code" validate:"max=50"`
	Service     string   `json:"service_type" validate:"omitempty,oneof=STANDARD EXPRESS"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !pricing.ValidBoxSize(pricing.BoxSize(req.BoxSize)) {
		respondError(w, http.StatusBadRequest, "unknown box size")
		return
	}

	id := identityFrom(r.Context())
	quote, err := s.service.QuoteGroup(r.Context(), id.Username, id.IsAdmin, mux.Vars(r)["id"], consolidation.QuoteParams{
		BoxSize:     pricing.BoxSize(req.BoxSize),
		Type:        pricing.ConsolidationType(req.Type),
		Protections: req.Protections,
		CarrierCode: req.CarrierCode,
		Service:     pricing.ServiceType(req.Service),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

type consolidateRequest struct {
	BoxSize            string   `json:"box_size" validate:"required"`
	Type               string   `json:"consolidation_type" validate:"required,oneof=SIMPLE REPACK"`
	Protections        []string `json:"extra_protection" validate:"dive,max=50"`
	CarrierCode        string   `json:"carrier_code" validate:"max=50"`
	CustomInstructions string   `json:"custom_instructions" validate:"max=1000"`
	RemoveInvoice      bool     `json:"remove_invoice"`
}

func (s *Server) handleRequestConsolidation(w http.ResponseWriter, r *http.Request) {
	var req consolidateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err := s.service.RequestConsolidation(r.Context(), identityFrom(r.Context()).Username, mux.Vars(r)["id"],
		consolidation.ConsolidateParams{
			BoxSize:            pricing.BoxSize(req.BoxSize),
			Type:               pricing.ConsolidationType(req.Type),
			Protections:        req.Protections,
			CarrierCode:        req.CarrierCode,
			CustomInstructions: req.CustomInstructions,
			RemoveInvoice:      req.RemoveInvoice,
		})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "consolidation requested"})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	err := s.service.Cancel(r.Context(), id.Username, id.IsAdmin, mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "group cancelled"})
}

type advanceRequest struct {
	Action              string `json:"action" validate:"required,oneof=start_processing mark_ready conclude mark_delivered"`
	MeasuredWeightGrams int    `json:"measured_weight_grams" validate:"gte=0"`
}

// handleAdvance is the operator lifecycle endpoint: one route, explicit
// actions, each mapping to exactly one transition.
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	groupID := mux.Vars(r)["id"]
	var err error
	switch req.Action {
	case "start_processing":
		err = s.service.StartProcessing(r.Context(), groupID)
	case "mark_ready":
		err = s.service.MarkReady(r.Context(), groupID, req.MeasuredWeightGrams)
	case "conclude":
		err = s.service.Conclude(r.Context(), groupID)
	case "mark_delivered":
		err = s.service.MarkDelivered(r.Context(), groupID)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "group advanced", "action": req.Action})
}

type setTrackingRequest struct {
	TrackingCode string `json:"tracking_code" validate:"required,max=100"`
	CarrierID    string `json:"carrier_id" validate:"max=100"`
}

func (s *Server) handleSetTracking(w http.ResponseWriter, r *http.Request) {
	var req setTrackingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err := s.service.SetTracking(r.Context(), mux.Vars(r)["id"], req.TrackingCode, req.CarrierID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "tracking assigned"})
}

type paymentConfirmationRequest struct {
	GroupID     string `json:"group_id" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
}

func (s *Server) handlePaymentConfirmation(w http.ResponseWriter, r *http.Request) {
	var req paymentConfirmationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.service.ConfirmPayment(r.Context(), req.GroupID, req.AmountCents); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "payment confirmed, group shipped"})
}
