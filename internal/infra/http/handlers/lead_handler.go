package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crmbase/lead-manager/internal/infra/http/middleware"
	"github.com/crmbase/lead-manager/internal/usecase"
)

type LeadHandler struct {
	UC *usecase.LeadWorkflow
}

func NewLeadHandler(uc *usecase.LeadWorkflow) *LeadHandler {
	return &LeadHandler{UC: uc}
}

func actorFrom(r *http.Request) (usecase.Actor, bool) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	return usecase.Actor{ID: user.ID, Role: user.Role}, true
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, usecase.NewDomainError(usecase.CodeForbidden, "Insufficient permissions"))
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.NewDomainError(usecase.CodeValidation, "Invalid JSON"))
		return
	}

	lead, err := h.UC.CreateLead(r.Context(), input, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeData(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, usecase.NewDomainError(usecase.CodeForbidden, "Insufficient permissions"))
		return
	}

	filter := usecase.LeadFilter{
		Status:     r.URL.Query().Get("status"),
		AssignedTo: r.URL.Query().Get("assignedTo"),
	}

	leads, err := h.UC.ListLeads(r.Context(), filter, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, usecase.NewDomainError(usecase.CodeForbidden, "Insufficient permissions"))
		return
	}

	lead, err := h.UC.GetLeadByID(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, usecase.NewDomainError(usecase.CodeForbidden, "Insufficient permissions"))
		return
	}

	var patch usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, usecase.NewDomainError(usecase.CodeValidation, "Invalid JSON"))
		return
	}

	lead, err := h.UC.UpdateLead(r.Context(), chi.URLParam(r, "id"), patch, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, usecase.NewDomainError(usecase.CodeForbidden, "Insufficient permissions"))
		return
	}

	var input usecase.AssignLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.NewDomainError(usecase.CodeValidation, "Invalid JSON"))
		return
	}

	lead, err := h.UC.AssignLead(r.Context(), chi.URLParam(r, "id"), input, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadAssigned()
	writeData(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, usecase.NewDomainError(usecase.CodeForbidden, "Insufficient permissions"))
		return
	}

	if err := h.UC.DeleteLead(r.Context(), chi.URLParam(r, "id"), actor); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadDeleted()
	writeMessage(w, http.StatusOK, "Lead deleted successfully")
}
