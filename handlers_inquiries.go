package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"inquirydesk/store"
)

func (s *Server) handleListInquiries(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)
	query := r.URL.Query()

	status := query.Get("status")
	if status == "" {
		status = store.StatusAll
	}

	page, limit := pageParams(query)

	result, err := s.store.inquiryStore.List(ctx, requestID, status, page, limit)
	if err != nil {
		return err
	}

	s.writeJSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    result.Result,
		Pagination: &Pagination{
			Page:       page,
			Limit:      limit,
			Total:      result.TotalCount,
			TotalPages: result.TotalPages(),
		},
	})

	return nil
}

func (s *Server) handleGetInquiry(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)

	id, ok := inquiryID(r)
	if !ok {
		s.writeError(w, http.StatusNotFound, msgInquiryNotFound)
		return nil
	}

	inquiry, err := s.store.inquiryStore.GetByID(ctx, requestID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, msgInquiryNotFound)
			return nil
		}
		return err
	}

	s.writeJSON(w, http.StatusOK, Envelope{Success: true, Data: inquiry})

	return nil
}

func (s *Server) handleCreateInquiry(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)

	var body struct {
		ChildBirthday interface{} `json:"child_birthday"`
		ParentName    interface{} `json:"parent_name"`
		PhoneNumber   interface{} `json:"phone_number"`
		Agree1        interface{} `json:"agree1"`
		Agree2        interface{} `json:"agree2"`
		Agree3        interface{} `json:"agree3"`
		Source        interface{} `json:"source"`
	}

	if err := decodeBody(r, &body); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to decode inquiry")
		s.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil
	}

	if !truthy(body.ChildBirthday) || !truthy(body.ParentName) || !truthy(body.PhoneNumber) {
		s.writeError(w, http.StatusBadRequest, msgRequiredMissing)
		return nil
	}

	var source *string
	if body.Source != nil {
		v := textValue(body.Source)
		source = &v
	}

	created, err := s.store.inquiryStore.Create(ctx, requestID, store.Inquiry{
		ChildBirthday: textValue(body.ChildBirthday),
		ParentName:    textValue(body.ParentName),
		PhoneNumber:   textValue(body.PhoneNumber),
		Agree1:        flag(body.Agree1),
		Agree2:        flag(body.Agree2),
		Agree3:        flag(body.Agree3),
		Source:        source,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create inquiry")
		s.writeError(w, http.StatusInternalServerError, msgCreateFailed)
		return nil
	}

	inquiry, err := s.store.inquiryStore.GetByID(ctx, requestID, created.ID)
	if err != nil {
		return err
	}

	s.logger.Info().Msgf("Inquiry %d created", inquiry.ID)
	s.writeJSON(w, http.StatusCreated, Envelope{Success: true, Data: inquiry})

	return nil
}

// handleUpdateInquiry applies status when truthy and notes whenever the key
// is present, so {"notes": ""} clears the notes.
func (s *Server) handleUpdateInquiry(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)

	id, ok := inquiryID(r)
	if !ok {
		s.writeError(w, http.StatusNotFound, msgInquiryNotFound)
		return nil
	}

	var body map[string]interface{}
	if err := decodeBody(r, &body); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to decode inquiry update")
		s.writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil
	}

	status := body["status"]
	notes, hasNotes := body["notes"]

	set := store.NewUpdateSet(
		store.Field{Column: "status", Value: columnValue(status), Present: truthy(status)},
		store.Field{Column: "notes", Value: columnValue(notes), Present: hasNotes},
	)

	if set.TimestampOnly() {
		s.writeError(w, http.StatusBadRequest, msgNothingToUpdate)
		return nil
	}

	if err := s.store.inquiryStore.Update(ctx, requestID, id, set); err != nil {
		s.logger.Error().Err(err).Msgf("Failed to update inquiry %d", id)
		s.writeError(w, http.StatusInternalServerError, msgUpdateFailed)
		return nil
	}

	// no existence check: an unknown id re-fetches nothing and answers data:null
	inquiry, err := s.store.inquiryStore.GetByID(ctx, requestID, id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	s.logger.Info().Msgf("Inquiry %d updated", id)
	s.writeJSON(w, http.StatusOK, Envelope{Success: true, Data: inquiry})

	return nil
}

// handleDeleteInquiry reports success whether or not the row existed.
func (s *Server) handleDeleteInquiry(w http.ResponseWriter, r *http.Request) error {
	ctx, requestID := requestContext(r)

	id, ok := inquiryID(r)
	if !ok {
		s.writeError(w, http.StatusNotFound, msgInquiryNotFound)
		return nil
	}

	if err := s.store.inquiryStore.Delete(ctx, requestID, id); err != nil {
		s.logger.Error().Err(err).Msgf("Failed to delete inquiry %d", id)
		s.writeError(w, http.StatusInternalServerError, msgDeleteFailed)
		return nil
	}

	s.logger.Info().Msgf("Inquiry %d deleted", id)
	s.writeJSON(w, http.StatusOK, Envelope{Success: true, Message: msgInquiryDeleted})

	return nil
}

func inquiryID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
