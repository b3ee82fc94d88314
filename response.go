package main

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// response messages
const (
	msgNotFound         = "Not Found"
	msgMethodNotAllowed = "Method Not Allowed"
	msgInvalidBody      = "잘못된 요청입니다."
	msgPasswordRequired = "비밀번호를 입력해주세요."
	msgLoginSuccess     = "로그인 성공"
	msgPasswordMismatch = "비밀번호가 일치하지 않습니다."
	msgBothPasswords    = "현재 비밀번호와 새 비밀번호를 모두 입력해주세요."
	msgAdminNotFound    = "관리자 계정을 찾을 수 없습니다."
	msgCurrentMismatch  = "현재 비밀번호가 일치하지 않습니다."
	msgPasswordChanged  = "비밀번호가 변경되었습니다."
	msgPasswordFailed   = "비밀번호 변경에 실패했습니다."
	msgInquiryNotFound  = "문의를 찾을 수 없습니다."
	msgRequiredMissing  = "필수 항목이 누락되었습니다."
	msgCreateFailed     = "문의 생성에 실패했습니다."
	msgNothingToUpdate  = "수정할 항목이 없습니다."
	msgUpdateFailed     = "문의 수정에 실패했습니다."
	msgInquiryDeleted   = "문의가 삭제되었습니다."
	msgDeleteFailed     = "문의 삭제에 실패했습니다."
)

// CORS method allowlists
const (
	allowLoginMethods    = "POST, OPTIONS"
	allowReadOnlyMethods = "GET, OPTIONS"
	allowInquiryMethods  = "GET, POST, PUT, DELETE, OPTIONS"
)

const (
	headerRequestID = "X-Request-ID"
	contentTypeJSON = "application/json"
	defaultPage     = 1
	defaultPageSize = 20
)

// Envelope is the JSON shape of every response.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// apiFunc is a handler whose unexpected failures are returned rather than written.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, Envelope{Success: false, Error: message})
}

// handle turns an apiFunc into an http.HandlerFunc. Returned errors and
// panics become a 500 envelope carrying the failure message, unless the
// handler already started its response; then they are only logged.
func (s *Server) handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := recorderFor(w)

		fail := func(message string) {
			if rw.written {
				s.logger.Warn().Str("path", r.URL.Path).Msg("Response already written, dropping error envelope")
				return
			}
			s.writeError(rw, http.StatusInternalServerError, message)
		}

		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("API Error")
				fail(fmt.Sprint(rec))
			}
		}()

		if err := fn(rw, r); err != nil {
			s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("API Error")
			fail(err.Error())
		}
	}
}
