// Package hooptest provides an in-process HoopUp API for exercising the
// client against realistic server behavior without a network. It reproduces
// the observable contract of the real backend: plain-text login responses,
// per-field registration errors, creator-only update and delete, and
// wholesale session listing.
package hooptest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Server holds the in-memory state and the mounted router. Serve it with
// httptest.NewServer(s.Router).
type Server struct {
	Router chi.Router

	mu       sync.Mutex
	secret   []byte
	users    map[string]user
	sessions []*session
}

type user struct {
	Email    string
	Password string
}

type userRef struct {
	Username string `json:"username"`
}

type session struct {
	ID           string    `json:"id"`
	LocationName string    `json:"locationName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Note         string    `json:"note,omitempty"`
	Creator      userRef   `json:"creator"`
	Attendees    []userRef `json:"attendees"`
}

// sessionFields is the request body for create and update.
type sessionFields struct {
	LocationName string `json:"locationName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Note         string `json:"note"`
}

// registerErrors mirrors the backend's field-error response. Struct
// marshaling keeps the field order stable.
type registerErrors struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

func (e registerErrors) any() bool {
	return e.Username != "" || e.Email != "" || e.Password != ""
}

// New creates a server with empty state and mounts its handlers.
func New() *Server {
	s := &Server{
		secret: []byte("hooptest-signing-secret"),
		users:  make(map[string]user),
	}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Post("/users/register", s.handleRegister)
	r.Post("/users/login", s.handleLogin)
	r.Route("/sessions", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
		r.Post("/{id}/join", s.handleJoin)
		r.Post("/{id}/leave", s.handleLeave)
	})
	s.Router = r
	return s
}

// SeedUser registers a user directly, bypassing the endpoint.
func (s *Server) SeedUser(username, email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = user{Email: email, Password: password}
}

// SeedSession inserts a session directly and returns its id.
func (s *Server) SeedSession(creator string, fields map[string]string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{
		ID:           uuid.NewString(),
		LocationName: fields["locationName"],
		Date:         fields["date"],
		StartTime:    fields["startTime"],
		EndTime:      fields["endTime"],
		Note:         fields["note"],
		Creator:      userRef{Username: creator},
		Attendees:    []userRef{},
	}
	s.sessions = append(s.sessions, sess)
	return sess.ID
}

// Attendees returns the roster of the given session in order.
func (s *Server) Attendees(sessionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findSession(sessionID)
	if sess == nil {
		return nil
	}
	names := make([]string, 0, len(sess.Attendees))
	for _, att := range sess.Attendees {
		names = append(names, att.Username)
	}
	return names
}

// TokenFor mints a token for the given username, same as a login would.
func (s *Server) TokenFor(username string) string {
	return s.mintToken(username)
}

func (s *Server) mintToken(username string) string {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		panic("hooptest: token signing failed: " + err.Error())
	}
	return signed
}

type contextKey string

const usernameKey = contextKey("username")

// requireAuth validates the bearer token and stores the username in the
// request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !parsed.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		username, err := parsed.Claims.GetSubject()
		if err != nil || username == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticatedUser(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var fieldErrs registerErrors
	if req.Username == "" {
		fieldErrs.Username = "Username is required"
	}
	if req.Email == "" {
		fieldErrs.Email = "Email is required"
	}
	if req.Password == "" {
		fieldErrs.Password = "Password is required"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if fieldErrs.Username == "" {
		if _, exists := s.users[req.Username]; exists {
			fieldErrs.Username = "Username is already taken"
		}
	}
	if fieldErrs.any() {
		writeJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	s.users[req.Username] = user{Email: req.Email, Password: req.Password}
	writeJSON(w, http.StatusOK, map[string]string{"username": req.Username, "email": req.Email})
}

// handleLogin mirrors the backend's ambiguous contract: always 200, with
// either a JWT or a plain-text rejection in the body.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	existing, ok := s.users[req.Username]
	s.mu.Unlock()

	if !ok {
		io.WriteString(w, "User not found")
		return
	}
	if existing.Password != req.Password {
		io.WriteString(w, "Wrong password")
		return
	}
	io.WriteString(w, s.mintToken(req.Username))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*session, len(s.sessions))
	copy(list, s.sessions)
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var fields sessionFields
	if err := decodeBody(r, &fields); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if fields.LocationName == "" || fields.Date == "" || fields.StartTime == "" || fields.EndTime == "" {
		http.Error(w, "Location name is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{
		ID:           uuid.NewString(),
		LocationName: fields.LocationName,
		Date:         fields.Date,
		StartTime:    fields.StartTime,
		EndTime:      fields.EndTime,
		Note:         fields.Note,
		Creator:      userRef{Username: authenticatedUser(r)},
		Attendees:    []userRef{},
	}
	s.sessions = append(s.sessions, sess)
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var fields sessionFields
	if err := decodeBody(r, &fields); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findSession(chi.URLParam(r, "id"))
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	if sess.Creator.Username != authenticatedUser(r) {
		http.Error(w, "You can only edit sessions you created", http.StatusForbidden)
		return
	}

	sess.LocationName = fields.LocationName
	sess.Date = fields.Date
	sess.StartTime = fields.StartTime
	sess.EndTime = fields.EndTime
	sess.Note = fields.Note
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	sess := s.findSession(id)
	if sess == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	if sess.Creator.Username != authenticatedUser(r) {
		http.Error(w, "You can only delete sessions you created", http.StatusForbidden)
		return
	}

	remaining := s.sessions[:0]
	for _, candidate := range s.sessions {
		if candidate.ID != id {
			remaining = append(remaining, candidate)
		}
	}
	s.sessions = remaining
	io.WriteString(w, "Session deleted successfully")
}

// handleJoin adds the named user to the roster. Joining twice is a no-op
// success, keeping the roster free of duplicates; an unknown session or
// user answers 200 with a null body, faithful to the backend.
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findSession(chi.URLParam(r, "id"))
	if sess == nil || !s.userExists(req.Username) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	for _, att := range sess.Attendees {
		if att.Username == req.Username {
			writeJSON(w, http.StatusOK, sess)
			return
		}
	}
	sess.Attendees = append(sess.Attendees, userRef{Username: req.Username})
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.findSession(chi.URLParam(r, "id"))
	if sess == nil || !s.userExists(req.Username) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	remaining := sess.Attendees[:0]
	for _, att := range sess.Attendees {
		if att.Username != req.Username {
			remaining = append(remaining, att)
		}
	}
	sess.Attendees = remaining
	writeJSON(w, http.StatusOK, sess)
}

// findSession returns the session with the given id. Callers hold s.mu.
func (s *Server) findSession(id string) *session {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

// userExists reports whether the username is registered. Callers hold s.mu.
func (s *Server) userExists(username string) bool {
	_, ok := s.users[username]
	return ok
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic("hooptest: response encoding failed: " + err.Error())
	}
}
