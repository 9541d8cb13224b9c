package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/solar-crm/internal/entity"
)

type fakeLeadStore struct {
	leads   []entity.Lead
	byID    map[string]*entity.Lead
	upserts int
}

func newFakeLeadStore() *fakeLeadStore {
	return &fakeLeadStore{byID: make(map[string]*entity.Lead)}
}

func (s *fakeLeadStore) Upsert(ctx context.Context, lead *entity.Lead) error {
	s.upserts++
	s.leads = append(s.leads, *lead)
	return nil
}

func (s *fakeLeadStore) List(ctx context.Context) ([]entity.Lead, error) {
	return s.leads, nil
}

func (s *fakeLeadStore) Update(ctx context.Context, lead *entity.Lead) error {
	if _, ok := s.byID[lead.ID]; !ok {
		return sql.ErrNoRows
	}
	s.byID[lead.ID] = lead
	return nil
}

func (s *fakeLeadStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.byID, id)
	return nil
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestLeadCreateAppliesDefaults(t *testing.T) {
	store := newFakeLeadStore()
	h := NewLeadHandler(store)

	body := strings.NewReader(`{"name":"John","email":"john@x.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, store.upserts)
	assert.Equal(t, entity.DefaultLeadStatus, store.leads[0].Status)
	assert.Equal(t, entity.DefaultAssignee, store.leads[0].AssignedTo)
}

func TestLeadCreateMissingEmail(t *testing.T) {
	h := NewLeadHandler(newFakeLeadStore())

	body := strings.NewReader(`{"name":"John"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestLeadList(t *testing.T) {
	store := newFakeLeadStore()
	store.leads = []entity.Lead{{Name: "John", Email: "j@x.com"}}
	h := NewLeadHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestLeadUpdateNotFound(t *testing.T) {
	h := NewLeadHandler(newFakeLeadStore())

	body := strings.NewReader(`{"name":"John"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/leads/missing", body)
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadDeleteNotFound(t *testing.T) {
	h := NewLeadHandler(newFakeLeadStore())

	req := httptest.NewRequest(http.MethodDelete, "/api/leads/missing", nil)
	req = withURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadCaptureRateLimited(t *testing.T) {
	store := newFakeLeadStore()
	h := NewLeadHandler(store)

	var lastCode int
	for i := 0; i < 11; i++ {
		body := strings.NewReader(fmt.Sprintf(`{"name":"N%d","email":"n%d@x.com"}`, i, i))
		req := httptest.NewRequest(http.MethodPost, "/api/leads/capture", body)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		rec := httptest.NewRecorder()

		h.Capture(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
	assert.Equal(t, 10, store.upserts)
}
