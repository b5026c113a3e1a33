package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itektr/turkish-spellchecker/internal/model"
	"github.com/itektr/turkish-spellchecker/internal/repository"
	"github.com/itektr/turkish-spellchecker/internal/speller"
)

// fakeDictStore is an in-memory DictionaryStore.
type fakeDictStore struct {
	entries []model.DictionaryEntry
	nextID  uint64
}

func (f *fakeDictStore) Add(_ context.Context, word, normalized string, addedBy uint64) (uint64, error) {
	for _, e := range f.entries {
		if e.Normalized == normalized {
			return 0, repository.ErrDuplicateWord
		}
	}
	f.nextID++
	f.entries = append(f.entries, model.DictionaryEntry{
		ID: f.nextID, Word: word, Normalized: normalized, AddedBy: addedBy,
		IsActive: true, CreatedAt: time.Now().UTC(),
	})
	return f.nextID, nil
}

func (f *fakeDictStore) ListActive(_ context.Context) ([]model.DictionaryEntry, error) {
	out := make([]model.DictionaryEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDictStore) Deactivate(_ context.Context, id uint64) error {
	for i, e := range f.entries {
		if e.ID == id && e.IsActive {
			f.entries[i].IsActive = false
			return nil
		}
	}
	return repository.ErrNotFound
}

func doDict(h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(7)) // what JWTAuth leaves behind
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	_ = h(c)
	return rec
}

func TestDictionaryAdd(t *testing.T) {
	store := &fakeDictStore{}
	lex := speller.NewLexicon()
	h := NewDictionaryHandler(store, lex)

	rec := doDict(h.Add, http.MethodPost, "/v1/dictionary", `{"word":"Çağrışım!"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "çağrışım", body["normalized"])

	// Merged into the live lexicon immediately.
	assert.True(t, lex.Contains("çağrışım"))
	require.Len(t, store.entries, 1)
	assert.Equal(t, uint64(7), store.entries[0].AddedBy)

	// Duplicate -> 409.
	rec = doDict(h.Add, http.MethodPost, "/v1/dictionary", `{"word":"çağrışım"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDictionaryAddValidation(t *testing.T) {
	h := NewDictionaryHandler(&fakeDictStore{}, speller.NewLexicon())

	rec := doDict(h.Add, http.MethodPost, "/v1/dictionary", `{"word":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doDict(h.Add, http.MethodPost, "/v1/dictionary", `{"word"`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDictionaryListAndDelete(t *testing.T) {
	store := &fakeDictStore{}
	h := NewDictionaryHandler(store, speller.NewLexicon())

	doDict(h.Add, http.MethodPost, "/v1/dictionary", `{"word":"lojistik"}`)
	doDict(h.Add, http.MethodPost, "/v1/dictionary", `{"word":"navlun"}`)

	rec := doDict(h.List, http.MethodGet, "/v1/dictionary", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Entries []entryPart `json:"entries"`
		Count   int         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)

	rec = doDict(h.Delete, http.MethodDelete, "/v1/dictionary/1", "", "id", "1")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doDict(h.Delete, http.MethodDelete, "/v1/dictionary/99", "", "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doDict(h.Delete, http.MethodDelete, "/v1/dictionary/abc", "", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDictionaryUnavailableWithoutStore(t *testing.T) {
	h := NewDictionaryHandler(nil, speller.NewLexicon())

	rec := doDict(h.List, http.MethodGet, "/v1/dictionary", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doDict(h.Add, http.MethodPost, "/v1/dictionary", `{"word":"x"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthUnavailableWithoutDB(t *testing.T) {
	h := NewAuthHandler(testCfg(), nil, nil)

	rec := doJSON(h.Register, http.MethodPost, "/v1/auth/register", `{"email":"a@b.c","password":"x"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(h.Login, http.MethodPost, "/v1/auth/login", `{"email":"a@b.c","password":"x"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
