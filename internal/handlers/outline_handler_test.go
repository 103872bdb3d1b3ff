package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mghazyfawazh/outlines/internal/catalog"
	"github.com/mghazyfawazh/outlines/internal/handlers"
	"github.com/mghazyfawazh/outlines/internal/middleware"
	"github.com/mghazyfawazh/outlines/internal/models"
	"github.com/mghazyfawazh/outlines/internal/outline"
	"github.com/mghazyfawazh/outlines/internal/repo"
	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

const apiKey = "test-key"

const sectionDoc = `{
	"info": {"name": "CMPT 120", "units": "3", "outlinePath": "2024/fall/cmpt/120/d100"},
	"courseSchedule": [
		{"days": "Mo, We", "startTime": "10:30", "endTime": "12:20", "buildingCode": "AQ", "roomNumber": "3150"},
		{"days": "Fr", "startTime": "12:30", "endTime": "13:20", "buildingCode": "WMC", "roomNumber": "2830"}
	]
}`

type fakeCatalog struct {
	docs map[string]string
}

func (f *fakeCatalog) Options(_ context.Context, path []string) ([]models.Option, error) {
	raw, err := f.Raw(context.Background(), path)
	if err != nil {
		return nil, err
	}
	var opts []models.Option
	return opts, json.Unmarshal(raw, &opts)
}

func (f *fakeCatalog) Raw(_ context.Context, path []string) ([]byte, error) {
	key := strings.Join(path, "/")
	doc, ok := f.docs[key]
	if !ok {
		return nil, &catalog.StatusError{URL: key, Code: http.StatusNotFound}
	}
	return []byte(doc), nil
}

func (f *fakeCatalog) Outline(ctx context.Context, path []string) (*models.Outline, error) {
	raw, err := f.Raw(ctx, path)
	if err != nil {
		return nil, err
	}
	return outline.Parse(raw)
}

type memStore struct {
	mu   sync.Mutex
	rows []models.SavedOutline
}

func (m *memStore) Insert(_ context.Context, s *models.SavedOutline) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *s)
	return nil
}

func (m *memStore) FindAll(_ context.Context) ([]models.SavedOutline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.SavedOutline{}, m.rows...), nil
}

func (m *memStore) FindByUUID(_ context.Context, id string) (*models.SavedOutline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].UUID == id {
			s := m.rows[i]
			return &s, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) UpdateByUUID(_ context.Context, id string, update bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].UUID != id {
			continue
		}
		row := &m.rows[i]
		for k, v := range update {
			switch k {
			case "outline_path":
				row.OutlinePath = v.(string)
			case "name":
				row.Name = v.(string)
			case "title":
				row.Title = v.(string)
			case "document":
				row.Document = v.(string)
			case "updated_at":
				at := v.(time.Time)
				row.UpdatedAt = &at
			}
		}
		return nil
	}
	return repo.ErrNotFound
}

func (m *memStore) DeleteByUUID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].UUID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func setupTest() (*gin.Engine, *memStore) {
	r, store, _ := setupTestWithCatalog()
	return r, store
}

func setupTestWithCatalog() (*gin.Engine, *memStore, *fakeCatalog) {
	gin.SetMode(gin.TestMode)
	cat := &fakeCatalog{docs: map[string]string{
		"":                        `[{"text": "2024", "value": "2024"}]`,
		"2024/fall/cmpt/120":      `[{"text": "D100", "value": "d100"}]`,
		"2024/fall/cmpt/120/d100": sectionDoc,
		"2024/fall/cmpt/999/d100": `{"info": {"name": "CMPT 999"}}`,
		"2024/fall/cmpt/666/d100": `{"courseSchedule": [{"days": "Mo", "startTime": "25:00", "endTime": "26:00"}]}`,
	}}
	store := &memStore{}
	h := handlers.NewHandler(cat, store, weekgrid.LastWins)
	return handlers.NewRouter(h, apiKey), store, cat
}

func do(r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set(middleware.APIKeyHeader, apiKey)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestPingNeedsNoKey(t *testing.T) {
	r, _ := setupTest()
	req, _ := http.NewRequest("GET", "/ping", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, 200, resp.Code)
}

func TestUnauthorized(t *testing.T) {
	r, _ := setupTest()
	req, _ := http.NewRequest("GET", "/catalog", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, 401, resp.Code)
}

func TestListCatalog(t *testing.T) {
	r, _ := setupTest()

	resp := do(r, "GET", "/catalog", "")
	require.Equal(t, 200, resp.Code)
	var opts []models.Option
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &opts))
	assert.Equal(t, []models.Option{{Text: "2024", Value: "2024"}}, opts)

	assert.Equal(t, 404, do(r, "GET", "/catalog?path=1999", "").Code)
}

func TestGrid(t *testing.T) {
	r, _ := setupTest()

	resp := do(r, "GET", "/grid?path=2024/FALL/cmpt/120/d100", "")
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

	var g weekgrid.Grid
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &g))
	assert.Equal(t, 10, g.EarliestHour)
	require.NotNil(t, g.Cells[weekgrid.Fri])
	assert.Equal(t, 2, g.Cells[weekgrid.Fri].Padding)
	assert.Nil(t, g.Cells[weekgrid.Tue])
}

func TestGrid_Formats(t *testing.T) {
	r, _ := setupTest()

	resp := do(r, "GET", "/grid?path=2024/fall/cmpt/120/d100&format=yaml", "")
	require.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "earliest_hour: 10")

	resp = do(r, "GET", "/grid?path=2024/fall/cmpt/120/d100&format=text", "")
	require.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "AQ3150")

	assert.Equal(t, 400, do(r, "GET", "/grid?path=2024/fall/cmpt/120/d100&format=csv", "").Code)
}

func TestGrid_Errors(t *testing.T) {
	r, _ := setupTest()

	assert.Equal(t, 400, do(r, "GET", "/grid", "").Code)
	assert.Equal(t, 400, do(r, "GET", "/grid?path=2024/fall/cmpt/120", "").Code)
	assert.Equal(t, 204, do(r, "GET", "/grid?path=2024/fall/cmpt/999/d100", "").Code)
	assert.Equal(t, 422, do(r, "GET", "/grid?path=2024/fall/cmpt/666/d100", "").Code)
	assert.Equal(t, 404, do(r, "GET", "/grid?path=2024/fall/cmpt/000/d100", "").Code)
}

func TestSavedLifecycle(t *testing.T) {
	r, store := setupTest()

	resp := do(r, "POST", "/saved", `{"path": "2024/fall/cmpt/120/d100"}`)
	require.Equal(t, 201, resp.Code)
	var saved models.SavedOutline
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))
	assert.Equal(t, "CMPT 120", saved.Name)
	assert.NotEmpty(t, saved.UUID)
	assert.Len(t, store.rows, 1)

	resp = do(r, "GET", "/saved", "")
	require.Equal(t, 200, resp.Code)
	var all []models.SavedOutline
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	resp = do(r, "GET", "/saved/"+saved.UUID, "")
	require.Equal(t, 200, resp.Code)

	resp = do(r, "GET", "/saved/"+saved.UUID+"/schedule.xlsx", "")
	require.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "cmpt_120.xlsx")
	f, err := excelize.OpenReader(bytes.NewReader(resp.Body.Bytes()))
	require.NoError(t, err)
	v, err := f.GetCellValue("Schedule", "A2")
	require.NoError(t, err)
	assert.Equal(t, "AQ3150", v)

	assert.Equal(t, 200, do(r, "DELETE", "/saved/"+saved.UUID, "").Code)
	assert.Equal(t, 404, do(r, "DELETE", "/saved/"+saved.UUID, "").Code)
	assert.Equal(t, 404, do(r, "GET", "/saved/"+saved.UUID, "").Code)
}

func TestSave_Rejects(t *testing.T) {
	r, store := setupTest()

	assert.Equal(t, 400, do(r, "POST", "/saved", `{}`).Code)
	assert.Equal(t, 400, do(r, "POST", "/saved", `{"path": "2024/fall/cmpt/120"}`).Code)
	assert.Equal(t, 404, do(r, "POST", "/saved", `{"path": "2024/fall/cmpt/000/d100"}`).Code)
	assert.Empty(t, store.rows)
}

func TestSave_NormalizesPath(t *testing.T) {
	r, store := setupTest()

	resp := do(r, "POST", "/saved", `{"path": "/2024/Fall//CMPT/120/D100/"}`)
	require.Equal(t, 201, resp.Code)
	require.Len(t, store.rows, 1)
	assert.Equal(t, "2024/fall/cmpt/120/d100", store.rows[0].Path)
}

func TestGrid_UndecodableOutline(t *testing.T) {
	r, _, cat := setupTestWithCatalog()
	cat.docs["2024/fall/cmpt/777/d100"] = `{"info": 7}`

	assert.Equal(t, 400, do(r, "GET", "/grid?path=2024/fall/cmpt/777/d100", "").Code)
}

func TestRefresh(t *testing.T) {
	r, store, cat := setupTestWithCatalog()

	resp := do(r, "POST", "/saved", `{"path": "2024/fall/cmpt/120/d100"}`)
	require.Equal(t, 201, resp.Code)
	var saved models.SavedOutline
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))
	assert.Nil(t, saved.UpdatedAt)

	cat.docs["2024/fall/cmpt/120/d100"] = strings.Replace(sectionDoc, `"units": "3"`, `"units": "3", "title": "Intro to CS"`, 1)
	resp = do(r, "PUT", "/saved/"+saved.UUID, "")
	require.Equal(t, 200, resp.Code)
	var fresh models.SavedOutline
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fresh))
	assert.Equal(t, saved.UUID, fresh.UUID)
	assert.Equal(t, "Intro to CS", fresh.Title)
	assert.NotNil(t, fresh.UpdatedAt)

	require.Len(t, store.rows, 1)
	assert.Equal(t, "Intro to CS", store.rows[0].Title)
	assert.Contains(t, store.rows[0].Document, "Intro to CS")
	assert.Equal(t, saved.CreatedAt.Unix(), store.rows[0].CreatedAt.Unix())

	assert.Equal(t, 404, do(r, "PUT", "/saved/missing", "").Code)

	delete(cat.docs, "2024/fall/cmpt/120/d100")
	assert.Equal(t, 404, do(r, "PUT", "/saved/"+saved.UUID, "").Code)
}
