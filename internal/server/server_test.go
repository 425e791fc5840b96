package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/apitypes"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/event"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/server"
	internaltesting "github.com/dataferry/dataferry/internal/testing"
	"github.com/dataferry/dataferry/internal/timeline"
)

type fixture struct {
	db   *generated.Client
	srv  *server.HTTPServer
	lab  *generated.Lab
	flat *generated.Repository
	desk *generated.Repository
}

func newFixture(t *testing.T, opts ...server.Option) *fixture {
	t.Helper()

	db := internaltesting.NewTestDB(t)
	lab := internaltesting.SeedLab(t, db, "cortexlab")
	return &fixture{
		db:   db,
		srv:  server.New(db, opts...),
		lab:  lab,
		flat: internaltesting.SeedRepository(t, db, lab, "flatiron", "flatiron-main", "/data/flatiron", false),
		desk: internaltesting.SeedRepository(t, db, lab, "desktop", "desk-01", "/home/alice/data", true),
	}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[apitypes.HealthResponse](t, rec).Status)
}

func TestRegisterCreatesRecordsEverywhere(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/register",
		`{"lab":"cortexlab","repository":"desktop","path":"alf/trials.pqt","file_size":200,"hash":"abcd"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[apitypes.RegisterResponse](t, rec)
	assert.Equal(t, "trials.pqt", resp.Name)
	assert.False(t, resp.Patched)
	require.Len(t, resp.Records, 2)

	byRepo := map[string]apitypes.Record{}
	for _, r := range resp.Records {
		byRepo[r.Repository] = r
	}
	// Existing only where it was announced from.
	assert.True(t, byRepo["desktop"].Exists)
	assert.False(t, byRepo["flatiron"].Exists)
	assert.Equal(t, "alf/trials.pqt", byRepo["flatiron"].RelativePath)

	count := f.db.FileRecord.Query().CountX(context.Background())
	assert.Equal(t, 2, count)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/register", `{"lab":"cortexlab"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/register",
		`{"lab":"nosuchlab","repository":"desktop","path":"a.npy"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[apitypes.ErrorResponse](t, rec).Error, "unknown lab")

	rec = f.do(t, http.MethodPost, "/api/v1/register",
		`{"lab":"cortexlab","repository":"nosuchrepo","path":"a.npy"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[apitypes.ErrorResponse](t, rec).Error, "unknown repository")
}

func TestRegisterPatchResetsOtherCopies(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/register",
		`{"lab":"cortexlab","repository":"desktop","path":"alf/wheel.npy","file_size":100}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[apitypes.RegisterResponse](t, rec)

	// Pretend the reconciler confirmed the authoritative copy since.
	_, err := f.db.FileRecord.Update().
		SetExists(true).
		Save(context.Background())
	require.NoError(t, err)

	rec = f.do(t, http.MethodPost, "/api/v1/register",
		`{"lab":"cortexlab","repository":"desktop","path":"alf/wheel.npy","file_size":150,"hash":"ef01"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[apitypes.RegisterResponse](t, rec)
	assert.True(t, resp.Patched)
	assert.Equal(t, created.ID, resp.ID)

	byRepo := map[string]apitypes.Record{}
	for _, r := range resp.Records {
		byRepo[r.Repository] = r
	}
	assert.True(t, byRepo["desktop"].Exists)
	assert.False(t, byRepo["flatiron"].Exists)

	ds := f.db.Dataset.Query().OnlyX(context.Background())
	require.NotNil(t, ds.FileSize)
	assert.Equal(t, int64(150), *ds.FileSize)
	assert.Equal(t, "ef01", ds.Hash)
}

func TestRegisterProtectedConflict(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/register",
		`{"lab":"cortexlab","repository":"desktop","path":"alf/canonical.npy","protected":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/register",
		`{"lab":"cortexlab","repository":"desktop","path":"alf/canonical.npy"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Nothing was reset.
	existing := f.db.FileRecord.Query().
		Where(filerecord.Exists(true)).
		CountX(context.Background())
	assert.Equal(t, 1, existing)
}

func TestListAndGetDatasets(t *testing.T) {
	f := newFixture(t)
	otherLab := internaltesting.SeedLab(t, f.db, "hippolab")
	internaltesting.SeedDataset(t, f.db, otherLab, "theirs.npy", 10)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "mine.npy", 10)
	internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/mine.npy", false)

	rec := f.do(t, http.MethodGet, "/api/v1/datasets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]apitypes.Dataset](t, rec), 2)

	rec = f.do(t, http.MethodGet, "/api/v1/datasets?lab=cortexlab", "")
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[[]apitypes.Dataset](t, rec)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine.npy", mine[0].Name)
	assert.Equal(t, "cortexlab", mine[0].Lab)
	require.Len(t, mine[0].Records, 1)
	assert.Equal(t, "flatiron", mine[0].Records[0].Repository)

	rec = f.do(t, http.MethodGet, "/api/v1/datasets/"+ds.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ds.ID.String(), decode[apitypes.Dataset](t, rec).ID)

	rec = f.do(t, http.MethodGet, "/api/v1/datasets/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/datasets/notauuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRepositories(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/repositories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	repos := decode[[]apitypes.Repository](t, rec)
	require.Len(t, repos, 2)
	byName := map[string]apitypes.Repository{}
	for _, r := range repos {
		byName[r.Name] = r
	}
	assert.True(t, byName["desktop"].IsPersonal)
	assert.Equal(t, "flatiron-main", byName["flatiron"].EndpointID)
	assert.Equal(t, "cortexlab", byName["flatiron"].Lab)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "a.npy", 10)
	internaltesting.SeedFileRecord(t, f.db, ds, f.desk, "alf/a.npy", true)
	pending := internaltesting.SeedFileRecord(t, f.db, ds, f.flat, "alf/a.npy", false)
	require.NoError(t, f.db.FileRecord.UpdateOne(pending).
		SetStatus(filerecord.StatusPending).
		Exec(context.Background()))

	rec := f.do(t, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[apitypes.Stats](t, rec)
	assert.Equal(t, 1, stats.Datasets)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 1, stats.Existing)
	assert.Equal(t, 2, stats.Repositories)
	assert.Equal(t, 1, stats.ByStatus["pending"])
}

func TestEventsEndpoints(t *testing.T) {
	f := newFixture(t)
	ds := internaltesting.SeedDataset(t, f.db, f.lab, "a.npy", 10)

	_, err := f.db.Event.Create().
		SetType("record.confirmed").
		SetMessage("confirmed").
		SetSubjectType(event.SubjectTypeDataset).
		SetSubjectID(ds.ID.String()).
		SetTimestamp(time.Now()).
		SetCreatedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = f.do(t, http.MethodGet, "/api/v1/datasets/"+ds.ID.String()+"/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)
}

func TestActivity(t *testing.T) {
	activity := timeline.NewRecorder()
	f := newFixture(t, server.WithActivity(activity))

	activity.Record(timeline.Entry{Type: timeline.EntryConfirmed, DatasetID: "ds-1"})
	activity.Record(timeline.Entry{Type: timeline.EntryVanished, DatasetID: "ds-2"})

	rec := f.do(t, http.MethodGet, "/api/v1/activity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]timeline.Entry](t, rec), 2)

	rec = f.do(t, http.MethodGet, "/api/v1/activity?dataset=ds-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]timeline.Entry](t, rec), 1)
}
