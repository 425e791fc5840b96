package server

import (
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"github.com/dataferry/dataferry/apitypes"
	"github.com/dataferry/dataferry/internal/ent/generated"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/dataferry/dataferry/internal/events"
	"github.com/dataferry/dataferry/internal/paths"
)

// registerHandler announces a file. The first registration creates the
// dataset and one record per lab repository, existing only at the announcing
// repository. Registering the same (lab, name, path) again is a patch: the
// dataset's metadata is updated and every other copy is reset to
// wanted-but-absent so the next passes re-replicate the new content.
//
//nolint:gocognit // create and patch share validation and response building
func (s *HTTPServer) registerHandler(c echo.Context) error {
	var req apitypes.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "invalid request body"})
	}
	if req.Lab == "" || req.Repository == "" || req.Path == "" {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "lab, repository and path are required"})
	}

	ctx := c.Request().Context()
	rel := paths.Normalize(req.Path)
	name := req.Name
	if name == "" {
		name = path.Base(rel)
	}

	l, err := s.db.Lab.Query().Where(lab.Name(req.Lab)).Only(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "unknown lab"})
	}

	announcing, err := s.db.Repository.Query().
		Where(repository.Name(req.Repository), repository.HasLabWith(lab.ID(l.ID))).
		Only(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apitypes.ErrorResponse{Error: "unknown repository"})
	}

	repos, err := s.db.Repository.Query().
		Where(repository.HasLabWith(lab.ID(l.ID))).
		All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list lab repositories")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "registration failed"})
	}

	existing, err := s.db.Dataset.Query().
		Where(
			dataset.Name(name),
			dataset.HasLabWith(lab.ID(l.ID)),
			dataset.HasFileRecordsWith(filerecord.RelativePath(rel)),
		).
		First(ctx)
	if err != nil && !generated.IsNotFound(err) {
		s.logger.Error().Err(err).Msg("failed to look up existing dataset")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "registration failed"})
	}

	if existing != nil {
		if existing.Protected {
			return c.JSON(http.StatusConflict, apitypes.ErrorResponse{
				Error: "dataset is protected and rejects overwrite",
			})
		}
		return s.patchDataset(c, existing, announcing, repos, rel, req)
	}

	create := s.db.Dataset.Create().
		SetName(name).
		SetLabID(l.ID).
		SetHash(req.Hash).
		SetRevision(req.Revision).
		SetProtected(req.Protected)
	if req.FileSize != nil {
		create.SetFileSize(*req.FileSize)
	}

	ds, err := create.Save(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create dataset")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "registration failed"})
	}

	resp := apitypes.RegisterResponse{ID: ds.ID.String(), Name: ds.Name}
	for _, repo := range repos {
		rec, recErr := s.db.FileRecord.Create().
			SetDatasetID(ds.ID).
			SetRepositoryID(repo.ID).
			SetRelativePath(rel).
			SetExists(repo.ID == announcing.ID).
			Save(ctx)
		if recErr != nil {
			s.logger.Error().Err(recErr).Str("repository", repo.Name).Msg("failed to create file record")
			return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "registration failed"})
		}
		resp.Records = append(resp.Records, apitypes.Record{
			ID:           rec.ID.String(),
			Repository:   repo.Name,
			RelativePath: rec.RelativePath,
			Exists:       rec.Exists,
		})
	}

	s.logger.Info().
		Str("dataset", ds.Name).
		Str("lab", l.Name).
		Str("repository", announcing.Name).
		Int("records", len(resp.Records)).
		Msg("dataset registered")
	s.publish(events.Event{
		Type:    events.DatasetRegistered,
		Subject: ds,
		Data:    map[string]any{"lab": l.Name, "repository": announcing.Name},
	})

	return c.JSON(http.StatusCreated, resp)
}

// patchDataset re-announces an unprotected dataset: metadata is updated and
// every copy outside the announcing repository goes back to
// wanted-but-absent.
func (s *HTTPServer) patchDataset(
	c echo.Context,
	ds *generated.Dataset,
	announcing *generated.Repository,
	repos []*generated.Repository,
	rel string,
	req apitypes.RegisterRequest,
) error {
	ctx := c.Request().Context()

	update := s.db.Dataset.UpdateOneID(ds.ID).
		SetProtected(req.Protected)
	if req.FileSize != nil {
		update.SetFileSize(*req.FileSize)
	}
	if req.Hash != "" {
		update.SetHash(req.Hash)
	}
	if req.Revision != "" {
		update.SetRevision(req.Revision)
	}

	ds, err := update.Save(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to patch dataset")
		return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "registration failed"})
	}

	resp := apitypes.RegisterResponse{ID: ds.ID.String(), Name: ds.Name, Patched: true}
	for _, repo := range repos {
		rec, recErr := s.db.FileRecord.Query().
			Where(
				filerecord.DatasetID(ds.ID),
				filerecord.RepositoryID(repo.ID),
				filerecord.RelativePath(rel),
			).
			First(ctx)
		switch {
		case generated.IsNotFound(recErr):
			// A repository added since the first registration.
			rec, recErr = s.db.FileRecord.Create().
				SetDatasetID(ds.ID).
				SetRepositoryID(repo.ID).
				SetRelativePath(rel).
				SetExists(repo.ID == announcing.ID).
				Save(ctx)
		case recErr == nil:
			rec, recErr = s.db.FileRecord.UpdateOne(rec).
				SetExists(repo.ID == announcing.ID).
				SetStatus(filerecord.StatusNone).
				Save(ctx)
		}
		if recErr != nil {
			s.logger.Error().Err(recErr).Str("repository", repo.Name).Msg("failed to reset file record")
			return c.JSON(http.StatusInternalServerError, apitypes.ErrorResponse{Error: "registration failed"})
		}
		resp.Records = append(resp.Records, apitypes.Record{
			ID:           rec.ID.String(),
			Repository:   repo.Name,
			RelativePath: rec.RelativePath,
			Exists:       rec.Exists,
		})
	}

	s.logger.Info().
		Str("dataset", ds.Name).
		Str("repository", announcing.Name).
		Msg("dataset patched, other copies reset for re-replication")
	s.publish(events.Event{
		Type:    events.DatasetPatched,
		Subject: ds,
		Data:    map[string]any{"repository": announcing.Name},
	})

	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) publish(ev events.Event) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}
