package testing

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/ent/generated"
)

// SeedLab creates a lab row. An empty name gets a random one.
func SeedLab(t *testing.T, db *generated.Client, name string) *generated.Lab {
	t.Helper()

	if name == "" {
		name = gofakeit.Noun() + "lab"
	}

	lab, err := db.Lab.Create().
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return lab
}

// SeedRepository creates a repository row bound to a lab.
func SeedRepository(
	t *testing.T,
	db *generated.Client,
	lab *generated.Lab,
	name, endpointID, rootPath string,
	personal bool,
) *generated.Repository {
	t.Helper()

	create := db.Repository.Create().
		SetName(name).
		SetEndpointID(endpointID).
		SetRootPath(rootPath).
		SetIsPersonal(personal)
	if lab != nil {
		create.SetLabID(lab.ID)
	}

	repo, err := create.Save(context.Background())
	require.NoError(t, err)
	return repo
}

// SeedDataset creates a dataset row. Size may be negative to leave the
// declared size unset.
func SeedDataset(
	t *testing.T,
	db *generated.Client,
	lab *generated.Lab,
	name string,
	size int64,
) *generated.Dataset {
	t.Helper()

	if name == "" {
		name = gofakeit.Noun() + ".npy"
	}

	create := db.Dataset.Create().SetName(name)
	if size >= 0 {
		create.SetFileSize(size)
	}
	if lab != nil {
		create.SetLabID(lab.ID)
	}

	ds, err := create.Save(context.Background())
	require.NoError(t, err)
	return ds
}

// SeedFileRecord creates a file record placing a dataset on a repository.
func SeedFileRecord(
	t *testing.T,
	db *generated.Client,
	ds *generated.Dataset,
	repo *generated.Repository,
	relativePath string,
	exists bool,
) *generated.FileRecord {
	t.Helper()

	fr, err := db.FileRecord.Create().
		SetDatasetID(ds.ID).
		SetRepositoryID(repo.ID).
		SetRelativePath(relativePath).
		SetExists(exists).
		Save(context.Background())
	require.NoError(t, err)
	return fr
}
