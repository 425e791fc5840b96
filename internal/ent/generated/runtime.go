// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/event"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/dataferry/dataferry/internal/ent/schema"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	datasetMixin := schema.Dataset{}.Mixin()
	datasetMixinFields0 := datasetMixin[0].Fields()
	_ = datasetMixinFields0
	datasetFields := schema.Dataset{}.Fields()
	_ = datasetFields
	// datasetDescCreatedAt is the schema descriptor for created_at field.
	datasetDescCreatedAt := datasetMixinFields0[0].Descriptor()
	// dataset.DefaultCreatedAt holds the default value on creation for the created_at field.
	dataset.DefaultCreatedAt = datasetDescCreatedAt.Default.(func() time.Time)
	// datasetDescUpdatedAt is the schema descriptor for updated_at field.
	datasetDescUpdatedAt := datasetMixinFields0[1].Descriptor()
	// dataset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dataset.DefaultUpdatedAt = datasetDescUpdatedAt.Default.(func() time.Time)
	// dataset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dataset.UpdateDefaultUpdatedAt = datasetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// datasetDescName is the schema descriptor for name field.
	datasetDescName := datasetFields[1].Descriptor()
	// dataset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	dataset.NameValidator = datasetDescName.Validators[0].(func(string) error)
	// datasetDescHash is the schema descriptor for hash field.
	datasetDescHash := datasetFields[3].Descriptor()
	// dataset.DefaultHash holds the default value on creation for the hash field.
	dataset.DefaultHash = datasetDescHash.Default.(string)
	// datasetDescRevision is the schema descriptor for revision field.
	datasetDescRevision := datasetFields[4].Descriptor()
	// dataset.DefaultRevision holds the default value on creation for the revision field.
	dataset.DefaultRevision = datasetDescRevision.Default.(string)
	// datasetDescIsDefaultRevision is the schema descriptor for is_default_revision field.
	datasetDescIsDefaultRevision := datasetFields[5].Descriptor()
	// dataset.DefaultIsDefaultRevision holds the default value on creation for the is_default_revision field.
	dataset.DefaultIsDefaultRevision = datasetDescIsDefaultRevision.Default.(bool)
	// datasetDescProtected is the schema descriptor for protected field.
	datasetDescProtected := datasetFields[6].Descriptor()
	// dataset.DefaultProtected holds the default value on creation for the protected field.
	dataset.DefaultProtected = datasetDescProtected.Default.(bool)
	// datasetDescID is the schema descriptor for id field.
	datasetDescID := datasetFields[0].Descriptor()
	// dataset.DefaultID holds the default value on creation for the id field.
	dataset.DefaultID = datasetDescID.Default.(func() uuid.UUID)
	eventMixin := schema.Event{}.Mixin()
	eventMixinFields0 := eventMixin[0].Fields()
	_ = eventMixinFields0
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescMessage is the schema descriptor for message field.
	eventDescMessage := eventFields[1].Descriptor()
	// event.DefaultMessage holds the default value on creation for the message field.
	event.DefaultMessage = eventDescMessage.Default.(string)
	// eventDescRepositoryName is the schema descriptor for repository_name field.
	eventDescRepositoryName := eventFields[4].Descriptor()
	// event.DefaultRepositoryName holds the default value on creation for the repository_name field.
	event.DefaultRepositoryName = eventDescRepositoryName.Default.(string)
	// eventDescDetails is the schema descriptor for details field.
	eventDescDetails := eventFields[5].Descriptor()
	// event.DefaultDetails holds the default value on creation for the details field.
	event.DefaultDetails = eventDescDetails.Default.(string)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventMixinFields0[0].Descriptor()
	// event.DefaultID holds the default value on creation for the id field.
	event.DefaultID = eventDescID.Default.(func() ulid.ULID)
	filerecordMixin := schema.FileRecord{}.Mixin()
	filerecordMixinFields0 := filerecordMixin[0].Fields()
	_ = filerecordMixinFields0
	filerecordMixinFields1 := filerecordMixin[1].Fields()
	_ = filerecordMixinFields1
	filerecordFields := schema.FileRecord{}.Fields()
	_ = filerecordFields
	// filerecordDescCreatedAt is the schema descriptor for created_at field.
	filerecordDescCreatedAt := filerecordMixinFields1[0].Descriptor()
	// filerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	filerecord.DefaultCreatedAt = filerecordDescCreatedAt.Default.(func() time.Time)
	// filerecordDescUpdatedAt is the schema descriptor for updated_at field.
	filerecordDescUpdatedAt := filerecordMixinFields1[1].Descriptor()
	// filerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	filerecord.DefaultUpdatedAt = filerecordDescUpdatedAt.Default.(func() time.Time)
	// filerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	filerecord.UpdateDefaultUpdatedAt = filerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// filerecordDescRelativePath is the schema descriptor for relative_path field.
	filerecordDescRelativePath := filerecordFields[2].Descriptor()
	// filerecord.RelativePathValidator is a validator for the "relative_path" field. It is called by the builders before save.
	filerecord.RelativePathValidator = filerecordDescRelativePath.Validators[0].(func(string) error)
	// filerecordDescExists is the schema descriptor for exists field.
	filerecordDescExists := filerecordFields[3].Descriptor()
	// filerecord.DefaultExists holds the default value on creation for the exists field.
	filerecord.DefaultExists = filerecordDescExists.Default.(bool)
	// filerecordDescID is the schema descriptor for id field.
	filerecordDescID := filerecordMixinFields0[0].Descriptor()
	// filerecord.DefaultID holds the default value on creation for the id field.
	filerecord.DefaultID = filerecordDescID.Default.(func() ulid.ULID)
	labMixin := schema.Lab{}.Mixin()
	labMixinFields0 := labMixin[0].Fields()
	_ = labMixinFields0
	labMixinFields1 := labMixin[1].Fields()
	_ = labMixinFields1
	labFields := schema.Lab{}.Fields()
	_ = labFields
	// labDescCreatedAt is the schema descriptor for created_at field.
	labDescCreatedAt := labMixinFields1[0].Descriptor()
	// lab.DefaultCreatedAt holds the default value on creation for the created_at field.
	lab.DefaultCreatedAt = labDescCreatedAt.Default.(func() time.Time)
	// labDescUpdatedAt is the schema descriptor for updated_at field.
	labDescUpdatedAt := labMixinFields1[1].Descriptor()
	// lab.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lab.DefaultUpdatedAt = labDescUpdatedAt.Default.(func() time.Time)
	// lab.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lab.UpdateDefaultUpdatedAt = labDescUpdatedAt.UpdateDefault.(func() time.Time)
	// labDescName is the schema descriptor for name field.
	labDescName := labFields[0].Descriptor()
	// lab.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lab.NameValidator = labDescName.Validators[0].(func(string) error)
	// labDescID is the schema descriptor for id field.
	labDescID := labMixinFields0[0].Descriptor()
	// lab.DefaultID holds the default value on creation for the id field.
	lab.DefaultID = labDescID.Default.(func() ulid.ULID)
	repositoryMixin := schema.Repository{}.Mixin()
	repositoryMixinFields0 := repositoryMixin[0].Fields()
	_ = repositoryMixinFields0
	repositoryMixinFields1 := repositoryMixin[1].Fields()
	_ = repositoryMixinFields1
	repositoryFields := schema.Repository{}.Fields()
	_ = repositoryFields
	// repositoryDescCreatedAt is the schema descriptor for created_at field.
	repositoryDescCreatedAt := repositoryMixinFields1[0].Descriptor()
	// repository.DefaultCreatedAt holds the default value on creation for the created_at field.
	repository.DefaultCreatedAt = repositoryDescCreatedAt.Default.(func() time.Time)
	// repositoryDescUpdatedAt is the schema descriptor for updated_at field.
	repositoryDescUpdatedAt := repositoryMixinFields1[1].Descriptor()
	// repository.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	repository.DefaultUpdatedAt = repositoryDescUpdatedAt.Default.(func() time.Time)
	// repository.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	repository.UpdateDefaultUpdatedAt = repositoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// repositoryDescName is the schema descriptor for name field.
	repositoryDescName := repositoryFields[0].Descriptor()
	// repository.NameValidator is a validator for the "name" field. It is called by the builders before save.
	repository.NameValidator = repositoryDescName.Validators[0].(func(string) error)
	// repositoryDescRootPath is the schema descriptor for root_path field.
	repositoryDescRootPath := repositoryFields[1].Descriptor()
	// repository.DefaultRootPath holds the default value on creation for the root_path field.
	repository.DefaultRootPath = repositoryDescRootPath.Default.(string)
	// repositoryDescEndpointID is the schema descriptor for endpoint_id field.
	repositoryDescEndpointID := repositoryFields[2].Descriptor()
	// repository.DefaultEndpointID holds the default value on creation for the endpoint_id field.
	repository.DefaultEndpointID = repositoryDescEndpointID.Default.(string)
	// repositoryDescIsPersonal is the schema descriptor for is_personal field.
	repositoryDescIsPersonal := repositoryFields[3].Descriptor()
	// repository.DefaultIsPersonal holds the default value on creation for the is_personal field.
	repository.DefaultIsPersonal = repositoryDescIsPersonal.Default.(bool)
	// repositoryDescID is the schema descriptor for id field.
	repositoryDescID := repositoryMixinFields0[0].Descriptor()
	// repository.DefaultID holds the default value on creation for the id field.
	repository.DefaultID = repositoryDescID.Default.(func() ulid.ULID)
}
