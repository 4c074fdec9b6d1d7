package admin

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionSettings holds a single document with the site's editable settings.
const CollectionSettings = "settings"

// settingsDocID pins the settings to one well-known document so updates are
// an upsert instead of an insert-or-find dance.
const settingsDocID = "site"

var ErrSettings = errors.New("admin.errors.settings")

// Settings is the configurable part of the site the admin console edits.
type Settings struct {
	ContactEmail string `bson:"contact_email" json:"contact_email"`
}

// SettingsStore reads and writes the single settings document.
type SettingsStore interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) error
}

// settingsFilter pins every read and write to the single settings document.
func settingsFilter() bson.M {
	return bson.M{"_id": settingsDocID}
}

// settingsUpdate builds the upsert body. $set leaves fields this service
// does not know about untouched if the document ever grows.
func settingsUpdate(settings Settings) bson.M {
	return bson.M{"$set": settings}
}

type mongoSettingsStore struct {
	coll *mongo.Collection
}

func NewSettingsStore(db *mongo.Database) SettingsStore {
	return &mongoSettingsStore{coll: db.Collection(CollectionSettings)}
}

// Get returns the stored settings, or the zero value when none have been
// saved yet.
func (s *mongoSettingsStore) Get(ctx context.Context) (Settings, error) {
	var settings Settings
	err := s.coll.FindOne(ctx, settingsFilter()).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Settings{}, nil
		}
		return Settings{}, errors.Join(ErrSettings, err)
	}
	return settings, nil
}

func (s *mongoSettingsStore) Update(ctx context.Context, settings Settings) error {
	_, err := s.coll.UpdateOne(ctx,
		settingsFilter(),
		settingsUpdate(settings),
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrSettings, err)
	}
	return nil
}
