package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"dj-site/internal/models"
)

type settingsDocument struct {
	SoundcloudLinks bson.RawValue `bson:"soundcloudLinks"`
	YoutubeLink     string        `bson:"youtubeLink"`
	SiteTitle       string        `bson:"siteTitle"`
	ContactEmail    string        `bson:"contactEmail"`
	MaintenanceMode bool          `bson:"maintenanceMode"`
	Theme           string        `bson:"theme"`
	PrimaryColor    string        `bson:"primaryColor"`
	UpdatedAt       *time.Time    `bson:"updatedAt,omitempty"`
}

// DecodeSettings decodes a stored settings document. soundcloudLinks may be
// either the current list of {title,url} documents or the legacy list of URL
// strings; legacy reports whether any string entry was converted.
func DecodeSettings(raw bson.Raw) (models.SystemSettings, bool, error) {
	var doc settingsDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return models.SystemSettings{}, false, fmt.Errorf("decode settings: %w", err)
	}
	links, legacy, err := decodeMusicLinks(doc.SoundcloudLinks)
	if err != nil {
		return models.SystemSettings{}, false, err
	}
	return models.SystemSettings{
		SoundcloudLinks: links,
		YoutubeLink:     doc.YoutubeLink,
		SiteTitle:       doc.SiteTitle,
		ContactEmail:    doc.ContactEmail,
		MaintenanceMode: doc.MaintenanceMode,
		Theme:           doc.Theme,
		PrimaryColor:    doc.PrimaryColor,
		UpdatedAt:       doc.UpdatedAt,
	}, legacy, nil
}

func decodeMusicLinks(v bson.RawValue) ([]models.MusicLink, bool, error) {
	if v.Type != bson.TypeArray {
		return nil, false, nil
	}
	values, err := v.Array().Values()
	if err != nil {
		return nil, false, fmt.Errorf("decode soundcloudLinks: %w", err)
	}
	links := make([]models.MusicLink, 0, len(values))
	legacy := false
	for _, item := range values {
		switch item.Type {
		case bson.TypeString:
			legacy = true
			links = append(links, models.MusicLink{URL: item.StringValue()})
		case bson.TypeEmbeddedDocument:
			var l models.MusicLink
			if err := item.Unmarshal(&l); err != nil {
				return nil, false, fmt.Errorf("decode soundcloud link: %w", err)
			}
			links = append(links, l)
		default:
			// null and other junk become an empty slot
			legacy = true
			links = append(links, models.MusicLink{})
		}
	}
	return links, legacy, nil
}

type MongoSettingsRepository struct {
	settings *mongo.Collection
}

func NewMongoSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{settings: db.Collection(CollSettings)}
}

// Get reads the settings document under the fixed key. A document written by
// the filterless upsert of older deployments is adopted into the fixed key.
func (r *MongoSettingsRepository) Get(ctx context.Context) (StoredSettings, error) {
	raw, err := r.settings.FindOne(ctx, bson.M{"_id": models.SettingsID}).Raw()
	if err == nil {
		s, legacy, err := DecodeSettings(raw)
		return StoredSettings{Settings: s, Legacy: legacy}, err
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return StoredSettings{}, fmt.Errorf("find settings: %w", err)
	}

	raw, err = r.settings.FindOne(ctx, bson.D{}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return StoredSettings{}, ErrNotFound
	}
	if err != nil {
		return StoredSettings{}, fmt.Errorf("find legacy settings: %w", err)
	}
	return r.adopt(ctx, raw)
}

func (r *MongoSettingsRepository) adopt(ctx context.Context, raw bson.Raw) (StoredSettings, error) {
	s, _, err := DecodeSettings(raw)
	if err != nil {
		return StoredSettings{}, err
	}
	if err := r.Upsert(ctx, s); err != nil {
		return StoredSettings{}, err
	}
	if oldID, lookupErr := raw.LookupErr("_id"); lookupErr == nil {
		if _, err := r.settings.DeleteOne(ctx, bson.M{"_id": oldID}); err != nil {
			return StoredSettings{}, fmt.Errorf("drop legacy settings: %w", err)
		}
	}
	return StoredSettings{Settings: s}, nil
}

func (r *MongoSettingsRepository) Upsert(ctx context.Context, s models.SystemSettings) error {
	set := bson.M{
		"soundcloudLinks": s.SoundcloudLinks,
		"youtubeLink":     s.YoutubeLink,
		"siteTitle":       s.SiteTitle,
		"contactEmail":    s.ContactEmail,
		"maintenanceMode": s.MaintenanceMode,
		"theme":           s.Theme,
		"primaryColor":    s.PrimaryColor,
	}
	if s.UpdatedAt != nil {
		set["updatedAt"] = *s.UpdatedAt
	}
	_, err := r.settings.UpdateOne(
		ctx,
		bson.M{"_id": models.SettingsID},
		bson.M{"$set": set},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (r *MongoSettingsRepository) ReplaceLinks(ctx context.Context, links []models.MusicLink) error {
	res, err := r.settings.UpdateOne(
		ctx,
		bson.M{"_id": models.SettingsID},
		bson.M{"$set": bson.M{"soundcloudLinks": links}},
	)
	if err != nil {
		return fmt.Errorf("replace soundcloud links: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
