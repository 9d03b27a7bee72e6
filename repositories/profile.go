//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=../mocks/mock_profile_repository.go -package=mocks
package repositories

import (
	"context"
	"strings"

	pb "pingly/proto/storage"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"pingly/domain"
)

type IProfileRepository interface {
	UpsertProfile(profile domain.Profile) error
	GetProfile(id string) (domain.Profile, error)
	SearchProfiles(ctx context.Context, query string, excludeIDs []string) ([]domain.Profile, error)
}

// ProfileRepository keeps profiles in BadgerDB (source of truth, keyed
// "profile:{id}") and mirrors the username into a Bluge index for
// substring search.
type ProfileRepository struct {
	db          *badger.DB
	blugeWriter *bluge.Writer
	limit       int
}

func NewProfileRepository(db *badger.DB, blugeWriter *bluge.Writer, limit int) *ProfileRepository {
	return &ProfileRepository{db: db, blugeWriter: blugeWriter, limit: limit}
}

func (p *ProfileRepository) UpsertProfile(profile domain.Profile) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromProfile(profile)))
	if err != nil {
		return err
	}
	err = p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("profile:"+profile.ID), bytes)
	})
	if err != nil {
		return err
	}

	// Username is indexed lowercased so wildcard queries are
	// case-insensitive without a custom analyzer.
	doc := bluge.NewDocument(profile.ID).
		AddField(bluge.NewKeywordField("username", strings.ToLower(profile.Username)).StoreValue())
	return p.blugeWriter.Update(doc.ID(), doc)
}

func (p *ProfileRepository) GetProfile(id string) (domain.Profile, error) {
	var profilePb pb.StoredProfile
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("profile:" + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &profilePb)
		})
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return toProfile(&profilePb), nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

// escapeWildcards neutralizes the wildcard metacharacters so user input
// is always matched literally.
func escapeWildcards(s string) string {
	return wildcardEscaper.Replace(s)
}

// SearchProfiles matches usernames containing the query, excluding the
// given IDs. An empty query matches nobody.
func (p *ProfileRepository) SearchProfiles(ctx context.Context, query string, excludeIDs []string) ([]domain.Profile, error) {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil, nil
	}

	reader, err := p.blugeWriter.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	// The query is a literal substring; any wildcard metacharacters the
	// user typed must not widen the match.
	wildcard := bluge.NewWildcardQuery("*" + escapeWildcards(query) + "*").SetField("username")
	request := bluge.NewTopNSearch(p.limit+len(excludeIDs), wildcard)

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var ids []string
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}

	ids = lo.Filter(ids, func(id string, _ int) bool {
		return !lo.Contains(excludeIDs, id)
	})
	if len(ids) > p.limit {
		ids = ids[:p.limit]
	}

	profiles := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		profile, err := p.GetProfile(id)
		if err != nil {
			// Index ahead of Badger, skip the orphan.
			continue
		}
		// Literal substring check on the stored row keeps the guarantee
		// independent of the index's wildcard syntax.
		if !strings.Contains(strings.ToLower(profile.Username), query) {
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func fromProfile(profile domain.Profile) pb.StoredProfile {
	return pb.StoredProfile{
		Id:       profile.ID,
		Username: profile.Username,
		Email:    profile.Email,
	}
}

func toProfile(profilePb *pb.StoredProfile) domain.Profile {
	return domain.Profile{
		ID:       profilePb.Id,
		Username: profilePb.Username,
		Email:    profilePb.Email,
	}
}
