package freelancer

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding_directory_backend/internal/common"
	"wedding_directory_backend/internal/config"
	"wedding_directory_backend/internal/credential"
	"wedding_directory_backend/internal/platform/database/databasetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultImage = "https://img.example.com/default.png"

type fixture struct {
	db          *gorm.DB
	repo        Repository
	credentials credential.Service
	svc         Service
}

func newFixture(t *testing.T, index SearchIndex) *fixture {
	t.Helper()
	db := databasetest.Open(t, &credential.Credential{}, &Freelancer{})
	logger := zap.NewNop()
	creds := credential.NewService(credential.NewGORMRepository(db, logger), credential.NewBcryptHasher(bcrypt.MinCost), logger)
	repo := NewGORMRepository(db, logger)
	if index == nil {
		index = NoopIndex{}
	}
	cfg := &config.Config{DefaultProfileImageURL: defaultImage}
	return &fixture{db: db, repo: repo, credentials: creds, svc: NewService(repo, creds, index, cfg, logger)}
}

func validFields() ProfileFields {
	return ProfileFields{
		Type:        TypePhotographer,
		Specialized: []string{"Candid", "pre-wedding"},
		Rate:        150,
		RateUnit:    RateUnitHour,
		Name:        "Jane Lens",
		Bio:         "Ten years of documentary wedding photography.",
		ShowCase:    "https://janelens.example.com/showcase.jpg",
		SocialMedia: SocialMedia{Instagram: "https://instagram.com/janelens"},
		Contact:     Contact{Email: "jane@example.com"},
		Portfolios: []Portfolio{
			{Title: "Garden wedding", Description: "Outdoor ceremony", URL: "https://janelens.example.com/garden"},
		},
	}
}

func TestCreate_WithoutLogin(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields()})
	require.NoError(t, err)

	f, err := fx.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, f.HasLogin())
	assert.Equal(t, Specializations{"candid", "pre-wedding"}, f.Specialized)
	assert.Equal(t, defaultImage, f.ProfileImage)
	assert.WithinDuration(t, time.Now(), f.CreatedAt, time.Minute)
}

func TestCreate_WithLogin(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields(), Username: "bob", Password: "pw1"})
	require.NoError(t, err)

	f, err := fx.svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, f.HasLogin())

	cred, err := fx.credentials.Verify(ctx, "bob", "pw1")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, cred.ID, *f.LoginID)

	byLogin, err := fx.svc.FindByLoginID(ctx, cred.ID)
	require.NoError(t, err)
	assert.Equal(t, id, byLogin.ID)
}

func TestCreate_DuplicateUsernameStopsCreation(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	_, err := fx.credentials.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields(), Username: "alice", Password: "pw2"})
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)

	var count int64
	require.NoError(t, fx.db.Model(&Freelancer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_InvalidCredentialPair(t *testing.T) {
	fx := newFixture(t, nil)
	_, err := fx.svc.Create(context.Background(), CreateFreelancerRequest{ProfileFields: validFields(), Username: "solo"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentialPair)

	_, err = fx.svc.Create(context.Background(), CreateFreelancerRequest{ProfileFields: validFields(), Password: "pw"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentialPair)
}

func TestCreate_ValidationRules(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	cases := map[string]func(f *ProfileFields){
		"no social media": func(f *ProfileFields) { f.SocialMedia = SocialMedia{} },
		"no complete portfolio": func(f *ProfileFields) {
			f.Portfolios = []Portfolio{{Title: "only a title"}}
		},
		"too many portfolios": func(f *ProfileFields) {
			p := f.Portfolios[0]
			f.Portfolios = []Portfolio{p, p, p, p}
		},
		"unknown specialization": func(f *ProfileFields) { f.Specialized = []string{"underwater"} },
		"too many specializations": func(f *ProfileFields) {
			f.Specialized = []string{"bridal", "natural", "glam", "airbrush", "editorial", "traditional", "candid"}
		},
		"unknown type":      func(f *ProfileFields) { f.Type = "florist" },
		"unknown rate unit": func(f *ProfileFields) { f.RateUnit = "day" },
		"zero rate":         func(f *ProfileFields) { f.Rate = 0 },
		"complete portfolio with bad url": func(f *ProfileFields) {
			f.Portfolios = []Portfolio{{Title: "Beach", Description: "Sunset", URL: "not a url"}}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			fields := validFields()
			mutate(&fields)
			_, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: fields})
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestCreate_DropsIncompletePortfolios(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	fields := validFields()
	fields.Portfolios = append(fields.Portfolios,
		Portfolio{Title: "Draft", URL: "https://x.example.com"},
		Portfolio{Title: "Sketch", URL: "bad"},
	)
	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: fields})
	require.NoError(t, err)

	f, err := fx.svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, f.Portfolios, 1)
	assert.Equal(t, "Garden wedding", f.Portfolios[0].Title)
}

// failingRepo fails every insert.
type failingRepo struct {
	Repository
}

func (failingRepo) Create(context.Context, *Freelancer) error {
	return common.StoreFailure(errors.New("disk full"))
}

func TestCreate_ProfileInsertFailureRemovesNewLogin(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()
	svc := NewService(failingRepo{Repository: fx.repo}, fx.credentials, NoopIndex{}, &config.Config{}, zap.NewNop())

	_, err := svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields(), Username: "bob", Password: "pw1"})
	assert.ErrorIs(t, err, common.ErrStoreFailure)

	cred, err := fx.credentials.Verify(ctx, "bob", "pw1")
	require.NoError(t, err)
	assert.Nil(t, cred, "credential must not survive a failed profile insert")
}

func TestUpdate_NeverTouchesLoginOrCreatedAt(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields(), Username: "bob", Password: "pw1"})
	require.NoError(t, err)
	before, err := fx.svc.GetByID(ctx, id)
	require.NoError(t, err)

	fields := validFields()
	fields.Name = "Jane Lens Studio"
	fields.Rate = 200
	matched, modified, err := fx.svc.Update(ctx, id, UpdateFreelancerRequest{ProfileFields: fields})
	require.NoError(t, err)
	assert.True(t, matched)
	assert.True(t, modified)

	after, err := fx.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Lens Studio", after.Name)
	assert.Equal(t, 200, after.Rate)
	assert.Equal(t, before.LoginID, after.LoginID)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
}

func TestUpdate_MatchedButUnchanged(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	fields := validFields()
	fields.ProfileImage = "https://img.example.com/jane.png"
	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: fields})
	require.NoError(t, err)

	matched, modified, err := fx.svc.Update(ctx, id, UpdateFreelancerRequest{ProfileFields: fields})
	require.NoError(t, err)
	assert.True(t, matched)
	assert.False(t, modified)
}

func TestUpdate_UnknownID(t *testing.T) {
	fx := newFixture(t, nil)
	matched, modified, err := fx.svc.Update(context.Background(), uuid.New(), UpdateFreelancerRequest{ProfileFields: validFields()})
	require.NoError(t, err)
	assert.False(t, matched)
	assert.False(t, modified)
}

func TestRemove_DeletesProfileAndLogin(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields(), Username: "bob", Password: "pw1"})
	require.NoError(t, err)

	deleted, err := fx.svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = fx.svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
	cred, err := fx.credentials.Verify(ctx, "bob", "pw1")
	require.NoError(t, err)
	assert.Nil(t, cred)

	deleted, err = fx.svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRemove_MissingLoginIsNotFatal(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields(), Username: "bob", Password: "pw1"})
	require.NoError(t, err)
	f, err := fx.svc.GetByID(ctx, id)
	require.NoError(t, err)
	_, err = fx.credentials.Remove(ctx, *f.LoginID)
	require.NoError(t, err)

	deleted, err := fx.svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestSearch_Filters(t *testing.T) {
	fx := newFixture(t, nil)
	ctx := context.Background()

	photographer := validFields()
	_, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: photographer})
	require.NoError(t, err)

	artist := validFields()
	artist.Type = TypeMakeupArtist
	artist.Name = "Glow Studio"
	artist.Bio = "Airbrush specialist"
	artist.Specialized = []string{"airbrush", "bridal"}
	artist.Rate = 300
	artist.RateUnit = RateUnitSession
	artist.Portfolios = []Portfolio{{Title: "Beach brides", Description: "Waterproof looks", URL: "https://glow.example.com/beach"}}
	_, err = fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: artist})
	require.NoError(t, err)

	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name  string
		query SearchQuery
		want  []string
	}{
		{"all", SearchQuery{}, []string{"Glow Studio", "Jane Lens"}},
		{"by type", SearchQuery{Type: TypeMakeupArtist}, []string{"Glow Studio"}},
		{"by specialization", SearchQuery{Specialized: []string{"Candid"}}, []string{"Jane Lens"}},
		{"any of specializations", SearchQuery{Specialized: []string{"candid", "bridal"}}, []string{"Glow Studio", "Jane Lens"}},
		{"free text in bio", SearchQuery{Q: "AIRBRUSH"}, []string{"Glow Studio"}},
		{"free text in portfolio", SearchQuery{Q: "garden"}, []string{"Jane Lens"}},
		{"rate range", SearchQuery{MinRate: intPtr(100), MaxRate: intPtr(200), RateUnit: RateUnitHour}, []string{"Jane Lens"}},
		{"rate unit mismatch", SearchQuery{MinRate: intPtr(100), RateUnit: RateUnitSession}, []string{"Glow Studio"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, err := fx.svc.Search(ctx, tc.query)
			require.NoError(t, err)
			names := make([]string, 0, len(results))
			for _, r := range results {
				names = append(names, r.Name)
			}
			assert.ElementsMatch(t, tc.want, names)
		})
	}
}

func TestSearch_RateBoundsNeedUnit(t *testing.T) {
	fx := newFixture(t, nil)
	minRate := 10
	_, err := fx.svc.Search(context.Background(), SearchQuery{MinRate: &minRate})
	assert.ErrorIs(t, err, common.ErrValidation)
}

// stubIndex returns fixed ids or an error.
type stubIndex struct {
	ids     []uuid.UUID
	err     error
	indexed []uuid.UUID
	deleted []uuid.UUID
}

func (s *stubIndex) Enabled() bool { return true }
func (s *stubIndex) Index(_ context.Context, f *Freelancer) error {
	s.indexed = append(s.indexed, f.ID)
	return nil
}
func (s *stubIndex) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}
func (s *stubIndex) Search(context.Context, string) ([]uuid.UUID, error) { return s.ids, s.err }

func TestSearch_UsesIndexAndFallsBack(t *testing.T) {
	idx := &stubIndex{}
	fx := newFixture(t, idx)
	ctx := context.Background()

	id, err := fx.svc.Create(ctx, CreateFreelancerRequest{ProfileFields: validFields()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, idx.indexed)

	// The index decides which profiles match free text.
	idx.ids = []uuid.UUID{id}
	results, err := fx.svc.Search(ctx, SearchQuery{Q: "does not appear in the row"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	idx.ids = nil
	results, err = fx.svc.Search(ctx, SearchQuery{Q: "garden"})
	require.NoError(t, err)
	assert.Empty(t, results)

	// Index failure falls back to SQL matching.
	idx.err = errors.New("connection refused")
	results, err = fx.svc.Search(ctx, SearchQuery{Q: "garden"})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// So does a result set too large for the index to return whole.
	idx.err = ErrTooManyHits
	results, err = fx.svc.Search(ctx, SearchQuery{Q: "garden"})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	_, err = fx.svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, idx.deleted)
}
