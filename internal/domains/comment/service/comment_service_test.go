package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdb-backend/internal/domains/comment"
	"reviewdb-backend/internal/domains/review"
	"reviewdb-backend/internal/shared/access"
)

// ============================================================
// FAKES
// ============================================================

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64]*comment.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1, comments: make(map[int64]*comment.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, cm *comment.Comment) (*comment.Comment, error) {
	cm.ID = f.nextID
	f.nextID++
	cm.PubDate = time.Now()
	cp := *cm
	f.comments[cm.ID] = &cp
	return cm, nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, reviewID, id int64) (*comment.Comment, error) {
	cm, ok := f.comments[id]
	if !ok || cm.ReviewID != reviewID {
		return nil, comment.ErrNotFound
	}
	cp := *cm
	return &cp, nil
}

func (f *fakeCommentRepo) ListByReview(_ context.Context, reviewID int64, limit, offset int) ([]comment.Comment, int64, error) {
	var out []comment.Comment
	for _, cm := range f.comments {
		if cm.ReviewID == reviewID {
			out = append(out, *cm)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCommentRepo) Update(_ context.Context, cm *comment.Comment) error {
	existing, ok := f.comments[cm.ID]
	if !ok || existing.ReviewID != cm.ReviewID {
		return comment.ErrNotFound
	}
	cp := *cm
	f.comments[cm.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, reviewID, id int64) error {
	cm, ok := f.comments[id]
	if !ok || cm.ReviewID != reviewID {
		return comment.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

// fakeReviewRepo knows a single review, id 5 under title 1.
type fakeReviewRepo struct{}

func (fakeReviewRepo) Create(context.Context, *review.Review) (*review.Review, error) {
	panic("not used")
}
func (fakeReviewRepo) GetByID(_ context.Context, titleID, id int64) (*review.Review, error) {
	if titleID == 1 && id == 5 {
		return &review.Review{ID: 5, TitleID: 1, AuthorID: 10}, nil
	}
	return nil, review.ErrNotFound
}
func (fakeReviewRepo) ListByTitle(context.Context, int64, int, int) ([]review.Review, int64, error) {
	panic("not used")
}
func (fakeReviewRepo) ScoresByTitle(context.Context, int64) ([]int, error) {
	panic("not used")
}
func (fakeReviewRepo) ExistsByTitleAndAuthor(context.Context, int64, int64) (bool, error) {
	panic("not used")
}
func (fakeReviewRepo) Update(context.Context, *review.Review) error {
	panic("not used")
}
func (fakeReviewRepo) Delete(context.Context, int64, int64) error {
	panic("not used")
}

func newCommentService() (comment.Service, *fakeCommentRepo) {
	repo := newFakeCommentRepo()
	return NewCommentService(repo, fakeReviewRepo{}), repo
}

var (
	alice = access.Principal{UserID: 20, Username: "alice", Role: access.RoleUser}
	bob   = access.Principal{UserID: 21, Username: "bob", Role: access.RoleUser}
	admin = access.Principal{UserID: 22, Username: "admin", Role: access.RoleAdmin}
)

// ============================================================
// TESTS
// ============================================================

func TestCreateComment(t *testing.T) {
	svc, _ := newCommentService()

	created, err := svc.Create(context.Background(), alice, 1, 5, comment.CreateCommentRequest{
		Text: "agreed",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Author)
	assert.Equal(t, "agreed", created.Text)
}

func TestCreateCommentValidation(t *testing.T) {
	svc, _ := newCommentService()

	_, err := svc.Create(context.Background(), alice, 1, 5, comment.CreateCommentRequest{})
	assert.Error(t, err)
}

func TestCreateCommentReviewScoping(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()

	// Unknown review under the right title.
	_, err := svc.Create(ctx, alice, 1, 99, comment.CreateCommentRequest{Text: "x"})
	assert.ErrorIs(t, err, review.ErrNotFound)

	// Right review id through the wrong title.
	_, err = svc.Create(ctx, alice, 2, 5, comment.CreateCommentRequest{Text: "x"})
	assert.ErrorIs(t, err, review.ErrNotFound)
}

func TestUpdateCommentAuthorization(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, 1, 5, comment.CreateCommentRequest{Text: "mine"})
	require.NoError(t, err)

	text := "edited"
	_, err = svc.Update(ctx, bob, 1, 5, created.ID, comment.UpdateCommentRequest{Text: &text})
	assert.ErrorIs(t, err, access.ErrForbidden)

	updated, err := svc.Update(ctx, alice, 1, 5, created.ID, comment.UpdateCommentRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	svc, repo := newCommentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, 1, 5, comment.CreateCommentRequest{Text: "mine"})
	require.NoError(t, err)

	err = svc.Delete(ctx, bob, 1, 5, created.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	// Admins moderate anyone's comments.
	err = svc.Delete(ctx, admin, 1, 5, created.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.comments)
}

func TestListComments(t *testing.T) {
	svc, _ := newCommentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, 1, 5, comment.CreateCommentRequest{Text: "a"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, 1, 5, comment.CreateCommentRequest{Text: "b"})
	require.NoError(t, err)

	comments, total, err := svc.List(ctx, 1, 5, comment.ListCommentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, comments, 2)
}
