package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/repositories"

	"gorm.io/gorm"
)

var errNotImplemented = errors.New("not implemented")

type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeEventRepo struct {
	events  map[uint]models.Event
	updates map[uint]map[string]interface{}
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:  make(map[uint]models.Event),
		updates: make(map[uint]map[string]interface{}),
	}
}

func (r *fakeEventRepo) Create(_ context.Context, _ *gorm.DB, event *models.Event) error {
	if event.ID == 0 {
		event.ID = uint(len(r.events) + 1)
	}
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) GetActiveByID(_ context.Context, _ *gorm.DB, eventID uint) (models.Event, error) {
	event, ok := r.events[eventID]
	if !ok || !event.IsActive {
		return models.Event{}, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (r *fakeEventRepo) GetActiveDetail(context.Context, *gorm.DB, uint) (repositories.EventListRow, error) {
	return repositories.EventListRow{}, errNotImplemented
}

func (r *fakeEventRepo) ListActive(context.Context, *gorm.DB) ([]repositories.EventListRow, error) {
	return nil, errNotImplemented
}

func (r *fakeEventRepo) UpdateByID(_ context.Context, _ *gorm.DB, eventID uint, updates map[string]interface{}) (bool, error) {
	event, ok := r.events[eventID]
	if !ok || !event.IsActive {
		return false, nil
	}
	r.updates[eventID] = updates
	return true, nil
}

func (r *fakeEventRepo) DeactivateByID(_ context.Context, _ *gorm.DB, eventID uint) (bool, error) {
	event, ok := r.events[eventID]
	if !ok || !event.IsActive {
		return false, nil
	}
	event.IsActive = false
	r.events[eventID] = event
	return true, nil
}

type fakeMediaRepo struct {
	created    []models.Media
	nextID     uint
	failCreate bool
	media      map[uint]models.Media
	viewCounts map[uint]int64
	lastList   repositories.ListMediaInput
	listRows   []repositories.MediaListRow
	total      int64
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{
		nextID:     1,
		media:      make(map[uint]models.Media),
		viewCounts: make(map[uint]int64),
	}
}

func (r *fakeMediaRepo) Create(_ context.Context, _ *gorm.DB, media *models.Media) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	if media.ID == 0 {
		media.ID = r.nextID
		r.nextID++
	}
	r.created = append(r.created, *media)
	r.media[media.ID] = *media
	return nil
}

func (r *fakeMediaRepo) GetApprovedByID(_ context.Context, _ *gorm.DB, mediaID uint) (models.Media, error) {
	media, ok := r.media[mediaID]
	if !ok || !media.IsApproved {
		return models.Media{}, gorm.ErrRecordNotFound
	}
	return media, nil
}

func (r *fakeMediaRepo) GetApprovedDetail(_ context.Context, _ *gorm.DB, mediaID uint) (repositories.MediaListRow, error) {
	media, ok := r.media[mediaID]
	if !ok || !media.IsApproved {
		return repositories.MediaListRow{}, gorm.ErrRecordNotFound
	}
	media.ViewCount = r.viewCounts[mediaID]
	return repositories.MediaListRow{Media: media}, nil
}

func (r *fakeMediaRepo) CountApproved(context.Context, *gorm.DB, repositories.MediaFilter) (int64, error) {
	return r.total, nil
}

func (r *fakeMediaRepo) ListApproved(_ context.Context, _ *gorm.DB, in repositories.ListMediaInput) ([]repositories.MediaListRow, error) {
	r.lastList = in
	return r.listRows, nil
}

func (r *fakeMediaRepo) IncrementViewCount(_ context.Context, _ *gorm.DB, mediaID uint) error {
	r.viewCounts[mediaID]++
	return nil
}

type fakeLikeRepo struct {
	rows map[[2]uint]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{rows: make(map[[2]uint]bool)}
}

func (r *fakeLikeRepo) DeleteByKey(_ context.Context, _ *gorm.DB, mediaID uint, userID uint) (bool, error) {
	key := [2]uint{mediaID, userID}
	if !r.rows[key] {
		return false, nil
	}
	delete(r.rows, key)
	return true, nil
}

func (r *fakeLikeRepo) InsertIfAbsent(_ context.Context, _ *gorm.DB, like *models.MediaLike) (bool, error) {
	key := [2]uint{like.MediaID, like.UserID}
	if r.rows[key] {
		return false, nil
	}
	r.rows[key] = true
	return true, nil
}

func (r *fakeLikeRepo) CountByMedia(_ context.Context, _ *gorm.DB, mediaID uint) (int64, error) {
	var count int64
	for key := range r.rows {
		if key[0] == mediaID {
			count++
		}
	}
	return count, nil
}

type fakeTagRepo struct {
	rows map[[2]uint]models.MediaTag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{rows: make(map[[2]uint]models.MediaTag)}
}

func (r *fakeTagRepo) Upsert(_ context.Context, _ *gorm.DB, tag *models.MediaTag) error {
	r.rows[[2]uint{tag.MediaID, tag.TaggedUserID}] = *tag
	return nil
}

func (r *fakeTagRepo) ListByMedia(_ context.Context, _ *gorm.DB, mediaID uint) ([]models.MediaTag, error) {
	var tags []models.MediaTag
	for key, tag := range r.rows {
		if key[0] == mediaID {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

type fakeUserRepo struct {
	usersByID    map[uint]models.User
	usersByEmail map[string]models.User
	nextID       uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByID:    make(map[uint]models.User),
		usersByEmail: make(map[string]models.User),
		nextID:       1,
	}
}

func (r *fakeUserRepo) add(user models.User) models.User {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	r.usersByID[user.ID] = user
	r.usersByEmail[user.Email] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *models.User) error {
	*user = r.add(*user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, userID uint) (models.User, error) {
	user, ok := r.usersByID[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ *gorm.DB, email string) (models.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetActiveByID(_ context.Context, _ *gorm.DB, userID uint) (models.User, error) {
	user, ok := r.usersByID[userID]
	if !ok || !user.IsActive {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) CountByEmailOrUsername(_ context.Context, _ *gorm.DB, email string, username string) (int64, error) {
	var count int64
	for _, user := range r.usersByID {
		if user.Email == email || user.Username == username {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) ListAll(context.Context, *gorm.DB) ([]repositories.UserListRow, error) {
	return nil, errNotImplemented
}

func (r *fakeUserRepo) ListActive(context.Context, *gorm.DB) ([]models.User, error) {
	var users []models.User
	for _, user := range r.usersByID {
		if user.IsActive {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) ToggleActive(_ context.Context, _ *gorm.DB, userID uint) (bool, error) {
	user, ok := r.usersByID[userID]
	if !ok {
		return false, nil
	}
	user.IsActive = !user.IsActive
	r.usersByID[userID] = user
	return true, nil
}

type fakeInviteRepo struct {
	codes  map[string]models.InviteCode
	nextID uint
	used   []uint
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{codes: make(map[string]models.InviteCode), nextID: 1}
}

func (r *fakeInviteRepo) Create(_ context.Context, _ *gorm.DB, code *models.InviteCode) error {
	if code.ID == 0 {
		code.ID = r.nextID
		r.nextID++
	}
	r.codes[code.Code] = *code
	return nil
}

func (r *fakeInviteRepo) GetValidByCode(_ context.Context, _ *gorm.DB, code string, now time.Time) (models.InviteCode, error) {
	invite, ok := r.codes[code]
	if !ok || invite.IsUsed || !invite.ExpiresAt.After(now) {
		return models.InviteCode{}, gorm.ErrRecordNotFound
	}
	return invite, nil
}

func (r *fakeInviteRepo) MarkUsed(_ context.Context, _ *gorm.DB, codeID uint, userID uint, now time.Time) error {
	for code, invite := range r.codes {
		if invite.ID == codeID {
			invite.IsUsed = true
			invite.UsedBy = &userID
			invite.UsedAt = &now
			r.codes[code] = invite
		}
	}
	r.used = append(r.used, codeID)
	return nil
}

// fakeThumbnailer stands in for the imaging-backed generator so ingestion
// tests can simulate decode failures.
type fakeThumbnailer struct {
	width     int
	height    int
	dimErr    error
	createErr error
}

func (t fakeThumbnailer) Dimensions(string) (int, int, error) {
	if t.dimErr != nil {
		return 0, 0, t.dimErr
	}
	return t.width, t.height, nil
}

func (t fakeThumbnailer) Create(_ string, dstPath string) error {
	if t.createErr != nil {
		return t.createErr
	}
	return os.WriteFile(dstPath, []byte("thumb"), 0o644)
}
