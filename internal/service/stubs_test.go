package service

import (
	"context"

	"ripple/internal/models"
)

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn   func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listByAuthorsFn func(context.Context, []uint, int, int, uint) ([]*models.Post, error)
	listFn          func(context.Context, int, int, uint) ([]*models.Post, error)
	searchFn        func(context.Context, string, int, int, uint) ([]*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	deleteFn        func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.searchFn(ctx, query, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getByUserIDFn: func(context.Context, uint, int, int, uint) ([]*models.Post, error) {
			return []*models.Post{}, nil
		},
		listByAuthorsFn: func(context.Context, []uint, int, int, uint) ([]*models.Post, error) {
			return []*models.Post{}, nil
		},
		listFn:   func(context.Context, int, int, uint) ([]*models.Post, error) { return []*models.Post{}, nil },
		searchFn: func(context.Context, string, int, int, uint) ([]*models.Post, error) { return []*models.Post{}, nil },
		updateFn: func(context.Context, *models.Post) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type followRepoStub struct {
	createFn          func(context.Context, uint, uint) (bool, error)
	deleteFn          func(context.Context, uint, uint) (bool, error)
	isFollowingFn     func(context.Context, uint, uint) (bool, error)
	getFollowingIDsFn func(context.Context, uint) ([]uint, error)
	listFollowersFn   func(context.Context, uint, int, int) ([]models.User, error)
	listFollowingFn   func(context.Context, uint, int, int) ([]models.User, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.createFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFollowingIDsFn(ctx, userID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.listFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.listFollowingFn(ctx, userID, limit, offset)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:          func(context.Context, uint, uint) (bool, error) { return true, nil },
		deleteFn:          func(context.Context, uint, uint) (bool, error) { return true, nil },
		isFollowingFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		getFollowingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		listFollowersFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		listFollowingFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
	}
}

type likeRepoStub struct {
	createFn     func(context.Context, uint, uint) (bool, error)
	createWithFn func(context.Context, uint, uint, *models.Notification) (bool, error)
	deleteFn     func(context.Context, uint, uint) (bool, error)
	isLikedFn    func(context.Context, uint, uint) (bool, error)
	countFn      func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Create(ctx context.Context, userID, postID uint) (bool, error) {
	return s.createFn(ctx, userID, postID)
}
func (s *likeRepoStub) CreateWithNotification(ctx context.Context, userID, postID uint, n *models.Notification) (bool, error) {
	return s.createWithFn(ctx, userID, postID, n)
}
func (s *likeRepoStub) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	return s.deleteFn(ctx, userID, postID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *likeRepoStub) CountForPost(ctx context.Context, postID uint) (int64, error) {
	return s.countFn(ctx, postID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		createWithFn: func(context.Context, uint, uint, *models.Notification) (bool, error) { return true, nil },
		deleteFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		isLikedFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		countFn:      func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type notifRepoStub struct {
	appendFn          func(context.Context, *models.Notification) error
	listByRecipientFn func(context.Context, uint, int, int) ([]models.Notification, error)
	unreadCountFn     func(context.Context, uint) (int64, error)
	markReadFn        func(context.Context, uint, uint) (bool, error)
	markAllReadFn     func(context.Context, uint) (int64, error)
}

func (s *notifRepoStub) Append(ctx context.Context, n *models.Notification) error {
	return s.appendFn(ctx, n)
}
func (s *notifRepoStub) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]models.Notification, error) {
	return s.listByRecipientFn(ctx, recipientID, limit, offset)
}
func (s *notifRepoStub) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return s.unreadCountFn(ctx, recipientID)
}
func (s *notifRepoStub) MarkRead(ctx context.Context, recipientID, notificationID uint) (bool, error) {
	return s.markReadFn(ctx, recipientID, notificationID)
}
func (s *notifRepoStub) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	return s.markAllReadFn(ctx, recipientID)
}

func noopNotifRepo() *notifRepoStub {
	return &notifRepoStub{
		appendFn: func(context.Context, *models.Notification) error { return nil },
		listByRecipientFn: func(context.Context, uint, int, int) ([]models.Notification, error) {
			return nil, nil
		},
		unreadCountFn: func(context.Context, uint) (int64, error) { return 0, nil },
		markReadFn:    func(context.Context, uint, uint) (bool, error) { return true, nil },
		markAllReadFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getWithStatsFn  func(context.Context, uint) (*models.User, error)
	updateProfileFn func(context.Context, uint, *string, *string) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetWithStats(ctx context.Context, id uint) (*models.User, error) {
	return s.getWithStatsFn(ctx, id)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, userID uint, bio, avatar *string) error {
	return s.updateProfileFn(ctx, userID, bio, avatar)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(context.Context, *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getWithStatsFn:  func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		updateProfileFn: func(context.Context, uint, *string, *string) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(context.Context, uint, int, int) ([]models.Comment, error) { return nil, nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}
