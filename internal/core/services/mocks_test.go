package services_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
)

// --- Mock UserRepository (based on UserRepositoryFacade) ---
type MockUserRepository struct {
	mock.Mock
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	CountUsersFn         func(ctx context.Context) (int64, error)
	SaveUserFn           func(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateRefreshTokenFn func(ctx context.Context, email string, token string) error
	ConfirmEmailFn       func(ctx context.Context, email string) error
	UpdateAvatarFn       func(ctx context.Context, email string, avatarURL string) error
	UpdatePasswordFn     func(ctx context.Context, email string, passwordHash string) error
	UpdateUsernameFn     func(ctx context.Context, email string, username string) error
	UpdateResetTokenFn   func(ctx context.Context, email string, token string) error
	SetBannedFn          func(ctx context.Context, email string, banned bool) error
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	if m.CountUsersFn != nil {
		return m.CountUsersFn(ctx)
	}
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	var saved *domain.User
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.User)
	}
	return saved, args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, email string, token string) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, email, token)
	}
	args := m.Called(ctx, email, token)
	return args.Error(0)
}

func (m *MockUserRepository) ConfirmEmail(ctx context.Context, email string) error {
	if m.ConfirmEmailFn != nil {
		return m.ConfirmEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, email string, avatarURL string) error {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, email, avatarURL)
	}
	args := m.Called(ctx, email, avatarURL)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, email, passwordHash)
	}
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUsername(ctx context.Context, email string, username string) error {
	if m.UpdateUsernameFn != nil {
		return m.UpdateUsernameFn(ctx, email, username)
	}
	args := m.Called(ctx, email, username)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateResetToken(ctx context.Context, email string, token string) error {
	if m.UpdateResetTokenFn != nil {
		return m.UpdateResetTokenFn(ctx, email, token)
	}
	args := m.Called(ctx, email, token)
	return args.Error(0)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, email string, banned bool) error {
	if m.SetBannedFn != nil {
		return m.SetBannedFn(ctx, email, banned)
	}
	args := m.Called(ctx, email, banned)
	return args.Error(0)
}

// --- Mock BlacklistRepository ---
type MockBlacklistRepository struct {
	mock.Mock
	SaveTokenFn func(ctx context.Context, token string, email string) error
	FindTokenFn func(ctx context.Context, token string) (bool, error)
}

func (m *MockBlacklistRepository) SaveToken(ctx context.Context, token string, email string) error {
	if m.SaveTokenFn != nil {
		return m.SaveTokenFn(ctx, token, email)
	}
	args := m.Called(ctx, token, email)
	return args.Error(0)
}

func (m *MockBlacklistRepository) FindToken(ctx context.Context, token string) (bool, error) {
	if m.FindTokenFn != nil {
		return m.FindTokenFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

// --- Mock UserCache ---
type MockUserCache struct {
	mock.Mock
	GetUserFn    func(ctx context.Context, email string) (*domain.User, error)
	SetUserFn    func(ctx context.Context, user domain.User, ttl time.Duration) error
	DeleteUserFn func(ctx context.Context, email string) error
}

func (m *MockUserCache) GetUser(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserCache) SetUser(ctx context.Context, user domain.User, ttl time.Duration) error {
	if m.SetUserFn != nil {
		return m.SetUserFn(ctx, user, ttl)
	}
	args := m.Called(ctx, user, ttl)
	return args.Error(0)
}

func (m *MockUserCache) DeleteUser(ctx context.Context, email string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, email)
	}
	args := m.Called(ctx, email)
	return args.Error(0)
}

// --- Mock TokenCache ---
type MockTokenCache struct {
	mock.Mock
	MarkBlacklistedFn func(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklistedFn   func(ctx context.Context, token string) (bool, error)
}

func (m *MockTokenCache) MarkBlacklisted(ctx context.Context, token string, ttl time.Duration) error {
	if m.MarkBlacklistedFn != nil {
		return m.MarkBlacklistedFn(ctx, token, ttl)
	}
	args := m.Called(ctx, token, ttl)
	return args.Error(0)
}

func (m *MockTokenCache) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	if m.IsBlacklistedFn != nil {
		return m.IsBlacklistedFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

// --- Mock EmailSender ---
type MockEmailSender struct {
	mock.Mock
	SendConfirmationFn  func(ctx context.Context, toEmail string, username string, emailToken string) error
	SendPasswordResetFn func(ctx context.Context, toEmail string, username string, resetToken string) error
}

func (m *MockEmailSender) SendConfirmation(ctx context.Context, toEmail string, username string, emailToken string) error {
	if m.SendConfirmationFn != nil {
		return m.SendConfirmationFn(ctx, toEmail, username, emailToken)
	}
	args := m.Called(ctx, toEmail, username, emailToken)
	return args.Error(0)
}

func (m *MockEmailSender) SendPasswordReset(ctx context.Context, toEmail string, username string, resetToken string) error {
	if m.SendPasswordResetFn != nil {
		return m.SendPasswordResetFn(ctx, toEmail, username, resetToken)
	}
	args := m.Called(ctx, toEmail, username, resetToken)
	return args.Error(0)
}

// --- Mock GoogleAuthService ---
type MockGoogleAuthService struct {
	mock.Mock
	ValidateIDTokenFn func(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)
	ExchangeCodeFn    func(ctx context.Context, code string) (string, error)
	AuthCodeURLFn     func(state string) string
}

func (m *MockGoogleAuthService) ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	if m.ValidateIDTokenFn != nil {
		return m.ValidateIDTokenFn(ctx, idToken)
	}
	args := m.Called(ctx, idToken)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}

func (m *MockGoogleAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	if m.ExchangeCodeFn != nil {
		return m.ExchangeCodeFn(ctx, code)
	}
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleAuthService) AuthCodeURL(state string) string {
	if m.AuthCodeURLFn != nil {
		return m.AuthCodeURLFn(state)
	}
	args := m.Called(state)
	return args.String(0)
}

// --- Mock ImageRepository ---
type MockImageRepository struct {
	mock.Mock
	FindImageByIDFn     func(ctx context.Context, imageID int64) (*domain.Image, error)
	FindImagesByUserFn  func(ctx context.Context, userID int64, skip int, limit int) ([]domain.Image, error)
	CountImagesByUserFn func(ctx context.Context, userID int64) (int64, error)
	SaveImageFn         func(ctx context.Context, image domain.Image, tagNames []string) (*domain.Image, error)
	UpdateImageFn       func(ctx context.Context, image domain.Image) error
	SetTransformedURLFn func(ctx context.Context, imageID int64, url string) error
	AddImageTagFn       func(ctx context.Context, imageID int64, tagName string) error
	DeleteImageFn       func(ctx context.Context, imageID int64) error
}

func (m *MockImageRepository) FindImageByID(ctx context.Context, imageID int64) (*domain.Image, error) {
	if m.FindImageByIDFn != nil {
		return m.FindImageByIDFn(ctx, imageID)
	}
	args := m.Called(ctx, imageID)
	var image *domain.Image
	if args.Get(0) != nil {
		image = args.Get(0).(*domain.Image)
	}
	return image, args.Error(1)
}

func (m *MockImageRepository) FindImagesByUser(ctx context.Context, userID int64, skip int, limit int) ([]domain.Image, error) {
	if m.FindImagesByUserFn != nil {
		return m.FindImagesByUserFn(ctx, userID, skip, limit)
	}
	args := m.Called(ctx, userID, skip, limit)
	var images []domain.Image
	if args.Get(0) != nil {
		images = args.Get(0).([]domain.Image)
	}
	return images, args.Error(1)
}

func (m *MockImageRepository) CountImagesByUser(ctx context.Context, userID int64) (int64, error) {
	if m.CountImagesByUserFn != nil {
		return m.CountImagesByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImageRepository) SaveImage(ctx context.Context, image domain.Image, tagNames []string) (*domain.Image, error) {
	if m.SaveImageFn != nil {
		return m.SaveImageFn(ctx, image, tagNames)
	}
	args := m.Called(ctx, image, tagNames)
	var saved *domain.Image
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Image)
	}
	return saved, args.Error(1)
}

func (m *MockImageRepository) UpdateImage(ctx context.Context, image domain.Image) error {
	if m.UpdateImageFn != nil {
		return m.UpdateImageFn(ctx, image)
	}
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) SetTransformedURL(ctx context.Context, imageID int64, url string) error {
	if m.SetTransformedURLFn != nil {
		return m.SetTransformedURLFn(ctx, imageID, url)
	}
	args := m.Called(ctx, imageID, url)
	return args.Error(0)
}

func (m *MockImageRepository) AddImageTag(ctx context.Context, imageID int64, tagName string) error {
	if m.AddImageTagFn != nil {
		return m.AddImageTagFn(ctx, imageID, tagName)
	}
	args := m.Called(ctx, imageID, tagName)
	return args.Error(0)
}

func (m *MockImageRepository) DeleteImage(ctx context.Context, imageID int64) error {
	if m.DeleteImageFn != nil {
		return m.DeleteImageFn(ctx, imageID)
	}
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

// --- Mock RatingRepository ---
type MockRatingRepository struct {
	mock.Mock
	FindRatingByIDFn           func(ctx context.Context, ratingID int64) (*domain.Rating, error)
	FindRatingByUserAndImageFn func(ctx context.Context, userID int64, imageID int64) (*domain.Rating, error)
	FindRatingsByImageFn       func(ctx context.Context, imageID int64) ([]domain.Rating, error)
	SaveRatingFn               func(ctx context.Context, rating domain.Rating) (*domain.Rating, error)
	DeleteRatingFn             func(ctx context.Context, ratingID int64) error
}

func (m *MockRatingRepository) FindRatingByID(ctx context.Context, ratingID int64) (*domain.Rating, error) {
	if m.FindRatingByIDFn != nil {
		return m.FindRatingByIDFn(ctx, ratingID)
	}
	args := m.Called(ctx, ratingID)
	var rating *domain.Rating
	if args.Get(0) != nil {
		rating = args.Get(0).(*domain.Rating)
	}
	return rating, args.Error(1)
}

func (m *MockRatingRepository) FindRatingByUserAndImage(ctx context.Context, userID int64, imageID int64) (*domain.Rating, error) {
	if m.FindRatingByUserAndImageFn != nil {
		return m.FindRatingByUserAndImageFn(ctx, userID, imageID)
	}
	args := m.Called(ctx, userID, imageID)
	var rating *domain.Rating
	if args.Get(0) != nil {
		rating = args.Get(0).(*domain.Rating)
	}
	return rating, args.Error(1)
}

func (m *MockRatingRepository) FindRatingsByImage(ctx context.Context, imageID int64) ([]domain.Rating, error) {
	if m.FindRatingsByImageFn != nil {
		return m.FindRatingsByImageFn(ctx, imageID)
	}
	args := m.Called(ctx, imageID)
	var ratings []domain.Rating
	if args.Get(0) != nil {
		ratings = args.Get(0).([]domain.Rating)
	}
	return ratings, args.Error(1)
}

func (m *MockRatingRepository) SaveRating(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	if m.SaveRatingFn != nil {
		return m.SaveRatingFn(ctx, rating)
	}
	args := m.Called(ctx, rating)
	var saved *domain.Rating
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Rating)
	}
	return saved, args.Error(1)
}

func (m *MockRatingRepository) DeleteRating(ctx context.Context, ratingID int64) error {
	if m.DeleteRatingFn != nil {
		return m.DeleteRatingFn(ctx, ratingID)
	}
	args := m.Called(ctx, ratingID)
	return args.Error(0)
}

// --- Mock ObjectStorage ---
type MockObjectStorage struct {
	mock.Mock
	UploadFn    func(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteFn    func(ctx context.Context, objectName string) error
	ObjectURLFn func(objectName string) string
}

func (m *MockObjectStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, objectName, reader, size, contentType)
	}
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, objectName string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, objectName)
	}
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectURL(objectName string) string {
	if m.ObjectURLFn != nil {
		return m.ObjectURLFn(objectName)
	}
	args := m.Called(objectName)
	return args.String(0)
}

// --- Mock CommentRepository (based on CommentRepositoryFacade) ---
type MockCommentRepository struct {
	mock.Mock
	FindCommentByIDFn     func(ctx context.Context, commentID int64) (*domain.Comment, error)
	FindCommentsByImageFn func(ctx context.Context, imageID int64) ([]domain.Comment, error)
	SaveCommentFn         func(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	UpdateCommentFn       func(ctx context.Context, commentID int64, content string) error
	DeleteCommentFn       func(ctx context.Context, commentID int64) error
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	if m.FindCommentByIDFn != nil {
		return m.FindCommentByIDFn(ctx, commentID)
	}
	args := m.Called(ctx, commentID)
	var comment *domain.Comment
	if args.Get(0) != nil {
		comment = args.Get(0).(*domain.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentRepository) FindCommentsByImage(ctx context.Context, imageID int64) ([]domain.Comment, error) {
	if m.FindCommentsByImageFn != nil {
		return m.FindCommentsByImageFn(ctx, imageID)
	}
	args := m.Called(ctx, imageID)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	if m.SaveCommentFn != nil {
		return m.SaveCommentFn(ctx, comment)
	}
	args := m.Called(ctx, comment)
	var saved *domain.Comment
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Comment)
	}
	return saved, args.Error(1)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, commentID int64, content string) error {
	if m.UpdateCommentFn != nil {
		return m.UpdateCommentFn(ctx, commentID, content)
	}
	args := m.Called(ctx, commentID, content)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, commentID)
	}
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

// --- Mock TagRepository (based on TagRepositoryFacade) ---
type MockTagRepository struct {
	mock.Mock
	FindTagsFn      func(ctx context.Context, offset int, limit int) ([]domain.Tag, error)
	FindTagByIDFn   func(ctx context.Context, tagID int64) (*domain.Tag, error)
	FindTagByNameFn func(ctx context.Context, name string) (*domain.Tag, error)
	SaveTagFn       func(ctx context.Context, name string) (*domain.Tag, error)
	UpdateTagFn     func(ctx context.Context, tagID int64, name string) (*domain.Tag, error)
	DeleteTagFn     func(ctx context.Context, tagID int64) error
}

func (m *MockTagRepository) FindTags(ctx context.Context, offset int, limit int) ([]domain.Tag, error) {
	if m.FindTagsFn != nil {
		return m.FindTagsFn(ctx, offset, limit)
	}
	args := m.Called(ctx, offset, limit)
	var tags []domain.Tag
	if args.Get(0) != nil {
		tags = args.Get(0).([]domain.Tag)
	}
	return tags, args.Error(1)
}

func (m *MockTagRepository) FindTagByID(ctx context.Context, tagID int64) (*domain.Tag, error) {
	if m.FindTagByIDFn != nil {
		return m.FindTagByIDFn(ctx, tagID)
	}
	args := m.Called(ctx, tagID)
	var tag *domain.Tag
	if args.Get(0) != nil {
		tag = args.Get(0).(*domain.Tag)
	}
	return tag, args.Error(1)
}

func (m *MockTagRepository) FindTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	if m.FindTagByNameFn != nil {
		return m.FindTagByNameFn(ctx, name)
	}
	args := m.Called(ctx, name)
	var tag *domain.Tag
	if args.Get(0) != nil {
		tag = args.Get(0).(*domain.Tag)
	}
	return tag, args.Error(1)
}

func (m *MockTagRepository) SaveTag(ctx context.Context, name string) (*domain.Tag, error) {
	if m.SaveTagFn != nil {
		return m.SaveTagFn(ctx, name)
	}
	args := m.Called(ctx, name)
	var tag *domain.Tag
	if args.Get(0) != nil {
		tag = args.Get(0).(*domain.Tag)
	}
	return tag, args.Error(1)
}

func (m *MockTagRepository) UpdateTag(ctx context.Context, tagID int64, name string) (*domain.Tag, error) {
	if m.UpdateTagFn != nil {
		return m.UpdateTagFn(ctx, tagID, name)
	}
	args := m.Called(ctx, tagID, name)
	var tag *domain.Tag
	if args.Get(0) != nil {
		tag = args.Get(0).(*domain.Tag)
	}
	return tag, args.Error(1)
}

func (m *MockTagRepository) DeleteTag(ctx context.Context, tagID int64) error {
	if m.DeleteTagFn != nil {
		return m.DeleteTagFn(ctx, tagID)
	}
	args := m.Called(ctx, tagID)
	return args.Error(0)
}

// --- Mock SearchRepository (based on SearchRepositoryFacade) ---
type MockSearchRepository struct {
	mock.Mock
	SearchImagesFn func(ctx context.Context, filter portsrepo.ImageSearchFilter) ([]domain.Image, error)
}

func (m *MockSearchRepository) SearchImages(ctx context.Context, filter portsrepo.ImageSearchFilter) ([]domain.Image, error) {
	if m.SearchImagesFn != nil {
		return m.SearchImagesFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var images []domain.Image
	if args.Get(0) != nil {
		images = args.Get(0).([]domain.Image)
	}
	return images, args.Error(1)
}
