package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_gallery_service.go -package=mocks -mock_names=GalleryService=MockGalleryService photosync/internal/service GalleryService

import (
	"context"
	"strings"

	"photosync/internal/contextutil"
	"photosync/internal/mediastore"
	"photosync/internal/storage"
)

const (
	// DefaultRunLimit is used when a caller asks for runs without a limit.
	DefaultRunLimit = 20
	// MaxRunLimit caps the number of runs returned at once.
	MaxRunLimit = 200
	// MaxAlbumNameLength caps user album names.
	MaxAlbumNameLength = 256
)

// CreateAlbumRequest represents an album creation request in the domain layer.
type CreateAlbumRequest struct {
	Name        string `validate:"required"`
	Description string
	Tag         string
}

// AddMemberRequest places a cached photo in an album. A negative Order appends.
type AddMemberRequest struct {
	AlbumID int64
	PhotoID int64
	Order   int64
}

// RunLister reads sync run history.
type RunLister interface {
	Recent(ctx context.Context, limit int) ([]storage.JobRun, error)
}

// GalleryService is the read side of the cache plus user album management.
type GalleryService interface {
	ListPhotos(ctx context.Context, query string) ([]storage.PhotoRecord, error)
	GetPhoto(ctx context.Context, id int64) (*storage.PhotoRecord, error)
	CountPhotos(ctx context.Context) (int, error)
	PhotoExists(ctx context.Context, id int64) (bool, error)

	ListVideos(ctx context.Context, query string) ([]storage.VideoRecord, error)
	GetVideo(ctx context.Context, id int64) (*storage.VideoRecord, error)
	CountVideos(ctx context.Context) (int, error)
	VideoExists(ctx context.Context, id int64) (bool, error)
	VideoArtists(ctx context.Context, query string) ([]storage.Artist, error)
	VideoAlbums(ctx context.Context, query string) ([]storage.VideoAlbum, error)

	// Buckets groups one kind by parent directory, filtered by path substring.
	Buckets(ctx context.Context, kind mediastore.Kind, query string) ([]storage.Bucket, error)
	Bucket(ctx context.Context, kind mediastore.Kind, path string) (*storage.Bucket, error)
	Info(ctx context.Context, kind mediastore.Kind) (storage.Info, error)

	CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*storage.AlbumRecord, error)
	ListAlbums(ctx context.Context, query string) ([]storage.AlbumRecord, error)
	GetAlbum(ctx context.Context, id int64) (*storage.AlbumRecord, error)
	DeleteAlbum(ctx context.Context, id int64) error
	AddAlbumMember(ctx context.Context, req AddMemberRequest) (storage.AlbumMember, error)
	RemoveAlbumMember(ctx context.Context, albumID, photoID int64) error
	AlbumMembers(ctx context.Context, albumID int64) ([]storage.AlbumMember, error)

	// RecentRuns returns sync history, newest first. limit <= 0 uses DefaultRunLimit.
	RecentRuns(ctx context.Context, limit int) ([]storage.JobRun, error)
}

// galleryService implements GalleryService.
type galleryService struct {
	photos storage.PhotoStore
	videos storage.VideoStore
	albums storage.AlbumStore
	runs   RunLister
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(photos storage.PhotoStore, videos storage.VideoStore, albums storage.AlbumStore, runs RunLister) GalleryService {
	return &galleryService{
		photos: photos,
		videos: videos,
		albums: albums,
		runs:   runs,
	}
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return &ValidationError{Field: field, Message: "must be a positive integer"}
	}
	return nil
}

// bucketStore is the bucket view shared by both kinds.
type bucketStore interface {
	Buckets(ctx context.Context, query string) ([]storage.Bucket, error)
	BucketByPath(ctx context.Context, path string) (*storage.Bucket, error)
	Info(ctx context.Context) (storage.Info, error)
}

func (s *galleryService) kindStore(kind mediastore.Kind) (bucketStore, error) {
	switch kind {
	case mediastore.KindPhoto:
		return s.photos, nil
	case mediastore.KindVideo:
		return s.videos, nil
	default:
		return nil, &ValidationError{Field: "kind", Message: "must be photos or videos"}
	}
}

func (s *galleryService) ListPhotos(ctx context.Context, query string) ([]storage.PhotoRecord, error) {
	photos, err := s.photos.List(ctx, strings.TrimSpace(query))
	return photos, mapStoreError(err, "failed to list photos")
}

func (s *galleryService) GetPhoto(ctx context.Context, id int64) (*storage.PhotoRecord, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	p, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "failed to get photo")
	}
	return p, nil
}

func (s *galleryService) CountPhotos(ctx context.Context) (int, error) {
	n, err := s.photos.Count(ctx)
	return n, mapStoreError(err, "failed to count photos")
}

func (s *galleryService) PhotoExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.photos.Exists(ctx, id)
	return ok, mapStoreError(err, "failed to check photo")
}

func (s *galleryService) ListVideos(ctx context.Context, query string) ([]storage.VideoRecord, error) {
	videos, err := s.videos.List(ctx, strings.TrimSpace(query))
	return videos, mapStoreError(err, "failed to list videos")
}

func (s *galleryService) GetVideo(ctx context.Context, id int64) (*storage.VideoRecord, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	v, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "failed to get video")
	}
	return v, nil
}

func (s *galleryService) CountVideos(ctx context.Context) (int, error) {
	n, err := s.videos.Count(ctx)
	return n, mapStoreError(err, "failed to count videos")
}

func (s *galleryService) VideoExists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.videos.Exists(ctx, id)
	return ok, mapStoreError(err, "failed to check video")
}

func (s *galleryService) VideoArtists(ctx context.Context, query string) ([]storage.Artist, error) {
	artists, err := s.videos.Artists(ctx, strings.TrimSpace(query))
	return artists, mapStoreError(err, "failed to list artists")
}

func (s *galleryService) VideoAlbums(ctx context.Context, query string) ([]storage.VideoAlbum, error) {
	albums, err := s.videos.Albums(ctx, strings.TrimSpace(query))
	return albums, mapStoreError(err, "failed to list video albums")
}

func (s *galleryService) Buckets(ctx context.Context, kind mediastore.Kind, query string) ([]storage.Bucket, error) {
	store, err := s.kindStore(kind)
	if err != nil {
		return nil, err
	}
	buckets, err := store.Buckets(ctx, strings.TrimSpace(query))
	return buckets, mapStoreError(err, "failed to list "+kind.String()+" buckets")
}

func (s *galleryService) Bucket(ctx context.Context, kind mediastore.Kind, path string) (*storage.Bucket, error) {
	store, err := s.kindStore(kind)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, &ValidationError{Field: "path", Message: "cannot be empty"}
	}
	b, err := store.BucketByPath(ctx, path)
	if err != nil {
		return nil, mapStoreError(err, "failed to get bucket")
	}
	return b, nil
}

func (s *galleryService) Info(ctx context.Context, kind mediastore.Kind) (storage.Info, error) {
	store, err := s.kindStore(kind)
	if err != nil {
		return storage.Info{}, err
	}
	info, err := store.Info(ctx)
	return info, mapStoreError(err, "failed to read "+kind.String()+" info")
}

func (s *galleryService) CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*storage.AlbumRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		logger.WarnContext(ctx, "empty album name")
		return nil, &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if len(name) > MaxAlbumNameLength {
		return nil, &ValidationError{Field: "name", Message: "too long"}
	}

	album := &storage.AlbumRecord{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Tag:         strings.TrimSpace(req.Tag),
	}
	if err := s.albums.Create(ctx, album); err != nil {
		logger.ErrorContext(ctx, "failed to create album", "error", err)
		return nil, mapStoreError(err, "failed to create album")
	}
	logger.InfoContext(ctx, "album created", "album_id", album.ID, "name", album.Name)
	return album, nil
}

func (s *galleryService) ListAlbums(ctx context.Context, query string) ([]storage.AlbumRecord, error) {
	albums, err := s.albums.List(ctx, strings.TrimSpace(query))
	return albums, mapStoreError(err, "failed to list albums")
}

func (s *galleryService) GetAlbum(ctx context.Context, id int64) (*storage.AlbumRecord, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	a, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "failed to get album")
	}
	return a, nil
}

func (s *galleryService) DeleteAlbum(ctx context.Context, id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if err := s.albums.Delete(ctx, id); err != nil {
		return mapStoreError(err, "failed to delete album")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "album deleted", "album_id", id)
	return nil
}

func (s *galleryService) AddAlbumMember(ctx context.Context, req AddMemberRequest) (storage.AlbumMember, error) {
	if err := validateID("album_id", req.AlbumID); err != nil {
		return storage.AlbumMember{}, err
	}
	if err := validateID("photo_id", req.PhotoID); err != nil {
		return storage.AlbumMember{}, err
	}

	if _, err := s.albums.GetByID(ctx, req.AlbumID); err != nil {
		return storage.AlbumMember{}, mapStoreError(err, "failed to get album")
	}
	ok, err := s.photos.Exists(ctx, req.PhotoID)
	if err != nil {
		return storage.AlbumMember{}, mapStoreError(err, "failed to check photo")
	}
	if !ok {
		return storage.AlbumMember{}, WrapError(ErrNotFound, "photo not cached")
	}

	m, err := s.albums.AddMember(ctx, req.AlbumID, req.PhotoID, req.Order)
	if err != nil {
		return storage.AlbumMember{}, mapStoreError(err, "failed to add album member")
	}
	return m, nil
}

func (s *galleryService) RemoveAlbumMember(ctx context.Context, albumID, photoID int64) error {
	if err := validateID("album_id", albumID); err != nil {
		return err
	}
	if err := validateID("photo_id", photoID); err != nil {
		return err
	}
	return mapStoreError(s.albums.RemoveMember(ctx, albumID, photoID), "failed to remove album member")
}

func (s *galleryService) AlbumMembers(ctx context.Context, albumID int64) ([]storage.AlbumMember, error) {
	if _, err := s.GetAlbum(ctx, albumID); err != nil {
		return nil, err
	}
	members, err := s.albums.Members(ctx, albumID)
	return members, mapStoreError(err, "failed to list album members")
}

func (s *galleryService) RecentRuns(ctx context.Context, limit int) ([]storage.JobRun, error) {
	switch {
	case limit <= 0:
		limit = DefaultRunLimit
	case limit > MaxRunLimit:
		return nil, &ValidationError{Field: "limit", Message: "too large"}
	}
	runs, err := s.runs.Recent(ctx, limit)
	return runs, mapStoreError(err, "failed to list sync runs")
}
