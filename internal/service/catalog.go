package service

import (
	"context"

	"go.uber.org/zap"

	"musicapi/internal/models"
	"musicapi/internal/repository"
)

type CatalogService interface {
	ListAll(ctx context.Context, q repository.Querier) ([]models.Album, error)
	ListByArtist(ctx context.Context, q repository.Querier, artist string) ([]models.Album, error)
	ListByGenre(ctx context.Context, q repository.Querier, genre string) ([]models.Album, error)
	ListByAlbumName(ctx context.Context, q repository.Querier, album string) ([]models.Album, error)
	ListByYear(ctx context.Context, q repository.Querier, year int) ([]models.Album, error)
	Create(ctx context.Context, q repository.Querier, album *models.Album) (*models.ExecResult, error)
	UpdateGenre(ctx context.Context, q repository.Querier, album, artist, genre string) (*models.ExecResult, error)
	Delete(ctx context.Context, q repository.Querier, album, artist string) (*models.ExecResult, error)
}

type catalogService struct {
	albums repository.AlbumRepository
	logger *zap.Logger
}

func NewCatalogService(albums repository.AlbumRepository, logger *zap.Logger) CatalogService {
	return &catalogService{
		albums: albums,
		logger: logger,
	}
}

func (s *catalogService) ListAll(ctx context.Context, q repository.Querier) ([]models.Album, error) {
	return s.albums.All(ctx, q)
}

func (s *catalogService) ListByArtist(ctx context.Context, q repository.Querier, artist string) ([]models.Album, error) {
	return s.albums.ByArtist(ctx, q, artist)
}

// ListByGenre is a substring search; case sensitivity is decided by the
// column collation.
func (s *catalogService) ListByGenre(ctx context.Context, q repository.Querier, genre string) ([]models.Album, error) {
	return s.albums.ByGenre(ctx, q, "%"+genre+"%")
}

func (s *catalogService) ListByAlbumName(ctx context.Context, q repository.Querier, album string) ([]models.Album, error) {
	return s.albums.ByAlbum(ctx, q, "%"+album+"%")
}

func (s *catalogService) ListByYear(ctx context.Context, q repository.Querier, year int) ([]models.Album, error) {
	return s.albums.ByYear(ctx, q, year)
}

func (s *catalogService) Create(ctx context.Context, q repository.Querier, album *models.Album) (*models.ExecResult, error) {
	return s.albums.Insert(ctx, q, album)
}

func (s *catalogService) UpdateGenre(ctx context.Context, q repository.Querier, album, artist, genre string) (*models.ExecResult, error) {
	return s.albums.UpdateGenre(ctx, q, album, artist, genre)
}

func (s *catalogService) Delete(ctx context.Context, q repository.Querier, album, artist string) (*models.ExecResult, error) {
	return s.albums.Delete(ctx, q, album, artist)
}
