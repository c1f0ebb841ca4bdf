package repository

import (
	"context"

	"go.uber.org/zap"

	"musicapi/internal/models"
)

type AlbumRepository interface {
	All(ctx context.Context, q Querier) ([]models.Album, error)
	ByArtist(ctx context.Context, q Querier, artist string) ([]models.Album, error)
	ByGenre(ctx context.Context, q Querier, pattern string) ([]models.Album, error)
	ByAlbum(ctx context.Context, q Querier, pattern string) ([]models.Album, error)
	ByYear(ctx context.Context, q Querier, year int) ([]models.Album, error)
	Insert(ctx context.Context, q Querier, album *models.Album) (*models.ExecResult, error)
	UpdateGenre(ctx context.Context, q Querier, album, artist, genre string) (*models.ExecResult, error)
	Delete(ctx context.Context, q Querier, album, artist string) (*models.ExecResult, error)
}

type albumRepository struct {
	logger *zap.Logger
}

func NewAlbumRepository(logger *zap.Logger) AlbumRepository {
	return &albumRepository{logger: logger}
}

func (r *albumRepository) All(ctx context.Context, q Querier) ([]models.Album, error) {
	albums := make([]models.Album, 0)
	query := `SELECT id, album, artist, genre, year FROM music`
	if err := q.SelectContext(ctx, &albums, query); err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepository) ByArtist(ctx context.Context, q Querier, artist string) ([]models.Album, error) {
	query := `SELECT id, album, artist, genre, year FROM music WHERE artist = :artist`
	return r.selectAlbums(ctx, q, query, map[string]interface{}{"artist": artist})
}

// ByGenre expects the caller to supply the LIKE pattern, wildcards included.
func (r *albumRepository) ByGenre(ctx context.Context, q Querier, pattern string) ([]models.Album, error) {
	query := `SELECT id, album, artist, genre, year FROM music WHERE genre LIKE :genre`
	return r.selectAlbums(ctx, q, query, map[string]interface{}{"genre": pattern})
}

func (r *albumRepository) ByAlbum(ctx context.Context, q Querier, pattern string) ([]models.Album, error) {
	query := `SELECT id, album, artist, genre, year FROM music WHERE album LIKE :album`
	return r.selectAlbums(ctx, q, query, map[string]interface{}{"album": pattern})
}

func (r *albumRepository) ByYear(ctx context.Context, q Querier, year int) ([]models.Album, error) {
	query := `SELECT id, album, artist, genre, year FROM music WHERE year = :year`
	return r.selectAlbums(ctx, q, query, map[string]interface{}{"year": year})
}

func (r *albumRepository) Insert(ctx context.Context, q Querier, album *models.Album) (*models.ExecResult, error) {
	query := `INSERT INTO music (album, artist, genre, year) VALUES (:album, :artist, :genre, :year)`
	return r.exec(ctx, q, query, album)
}

// UpdateGenre is a bulk update: every row matching the (album, artist) pair
// gets the new genre.
func (r *albumRepository) UpdateGenre(ctx context.Context, q Querier, album, artist, genre string) (*models.ExecResult, error) {
	query := `UPDATE music SET genre = :genre WHERE artist = :artist AND album = :album`
	return r.exec(ctx, q, query, map[string]interface{}{
		"genre":  genre,
		"artist": artist,
		"album":  album,
	})
}

func (r *albumRepository) Delete(ctx context.Context, q Querier, album, artist string) (*models.ExecResult, error) {
	query := `DELETE FROM music WHERE album = :album AND artist = :artist`
	return r.exec(ctx, q, query, map[string]interface{}{
		"album":  album,
		"artist": artist,
	})
}

func (r *albumRepository) selectAlbums(ctx context.Context, q Querier, query string, arg interface{}) ([]models.Album, error) {
	bound, args, err := bindNamed(q, query, arg)
	if err != nil {
		return nil, err
	}

	albums := make([]models.Album, 0)
	if err := q.SelectContext(ctx, &albums, bound, args...); err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepository) exec(ctx context.Context, q Querier, query string, arg interface{}) (*models.ExecResult, error) {
	bound, args, err := bindNamed(q, query, arg)
	if err != nil {
		return nil, err
	}

	res, err := q.ExecContext(ctx, bound, args...)
	if err != nil {
		return nil, err
	}

	result := &models.ExecResult{}
	if id, err := res.LastInsertId(); err == nil {
		result.InsertID = id
	}
	if n, err := res.RowsAffected(); err == nil {
		result.AffectedRows = n
	}
	return result, nil
}
