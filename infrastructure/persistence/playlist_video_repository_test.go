package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"mytube-channels/domain/model"
)

func TestPlaylistVideoRepository_Save_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPlaylistVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO playlist_videos (playlist_id, video_id) VALUES ($1, $2) RETURNING id`)).
		WithArgs(3, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	res, err := repository.Save(context.Background(), model.PlaylistVideo{PlaylistID: 3, VideoID: 5})
	require.NoError(t, err)
	require.Equal(t, 11, res.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistVideoRepository_Save_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPlaylistVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE playlist_videos SET playlist_id = $1, video_id = $2 WHERE id = $3`)).
		WithArgs(3, 8, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repository.Save(context.Background(), model.PlaylistVideo{ID: 11, PlaylistID: 3, VideoID: 8})
	require.NoError(t, err)
	require.Equal(t, 11, res.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistVideoRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPlaylistVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM playlist_videos WHERE id = $1`)).
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repository.Delete(context.Background(), 11))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistVideoRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewPlaylistVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM playlist_videos`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, playlist_id, video_id FROM playlist_videos ORDER BY id ASC LIMIT $1 OFFSET $2`)).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "playlist_id", "video_id"}).
			AddRow(11, 3, 5))

	list, total, err := repository.FindAll(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	require.Equal(t, 3, list[0].PlaylistID)
	require.NoError(t, mock.ExpectationsWereMet())
}
