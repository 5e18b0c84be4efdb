package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

const testTTL = time.Minute

func TestMatchRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage, testTTL)

	// Given: a new match
	match := entity.NewMatch("123", entity.X, entity.O, entity.HardDifficulty, 3)

	// When: CreateOrUpdate is called
	err := matchRepo.CreateOrUpdate(ctx, match)

	// Then: no error should be returned, and the key expires on its own
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "match:123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, testTTL)
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, testTTL)

		// Given: a stored match with a few moves and a score
		match := entity.NewMatch("123", entity.Diagonals, entity.Minimalist, entity.EasyDifficulty, 3)
		match.Board = entity.Board{entity.Diagonals, entity.Empty, entity.Minimalist}
		match.Score = entity.Score{Human: 1, Ties: 2}
		match.Round = 4

		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedMatch, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the retrieved match should match the saved match
		require.NoError(t, err)
		require.Equal(t, match, retrievedMatch)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, testTTL)

		// When: GetByID is called with non-existent ID
		retrievedMatch, err := matchRepo.GetByID(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Empty(t, retrievedMatch.ID)
		assert.Empty(t, retrievedMatch.Status)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, testTTL)

		// Given: a stored match
		match := entity.NewMatch("123", entity.X, entity.O, entity.HardDifficulty, 3)
		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = matchRepo.DeleteByID(ctx, match.ID)

		// Then: no error should be returned and the match is gone
		require.NoError(t, err)

		_, err = matchRepo.GetByID(ctx, match.ID)
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, testTTL)

		// When: DeleteByID is called with non-existent ID
		err := matchRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})
}
