package services

import (
	"errors"
	"log"
	"strconv"

	"blogapp/models"
	"blogapp/repositories"

	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

const likeRankKey = "rank:article:likes"

func likeCountKey(articleID uint) string {
	return "article:" + strconv.FormatUint(uint64(articleID), 10) + ":likes"
}

// LikeService flips a user's like on an article and keeps the Redis counter
// and ranking zset in step with the Likes table. Redis is a cache here: the
// table stays the source of truth and cache failures are only logged.
type LikeService struct {
	likes repositories.LikeRepository
	cache *redis.Client
}

func NewLikeService(likes repositories.LikeRepository, cache *redis.Client) *LikeService {
	return &LikeService{likes: likes, cache: cache}
}

// Toggle likes the article when no row exists and unlikes it when one does.
// It returns the new state and the recomputed like count.
func (s *LikeService) Toggle(userID, articleID uint) (liked bool, likes int64, err error) {
	existing, err := s.likes.Find(userID, articleID)
	switch {
	case err == nil:
		if err := s.likes.Delete(existing); err != nil {
			return false, 0, err
		}
		liked = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.likes.Create(&models.Like{UserID: userID, ArticleID: articleID}); err != nil {
			return false, 0, err
		}
		liked = true
	default:
		return false, 0, err
	}

	likes, err = s.likes.CountByArticle(articleID)
	if err != nil {
		return liked, 0, err
	}
	s.writeThrough(articleID, likes)
	return liked, likes, nil
}

// Count reads the cached counter and falls back to the table on a miss.
func (s *LikeService) Count(articleID uint) (int64, error) {
	if s.cache != nil {
		val, err := s.cache.Get(likeCountKey(articleID)).Result()
		if err == nil {
			if n, perr := strconv.ParseInt(val, 10, 64); perr == nil {
				return n, nil
			}
		} else if err != redis.Nil {
			log.Printf("like count cache read failed: %v", err)
		}
	}
	likes, err := s.likes.CountByArticle(articleID)
	if err != nil {
		return 0, err
	}
	s.writeThrough(articleID, likes)
	return likes, nil
}

// RankedArticle is one entry of the like-count leaderboard.
type RankedArticle struct {
	ArticleID uint  `json:"articleId"`
	Likes     int64 `json:"likes"`
	Rank      int   `json:"rank"`
}

// Top returns the n most liked articles from the ranking zset. An absent key
// yields an empty list, not an error.
func (s *LikeService) Top(n int) ([]RankedArticle, error) {
	if s.cache == nil {
		return []RankedArticle{}, nil
	}
	zres, err := s.cache.ZRevRangeWithScores(likeRankKey, 0, int64(n-1)).Result()
	if err != nil {
		if err == redis.Nil {
			return []RankedArticle{}, nil
		}
		return nil, err
	}
	ranked := make([]RankedArticle, 0, len(zres))
	for idx, z := range zres {
		member, _ := z.Member.(string)
		id, _ := strconv.ParseUint(member, 10, 64)
		ranked = append(ranked, RankedArticle{
			ArticleID: uint(id),
			Likes:     int64(z.Score),
			Rank:      idx + 1,
		})
	}
	return ranked, nil
}

func (s *LikeService) writeThrough(articleID uint, likes int64) {
	if s.cache == nil {
		return
	}
	member := strconv.FormatUint(uint64(articleID), 10)
	pipe := s.cache.TxPipeline()
	pipe.Set(likeCountKey(articleID), likes, 0)
	pipe.ZAdd(likeRankKey, redis.Z{Score: float64(likes), Member: member})
	if _, err := pipe.Exec(); err != nil {
		log.Printf("like cache write-through failed for article %d: %v", articleID, err)
	}
}
