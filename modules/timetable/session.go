package timetable

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"gigi-scenario-server/modules/common/model"
)

// 세션 타임테이블 보관 기간
const sessionTTL = 24 * time.Hour

// SessionStore - 세션별 타임테이블 저장소
// Redis가 연결되어 있으면 세션 해시(HSET)에 장면을 쌓고, 없으면 인메모리로 동작
// 같은 장면에 대한 동시 수정은 last-write-wins
type SessionStore struct {
	rdb *redis.Client
	mem *cache.Cache
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{
		rdb: rdb,
		mem: cache.New(sessionTTL, time.Hour),
	}
}

func sessionKey(sessionID string) string {
	return "timetable:session:" + sessionID
}

func memKey(sessionID string, index int) string {
	return sessionID + ":" + strconv.Itoa(index)
}

// SaveScene - 장면 저장 (기존 장면 덮어쓰기)
func (s *SessionStore) SaveScene(ctx context.Context, sessionID string, scene Scene) error {
	if s.rdb != nil {
		data, err := json.Marshal(scene)
		if err != nil {
			return fmt.Errorf("장면 직렬화 실패: %w", err)
		}
		if err := s.rdb.HSet(ctx, sessionKey(sessionID), strconv.Itoa(scene.Index), data).Err(); err != nil {
			log.Printf("⚠️ Redis 장면 저장 실패 - 인메모리로 폴백: %v", err)
		} else {
			s.rdb.Expire(ctx, sessionKey(sessionID), sessionTTL)
			return nil
		}
	}

	s.mem.Set(memKey(sessionID, scene.Index), scene, cache.DefaultExpiration)
	return nil
}

// GetScene - 세션의 장면 조회
func (s *SessionStore) GetScene(ctx context.Context, sessionID string, index int) (*Scene, error) {
	if s.rdb != nil {
		data, err := s.rdb.HGet(ctx, sessionKey(sessionID), strconv.Itoa(index)).Result()
		if err == nil {
			var scene Scene
			if err := json.Unmarshal([]byte(data), &scene); err != nil {
				return nil, fmt.Errorf("장면 역직렬화 실패: %w", err)
			}
			return &scene, nil
		}
		if err != redis.Nil {
			log.Printf("⚠️ Redis 장면 조회 실패 - 인메모리로 폴백: %v", err)
		}
	}

	if cached, found := s.mem.Get(memKey(sessionID, index)); found {
		scene := cached.(Scene)
		return &scene, nil
	}

	return nil, fmt.Errorf("세션 %s 장면 %d: %w", sessionID, index, model.ErrSessionNotFound)
}

// UpdateScene - 장면 부분 수정 (nil 필드는 유지, last-write-wins)
func (s *SessionStore) UpdateScene(ctx context.Context, update SceneUpdate) (*Scene, error) {
	scene, err := s.GetScene(ctx, update.SessionID, update.SceneIndex)
	if err != nil {
		return nil, err
	}

	if update.Dialogue != nil {
		scene.Dialogue = *update.Dialogue
	}
	if update.BackgroundSoundsPrompt != nil {
		scene.BackgroundSoundsPrompt = *update.BackgroundSoundsPrompt
	}
	if update.T2IPrompt != nil {
		scene.T2IPrompt = *update.T2IPrompt
	}
	if update.ImageEditPrompt != nil {
		scene.ImageEditPrompt = *update.ImageEditPrompt
	}

	if err := s.SaveScene(ctx, update.SessionID, *scene); err != nil {
		return nil, err
	}
	return scene, nil
}
