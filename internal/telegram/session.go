package telegram

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/spiritquiz/backend/internal/conversation"
	"github.com/spiritquiz/backend/internal/entity"
)

// chatSession is one chat's in-flight quiz: the transcript plus the last
// question shown, kept so an answer callback (which only carries an option
// index) can be resolved back to its text.
type chatSession struct {
	Transcript conversation.Transcript
	Question   *entity.Question
}

// sessionStore keeps per-chat sessions with a TTL. A quiz nobody finishes
// just ages out.
type sessionStore struct {
	c *cache.Cache
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{c: cache.New(ttl, 10*time.Minute)}
}

func (s *sessionStore) Get(chatID int64) (*chatSession, bool) {
	v, ok := s.c.Get(key(chatID))
	if !ok {
		return nil, false
	}
	return v.(*chatSession), true
}

func (s *sessionStore) Set(chatID int64, sess *chatSession) {
	s.c.Set(key(chatID), sess, cache.DefaultExpiration)
}

func (s *sessionStore) Delete(chatID int64) {
	s.c.Delete(key(chatID))
}

func key(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}
