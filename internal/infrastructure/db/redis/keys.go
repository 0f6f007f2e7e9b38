package redis

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/tipulim/directory-web/internal/core/domain"
)

// Key formats:
//
//	session:<digest>            hash {userToken, userId}
//	page:<digest>:<profileID>   JSON-encoded domain.ProfilePage
//
// digest is the hex BLAKE2b-256 of the session cookie value, so a dump of the
// keyspace does not reveal live cookies.
const (
	fieldToken  = "userToken"
	fieldUserID = "userId"
)

func digest(sessionID string) string {
	sum := blake2b.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])
}

func sessionKey(sessionID string) string {
	return "session:" + digest(sessionID)
}

func pagePrefix(sessionID string) string {
	return "page:" + digest(sessionID) + ":"
}

func pageKey(sessionID string, profileID domain.UserID) string {
	return pagePrefix(sessionID) + domain.ParseUserID(string(profileID)).String()
}
