package httpx

import (
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/blake2b"
)

// ETag is the strong entity tag of a response body.
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// WriteJSON writes v with an ETag header. When the request's If-None-Match
// already names that tag the body is dropped and 304 is sent instead.
func WriteJSON(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("[http] rid=%s encode error: %v", RID(c), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not encode response"})
		return
	}
	tag := ETag(body)
	c.Header("ETag", tag)
	if status == http.StatusOK && matchesTag(c.GetHeader("If-None-Match"), tag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

func matchesTag(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, t := range strings.Split(header, ",") {
		t = strings.TrimSpace(t)
		if t == "*" || strings.TrimPrefix(t, "W/") == tag {
			return true
		}
	}
	return false
}
