package devserver

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supplyline/internal/crypto"
	"supplyline/internal/domain"
	"supplyline/internal/util/memzero"
)

const headerSessionID = "X-Session-ID"

func (s *Server) serverKey(c *gin.Context) {
	pub := s.priv.PublicKey()
	enc := crypto.EncodePublicKey(pub)
	if s.spki {
		var err error
		if enc, err = crypto.EncodePublicKeySPKI(pub); err != nil {
			respondError(c, err)
			return
		}
	}
	respondJSON(c, http.StatusOK, domain.ServerKeyResponse{PublicKey: enc})
}

func (s *Server) exchangeKeys(c *gin.Context) {
	var req domain.KeyExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fail(errInvalidInput, "clientPublicKey required"))
		return
	}
	pub, err := crypto.ParsePublicKey(req.ClientPublicKey)
	if err != nil {
		respondError(c, fail(errInvalidInput, "%v", err))
		return
	}
	shared, err := crypto.SharedSecret(s.priv, pub)
	if err != nil {
		respondError(c, fail(errInvalidInput, "%v", err))
		return
	}
	defer memzero.Zero(shared)

	sid := domain.SessionID(uuid.NewString())
	key, err := crypto.DeriveSessionKey(s.kdf, shared, sid.String())
	if err != nil {
		respondError(c, err)
		return
	}

	s.mu.Lock()
	s.sessions[sid] = session{key: key, created: s.now()}
	s.mu.Unlock()

	s.log.Debugf("key exchange: session %s", sid.Short())
	respondJSON(c, http.StatusOK, domain.KeyExchangeResponse{SessionID: sid})
}

// exchange is one request/response pair that may be encrypted.
type exchange struct {
	c   *gin.Context
	key []byte // nil for plaintext JSON
}

// openExchange binds the body into v, decrypting first when the request
// arrived as text/plain. Errors are already answered when ok is false.
func (s *Server) openExchange(c *gin.Context, v any) (*exchange, bool) {
	mt, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	if mt != "text/plain" {
		if err := c.ShouldBindJSON(v); err != nil {
			respondError(c, fail(errInvalidInput, "malformed request body"))
			return nil, false
		}
		return &exchange{c: c}, true
	}

	sid := domain.SessionID(c.GetHeader(headerSessionID))
	s.mu.Lock()
	sess, ok := s.sessions[sid]
	if ok && s.now().Sub(sess.created) > s.sessionTTL {
		delete(s.sessions, sid)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		respondError(c, fail(errSessionUnknown, "unknown or expired session; redo the key exchange"))
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		respondError(c, fail(errInvalidInput, "unreadable body"))
		return nil, false
	}
	plain, err := crypto.Open(sess.key, strings.TrimSpace(string(body)))
	if err != nil {
		respondError(c, fail(errInvalidInput, "could not decrypt request"))
		return nil, false
	}
	if err := json.Unmarshal(plain, v); err != nil {
		respondError(c, fail(errInvalidInput, "malformed request body"))
		return nil, false
	}
	return &exchange{c: c, key: sess.key}, true
}

// reply answers in the same mode the request used.
func (x *exchange) reply(code int, data any) {
	x.send(code, envelope{Status: "success", Data: data})
}

func (x *exchange) fail(err error) {
	x.send(mapErrorToHTTPStatus(err), envelope{Status: "error", Message: err.Error()})
}

func (x *exchange) send(code int, env envelope) {
	if x.key == nil {
		x.c.JSON(code, env)
		return
	}
	raw, err := json.Marshal(env)
	if err != nil {
		respondError(x.c, err)
		return
	}
	sealed, err := crypto.Seal(x.key, raw)
	if err != nil {
		respondError(x.c, err)
		return
	}
	x.c.Data(code, "text/plain; charset=utf-8", []byte(sealed))
}
