// Package session holds per-session state shared by every view, most
// importantly the identity of the signed-in user.
package session

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/xcontext"
	"github.com/garrettladley/healthion/internal/xslog"
)

type Identity struct {
	UserID      uuid.UUID `json:"user_id"`
	SubjectID   string    `json:"subject_id"`
	Email       string    `json:"email"`
	Permissions []string  `json:"permissions"`
}

func (i *Identity) HasPermission(p string) bool {
	if i == nil {
		return false
	}
	return slices.Contains(i.Permissions, p)
}

func identityFromUserInfo(info *healthion.UserInfo) *Identity {
	return &Identity{
		UserID:      info.UserID,
		SubjectID:   info.Auth0ID,
		Email:       info.Email,
		Permissions: append([]string(nil), info.Permissions...),
	}
}

type IdentityFetcher interface {
	Me(ctx context.Context) (*healthion.UserInfo, error)
}

type IdentityProvider interface {
	Get(ctx context.Context) *Identity
}

var _ IdentityProvider = (*IdentityCache)(nil)

// IdentityCache resolves the current identity at most once per session.
// Concurrent callers share a single in-flight lookup. A failed lookup is
// logged and reported as nil; it is not retried until the next Get.
type IdentityCache struct {
	credentials oauth2.TokenSource
	fetcher     IdentityFetcher
	logger      *slog.Logger
	group       singleflight.Group

	mu       sync.RWMutex
	identity *Identity
	// generation changes on Invalidate and Close so a lookup started in an
	// earlier session cannot store its result.
	generation uint64
	closed     bool
}

func NewIdentityCache(credentials oauth2.TokenSource, fetcher IdentityFetcher, logger *slog.Logger) *IdentityCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityCache{
		credentials: credentials,
		fetcher:     fetcher,
		logger:      logger,
	}
}

func (c *IdentityCache) Get(ctx context.Context) *Identity {
	c.mu.RLock()
	identity, generation, closed := c.identity, c.generation, c.closed
	c.mu.RUnlock()

	if closed {
		return nil
	}
	if identity != nil {
		return identity
	}

	ch := c.group.DoChan(lookupKey(generation), func() (any, error) {
		// a previous flight may have stored while we waited on the lock
		c.mu.RLock()
		cached, current := c.identity, c.generation
		c.mu.RUnlock()
		if current != generation {
			return nil, nil
		}
		if cached != nil {
			return cached, nil
		}

		// the lookup outlives any single caller's cancellation
		identity := c.lookup(context.WithoutCancel(ctx))
		if identity == nil {
			return nil, nil
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || c.generation != generation {
			c.logger.DebugContext(ctx, "discarding identity from previous session", xslog.Generation(generation))
			return nil, nil
		}
		c.identity = identity
		return identity, nil
	})

	select {
	case <-ctx.Done():
		return nil
	case res := <-ch:
		identity, _ := res.Val.(*Identity)
		return identity
	}
}

func (c *IdentityCache) lookup(ctx context.Context) *Identity {
	token, err := c.credentials.Token()
	if err != nil {
		if oauth.IsCredentialUnavailable(err) {
			c.logger.DebugContext(ctx, "no credential for identity lookup", xslog.Error(err))
			return nil
		}
		c.logger.WarnContext(ctx, "failed to acquire credential for identity lookup", xslog.Error(err))
		return nil
	}
	if token == nil || token.AccessToken == "" {
		return nil
	}

	ctx = xcontext.SetCredential(ctx, token.AccessToken)
	info, err := c.fetcher.Me(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch identity", xslog.Error(err))
		return nil
	}
	if info == nil {
		return nil
	}

	identity := identityFromUserInfo(info)
	c.logger.InfoContext(ctx, "resolved identity", xslog.UserID(identity.UserID.String()))
	return identity
}

// Invalidate drops the cached identity, typically on logout. The next Get
// performs a fresh lookup; a lookup already in flight is discarded.
func (c *IdentityCache) Invalidate() {
	c.mu.Lock()
	previous := c.generation
	c.identity = nil
	c.generation++
	c.mu.Unlock()

	c.group.Forget(lookupKey(previous))
}

// Close tears the cache down. Every later Get returns nil without a lookup.
func (c *IdentityCache) Close() {
	c.mu.Lock()
	previous := c.generation
	c.identity = nil
	c.generation++
	c.closed = true
	c.mu.Unlock()

	c.group.Forget(lookupKey(previous))
}

func lookupKey(generation uint64) string {
	return "identity:" + strconv.FormatUint(generation, 10)
}
