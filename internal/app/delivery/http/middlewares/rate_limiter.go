package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"lidio-service/internal/pkg/constvars"
	"lidio-service/internal/pkg/exceptions"
	"lidio-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per IP token bucket with a temporary block once the bucket runs dry.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, perSecond float64, burst int, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// NotificationRateLimiter shields the notification endpoint with the configured budget.
func (m *Middlewares) NotificationRateLimiter() *RateLimiter {
	cfg := m.InternalConfig.Notification
	return NewRateLimiter(m.Log, cfg.RateLimitPerSecond, cfg.RateLimitBurst, time.Minute)
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		now := l.now()
		l.mu.Lock()
		if blockedUntil, found := l.blocked[ip]; found {
			if now.Before(blockedUntil) {
				l.mu.Unlock()
				l.reject(w, req, ip, blockedUntil.Sub(now))
				return
			}
			delete(l.blocked, ip)
		}

		limiter, exists := l.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(l.limit, l.burst)
			l.limiters[ip] = limiter
		}

		if !limiter.AllowN(now, 1) {
			l.blocked[ip] = now.Add(l.blockTime)
			l.mu.Unlock()
			l.reject(w, req, ip, l.blockTime)
			return
		}
		l.mu.Unlock()

		next.ServeHTTP(w, req)
	})
}

func (l *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, retryAfter time.Duration) {
	utils.LogSecurityEvent(l.log, "rate_limited", utils.GetRequestID(req.Context()), "low",
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.String(constvars.LoggingEndpointKey, req.URL.Path),
	)
	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyRequests(nil))
}
