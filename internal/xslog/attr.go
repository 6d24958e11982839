package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/healthion/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func ErrorAny(err any) slog.Attr {
	return slog.Any(keyError, err)
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Start(s string) slog.Attr {
	const startKey = "start"
	return slog.String(startKey, s)
}

func End(s string) slog.Attr {
	const endKey = "end"
	return slog.String(endKey, s)
}

func Resource(name string) slog.Attr {
	const resourceKey = "resource"
	return slog.String(resourceKey, name)
}

func Action(name string) slog.Attr {
	const actionKey = "action"
	return slog.String(actionKey, name)
}

func Seq(seq uint64) slog.Attr {
	const seqKey = "seq"
	return slog.Uint64(seqKey, seq)
}

func Generation(gen uint64) slog.Attr {
	const generationKey = "generation"
	return slog.Uint64(generationKey, gen)
}

func Provider(provider string) slog.Attr {
	const providerKey = "provider"
	return slog.String(providerKey, provider)
}

func UserID(id string) slog.Attr {
	const userIDKey = "user_id"
	return slog.String(userIDKey, id)
}

func Expiry(t time.Time) slog.Attr {
	const expiryKey = "expiry"
	return slog.Time(expiryKey, t)
}
